package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseInputFile(t *testing.T) {
	t.Run("parses file with comments, blank lines and mixed paths", func(t *testing.T) {
		content := `# morning sessions
recordings/standup.mp3
recordings/retro.wav

# not audio, skipped
notes/agenda.txt
interview.m4a
`
		tmpDir := t.TempDir()
		filePath := filepath.Join(tmpDir, "input.txt")
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		paths, err := ParseInputFile(filePath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{"recordings/standup.mp3", "recordings/retro.wav", "interview.m4a"}
		if len(paths) != len(expected) {
			t.Fatalf("expected %d paths, got %d: %v", len(expected), len(paths), paths)
		}

		for i, p := range paths {
			if p != expected[i] {
				t.Errorf("expected path[%d] = %q, got %q", i, expected[i], p)
			}
		}
	})

	t.Run("returns error for nonexistent file", func(t *testing.T) {
		_, err := ParseInputFile("/nonexistent/path/file.txt")
		if err == nil {
			t.Error("expected error for nonexistent file, got nil")
		}
	})
}

func TestScanAudioDir(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"b.wav", "a.mp3", "readme.md", "cover.jpg"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "nested.wav"), 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	paths, err := ScanAudioDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{filepath.Join(tmpDir, "a.mp3"), filepath.Join(tmpDir, "b.wav")}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d paths, got %d: %v", len(expected), len(paths), paths)
	}
	for i, p := range paths {
		if p != expected[i] {
			t.Errorf("expected path[%d] = %q, got %q", i, expected[i], p)
		}
	}
}

func TestCollectInputs(t *testing.T) {
	t.Run("combines args, file and dir with deduplication", func(t *testing.T) {
		tmpDir := t.TempDir()

		audioPath := filepath.Join(tmpDir, "talk.ogg")
		if err := os.WriteFile(audioPath, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		content := "first.mp3\nsecond.wav\n"
		listPath := filepath.Join(tmpDir, "input.txt")
		if err := os.WriteFile(listPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		paths, err := CollectInputs([]string{"second.wav", "extra.m4a", "skip.pdf"}, listPath, tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{"second.wav", "extra.m4a", "first.mp3", audioPath}
		if len(paths) != len(expected) {
			t.Fatalf("expected %d paths, got %d: %v", len(expected), len(paths), paths)
		}
		for i, p := range paths {
			if p != expected[i] {
				t.Errorf("expected path[%d] = %q, got %q", i, expected[i], p)
			}
		}
	})

	t.Run("args only", func(t *testing.T) {
		paths, err := CollectInputs([]string{"a.wav", "a.wav", "b.mp3"}, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(paths) != 2 {
			t.Fatalf("expected 2 paths, got %d: %v", len(paths), paths)
		}
	})

	t.Run("empty inputs", func(t *testing.T) {
		paths, err := CollectInputs(nil, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(paths) != 0 {
			t.Errorf("expected no paths, got %v", paths)
		}
	})
}
