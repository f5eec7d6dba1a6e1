package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/devbush/scribepad/internal/domain"
)

// ParseInputFile reads a file listing audio paths, one per line.
// Blank lines and lines starting with # are ignored, as are paths
// without a supported audio extension.
func ParseInputFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var paths []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !domain.IsSupportedAudio(line) {
			continue
		}

		paths = append(paths, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}

// ScanAudioDir returns the supported audio files directly inside dir,
// in directory order. Subdirectories are not descended into.
func ScanAudioDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !domain.IsSupportedAudio(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	return paths, nil
}

// CollectInputs combines CLI arguments, a list file and a folder scan,
// deduplicating. Args are processed first, then file entries, then the
// folder. Returns unique paths in order of first appearance.
func CollectInputs(args []string, filePath, dir string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		if !domain.IsSupportedAudio(arg) {
			continue
		}
		add(arg)
	}

	if filePath != "" {
		filePaths, err := ParseInputFile(filePath)
		if err != nil {
			return nil, err
		}
		for _, p := range filePaths {
			add(p)
		}
	}

	if dir != "" {
		dirPaths, err := ScanAudioDir(dir)
		if err != nil {
			return nil, err
		}
		for _, p := range dirPaths {
			add(p)
		}
	}

	return paths, nil
}
