package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"

	"github.com/devbush/scribepad/internal/domain"
	"github.com/devbush/scribepad/internal/ports"
)

// memCacheSize bounds the in-process LRU front
const memCacheSize = 32

// FileCache stores transcripts on disk keyed by the SHA-256 of their
// source audio, with an LRU front so repeat lookups within a run skip
// the filesystem.
type FileCache struct {
	fs      afero.Fs
	baseDir string
	ttl     time.Duration
	mem     *lru.Cache[string, *ports.CachedTranscript]
}

func NewFileCache(fs afero.Fs, baseDir string, ttl time.Duration) *FileCache {
	mem, _ := lru.New[string, *ports.CachedTranscript](memCacheSize)
	return &FileCache{
		fs:      fs,
		baseDir: baseDir,
		ttl:     ttl,
		mem:     mem,
	}
}

// HashFile returns the cache key for an audio file: the hex SHA-256
// of its contents.
func HashFile(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrAudioNotFound
		}
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (c *FileCache) entryDir(key string) string {
	return filepath.Join(c.baseDir, key)
}

func (c *FileCache) metaPath(key string) string {
	return filepath.Join(c.entryDir(key), "meta.json")
}

func (c *FileCache) Get(ctx context.Context, key string) (*ports.CachedTranscript, error) {
	if item, ok := c.mem.Get(key); ok {
		if time.Now().After(item.ExpiresAt) {
			c.mem.Remove(key)
			return nil, domain.ErrCacheExpired
		}
		return item, nil
	}

	data, err := afero.ReadFile(c.fs, c.metaPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}

	var item ports.CachedTranscript
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}

	if time.Now().After(item.ExpiresAt) {
		return nil, domain.ErrCacheExpired
	}

	c.mem.Add(key, &item)
	return &item, nil
}

func (c *FileCache) Set(ctx context.Context, key string, item *ports.CachedTranscript) error {
	if err := c.fs.MkdirAll(c.entryDir(key), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return err
	}

	if err := afero.WriteFile(c.fs, c.metaPath(key), data, 0644); err != nil {
		return err
	}

	c.mem.Add(key, item)
	return nil
}

func (c *FileCache) Delete(ctx context.Context, key string) error {
	c.mem.Remove(key)
	return c.fs.RemoveAll(c.entryDir(key))
}

func (c *FileCache) CleanExpired(ctx context.Context) (int, error) {
	entries, err := afero.ReadDir(c.fs, c.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cleaned := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		key := entry.Name()
		_, err := c.Get(ctx, key)
		if err == domain.ErrCacheExpired {
			if err := c.Delete(ctx, key); err == nil {
				cleaned++
			}
		}
	}

	return cleaned, nil
}

func (c *FileCache) Clear(ctx context.Context) error {
	c.mem.Purge()

	entries, err := afero.ReadDir(c.fs, c.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if err := c.fs.RemoveAll(filepath.Join(c.baseDir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (c *FileCache) Stats(ctx context.Context) (int, int64, error) {
	entries, err := afero.ReadDir(c.fs, c.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	count := 0
	var size int64
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		count++

		dir := filepath.Join(c.baseDir, entry.Name())
		err := afero.Walk(c.fs, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				size += info.Size()
			}
			return nil
		})
		if err != nil {
			return count, size, err
		}
	}

	return count, size, nil
}

// Ensure FileCache implements interface
var _ ports.TranscriptStore = (*FileCache)(nil)
