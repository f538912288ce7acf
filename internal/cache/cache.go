// Package cache persists generated sessions so a video is only ever
// processed once. One JSON file per video ID.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/notes"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/questionbank"
)

// Entry is everything generated for one video.
type Entry struct {
	VideoID    string                  `json:"video_id"`
	Title      string                  `json:"title,omitempty"`
	Author     string                  `json:"author,omitempty"`
	Timestamp  time.Time               `json:"timestamp"`
	Transcript string                  `json:"transcript"`
	Notes      *notes.StudyNotes       `json:"notes"`
	Questions  []questionbank.Question `json:"questions"`
}

// Cache stores entries as JSON files under a single directory.
type Cache struct {
	dir string
}

// New creates a cache rooted at dir, creating it if needed.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// DefaultDir resolves the cache directory in priority order:
// 1. LECTERN_CACHE_DIR environment variable
// 2. $XDG_DATA_HOME/lectern/sessions
// 3. ~/.local/share/lectern/sessions
func DefaultDir() (string, error) {
	if p := os.Getenv("LECTERN_CACHE_DIR"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "lectern", "sessions"), nil
}

// Exists reports whether an entry for the video is cached.
func (c *Cache) Exists(videoID string) bool {
	_, err := os.Stat(c.path(videoID))
	return err == nil
}

// Save writes the entry, stamping it with the current time.
// The write is atomic: a temp file renamed into place.
func (c *Cache) Save(entry *Entry) error {
	entry.Timestamp = time.Now()

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	tmp, err := os.CreateTemp(c.dir, entry.VideoID+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cache entry: %w", err)
	}

	if err := os.Rename(tmp.Name(), c.path(entry.VideoID)); err != nil {
		return fmt.Errorf("finalize cache entry: %w", err)
	}
	return nil
}

// Load reads the cached entry for the video. os.IsNotExist holds for
// the returned error when the entry is missing.
func (c *Cache) Load(videoID string) (*Entry, error) {
	data, err := os.ReadFile(c.path(videoID))
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode cache entry %s: %w", videoID, err)
	}
	return &entry, nil
}

// List returns the video IDs of every cached entry.
func (c *Cache) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		base := filepath.Base(m)
		ids = append(ids, base[:len(base)-len(".json")])
	}
	return ids, nil
}

// Remove deletes the cached entry for the video.
func (c *Cache) Remove(videoID string) error {
	return os.Remove(c.path(videoID))
}

func (c *Cache) path(videoID string) string {
	return filepath.Join(c.dir, videoID+".json")
}
