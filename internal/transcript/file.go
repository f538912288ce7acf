package transcript

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// FileProvider reads a transcript from a local text file. Useful for
// lectures that never went through YouTube, and for offline testing.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading from the given path.
// The videoID passed to Fetch is ignored.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Fetch(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, p.path)
		}
		return "", fmt.Errorf("read transcript file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
