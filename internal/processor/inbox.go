package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ProcessFile transcribes a file dropped into the inbox folder without
// trimming. The file is removed once its document has been written.
func (p *implProcessor) ProcessFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open inbox file: %w", err)
	}

	res := p.Process(ctx, Request{Filename: filepath.Base(path), Upload: f})
	f.Close()

	if err := res.Err(); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if res.DocumentName == "" {
		return fmt.Errorf("%s: document export failed", filepath.Base(path))
	}

	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to remove inbox file %s: %v", path, err)
	}
	return nil
}
