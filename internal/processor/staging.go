package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/audio-transcriber/pkg/tempfile"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	allowedExtensions = map[string]bool{
		"wav":  true,
		"mp3":  true,
		"ogg":  true,
		"m4a":  true,
		"flac": true,
	}

	reUnsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// IsAllowed reports whether filename has a supported audio extension
func IsAllowed(filename string) bool {
	_, ok := allowedExtension(filename)
	return ok
}

// allowedExtension returns the lower-case extension without the dot
func allowedExtension(filename string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext, allowedExtensions[ext]
}

// secureFilename reduces a client-supplied name to a plain ASCII base name:
// accents stripped, whitespace turned into underscores, other symbols dropped.
// ext is the already validated extension.
func secureFilename(filename, ext string) string {
	name := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	stripAccents := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if ascii, _, err := transform.String(stripAccents, stem); err == nil {
		stem = ascii
	}

	stem = strings.Join(strings.Fields(stem), "_")
	stem = reUnsafeFilename.ReplaceAllString(stem, "")
	stem = strings.Trim(stem, "._")

	if stem == "" {
		stem = "audio"
	}
	return stem + "." + ext
}

// stage writes the upload into the uploads folder under a random name that keeps the extension
func (p *implProcessor) stage(ctx context.Context, r io.Reader, originalFilename string) (*tempfile.Guard, error) {
	if err := os.MkdirAll(p.cfg.Paths.Uploads, 0755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	path := filepath.Join(p.cfg.Paths.Uploads, uuid.NewString()+filepath.Ext(originalFilename))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("create staged file: %w", err)
	}
	staged := tempfile.Adopt(path)

	n, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		p.cleanupTempFile(ctx, staged)
		return nil, fmt.Errorf("write staged file: %w", err)
	}
	if err := f.Close(); err != nil {
		p.cleanupTempFile(ctx, staged)
		return nil, fmt.Errorf("close staged file: %w", err)
	}

	p.logger.Debug(ctx, "Staged %d bytes at %s", n, path)
	return staged, nil
}
