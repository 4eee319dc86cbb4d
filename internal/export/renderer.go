package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/vidrecall/internal/language"
)

const (
	// FileStem is the base name of every exported document
	FileStem = "summary"

	FormatPDF  = "pdf"
	FormatText = "txt"
)

// Renderer turns a title and body into a persisted document
type Renderer interface {
	// Render writes the document and returns its path
	Render(title, body string, wrapWidth float64) (string, error)
	// WrapWidth is the line width the renderer wraps at by default
	WrapWidth() float64
	// Ext is the file extension without the dot
	Ext() string
}

// Options configure NewRenderer
type Options struct {
	Format    string
	Dir       string
	WrapWidth float64
	// FontPath is a UTF-8 TrueType font for non-Latin scripts (PDF only)
	FontPath string
}

// NewRenderer picks a renderer by format
func NewRenderer(opts Options) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatPDF:
		return NewPDFRenderer(opts.Dir, opts.WrapWidth, opts.FontPath), nil
	case FormatText, "text":
		return NewTextRenderer(opts.Dir, opts.WrapWidth), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q (supported: pdf, txt)", opts.Format)
	}
}

// Formats lists the supported export formats
func Formats() []string {
	return []string{FormatPDF, FormatText}
}

// VideoDir is the per-video, per-language directory under base, so that
// exports of different videos never overwrite each other
func VideoDir(base, videoID string, lang language.Code) string {
	return filepath.Join(base, videoID+"-"+string(lang))
}

func outputPath(dir, ext string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return filepath.Join(dir, FileStem+"."+ext), nil
}
