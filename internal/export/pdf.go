package export

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	defaultPDFWrap = 180.0 // mm
	pdfMarginLeft  = 20.0
	pdfTitleY      = 20.0
	pdfBodyY       = 30.0
	pdfLineHeight  = 7.0
	pdfPageBottom  = 280.0
	pdfFontSize    = 12.0
	pdfTitleSize   = 16.0
	utf8Family     = "summaryfont"
)

// PDFRenderer writes an A4 PDF with the title on top and the wrapped body below
type PDFRenderer struct {
	dir       string
	wrapWidth float64
	fontPath  string
}

// NewPDFRenderer creates a PDF renderer writing to dir.
// Without fontPath the core Helvetica font is used and characters outside
// Latin-1 are replaced.
func NewPDFRenderer(dir string, wrapWidth float64, fontPath string) *PDFRenderer {
	if wrapWidth <= 0 {
		wrapWidth = defaultPDFWrap
	}
	return &PDFRenderer{dir: dir, wrapWidth: wrapWidth, fontPath: fontPath}
}

func (r *PDFRenderer) WrapWidth() float64 { return r.wrapWidth }

func (r *PDFRenderer) Ext() string { return FormatPDF }

// Render writes summary.pdf
func (r *PDFRenderer) Render(title, body string, wrapWidth float64) (string, error) {
	if wrapWidth <= 0 {
		wrapWidth = r.wrapWidth
	}
	path, err := outputPath(r.dir, r.Ext())
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	family, encode := "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
	clean := latin1
	if r.fontPath != "" {
		pdf.AddUTF8Font(utf8Family, "", r.fontPath)
		pdf.AddUTF8Font(utf8Family, "B", r.fontPath)
		family = utf8Family
		encode = func(s string) string { return s }
		clean = func(s string) string { return s }
	}
	pdf.AddPage()

	pdf.SetFont(family, "B", pdfTitleSize)
	pdf.Text(pdfMarginLeft, pdfTitleY, encode(clean(title)))

	pdf.SetFont(family, "", pdfFontSize)
	y := pdfBodyY
	for _, paragraph := range strings.Split(clean(body), "\n") {
		lines := pdf.SplitText(paragraph, wrapWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		for _, line := range lines {
			if y > pdfPageBottom {
				pdf.AddPage()
				y = pdfTitleY
			}
			pdf.Text(pdfMarginLeft, y, encode(line))
			y += pdfLineHeight
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}
	return path, nil
}

// latin1 keeps text inside the code points the core fonts carry metrics for
func latin1(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\r':
			return -1
		case r > 0xFF:
			return '?'
		default:
			return r
		}
	}, s)
}
