package ingest

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_text_extractor.go -package=mocks docuchat-ai/internal/ingest TextExtractor

// TextExtractor extracts the full text of one source document.
// The pipeline depends on this interface so it can be exercised without
// real PDF files.
type TextExtractor interface {
	// Extract returns the document's full text, or "" when the document
	// has no extractable text layer (e.g. a scanned image PDF).
	Extract(path string) (string, error)
}

// PDFExtractor implements TextExtractor for PDF files.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract reads the PDF at path page by page and concatenates the page
// texts with page-boundary markers, so downstream answers can reference
// page context.
func (e *PDFExtractor) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	pages := make([]string, 0, reader.NumPage())
	for n := 1; n <= reader.NumPage(); n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page should not lose the rest of the
			// document; it simply contributes no text.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return joinPages(pages), nil
}

// joinPages assembles per-page texts into one full-text string with a
// marker before every non-empty page. Pages without a text layer
// contribute nothing, so a fully scanned document yields "".
func joinPages(pages []string) string {
	var b strings.Builder
	for i, text := range pages {
		if strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&b, "\n--- Página %d ---\n", i+1)
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}
