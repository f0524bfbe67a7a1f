package textextract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer
)

// ExtractPDFText extracts plain text from every page of a PDF
func ExtractPDFText(pdfData []byte) (string, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	pageCount := doc.NumPage()
	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return Sanitize(sb.String()), nil
}

// ExtractText extracts plain text from a file based on its content type.
// Plain text passes through with sanitization, PDFs go through the
// renderer.
func ExtractText(data []byte, contentType string) (string, error) {
	switch {
	case strings.Contains(contentType, "pdf"):
		return ExtractPDFText(data)
	case strings.HasPrefix(contentType, "text/"), contentType == "":
		return Sanitize(string(data)), nil
	default:
		// Unknown types are treated as text if they decode cleanly
		if utf8.Valid(data) {
			return Sanitize(string(data)), nil
		}
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}
}

// Sanitize removes invalid UTF-8 sequences and NUL bytes so the
// text is safe to store and index
func Sanitize(text string) string {
	text = strings.ToValidUTF8(text, "")
	return strings.ReplaceAll(text, "\x00", "")
}
