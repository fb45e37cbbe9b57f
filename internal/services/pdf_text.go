package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFTextBytes caps the plain text read from one document
const maxPDFTextBytes = 1 << 20

// pdfText extracts the plain text of a PDF document with whitespace collapsed.
// The parser panics on some malformed files, so panics are returned as errors.
func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}
	raw, err := io.ReadAll(io.LimitReader(plain, maxPDFTextBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	return strings.Join(strings.Fields(string(raw)), " "), nil
}
