// Package pdf handles reading contract uploads and generating branded
// template documents.
package pdf

import (
	"bytes"
	"context"
	"strings"

	ledongthuc "github.com/ledongthuc/pdf"

	"github.com/freelanceshield/api/internal/pkg/errors"
)

// ExtractResult is the outcome of pulling text out of a PDF.
type ExtractResult struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
	CharCount int    `json:"char_count"`
}

// Extractor pulls plain text out of an uploaded PDF.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (*ExtractResult, error)
}

// Extraction failure messages shown to users.
const (
	MsgNoText = "We couldn't extract text from this PDF. Try uploading a text-based PDF, or paste your contract text directly."

	MsgEncrypted = "This PDF is password-protected. Please remove the password and re-upload."

	MsgCorrupted = "We couldn't process this PDF. Please ensure it's a valid, non-corrupted PDF file."
)

// LocalExtractor reads PDFs in-process.
type LocalExtractor struct{}

// NewLocalExtractor creates an in-process extractor
func NewLocalExtractor() *LocalExtractor {
	return &LocalExtractor{}
}

// Extract pulls plain text out of the PDF bytes.
func (e *LocalExtractor) Extract(ctx context.Context, data []byte) (*ExtractResult, error) {
	if len(data) == 0 {
		return nil, errors.BadRequest("Uploaded file is empty.")
	}

	reader, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "encrypted") || strings.Contains(msg, "password") {
			return nil, errors.Unprocessable(MsgEncrypted)
		}
		return nil, errors.Unprocessable(MsgCorrupted)
	}

	pageCount := reader.NumPage()
	if pageCount == 0 {
		return nil, errors.Unprocessable("PDF has no pages.")
	}

	var pages []string
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}

	fullText := strings.TrimSpace(strings.Join(pages, "\n\n"))
	if fullText == "" {
		return nil, errors.Unprocessable(MsgNoText)
	}

	return &ExtractResult{
		Text:      fullText,
		PageCount: pageCount,
		CharCount: len(fullText),
	}, nil
}
