package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"

	"github.com/Aalify-X/progrify-be/types"
	"github.com/Aalify-X/progrify-be/utils"
)

const (
	pdfPageBatchSize = 5
	wordParseTimeout = 30 * time.Second

	noReadableTextPDF  = "No readable text found in PDF"
	noReadableTextWord = "No readable text found in Word document"
)

// TextExtractor converts an uploaded binary document into plain text.
type TextExtractor interface {
	SupportedExt(ext string) bool
	Extract(ctx context.Context, filename string, data []byte) (string, error)
}

// ExtractService converts uploaded binary documents into plain text.
type ExtractService struct{}

func NewExtractService() *ExtractService {
	return &ExtractService{}
}

// SupportedExt reports whether the extractor handles files with ext
// (lower-cased, including the dot).
func (s *ExtractService) SupportedExt(ext string) bool {
	switch ext {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

// Extract dispatches on the declared filename extension. Unsupported
// extensions fail before any parsing.
func (s *ExtractService) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	switch utils.FileExt(filename) {
	case ".pdf":
		return s.ExtractPDF(data)
	case ".doc", ".docx":
		return s.ExtractWord(ctx, data)
	default:
		return "", &types.ClientInputError{Message: "Unsupported file type"}
	}
}

// ExtractPDF walks the document page by page in batches of
// pdfPageBatchSize, skipping pages the parser cannot handle. A document
// where no page yields text returns the sentinel string, not an error.
func (s *ExtractService) ExtractPDF(data []byte) (string, error) {
	reader, err := openPDF(data)
	if err != nil {
		// Retry once from a fresh copy of the bytes; a failed first parse
		// can leave the stream position unusable.
		reader, err = openPDF(append([]byte(nil), data...))
		if err != nil {
			return "", &types.ExtractionError{Format: "PDF", Cause: err}
		}
	}

	text := collectPDFPages(reader.NumPage(), func(pageNum int) (string, error) {
		return extractPDFPage(reader, pageNum)
	})
	if text == "" {
		return noReadableTextPDF, nil
	}
	return text, nil
}

// collectPDFPages walks pages in order in batches of pdfPageBatchSize,
// joining each page's trimmed text with newlines. A page whose extraction
// fails is logged and skipped; the remaining pages still contribute.
func collectPDFPages(pageCount int, extractPage func(pageNum int) (string, error)) string {
	var sb strings.Builder
	for batchStart := 1; batchStart <= pageCount; batchStart += pdfPageBatchSize {
		batchEnd := batchStart + pdfPageBatchSize - 1
		if batchEnd > pageCount {
			batchEnd = pageCount
		}

		for pageNum := batchStart; pageNum <= batchEnd; pageNum++ {
			pageText, err := extractPage(pageNum)
			if err != nil {
				log.Printf("Warning: failed to extract text from page %d: %v", pageNum, err)
				continue // Skip failed pages instead of returning error
			}
			if trimmed := strings.TrimSpace(pageText); trimmed != "" {
				sb.WriteString(trimmed)
				sb.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

func openPDF(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

// extractPDFPage isolates the parser's panics on malformed page objects so
// a single corrupt page cannot abort the whole document.
func extractPDFPage(reader *pdf.Reader, pageNum int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", pageNum, r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d is null", pageNum)
	}
	return page.GetPlainText(nil)
}

// ExtractWord joins the document's paragraph text with newlines. Parsing
// runs under a deadline; hitting it yields a timeout-specific
// ExtractionError distinguishable from parse failures.
func (s *ExtractService) ExtractWord(ctx context.Context, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, wordParseTimeout)
	defer cancel()

	type parseResult struct {
		text string
		err  error
	}
	resultChan := make(chan parseResult, 1)
	go func() {
		text, err := parseWordParagraphs(data)
		resultChan <- parseResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", &types.ExtractionError{Format: "Word", Timeout: true, Cause: ctx.Err()}
	case res := <-resultChan:
		if res.err != nil {
			return "", &types.ExtractionError{Format: "Word", Cause: res.err}
		}
		if res.text == "" {
			return noReadableTextWord, nil
		}
		return res.text, nil
	}
}

func parseWordParagraphs(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed document: %v", r)
		}
	}()

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, para.String())
		}
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n")), nil
}
