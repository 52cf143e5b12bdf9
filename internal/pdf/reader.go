package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts per-page raw text from PDF files.
type Reader struct {
	maxFileSize int64
}

// NewReader creates a new PDF reader with the specified constraints.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{maxFileSize: maxFileSize}
}

// PageTexts returns the raw text of every page, in order. Pages the parser
// cannot read come back as empty strings so page numbering stays intact;
// callers decide how to report them.
func (r *Reader) PageTexts(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if err := r.validatePDFFile(path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pages := make([]string, 0, pdfReader.NumPage())
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// Keep the slot so later pages keep their numbers.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, content)
	}
	return pages, nil
}

// validatePDFFile performs basic validation on a PDF file.
func (r *Reader) validatePDFFile(path string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}
	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}
	return nil
}
