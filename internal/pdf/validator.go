package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator handles PDF file validation operations.
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a new PDF validator with the specified constraints.
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{maxFileSize: maxFileSize}
}

// ValidateFile performs comprehensive validation on a PDF file. A failed
// validation is a result, not a processing error.
func (v *Validator) ValidateFile(path string) (*ValidateFileResult, error) {
	result := &ValidateFileResult{Path: path}

	if err := v.validatePDFFile(path); err != nil {
		result.Message = err.Error()
		return result, nil
	}
	result.Valid = true
	return result, nil
}

// validatePDFFile performs detailed validation on a PDF file.
func (v *Validator) validatePDFFile(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if err := v.ValidateFileInfo(path, fileInfo); err != nil {
		return err
	}

	// Structural pass: let pdfcpu parse the document in relaxed mode.
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("invalid PDF file: %w", err)
	}
	return nil
}

// IsValidPDF performs a quick check to see if a file is a valid PDF.
func (v *Validator) IsValidPDF(path string) bool {
	return v.validatePDFFile(path) == nil
}

// ValidateFileInfo performs basic validation on file info without opening
// the PDF.
func (v *Validator) ValidateFileInfo(path string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}
	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}
	return nil
}
