package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Search discovers PDF files for batch extraction runs.
type Search struct {
	maxFileSize int64
	validator   *Validator
}

// NewSearch creates a new PDF search handler with the specified constraints.
func NewSearch(maxFileSize int64) *Search {
	return &Search{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// SearchDirectory walks a directory tree and returns every valid PDF file.
// Unreadable or invalid files are skipped, not reported as errors.
func (s *Search) SearchDirectory(directory string) (*SearchDirectoryResult, error) {
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", directory)
	}

	absDirectory, err := filepath.Abs(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	var pdfFiles []FileInfo
	err = filepath.WalkDir(absDirectory, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Continue walking even if one entry is unreadable.
			return nil //nolint:nilerr
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != absDirectory {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.isPDFFile(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr
		}
		if err := s.validator.ValidateFileInfo(path, info); err != nil {
			return nil //nolint:nilerr
		}

		pdfFiles = append(pdfFiles, FileInfo{
			Path:         path,
			Name:         info.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory: %w", err)
	}

	return &SearchDirectoryResult{
		Files:      pdfFiles,
		TotalCount: len(pdfFiles),
		Directory:  absDirectory,
	}, nil
}

// FindPDFsInDirectory returns the PDF files under directory.
func (s *Search) FindPDFsInDirectory(directory string) ([]FileInfo, error) {
	result, err := s.SearchDirectory(directory)
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}

// isPDFFile checks if a file has a PDF extension.
func (s *Search) isPDFFile(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
