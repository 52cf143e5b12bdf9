// Package pdf provides the document collaborators of the extraction
// pipeline: per-page text reading, structural validation and directory
// discovery.
package pdf

// FileInfo describes a discovered PDF file.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// ValidateFileResult reports whether a file is a readable PDF.
type ValidateFileResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// SearchDirectoryResult lists the PDF files found in a directory.
type SearchDirectoryResult struct {
	Files      []FileInfo `json:"files"`
	TotalCount int        `json:"total_count"`
	Directory  string     `json:"directory"`
}
