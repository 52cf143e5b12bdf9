// Package extract implements the page-scoped extraction pipeline and the
// batch aggregation over it.
package extract

import "github.com/docsift/pii-extractor/internal/validate"

// Record is one extracted, validated candidate. Records are immutable after
// creation; SourceFile is filled in by the aggregator, never the extractor.
type Record struct {
	Value             string           `json:"value"`
	Page              int              `json:"page"`
	FieldType         string           `json:"field_type"`
	Status            validate.Verdict `json:"status"`
	ValidationMessage string           `json:"validation_message,omitempty"`
	SourceFile        string           `json:"source_file,omitempty"`
}

// FileCounts is the per-file slice of a summary.
type FileCounts struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// Summary holds aggregate statistics over a set of records. SuccessRate is a
// percentage rounded to two decimals, zero when there are no records.
type Summary struct {
	Total       int                   `json:"total"`
	Valid       int                   `json:"valid"`
	Invalid     int                   `json:"invalid"`
	SuccessRate float64               `json:"success_rate"`
	Files       map[string]FileCounts `json:"files_processed"`
}

// Document names one input file for a batch run.
type Document struct {
	Name string
	Path string
}

// ProcessedFile reports the outcome for one successfully processed document.
type ProcessedFile struct {
	Name        string `json:"filename"`
	RecordCount int    `json:"results_count"`
}

// FileError records an extraction failure for one document. Errors live in a
// side list, never mixed into the records.
type FileError struct {
	Name    string `json:"filename"`
	Message string `json:"error"`
}

// BatchResult is the outcome of one multi-document run. Summary is computed
// over the cumulative process-lifetime log, not only this batch.
type BatchResult struct {
	BatchID   string          `json:"batch_id"`
	Records   []Record        `json:"data"`
	Processed []ProcessedFile `json:"processed_files"`
	Errors    []FileError     `json:"errors"`
	Summary   Summary         `json:"summary"`
}
