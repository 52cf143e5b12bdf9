// Package report renders the accumulated result log into downloadable
// artifacts. It is a read-only consumer of the result schema.
package report

import (
	"fmt"
	"time"

	"github.com/docsift/pii-extractor/internal/extract"
)

// Report bundles everything an exporter needs.
type Report struct {
	GeneratedAt time.Time
	Records     []extract.Record
	Summary     extract.Summary
}

// Exporter writes a report to a file in one specific format.
type Exporter interface {
	Export(report *Report, filename string) error
}

// New builds a report over the current contents of the store.
func New(store *extract.Store) *Report {
	return &Report{
		GeneratedAt: time.Now(),
		Records:     store.Records(),
		Summary:     store.Summary(),
	}
}

// ExporterFor returns the exporter for a format name.
func ExporterFor(format string) (Exporter, error) {
	switch format {
	case "csv":
		return &CSVExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}
