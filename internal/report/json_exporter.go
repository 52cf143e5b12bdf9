package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/docsift/pii-extractor/internal/extract"
)

// JSONExporter exports the result log as a single JSON document.
type JSONExporter struct{}

type jsonReport struct {
	GeneratedAt string           `json:"generated_at"`
	Summary     extract.Summary  `json:"summary"`
	Records     []extract.Record `json:"records"`
}

// Export writes the report as indented JSON.
func (e *JSONExporter) Export(report *Report, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport{
		GeneratedAt: report.GeneratedAt.Format("2006-01-02 15:04:05"),
		Summary:     report.Summary,
		Records:     report.Records,
	}); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
