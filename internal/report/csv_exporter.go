package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// CSVExporter exports the result log in CSV format for spreadsheet tools.
type CSVExporter struct{}

// Export writes a summary section followed by one row per record.
func (e *CSVExporter) Export(report *Report, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"SUMMARY"})
	writer.Write([]string{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05")})
	writer.Write([]string{"Total", strconv.Itoa(report.Summary.Total)})
	writer.Write([]string{"Valid", strconv.Itoa(report.Summary.Valid)})
	writer.Write([]string{"Invalid", strconv.Itoa(report.Summary.Invalid)})
	writer.Write([]string{"Success Rate", fmt.Sprintf("%.2f%%", report.Summary.SuccessRate)})
	writer.Write([]string{""})

	writer.Write([]string{"source_file", "field_type", "value", "page", "status", "validation_message"})
	for _, rec := range report.Records {
		writer.Write([]string{
			rec.SourceFile,
			rec.FieldType,
			rec.Value,
			strconv.Itoa(rec.Page),
			string(rec.Status),
			rec.ValidationMessage,
		})
	}

	return writer.Error()
}
