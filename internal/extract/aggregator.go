package extract

import (
	"log/slog"

	"github.com/google/uuid"
)

// Aggregator runs the extractor over many documents, collects per-file
// errors in a side list, tags records with their source file and appends
// everything to the shared result log.
type Aggregator struct {
	extractor *Extractor
	store     *Store
	logger    *slog.Logger
}

// NewAggregator builds an aggregator writing into store.
func NewAggregator(extractor *Extractor, store *Store, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{extractor: extractor, store: store, logger: logger}
}

// ProcessBatch extracts one field from every document, sequentially and in
// input order. A failure in one document never blocks the others: it lands
// in the error list keyed by filename and the document contributes zero
// records. The returned summary covers the cumulative process-lifetime log,
// not only this batch. An unknown field identifier fails the whole request.
func (a *Aggregator) ProcessBatch(docs []Document, fieldID, searchTerm string) (*BatchResult, error) {
	// Fail fast on programmer errors before touching any document.
	if _, err := a.extractor.registry.Lookup(fieldID); err != nil {
		return nil, err
	}

	result := &BatchResult{
		BatchID:   uuid.NewString(),
		Records:   []Record{},
		Processed: []ProcessedFile{},
		Errors:    []FileError{},
	}

	for _, doc := range docs {
		records, err := a.extractor.ExtractFile(doc.Path, fieldID, searchTerm)
		if err != nil {
			a.logger.Error("document extraction failed", "file", doc.Name, "error", err)
			result.Errors = append(result.Errors, FileError{Name: doc.Name, Message: err.Error()})
			continue
		}

		for i := range records {
			records[i].SourceFile = doc.Name
		}
		result.Records = append(result.Records, records...)
		result.Processed = append(result.Processed, ProcessedFile{Name: doc.Name, RecordCount: len(records)})
	}

	a.store.Append(result.Records)
	result.Summary = a.store.Summary()

	a.logger.Info("batch processed",
		"batch_id", result.BatchID,
		"field", fieldID,
		"documents", len(docs),
		"records", len(result.Records),
		"failures", len(result.Errors))
	return result, nil
}

// Store exposes the shared result log for read-only consumers.
func (a *Aggregator) Store() *Store {
	return a.store
}
