package extract

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/docsift/pii-extractor/internal/fields"
	"github.com/docsift/pii-extractor/internal/ner"
	"github.com/docsift/pii-extractor/internal/validate"
)

// PageSource produces the raw text of every page of a document, in order.
// Pages without a text layer come back as empty strings.
type PageSource interface {
	PageTexts(path string) ([]string, error)
}

// Extractor runs one field's detection strategy over every page of a
// document and validates the surviving candidates.
type Extractor struct {
	registry   *fields.Registry
	source     PageSource
	recognizer ner.Recognizer
	logger     *slog.Logger
}

// NewExtractor builds an extractor over the given collaborators.
func NewExtractor(registry *fields.Registry, source PageSource, recognizer ner.Recognizer, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		registry:   registry,
		source:     source,
		recognizer: recognizer,
		logger:     logger,
	}
}

// ExtractFile extracts candidates for one field from one document.
//
// Candidates are deduplicated by raw matched text across the whole document;
// the first occurrence wins and its page number is recorded. custom_search
// is exempt: it emits one record per occurrence per page. Both correct and
// incorrect records are returned; rejections are reported, not dropped.
//
// Unknown field identifiers are programmer errors and propagate. Anything
// that goes wrong while reading or scanning the document is returned as an
// error for the caller to collect; a panic inside a collaborator is
// recovered at this boundary.
func (e *Extractor) ExtractFile(path, fieldID, searchTerm string) (records []Record, err error) {
	def, err := e.registry.Lookup(fieldID)
	if err != nil {
		return nil, err
	}
	if def.Strategy == fields.StrategyFreeText && strings.TrimSpace(searchTerm) == "" {
		return nil, fmt.Errorf("field %q requires a search term", fieldID)
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("extraction panic recovered", "path", path, "field", fieldID, "panic", r)
			records = nil
			err = fmt.Errorf("extraction failed for %s: %v", path, r)
		}
	}()

	pages, err := e.source.PageTexts(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}

	seen := make(map[string]bool)
	for i, pageText := range pages {
		pageNum := i + 1
		if strings.TrimSpace(pageText) == "" {
			e.logger.Warn("no extractable text on page", "path", path, "page", pageNum)
			continue
		}

		switch def.Strategy {
		case fields.StrategyEntity:
			pageRecords, err := e.extractEntities(def, pageText, pageNum, seen)
			if err != nil {
				return nil, err
			}
			records = append(records, pageRecords...)
		case fields.StrategyFreeText:
			records = append(records, e.searchLiteral(def, pageText, pageNum, searchTerm)...)
		default:
			records = append(records, e.scanPattern(def, pageText, pageNum, seen)...)
		}
	}
	return records, nil
}

// extractEntities keeps recognized entities carrying the field's label.
func (e *Extractor) extractEntities(def *fields.Definition, pageText string, pageNum int, seen map[string]bool) ([]Record, error) {
	entities, err := e.recognizer.Entities(pageText)
	if err != nil {
		return nil, fmt.Errorf("entity recognition on page %d: %w", pageNum, err)
	}

	var records []Record
	for _, ent := range entities {
		if ent.Label != def.EntityLabel {
			continue
		}
		raw := strings.TrimSpace(ent.Text)
		if raw == "" || seen[raw] {
			continue
		}
		seen[raw] = true
		records = append(records, e.validated(def, raw, pageNum))
	}
	return records, nil
}

// scanPattern applies the field's regex to one page.
func (e *Extractor) scanPattern(def *fields.Definition, pageText string, pageNum int, seen map[string]bool) []Record {
	var records []Record
	for _, match := range def.Pattern.FindAllString(pageText, -1) {
		raw := strings.TrimSpace(match)
		if raw == "" || seen[raw] {
			continue
		}
		seen[raw] = true
		records = append(records, e.validated(def, raw, pageNum))
	}
	return records
}

// searchLiteral emits one record per occurrence of the user-supplied term,
// matched case-insensitively with metacharacters escaped. No dedup: the
// purpose is occurrence counting, not identity extraction.
func (e *Extractor) searchLiteral(def *fields.Definition, pageText string, pageNum int, term string) []Record {
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	var records []Record
	for _, match := range pattern.FindAllString(pageText, -1) {
		records = append(records, Record{
			Value:     match,
			Page:      pageNum,
			FieldType: def.ID,
			Status:    validate.Correct,
		})
	}
	return records
}

// validated runs the field's validator over a raw candidate and builds the
// record. Fields without a validator accept as-is. The displayed value is
// the normalized form when validation succeeds, the raw text otherwise.
func (e *Extractor) validated(def *fields.Definition, raw string, pageNum int) Record {
	rec := Record{
		Value:     raw,
		Page:      pageNum,
		FieldType: def.ID,
		Status:    validate.Correct,
	}
	if def.Validate == nil {
		return rec
	}

	normalized, message, verdict := def.Validate(raw)
	rec.Status = verdict
	if verdict == validate.Correct {
		rec.Value = normalized
	} else {
		rec.ValidationMessage = message
	}
	return rec
}
