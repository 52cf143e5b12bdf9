package extract

import (
	"math"
	"sync"

	"github.com/docsift/pii-extractor/internal/validate"
)

// Store is the process-lifetime result log. Appends and reads are serialized
// by one mutex so concurrent tool calls cannot interleave. Records are never
// mutated or individually removed; Clear drops the whole log.
type Store struct {
	mu      sync.Mutex
	records []Record
}

// NewStore returns an empty result log.
func NewStore() *Store {
	return &Store{}
}

// Append adds records to the log.
func (s *Store) Append(records []Record) {
	if len(records) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
}

// Records returns a copy of the accumulated log in append order.
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of accumulated records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear drops every record. Intended for tests and process resets.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// Summary computes aggregate statistics over the full accumulated log.
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.records)
}

// Summarize computes a Summary over an arbitrary record list.
func Summarize(records []Record) Summary {
	sum := Summary{Files: make(map[string]FileCounts)}
	for _, rec := range records {
		sum.Total++
		fc := sum.Files[rec.SourceFile]
		fc.Total++
		if rec.Status == validate.Correct {
			sum.Valid++
			fc.Valid++
		} else {
			sum.Invalid++
			fc.Invalid++
		}
		sum.Files[rec.SourceFile] = fc
	}
	if sum.Total > 0 {
		rate := float64(sum.Valid) / float64(sum.Total) * 100
		sum.SuccessRate = math.Round(rate*100) / 100
	}
	return sum
}
