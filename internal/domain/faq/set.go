package faq

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var recordValidate = validator.New()

// Set is the immutable, load-ordered collection of FAQ records together with
// the normalized forms used for matching. It is safe for concurrent reads.
type Set struct {
	records    []Record
	entries    []entry
	categories []string
}

type entry struct {
	question string
	keywords map[string]struct{}
}

// NewSet indexes records. The slice is copied so later changes by the caller
// do not leak into the set.
func NewSet(records []Record) *Set {
	s := &Set{
		records: make([]Record, len(records)),
		entries: make([]entry, len(records)),
	}
	seen := make(map[string]struct{})
	for i, rec := range records {
		rec.Keywords = append([]string(nil), rec.Keywords...)
		s.records[i] = rec

		keywords := make(map[string]struct{})
		for _, kw := range rec.Keywords {
			for _, w := range words(Normalize(kw)) {
				keywords[w] = struct{}{}
			}
		}
		s.entries[i] = entry{question: Normalize(rec.Question), keywords: keywords}

		if _, ok := seen[rec.Category]; !ok {
			seen[rec.Category] = struct{}{}
			s.categories = append(s.categories, rec.Category)
		}
	}
	return s
}

// Len returns the number of records.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Empty reports whether no answers are available.
func (s *Set) Empty() bool {
	return s.Len() == 0
}

// Records returns a copy of the records in load order.
func (s *Set) Records() []Record {
	if s == nil {
		return nil
	}
	out := make([]Record, len(s.records))
	for i, rec := range s.records {
		rec.Keywords = append([]string(nil), rec.Keywords...)
		out[i] = rec
	}
	return out
}

// Categories returns the distinct categories in order of first appearance.
func (s *Set) Categories() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.categories...)
}

// Load reads and validates every record from src. On any failure it returns
// an empty set alongside a *DataLoadError so callers can keep running with
// no answers available.
func Load(ctx context.Context, src Source) (*Set, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return NewSet(nil), &DataLoadError{Source: src.Name(), Err: err}
	}
	for i := range records {
		if err := recordValidate.Struct(&records[i]); err != nil {
			return NewSet(nil), &DataLoadError{Source: src.Name(), Err: fmt.Errorf("record %d: %w", i, err)}
		}
	}
	return NewSet(records), nil
}
