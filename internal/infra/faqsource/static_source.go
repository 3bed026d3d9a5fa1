package faqsource

import (
	"context"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// StaticSource serves a fixed slice of records. Used for tests and dev.
type StaticSource struct {
	name    string
	records []faq.Record
}

// NewStaticSource constructs a source returning a copy of records.
func NewStaticSource(name string, records []faq.Record) *StaticSource {
	if name == "" {
		name = "static"
	}
	return &StaticSource{name: name, records: append([]faq.Record(nil), records...)}
}

// Name implements faq.Source.
func (s *StaticSource) Name() string {
	return s.name
}

// Load implements faq.Source.
func (s *StaticSource) Load(_ context.Context) ([]faq.Record, error) {
	return append([]faq.Record(nil), s.records...), nil
}

var _ faq.Source = (*StaticSource)(nil)
