package faq

import "context"

// Source yields the FAQ records of the knowledge base.
type Source interface {
	// Name identifies the source in logs and load errors.
	Name() string
	Load(ctx context.Context) ([]Record, error)
}
