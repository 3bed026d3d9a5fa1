package faq

import "context"

// Store keeps aggregate query statistics. It never stores replies or
// per-session history.
type Store interface {
	IncrementQuery(ctx context.Context, canonical, display string, answered bool) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
	TopUnanswered(ctx context.Context, limit int) ([]TrendingQuery, error)
}

// Observer receives one notification per reply, typically a metrics sink.
type Observer interface {
	ObserveReply(outcome string, score float64)
}
