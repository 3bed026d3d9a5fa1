package faq

// Record is one question/answer entry of the knowledge base.
type Record struct {
	Question string   `json:"question" yaml:"question" validate:"required"`
	Answer   string   `json:"answer" yaml:"answer" validate:"required"`
	Category string   `json:"category" yaml:"category" validate:"required"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Match is the best answer found for a query.
type Match struct {
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
	Category string  `json:"category"`
}

// ScoredRecord pairs a record with its keyword score.
type ScoredRecord struct {
	Record Record
	Score  float64
}

// Outcome classifies how a query was answered.
type Outcome string

const (
	// OutcomeCategories is returned for help requests.
	OutcomeCategories Outcome = "categories"
	// OutcomeExact means the normalized question matched verbatim.
	OutcomeExact Outcome = "exact"
	// OutcomeConfident covers keyword scores of at least 0.8.
	OutcomeConfident Outcome = "confident"
	// OutcomePartial covers scores in [0.5, 0.8).
	OutcomePartial Outcome = "partial"
	// OutcomeWeak covers positive scores below 0.5.
	OutcomeWeak Outcome = "weak"
	// OutcomeNotFound means nothing scored above the keyword floor.
	OutcomeNotFound Outcome = "not_found"
)

// Answered reports whether the outcome carried an FAQ answer.
func (o Outcome) Answered() bool {
	switch o {
	case OutcomeExact, OutcomeConfident, OutcomePartial, OutcomeWeak:
		return true
	default:
		return false
	}
}

// Request encapsulates a user query.
type Request struct {
	Query string `json:"query"`
}

// Response is returned to hosts.
type Response struct {
	Query    string  `json:"query"`
	Reply    string  `json:"reply"`
	Answer   string  `json:"answer,omitempty"`
	Score    float64 `json:"score"`
	Category string  `json:"category,omitempty"`
	Outcome  Outcome `json:"outcome"`
}

// Category is a knowledge base category with its display name.
type Category struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
}

// TrendingQuery represents a frequently asked question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
