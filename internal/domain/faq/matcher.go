package faq

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	keywordWeight   = 2.0
	keywordFloor    = 0.3
	partialScore    = 0.5
	confidentScore  = 0.8
	exactMatchScore = 1.0
)

// Matcher answers free-text queries from an immutable Set. It keeps no state
// between calls, so one Matcher can serve any number of goroutines.
type Matcher struct {
	set *Set
	cfg Config
}

// NewMatcher builds a matcher over set. A nil set behaves like an empty one.
func NewMatcher(set *Set, cfg Config) *Matcher {
	if set == nil {
		set = NewSet(nil)
	}
	return &Matcher{set: set, cfg: cfg.withDefaults()}
}

// ExactMatch returns the first record whose normalized question equals the
// normalized query.
func (m *Matcher) ExactMatch(query string) (Record, bool) {
	normalized := Normalize(query)
	for i, e := range m.set.entries {
		if e.question == normalized {
			return m.set.records[i], true
		}
	}
	return Record{}, false
}

// KeywordScore scores every record as 2*keyword overlap + question similarity
// and returns those above 0.3, best first. Equal scores keep load order.
func (m *Matcher) KeywordScore(query string) []ScoredRecord {
	normalized := Normalize(query)
	queryWords := make(map[string]struct{})
	for _, w := range words(normalized) {
		queryWords[w] = struct{}{}
	}

	var results []ScoredRecord
	for i, e := range m.set.entries {
		overlap := 0
		for w := range queryWords {
			if _, ok := e.keywords[w]; ok {
				overlap++
			}
		}
		score := float64(overlap)*keywordWeight + Similarity(normalized, e.question)
		if score > keywordFloor {
			results = append(results, ScoredRecord{Record: m.set.records[i], Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// FindAnswer returns the exact match, else the best keyword match, else the
// not-found answer with a zero score.
func (m *Matcher) FindAnswer(query string) Match {
	if rec, ok := m.ExactMatch(query); ok {
		return Match{Answer: rec.Answer, Score: exactMatchScore, Category: rec.Category}
	}
	if scored := m.KeywordScore(query); len(scored) > 0 {
		best := scored[0]
		return Match{Answer: best.Record.Answer, Score: best.Score, Category: best.Record.Category}
	}
	return Match{Answer: m.cfg.NotFoundAnswer, Score: 0, Category: NotFoundCategory}
}

// FormatReply is the text a host shows for query.
func (m *Matcher) FormatReply(query string) string {
	reply, _, _ := m.reply(query)
	return reply
}

func (m *Matcher) reply(query string) (string, Match, Outcome) {
	if IsHelpCommand(query) {
		return m.CategoryListing(), Match{}, OutcomeCategories
	}
	match := m.FindAnswer(query)
	outcome := classify(match.Score)
	switch outcome {
	case OutcomePartial:
		return match.Answer + m.cfg.PartialSuffix, match, outcome
	case OutcomeWeak:
		return match.Answer + m.cfg.WeakSuffix, match, outcome
	default:
		return match.Answer, match, outcome
	}
}

// IsHelpCommand reports whether query asks for the category listing.
func IsHelpCommand(query string) bool {
	_, ok := helpCommands[Normalize(query)]
	return ok
}

func classify(score float64) Outcome {
	switch {
	case score == exactMatchScore:
		return OutcomeExact
	case score >= confidentScore:
		return OutcomeConfident
	case score >= partialScore:
		return OutcomePartial
	case score > 0:
		return OutcomeWeak
	default:
		return OutcomeNotFound
	}
}

// Categories returns every category with its display name.
func (m *Matcher) Categories() []Category {
	keys := m.set.Categories()
	out := make([]Category, 0, len(keys))
	for _, key := range keys {
		out = append(out, Category{Key: key, DisplayName: m.DisplayName(key)})
	}
	return out
}

// DisplayName maps a category key to its human readable name. Unknown keys
// are title cased with underscores turned into spaces.
func (m *Matcher) DisplayName(key string) string {
	if name, ok := m.cfg.CategoryNames[key]; ok {
		return name
	}
	return cases.Title(language.Und).String(strings.ReplaceAll(key, "_", " "))
}

// CategoryListing renders the numbered category list shown for help requests.
func (m *Matcher) CategoryListing() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.cfg.CategoriesHeader)
	b.WriteString("\n")
	for i, c := range m.Categories() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.DisplayName)
	}
	b.WriteString("\n")
	return b.String()
}
