package faq

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	apperrors "github.com/yanqian/faqbot/pkg/errors"
)

// Service exposes the FAQ assistant to hosts.
type Service interface {
	Reply(ctx context.Context, req Request) (Response, error)
	Categories(ctx context.Context) ([]Category, error)
	Trending(ctx context.Context) (Trending, error)
}

// Trending groups the most common answered and unanswered queries.
type Trending struct {
	Popular    []TrendingQuery `json:"popular"`
	Unanswered []TrendingQuery `json:"unanswered"`
}

type service struct {
	cfg      Config
	matcher  *Matcher
	store    Store
	observer Observer
	logger   *slog.Logger
}

// NewService wires up the FAQ domain.
func NewService(cfg Config, set *Set, store Store, observer Observer, logger *slog.Logger) Service {
	cfg = cfg.withDefaults()
	return &service{
		cfg:      cfg,
		matcher:  NewMatcher(set, cfg),
		store:    store,
		observer: observer,
		logger:   logger.With("component", "faq.service"),
	}
}

func (s *service) Reply(ctx context.Context, req Request) (Response, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "query cannot be empty", nil)
	}
	if utf8.RuneCountInString(query) > s.cfg.MaxQueryLength {
		msg := fmt.Sprintf("query exceeds %d characters", s.cfg.MaxQueryLength)
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, msg, nil)
	}

	reply, match, outcome := s.matcher.reply(query)
	s.logger.Debug("faq reply", "outcome", outcome, "score", match.Score, "category", match.Category)

	if s.observer != nil {
		s.observer.ObserveReply(string(outcome), match.Score)
	}
	if outcome != OutcomeCategories && s.store != nil {
		if err := s.store.IncrementQuery(ctx, Normalize(query), query, outcome.Answered()); err != nil {
			s.logger.Warn("faq trending increment failed", "error", err)
		}
	}

	return Response{
		Query:    query,
		Reply:    reply,
		Answer:   match.Answer,
		Score:    match.Score,
		Category: match.Category,
		Outcome:  outcome,
	}, nil
}

func (s *service) Categories(_ context.Context) ([]Category, error) {
	return s.matcher.Categories(), nil
}

func (s *service) Trending(ctx context.Context) (Trending, error) {
	if s.store == nil {
		return Trending{}, nil
	}
	popular, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		return Trending{}, apperrors.Wrap(apperrors.CodeFAQ, "failed to load trending queries", err)
	}
	unanswered, err := s.store.TopUnanswered(ctx, s.cfg.TopRecommendations)
	if err != nil {
		return Trending{}, apperrors.Wrap(apperrors.CodeFAQ, "failed to load unanswered queries", err)
	}
	return Trending{Popular: popular, Unanswered: unanswered}, nil
}
