package faqstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

const defaultTopLimit = 10

// ValkeyStore keeps query statistics in sorted sets of a Valkey-compatible
// database so several bot instances share one view.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "faq"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// IncrementQuery implements faq.Store.
func (s *ValkeyStore) IncrementQuery(ctx context.Context, canonical, display string, answered bool) error {
	if canonical == "" {
		return nil
	}
	key := s.trendingKey()
	if !answered {
		key = s.unansweredKey()
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(key).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return err
	}
	if display != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build()).Error()
	}
	return nil
}

// TopQueries implements faq.Store.
func (s *ValkeyStore) TopQueries(ctx context.Context, limit int) ([]faq.TrendingQuery, error) {
	return s.top(ctx, s.trendingKey(), limit)
}

// TopUnanswered implements faq.Store.
func (s *ValkeyStore) TopUnanswered(ctx context.Context, limit int) ([]faq.TrendingQuery, error) {
	return s.top(ctx, s.unansweredKey(), limit)
}

func (s *ValkeyStore) top(ctx context.Context, key string, limit int) ([]faq.TrendingQuery, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(key).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]faq.TrendingQuery, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, faq.TrendingQuery{Query: s.fetchDisplay(ctx, member), Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) fetchDisplay(ctx context.Context, canonical string) string {
	display, err := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(canonical)).Build()).ToString()
	if err != nil || display == "" {
		return canonical
	}
	return display
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending", s.prefix)
}

func (s *ValkeyStore) unansweredKey() string {
	return fmt.Sprintf("%s:unanswered", s.prefix)
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return fmt.Sprintf("%s:display:%s", s.prefix, canonical)
}

var _ faq.Store = (*ValkeyStore)(nil)
