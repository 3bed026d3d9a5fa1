package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/faqbot/internal/domain/faq"
	"github.com/yanqian/faqbot/internal/infra/config"
	"github.com/yanqian/faqbot/internal/infra/faqsource"
	"github.com/yanqian/faqbot/internal/infra/faqstore"
	"github.com/yanqian/faqbot/pkg/metrics"
)

const loadTimeout = 10 * time.Second

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		NotFoundAnswer:     cfg.FAQ.Messages.NotFound,
		PartialSuffix:      cfg.FAQ.Messages.PartialSuffix,
		WeakSuffix:         cfg.FAQ.Messages.WeakSuffix,
		CategoriesHeader:   cfg.FAQ.Messages.CategoriesHeader,
		CategoryNames:      cfg.FAQ.CategoryNames,
		TopRecommendations: cfg.FAQ.TopRecommendations,
		MaxQueryLength:     cfg.FAQ.MaxQueryLength,
	}
}

func provideFAQSource(cfg *config.Config, logger *slog.Logger) (faq.Source, func(), error) {
	if cfg.FAQ.Source != config.SourcePostgres {
		logger.Info("faq file source selected", "path", cfg.FAQ.DataPath)
		return faqsource.NewFileSource(cfg.FAQ.DataPath), func() {}, nil
	}
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(cfg.FAQ.Postgres.DSN))
	if err != nil {
		return nil, nil, err
	}
	if cfg.FAQ.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.FAQ.Postgres.MaxConns
	}
	if cfg.FAQ.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.FAQ.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("faq postgres source selected", "table", cfg.FAQ.Postgres.Table)
	return faqsource.NewPostgresSource(pool, cfg.FAQ.Postgres.Table), pool.Close, nil
}

// provideFAQSet loads the knowledge base once. A failed load is logged and
// leaves the assistant running with no answers.
func provideFAQSet(ctx context.Context, src faq.Source, logger *slog.Logger) *faq.Set {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	set, err := faq.Load(ctx, src)
	if err != nil {
		logger.Error("faq data unavailable, continuing with no answers", "source", src.Name(), "error", err)
		return set
	}
	logger.Info("faq data loaded", "source", src.Name(), "records", set.Len(), "categories", len(set.Categories()))
	return set
}

func provideFAQStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (faq.Store, func()) {
	noop := func() {}
	if !cfg.FAQ.Redis.Enabled {
		return faqstore.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return faqstore.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return faqstore.NewMemoryStore(), noop
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return faqstore.NewMemoryStore(), noop
	}
	logger.Info("faq valkey store enabled", "addr", cfg.FAQ.Redis.Addr)
	return faqstore.NewValkeyStore(client, cfg.FAQ.Redis.Prefix), client.Close
}

// buildValkeyOptions accepts a host:port or a redis:// URL. Client side
// caching is off; the store only writes counters and reads short lists.
func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.FAQ.Redis.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.FAQ.Redis.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.FAQ.Redis.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	opt.DisableCache = true
	return opt, nil
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideReplyMetrics(reg *prometheus.Registry) (*metrics.Replies, error) {
	return metrics.NewReplies(reg)
}

func provideHTTPMetrics(reg *prometheus.Registry) (*metrics.HTTP, error) {
	return metrics.NewHTTP(reg)
}

// assistant bundles what the terminal commands need.
type assistant struct {
	cfg    *config.Config
	set    *faq.Set
	svc    faq.Service
	logger *slog.Logger
}

func newAssistant(cfg *config.Config, set *faq.Set, svc faq.Service, logger *slog.Logger) *assistant {
	return &assistant{cfg: cfg, set: set, svc: svc, logger: logger}
}
