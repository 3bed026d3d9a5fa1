//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yanqian/faqbot/internal/bootstrap"
	"github.com/yanqian/faqbot/internal/domain/faq"
	"github.com/yanqian/faqbot/internal/infra/config"
	httpiface "github.com/yanqian/faqbot/internal/interface/http"
	"github.com/yanqian/faqbot/pkg/logger"
	"github.com/yanqian/faqbot/pkg/metrics"
)

var faqProviders = wire.NewSet(
	config.Load,
	logger.New,
	provideFAQConfig,
	provideFAQSource,
	provideFAQSet,
	provideFAQStore,
	provideRegistry,
	provideReplyMetrics,
	wire.Bind(new(faq.Observer), new(*metrics.Replies)),
	faq.NewService,
)

func initializeServer(ctx context.Context) (*bootstrap.App, func(), error) {
	wire.Build(
		faqProviders,
		provideHTTPMetrics,
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}

func initializeAssistant(ctx context.Context) (*assistant, func(), error) {
	wire.Build(
		faqProviders,
		newAssistant,
	)
	return nil, nil, nil
}
