package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/gridrival/sweepstakes/go/internal/api"
	"github.com/gridrival/sweepstakes/go/internal/draft"
	"github.com/gridrival/sweepstakes/go/internal/draft/repository"
	"github.com/gridrival/sweepstakes/go/internal/gateway"
	"github.com/gridrival/sweepstakes/go/internal/notify"
)

type Services struct {
	Draft     *draft.App
	API       *api.Handler
	Gateway   *gateway.Service
	publisher *notify.JetStreamPublisher
}

func setupServices(config *Config, pool *pgxpool.Pool) (*Services, error) {
	// Wire up dependency injection chain
	// Database pool -> Repository -> App -> HTTP handler

	repo := repository.NewRepository(pool)

	publisherCfg := notify.DefaultJetStreamConfig()
	publisherCfg.URL = config.NATS.URL
	publisherCfg.StreamName = config.NATS.Stream
	publisherCfg.SubjectPrefix = config.NATS.SubjectPrefix
	publisher, err := notify.NewJetStreamPublisher(publisherCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create event publisher: %w", err)
	}

	notifier := notify.NewLogNotifier(log.Logger)

	draftApp := draft.NewApp(repo, notifier, publisher, clockwork.NewRealClock())

	gatewayCfg := gateway.DefaultConfig()
	gatewayCfg.JetStreamConfig.URL = config.NATS.URL
	gatewayCfg.JetStreamConfig.StreamName = config.NATS.Stream
	gatewayCfg.JetStreamConfig.SubjectFilter = config.NATS.SubjectPrefix + ".>"
	draftGateway, err := gateway.NewService(gatewayCfg)
	if err != nil {
		publisher.Close()
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	return &Services{
		Draft:     draftApp,
		API:       api.NewHandler(draftApp),
		Gateway:   draftGateway,
		publisher: publisher,
	}, nil
}

func (s *Services) Close() {
	if s.publisher != nil {
		s.publisher.Close()
	}
}
