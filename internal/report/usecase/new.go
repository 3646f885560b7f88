package usecase

import (
	"fluency-srv/internal/report"
	"fluency-srv/internal/report/repository"
	"fluency-srv/pkg/log"
	"fluency-srv/pkg/s3relay"
	"fluency-srv/pkg/sas"
)

// Config holds configuration for the report lifecycle.
type Config struct {
	// ScoringAPIKey authenticates against the speech-analysis service.
	// Its absence is a per-request client error, not a startup failure.
	ScoringAPIKey string
}

type implUseCase struct {
	repo   repository.MongoRepository
	relay  s3relay.IS3Relay
	sas    sas.ISAS
	l      log.Logger
	config Config
}

// New creates a new report UseCase implementation.
func New(
	repo repository.MongoRepository,
	relay s3relay.IS3Relay,
	sasClient sas.ISAS,
	l log.Logger,
	cfg Config,
) report.UseCase {
	return &implUseCase{
		repo:   repo,
		relay:  relay,
		sas:    sasClient,
		l:      l,
		config: cfg,
	}
}
