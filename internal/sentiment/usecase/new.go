package usecase

import (
	"time"

	"moodmeter-srv/internal/channel"
	"moodmeter-srv/internal/sentiment"
	"moodmeter-srv/internal/sentiment/repository"
	"moodmeter-srv/pkg/log"
)

type implUseCase struct {
	logger      log.Logger
	cfg         sentiment.Config
	series      repository.SeriesRepo
	samples     repository.SampleRepo
	calibration repository.CalibrationRepo
	config      repository.ConfigRepo
	aliases     *channel.AliasMap
	broadcaster sentiment.Broadcaster

	now func() time.Time
}

// Deps bundles the use case dependencies.
type Deps struct {
	Series      repository.SeriesRepo
	Samples     repository.SampleRepo
	Calibration repository.CalibrationRepo
	Config      repository.ConfigRepo
	Aliases     *channel.AliasMap
	Broadcaster sentiment.Broadcaster
}

func New(logger log.Logger, cfg sentiment.Config, deps Deps) sentiment.UseCase {
	return &implUseCase{
		logger:      logger,
		cfg:         cfg,
		series:      deps.Series,
		samples:     deps.Samples,
		calibration: deps.Calibration,
		config:      deps.Config,
		aliases:     deps.Aliases,
		broadcaster: deps.Broadcaster,
		now:         time.Now,
	}
}
