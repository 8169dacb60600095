package processing

import (
	"log/slog"
	"math/rand/v2"
	"time"
	"training-reels/internal/config"
	"training-reels/internal/core/port"
)

const (
	defaultInitialDelay = time.Second
	defaultMaxDelay     = 10 * time.Second
	defaultMaxJitter    = time.Second
	defaultFactor       = 1.5
	defaultMaxAttempts  = 30
)

type processingService struct {
	api     port.ProcessingAPI
	cfg     config.PollConfig
	sleeper port.Sleeper
	jitter  func(max time.Duration) time.Duration
	logger  *slog.Logger
}

// Option customizes the processing service
type Option func(*processingService)

// WithSleeper replaces the timer based sleeper
func WithSleeper(sleeper port.Sleeper) Option {
	return func(s *processingService) { s.sleeper = sleeper }
}

// WithJitter replaces the uniform [0, max) jitter source
func WithJitter(jitter func(max time.Duration) time.Duration) Option {
	return func(s *processingService) { s.jitter = jitter }
}

// NewProcessingService creates a new processing service. Zero poll settings take the defaults:
// 1s initial delay, x1.5 growth capped at 10s, up to 1s jitter, 30 attempts.
func NewProcessingService(api port.ProcessingAPI, cfg config.PollConfig, logger *slog.Logger, opts ...Option) port.ProcessingService {
	if cfg == (config.PollConfig{}) {
		cfg.MaxJitter = defaultMaxJitter
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = defaultInitialDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = defaultMaxDelay
	}
	if cfg.MaxJitter < 0 {
		cfg.MaxJitter = 0
	}
	if cfg.Factor < 1 {
		cfg.Factor = defaultFactor
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}

	s := &processingService{
		api:     api,
		cfg:     cfg,
		sleeper: TimerSleeper{},
		jitter:  uniformJitter,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func uniformJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return rand.N(max)
}
