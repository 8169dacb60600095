package processing

import (
	"context"
	"fmt"
	"time"
	"training-reels/internal/config"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"
)

type pollState int

const (
	statePolling pollState = iota
	stateTerminal
	stateTimedOut
)

// poller holds the loop state of one PollStatus call. Successful non terminal reads
// and transport errors consume the same attempt budget.
type poller struct {
	cfg         config.PollConfig
	maxAttempts int
	attempts    int
	delay       time.Duration
	state       pollState
	status      *domain.ProcessingStatus
	lastErr     error
}

func newPoller(cfg config.PollConfig, maxAttempts int) *poller {
	return &poller{cfg: cfg, maxAttempts: maxAttempts, delay: cfg.InitialDelay, state: statePolling}
}

func (p *poller) observe(status *domain.ProcessingStatus, err error) {
	p.attempts++
	p.lastErr = err
	if err == nil {
		p.status = status
		if status.Status.Terminal() {
			p.state = stateTerminal
			return
		}
	}
	if p.attempts >= p.maxAttempts {
		p.state = stateTimedOut
	}
}

// wait returns the pause before the next poll and grows the base delay
func (p *poller) wait(jitter time.Duration) time.Duration {
	d := p.delay + jitter
	p.delay = min(time.Duration(float64(p.delay)*p.cfg.Factor), p.cfg.MaxDelay)
	return d
}

// PollStatus polls jobID until it reaches a terminal status or maxAttempts polls were made.
// onStatus sees every successful read, the terminal one included. maxAttempts <= 0 uses the configured ceiling.
func (s *processingService) PollStatus(ctx context.Context, jobID string, onStatus port.StatusFunc, maxAttempts int) (*domain.ProcessingStatus, error) {
	if maxAttempts <= 0 {
		maxAttempts = s.cfg.MaxAttempts
	}

	p := newPoller(s.cfg, maxAttempts)
	for p.state == statePolling {
		status, err := s.api.GetProcessingStatus(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("processing status poll failed", "job", jobID, "attempt", p.attempts+1, "error", err)
		} else if onStatus != nil {
			onStatus(*status)
		}

		p.observe(status, err)
		if p.state != statePolling {
			break
		}

		if err := s.sleeper.Sleep(ctx, p.wait(s.jitter(s.cfg.MaxJitter))); err != nil {
			return nil, err
		}
	}

	if p.state == stateTerminal {
		s.logger.Info("processing reached terminal status", "job", jobID, "status", p.status.Status, "attempts", p.attempts)
		return p.status, nil
	}

	s.logger.Warn("processing status polling timed out", "job", jobID, "attempts", p.attempts)
	if p.lastErr != nil {
		return nil, fmt.Errorf("%w after %d attempts: %w", domain.ErrPollTimeout, p.attempts, p.lastErr)
	}
	return nil, fmt.Errorf("%w after %d attempts", domain.ErrPollTimeout, p.attempts)
}
