package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/tool-replenish/internal/domain/hero"
	apperr "github.com/KirkDiggler/tool-replenish/internal/errors"
	"github.com/KirkDiggler/tool-replenish/internal/services/replenish"
)

// Mode selects when the scheduler triggers attempts
type Mode string

const (
	// ModeIdle refills everything once the hero has idled for IdleTime
	ModeIdle Mode = "idle"

	// ModeGradual refills a share of each tool every Interval of idling
	ModeGradual Mode = "gradual"
)

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m == ModeIdle || m == ModeGradual
}

// Frame is what the host hands over once per frame
type Frame struct {
	Delta time.Duration
	Hero  *hero.State
}

// Config holds configuration for the scheduler
type Config struct {
	Service   replenish.Service
	ProfileID string
	Mode      Mode
	Method    replenish.Method

	// IdleTime is the idle threshold in ModeIdle
	IdleTime time.Duration

	// Interval and Percentage drive ModeGradual
	Interval   time.Duration
	Percentage float64
}

// Scheduler turns frame updates into replenish attempts. It is driven from
// a single frame loop and is not safe for concurrent use.
type Scheduler struct {
	service   replenish.Service
	profileID string
	mode      Mode
	method    replenish.Method
	threshold time.Duration
	gradual   *replenish.GradualPolicy

	timer time.Duration
}

// New creates a scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil || cfg.Service == nil {
		panic("replenish service is required")
	}
	if !cfg.Mode.Valid() {
		return nil, apperr.InvalidArgumentf("unknown replenish mode %q", cfg.Mode)
	}

	s := &Scheduler{
		service:   cfg.Service,
		profileID: cfg.ProfileID,
		mode:      cfg.Mode,
		method:    cfg.Method,
	}
	if s.method == "" {
		s.method = replenish.MethodBench
	}

	switch cfg.Mode {
	case ModeIdle:
		if cfg.IdleTime <= 0 {
			return nil, apperr.InvalidArgument("idle time must be positive")
		}
		s.threshold = cfg.IdleTime
	case ModeGradual:
		if cfg.Interval <= 0 {
			return nil, apperr.InvalidArgument("interval must be positive")
		}
		s.threshold = cfg.Interval
		s.gradual = &replenish.GradualPolicy{Percentage: cfg.Percentage}
	}

	return s, nil
}

// Update advances the idle timer by one frame. It returns the attempt result
// when the frame triggered a committed attempt, nil otherwise.
func (s *Scheduler) Update(ctx context.Context, frame Frame) (*replenish.AttemptResult, error) {
	if !frame.Hero.IsIdle() {
		s.timer = 0
		return nil, nil
	}

	s.timer += frame.Delta
	if s.timer < s.threshold {
		return nil, nil
	}
	s.timer = 0

	needs, err := s.service.NeedsReplenish(ctx, s.profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to check tools: %w", err)
	}
	if !needs {
		return nil, nil
	}

	result, err := s.service.Attempt(ctx, &replenish.AttemptInput{
		ProfileID: s.profileID,
		Commit:    true,
		Method:    s.method,
		Gradual:   s.gradual,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replenish: %w", err)
	}

	if result.Replenished {
		log.Printf("Scheduler: %s attempt %s refilled %v", s.mode, result.ID, result.Units)
	}
	return result, nil
}

// Idle returns how long the hero has been idle toward the next trigger
func (s *Scheduler) Idle() time.Duration {
	return s.timer
}
