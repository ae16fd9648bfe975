// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/internal/app"
	"github.com/sublime-security/sublime-cli/internal/logger"
	"github.com/sublime-security/sublime-cli/models"
)

// DefaultPollInterval is the delay between two job status requests.
const DefaultPollInterval = 5 * time.Second

// Job states reported by jobs/{id}/status.
const (
	JobPending   = "pending"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

type backtestService struct {
	adapter  adapter.ServerAdapter
	interval time.Duration
}

// NewBacktestService returns a BacktestService that polls job status every
// interval. If interval is zero or negative it defaults to
// DefaultPollInterval.
func NewBacktestService(serverAdapter adapter.ServerAdapter, interval time.Duration) BacktestService {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &backtestService{adapter: serverAdapter, interval: interval}
}

func (s *backtestService) Run(ctx context.Context, params BacktestParams) (models.Document, error) {
	detections, err := loadDetections(ctx, params.DetectionsPath, params.RawDetection, params.Name)
	if err != nil {
		return nil, err
	}

	job, err := s.adapter.BacktestDetections(ctx, models.BacktestRequest{
		After:      params.After,
		Before:     params.Before,
		Detections: detections,
	})
	if err != nil {
		return nil, err
	}

	jobID := job.String("job_id")
	if jobID == "" {
		return nil, fmt.Errorf("%w: no job id in response", ErrJobFailed)
	}

	report := params.Progress
	if report == nil {
		report = func(string) {}
	}
	report(fmt.Sprintf(app.MsgJobSubmitted, jobID))

	return s.wait(ctx, jobID, report)
}

// wait polls the job immediately and then on every tick until it reaches a
// final state or ctx is cancelled.
func (s *backtestService) wait(ctx context.Context, jobID string, report func(string)) (models.Document, error) {
	log := logger.FromContext(ctx).With().Str("job_id", jobID).Logger()

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		status, err := s.adapter.GetJobStatus(ctx, jobID)
		if err != nil {
			return nil, err
		}

		state := status.String("status")
		log.Debug().Str("status", state).Msg("backtest job polled")

		switch state {
		case JobRunning:
			report(fmt.Sprintf(app.MsgJobTasksRemaining, status.Int("tasks_remaining")))
		case JobPending:
			report(app.MsgJobPending)
		case JobCompleted:
			output, err := s.adapter.GetJobOutput(ctx, jobID)
			if err != nil {
				return nil, err
			}
			results, ok := output[models.FieldResults]
			if !ok || results == nil {
				results = []any{}
			}
			return models.Document{models.FieldResults: results}, nil
		case JobFailed:
			output, err := s.adapter.GetJobOutput(ctx, jobID)
			if err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %s", ErrJobFailed, output.String("message"))
		default:
			return nil, fmt.Errorf("%w: %s", ErrJobFailed, app.MsgUnrecognizedJobStatus)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}
