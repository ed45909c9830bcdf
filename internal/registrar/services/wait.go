package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nathanbeddoewebdev/njalla/internal/registrar/domain"
)

// PollInterval is the delay between successive check-task requests.
// It is a variable (not a constant) so tests can override it for speed.
var PollInterval = 5 * time.Second

// MaxPollAttempts caps how many times a task is polled before giving up.
// At 5 s intervals this gives ten minutes.
var MaxPollAttempts = 120

// MaxTransientErrors is the number of consecutive non-rate-limit errors
// tolerated before the poll loop gives up.
var MaxTransientErrors = 3

// PollFunc is notified after every poll, successful or not.
type PollFunc func(attempt int, task *domain.Task, err error)

// WaitForTask polls check-task until the task reaches a terminal status.
//
// A task that finishes as failed returns the final snapshot together with
// an error wrapping domain.ErrTaskFailed. Rate-limit errors stop polling
// immediately; other errors are retried until MaxTransientErrors occur in a
// row. onPoll may be nil.
func (s *Service) WaitForTask(ctx context.Context, id domain.TaskID, onPoll PollFunc) (*domain.Task, error) {
	var consecutiveErrors int

	for i := 1; i <= MaxPollAttempts; i++ {
		task, err := s.CheckTask(ctx, id)
		if onPoll != nil {
			onPoll(i, task, err)
		}

		if err != nil {
			if errors.Is(err, domain.ErrRateLimited) || errors.Is(err, domain.ErrInvalidInput) {
				return nil, fmt.Errorf("polling stopped: %w", err)
			}
			consecutiveErrors++
			if consecutiveErrors >= MaxTransientErrors {
				return nil, fmt.Errorf("error polling task (after %d consecutive failures): %w", consecutiveErrors, err)
			}
		} else {
			consecutiveErrors = 0
			if task.Status.IsTerminal() {
				if task.Status == domain.TaskStatusFailed {
					return task, fmt.Errorf("task %q: %w", id, domain.ErrTaskFailed)
				}
				return task, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(PollInterval):
		}
	}

	return nil, fmt.Errorf("timed out waiting for task %q (%d polls)", id, MaxPollAttempts)
}
