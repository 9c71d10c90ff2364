package recovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

// Recoverer executes operations under the strategy table
type Recoverer struct {
	strategies []Strategy
	notifier   Notifier
	logger     logger.Logger
	now        func() time.Time
	wait       func(ctx context.Context, d time.Duration) error
}

// NewRecoverer creates a Recoverer. A nil notifier disables notifications.
func NewRecoverer(strategies []Strategy, notifier Notifier, logger logger.Logger) *Recoverer {
	return &Recoverer{
		strategies: strategies,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
		wait:       sleepContext,
	}
}

// Execute runs fn and retries it while its error matches the first matching
// strategy and retries remain. Errors no strategy matches are returned as is.
// A retry failing with an error its strategy does not match ends recovery:
// that error is returned unchanged and no notification is raised. Only an
// exhausted strategy notifies.
func (r *Recoverer) Execute(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}

	strategy, ok := r.match(err)
	if !ok {
		return err
	}

	for attempt := 1; attempt <= strategy.MaxRetries; attempt++ {
		r.logger.Warn(fmt.Sprintf("%s failed (%v), retry %d/%d with strategy %s", op, err, attempt, strategy.MaxRetries, strategy.Name))

		if waitErr := r.wait(ctx, strategy.Delay*time.Duration(attempt)); waitErr != nil {
			return fmt.Errorf("%s: %w", op, errors.Join(waitErr, err))
		}

		err = fn(ctx)
		if err == nil {
			r.logger.Info(fmt.Sprintf("%s recovered after %d retries", op, attempt))
			return nil
		}
		if !strategy.Matches(err) {
			return err
		}
	}

	r.logger.Error(fmt.Sprintf("%s: giving up after %d retries: %v", op, strategy.MaxRetries, err))
	r.notify(op, err)

	return &ExhaustedError{
		Op:       op,
		Strategy: strategy.Name,
		Attempts: strategy.MaxRetries + 1,
		Err:      err,
	}
}

func (r *Recoverer) match(err error) (Strategy, bool) {
	for _, s := range r.strategies {
		if s.Matches(err) {
			return s, true
		}
	}
	return Strategy{}, false
}

func (r *Recoverer) notify(op string, err error) {
	if r.notifier == nil {
		return
	}
	r.notifier.Notify(Notification{
		ID:      uuid.NewString(),
		Level:   LevelError,
		Op:      op,
		Code:    CodeOf(err),
		Message: GenericFailureMessage,
		Time:    r.now(),
	})
}

// Do is Execute for operations returning a value
func Do[T any](ctx context.Context, r *Recoverer, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := r.Execute(ctx, op, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
