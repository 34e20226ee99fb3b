package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/housewright/internal/domain"
)

// Outcome classifies how a use case ended.
type Outcome string

const (
	OutcomeOK Outcome = "ok"
	// OutcomeRejected means the request itself was unusable: bad input or
	// rooms that cannot fit the plot.
	OutcomeRejected Outcome = "rejected"
	OutcomeFailed   Outcome = "failed"
)

// OutcomeOf maps a use-case error to its Outcome.
func OutcomeOf(err error) Outcome {
	var invalid *domain.InvalidInputError
	var infeasible *domain.LayoutInfeasibleError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &invalid), errors.As(err, &infeasible):
		return OutcomeRejected
	default:
		return OutcomeFailed
	}
}

// UseCaseEvent is one finished service call.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Outcome   Outcome
	Err       error
	Fields    map[string]any
}

type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs each event as one slog text line on w.
// Rejected requests log at WARN, failures at ERROR.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, e UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("op", e.Name),
		slog.String("outcome", string(e.Outcome)),
		slog.Int64("duration_ms", e.Duration.Milliseconds()),
	}
	for k, v := range e.Fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	level := slog.LevelInfo
	switch e.Outcome {
	case OutcomeRejected:
		level = slog.LevelWarn
	case OutcomeFailed:
		level = slog.LevelError
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "housewright_op", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// track starts timing a use case; call the result from a defer with the
// named error return. fields may be filled in after track returns.
func track(ctx context.Context, obs UseCaseObserver, name string, fields map[string]any) func(err error) {
	start := time.Now().UTC()
	return func(err error) {
		obs.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: start,
			Duration:  time.Since(start),
			Outcome:   OutcomeOf(err),
			Err:       err,
			Fields:    fields,
		})
	}
}
