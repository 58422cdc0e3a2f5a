// Package saga runs a fixed sequence of writes across collections that cannot share a transaction.
// When a step fails, the steps that already succeeded are compensated in reverse order.
package saga

import (
	"context"
	"errors"
	"flightbook/infras/otel"
	"flightbook/shared/constant"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

type Step struct {
	Name   string
	Action func(ctx context.Context) error
	// Compensate may be nil for steps that have nothing to undo.
	Compensate func(ctx context.Context) error
}

// CompensationHook observes every compensation attempt.
type CompensationHook func(saga, step, result string)

// Error reports the step that failed and any compensation that could not be applied.
type Error struct {
	Saga               string
	Step               string
	Cause              error
	CompensationErrors []error
}

func (e *Error) Error() string {
	if len(e.CompensationErrors) == 0 {
		return fmt.Sprintf("saga %s: step %s failed: %v", e.Saga, e.Step, e.Cause)
	}

	return fmt.Sprintf("saga %s: step %s failed: %v (compensation: %v)", e.Saga, e.Step, e.Cause, errors.Join(e.CompensationErrors...))
}

func (e *Error) Unwrap() []error {
	return append([]error{e.Cause}, e.CompensationErrors...)
}

// Compensated is true when every completed step was rolled back cleanly.
func (e *Error) Compensated() bool {
	return len(e.CompensationErrors) == 0
}

type Saga struct {
	name  string
	steps []Step
	otel  otel.Otel
	hook  CompensationHook
}

func New(name string, ot otel.Otel) *Saga {
	return &Saga{name: name, otel: ot}
}

func (s *Saga) OnCompensation(hook CompensationHook) *Saga {
	s.hook = hook

	return s
}

func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)

	return s
}

func (s *Saga) Execute(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSagaScopeName, constant.OtelSagaScopeName+"."+s.name)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for i, step := range s.steps {
		scope.AddEvent(step.Name)

		if stepErr := step.Action(ctx); stepErr != nil {
			log.Warn().Err(stepErr).Str("saga", s.name).Str("step", step.Name).Msg("saga step failed, compensating")

			return &Error{
				Saga:               s.name,
				Step:               step.Name,
				Cause:              stepErr,
				CompensationErrors: s.compensate(ctx, s.steps[:i]),
			}
		}
	}

	return nil
}

// compensate undoes completed steps newest first. It keeps going past failures
// and runs on a context that outlives the caller's cancellation.
func (s *Saga) compensate(ctx context.Context, completed []Step) []error {
	ctx = context.WithoutCancel(ctx)

	var errs []error

	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}

		result := ResultOK

		if err := step.Compensate(ctx); err != nil {
			result = ResultFailed
			errs = append(errs, fmt.Errorf("compensate %s: %w", step.Name, err))

			log.Error().Err(err).Str("saga", s.name).Str("step", step.Name).Msg("saga compensation failed")
		}

		if s.hook != nil {
			s.hook(s.name, step.Name, result)
		}
	}

	return errs
}
