// Package coordinator runs a sequence of steps that must all succeed,
// compensating the completed ones in reverse order when a later step fails.
//
// The cart service commits every mutation through it: persisting the new
// snapshot and appending the journal entry either both happen or neither
// is left behind.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Step is a single unit of work with an action that undoes it.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

type Orchestrator struct {
	name  string
	steps []Step
}

func NewOrchestrator(name string, steps ...Step) *Orchestrator {
	return &Orchestrator{name: name, steps: steps}
}

// Start runs the steps in order. On failure it compensates the steps that
// already succeeded (LIFO) and returns the step error joined with any
// compensation errors.
func (o *Orchestrator) Start(ctx context.Context) error {
	done := make([]Step, 0, len(o.steps))

	for _, step := range o.steps {
		slog.DebugContext(ctx, "executing step", "pipeline", o.name, "step", step.Name())
		if err := step.Execute(ctx); err != nil {
			slog.WarnContext(ctx, "step failed, rolling back", "pipeline", o.name, "step", step.Name(), "error", err)
			stepErr := fmt.Errorf("%s: step %s: %w", o.name, step.Name(), err)
			return errors.Join(stepErr, o.rollback(ctx, done))
		}
		done = append(done, step)
	}
	return nil
}

func (o *Orchestrator) rollback(ctx context.Context, steps []Step) error {
	var errs []error
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		if err := step.Compensate(ctx); err != nil {
			slog.ErrorContext(ctx, "CRITICAL: failed to compensate step",
				"pipeline", o.name, "step", step.Name(), "error", err)
			errs = append(errs, fmt.Errorf("compensate %s: %w", step.Name(), err))
		}
	}
	return errors.Join(errs...)
}
