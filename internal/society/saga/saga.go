// Package saga approximates atomic multi-record writes on a store that only
// offers single-record atomicity. A saga is an ordered list of steps, each a
// forward action paired with an optional compensating action. When a forward
// action fails, the compensations for every step that already succeeded run
// in reverse order, and the original failure is surfaced to the caller.
package saga

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/strataworks/societyd/pkg/slogx"
)

// Step is one unit of a saga. Forward performs the side effect and returns
// the value Compensate needs to undo it. Compensate may be nil when an
// earlier step's compensation already covers the cleanup.
type Step struct {
	Name       string
	Forward    func(ctx context.Context) (any, error)
	Compensate func(ctx context.Context, out any) error
}

// Error reports a failed saga. Err is the forward failure that aborted the
// run; CompensationErrs holds any best-effort undo failures, which are
// diagnostics only and never replace Err.
type Error struct {
	Step             string
	Err              error
	CompensationErrs []error
}

func (e *Error) Error() string {
	if len(e.CompensationErrs) > 0 {
		return fmt.Sprintf("saga: step %q failed: %v (partial rollback: %d compensation(s) also failed)",
			e.Step, e.Err, len(e.CompensationErrs))
	}
	return fmt.Sprintf("saga: step %q failed: %v", e.Step, e.Err)
}

// Unwrap exposes the original forward failure so errors.Is / errors.As see
// through the saga wrapper.
func (e *Error) Unwrap() error { return e.Err }

// PartialRollback reports whether any compensation failed, leaving records
// behind that the saga could not clean up.
func (e *Error) PartialRollback() bool { return len(e.CompensationErrs) > 0 }

// Run executes steps strictly in order. A step only starts after the
// previous forward action returned success. On the first forward failure the
// compensations of all previously succeeded steps run in reverse order, each
// passed the value its forward action produced. Steps are never retried; a
// failed saga is terminal and must be re-submitted by the caller.
func Run(ctx context.Context, steps []Step) ([]any, error) {
	log := slogx.FromContext(ctx)

	outputs := make([]any, 0, len(steps))

	for i, step := range steps {
		out, err := step.Forward(ctx)
		if err == nil {
			outputs = append(outputs, out)
			continue
		}

		log.Warn("saga step failed, rolling back",
			slog.String("step", step.Name),
			slog.Int("completed_steps", i),
			slog.Any("err", err),
		)

		sagaErr := &Error{Step: step.Name, Err: err}

		// Unwind in strict reverse order. Compensation failures are
		// collected and logged, never propagated in place of err.
		for j := i - 1; j >= 0; j-- {
			prev := steps[j]
			if prev.Compensate == nil {
				continue
			}
			if cerr := prev.Compensate(ctx, outputs[j]); cerr != nil {
				log.Error("saga compensation failed, records may be orphaned",
					slog.String("failed_step", step.Name),
					slog.String("compensation_step", prev.Name),
					slog.Any("err", cerr),
				)
				sagaErr.CompensationErrs = append(sagaErr.CompensationErrs,
					fmt.Errorf("compensate %q: %w", prev.Name, cerr))
			}
		}

		return nil, sagaErr
	}

	return outputs, nil
}
