package form

import (
	"context"
	"time"

	"go.uber.org/zap"
	"k8s.io/utils/clock"

	"github.com/goliatone/go-userform/pkg/validation"
)

// DefaultDismissAfter is how long the success notification stays visible.
const DefaultDismissAfter = 3 * time.Second

// SubmitHook receives the values of every successful submit. It runs while
// the controller lock is held and must not call back into the controller.
type SubmitHook func(ctx context.Context, values State)

// Option configures a Controller.
type Option func(*Controller)

// WithSchema overrides the validation schema (validation.Default otherwise).
func WithSchema(schema validation.Schema) Option {
	return func(c *Controller) {
		c.schema = schema
	}
}

// WithClock injects the clock used for the auto-dismiss timer.
func WithClock(clk clock.WithDelayedExecution) Option {
	return func(c *Controller) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithDismissAfter overrides the auto-dismiss delay. Non-positive values
// disable auto-dismiss.
func WithDismissAfter(d time.Duration) Option {
	return func(c *Controller) {
		c.dismissAfter = d
	}
}

// WithLogger sets the logger used to record submissions.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSubmitHook registers a hook invoked after each successful submit.
func WithSubmitHook(hook SubmitHook) Option {
	return func(c *Controller) {
		c.onSubmit = hook
	}
}
