package form

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"k8s.io/utils/clock"

	"github.com/goliatone/go-userform/pkg/validation"
)

// Controller owns one form instance: its values, touched fields and the
// success notification.
type Controller struct {
	schema       validation.Schema
	clock        clock.WithDelayedExecution
	dismissAfter time.Duration
	logger       *zap.SugaredLogger
	onSubmit     SubmitHook

	mu         sync.Mutex
	state      State
	touched    TouchedSet
	submitted  bool
	success    bool
	timer      clock.Timer
	generation uint64
}

// NewController constructs a Controller with an empty form.
func NewController(options ...Option) *Controller {
	c := &Controller{
		schema:       validation.Default(),
		clock:        clock.RealClock{},
		dismissAfter: DefaultDismissAfter,
		logger:       zap.NewNop().Sugar(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// SetField updates a scalar field and marks it touched. Invalid edits leave
// the controller unchanged.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.state.with(name, value)
	if err != nil {
		return err
	}
	c.state = next
	c.touched.Add(name)
	return nil
}

// SetHobby adds or removes a hobby and marks the hobbies field touched.
func (c *Controller) SetHobby(value string, checked bool) error {
	hobby, err := ParseHobby(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if checked {
		c.state.Hobbies = c.state.Hobbies.With(hobby)
	} else {
		c.state.Hobbies = c.state.Hobbies.Without(hobby)
	}
	c.touched.Add(FieldHobbies)
	return nil
}

// Touch marks a field as interacted with without changing its value.
func (c *Controller) Touch(name string) error {
	if !IsField(name) {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.touched.Add(name)
	return nil
}

// Submit validates the current values. On success the notification is shown,
// the auto-dismiss timer is armed and the values are recorded; otherwise
// every field is marked touched so all errors become visible and any showing
// notification is hidden. Values are never modified. The returned Errors is
// never nil.
func (c *Controller) Submit(ctx context.Context) (validation.Errors, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.submitted = true
	errs := c.schema.Validate(c.state)
	if !errs.Valid() {
		for _, field := range fieldOrder {
			c.touched.Add(field)
		}
		c.cancelDismissLocked()
		c.success = false
		c.logger.Debugw("form submit rejected", "fields", errs.Fields())
		return errs, nil
	}

	c.success = true
	c.armDismissLocked()
	c.recordLocked(ctx)
	return errs, nil
}

// Reset restores the initial empty form and hides the notification.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelDismissLocked()
	c.state = State{}
	c.touched.Clear()
	c.submitted = false
	c.success = false
}

// DismissSuccess hides the notification and cancels the pending timer.
func (c *Controller) DismissSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelDismissLocked()
	c.success = false
}

// SubmitSuccess reports whether the success notification is showing.
func (c *Controller) SubmitSuccess() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.success
}

// Values returns a copy of the current values.
func (c *Controller) Values() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot captures the controller state together with the derived errors.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := c.schema.Validate(c.state)
	return View{
		Values:        c.state,
		Errors:        errs,
		Visible:       errs.Only(c.touched.Has),
		Touched:       c.touched.Slice(),
		Submitted:     c.submitted,
		SubmitSuccess: c.success,
	}
}

func (c *Controller) armDismissLocked() {
	c.cancelDismissLocked()
	if c.dismissAfter <= 0 {
		return
	}
	generation := c.generation
	c.timer = c.clock.AfterFunc(c.dismissAfter, func() {
		c.expire(generation)
	})
}

func (c *Controller) cancelDismissLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}

func (c *Controller) expire(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return
	}
	c.timer = nil
	c.success = false
	c.logger.Debugw("success notification dismissed", "reason", "timeout")
}

func (c *Controller) recordLocked(ctx context.Context) {
	c.logger.Infow("form submitted",
		"name", sanitizeForLog(c.state.Name),
		"address", sanitizeForLog(c.state.Address),
		"country", string(c.state.Country),
		"gender", string(c.state.Gender),
		"hobbies", c.state.Hobbies.Strings(),
	)
	if c.onSubmit != nil {
		c.onSubmit(ctx, c.state)
	}
}
