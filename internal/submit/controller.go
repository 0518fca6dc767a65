package submit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"contactform/internal/form"
	"contactform/internal/logging"

	"github.com/google/uuid"
)

// Status is the transient banner shown after a submit attempt.
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// User-facing banner messages
const (
	SuccessMessage = "Message sent successfully. We'll get back to you shortly."
	FailureMessage = "Something went wrong while sending your message. Please try again."
)

// DefaultStatusTTL is how long a status banner stays visible before it
// clears itself.
const DefaultStatusTTL = 5 * time.Second

var (
	// ErrInFlight is returned by Submit while a submission is in progress.
	ErrInFlight = errors.New("submission already in flight")
	// ErrInvalid is returned by Submit when validation failed; the field
	// errors are available via FieldErrors.
	ErrInvalid = errors.New("form input is invalid")
	// ErrClosed is returned by Submit after the controller has been closed.
	ErrClosed = errors.New("form controller is closed")
)

// Controller holds the form state and drives it through
// Idle → Submitting → (Succeeded | Failed) → Idle.
//
// All inputs are considered disabled while a submission is in flight:
// Submit rejects re-entry and field edits are dropped. At most one
// auto-clear timer is live at any time; a newer status or Close stops the
// previous one, so a stale timer can never wipe a fresh banner.
type Controller struct {
	mu        sync.Mutex
	sender    Sender
	logger    *logging.Logger
	statusTTL time.Duration

	input      form.Input
	fieldErrs  form.Errors
	status     *Status
	inFlight   bool
	closed     bool
	clearTimer *time.Timer
}

// NewController creates a controller around the given sender. A zero or
// negative statusTTL falls back to DefaultStatusTTL. The logger may be nil.
func NewController(sender Sender, statusTTL time.Duration, logger *logging.Logger) *Controller {
	if statusTTL <= 0 {
		statusTTL = DefaultStatusTTL
	}
	return &Controller{
		sender:    sender,
		logger:    logger,
		statusTTL: statusTTL,
	}
}

// SetField updates a single field, the way a UI binding would on each
// keystroke. Edits are dropped while a submission is in flight. If the field
// currently carries a validation error, it is re-checked and the error is
// cleared once the field becomes valid.
func (c *Controller) SetField(field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight || c.closed {
		return
	}

	switch field {
	case form.FieldName:
		c.input.Name = value
	case form.FieldEmail:
		c.input.Email = value
	case form.FieldMessage:
		c.input.Message = value
	default:
		return
	}

	if _, hadErr := c.fieldErrs[field]; hadErr {
		if _, ok := form.ValidateField(c.input, field); ok {
			delete(c.fieldErrs, field)
		}
	}
}

// SetInput replaces the whole form input. Dropped while in flight.
func (c *Controller) SetInput(in form.Input) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight || c.closed {
		return
	}
	c.input = in
}

// Submit validates the current input and, if it passes, performs exactly one
// network call. It returns ErrInFlight while a previous submission is still
// running, ErrInvalid when validation failed, and otherwise the send error
// (nil on success). The banner state is updated either way.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrInFlight
	}

	// A new attempt supersedes any prior banner
	c.stopClearTimerLocked()
	c.status = nil

	clean, errs := form.Validate(c.input)
	if len(errs) > 0 {
		c.fieldErrs = errs
		c.mu.Unlock()
		return ErrInvalid
	}

	c.fieldErrs = nil
	c.input = clean
	c.inFlight = true
	payload := clean
	c.mu.Unlock()

	attemptID := uuid.New().String()
	if c.logger != nil {
		c.logger.Info("Submitting contact form from %s (attempt %s)", payload.Email, attemptID)
	}

	err := c.sender.Send(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	if c.closed {
		// Torn down mid-flight; don't schedule a banner nobody will see
		return err
	}

	if err != nil {
		if c.logger != nil {
			c.logger.Error("Contact form submission failed (attempt %s): %v", attemptID, err)
		}
		c.setStatusLocked(Status{Success: false, Message: FailureMessage})
		return fmt.Errorf("submission failed: %w", err)
	}

	if c.logger != nil {
		c.logger.Info("Contact form submission delivered (attempt %s)", attemptID)
	}
	c.input = form.Input{}
	c.setStatusLocked(Status{Success: true, Message: SuccessMessage})
	return nil
}

// Status returns the active banner, if any.
func (c *Controller) Status() (Status, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == nil {
		return Status{}, false
	}
	return *c.status, true
}

// FieldErrors returns a copy of the current validation errors.
func (c *Controller) FieldErrors() form.Errors {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.fieldErrs) == 0 {
		return nil
	}
	errs := make(form.Errors, len(c.fieldErrs))
	for field, msg := range c.fieldErrs {
		errs[field] = msg
	}
	return errs
}

// Values returns the current form input.
func (c *Controller) Values() form.Input {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// InFlight reports whether a submission is currently running.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Close tears the controller down, stopping any pending auto-clear timer.
// Further Submit calls return ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.stopClearTimerLocked()
	c.status = nil
}

// setStatusLocked installs a new banner and schedules its auto-clear. The
// caller must hold c.mu.
func (c *Controller) setStatusLocked(status Status) {
	c.stopClearTimerLocked()

	s := &status
	c.status = s
	c.clearTimer = time.AfterFunc(c.statusTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		// Only clear if this banner is still the active one
		if c.status == s {
			c.status = nil
			c.clearTimer = nil
		}
	})
}

func (c *Controller) stopClearTimerLocked() {
	if c.clearTimer != nil {
		c.clearTimer.Stop()
		c.clearTimer = nil
	}
}
