package lifecycle

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secret-share/models"
)

// Controller runs the lifecycle synchronously: each call applies the
// request, performs the effect and applies its completion. Front ends that
// need to stay responsive (the TUI) use Reduce and Runner directly instead.
type Controller struct {
	mu     sync.Mutex
	state  State
	runner *Runner
}

func NewController(runner *Runner, authenticated bool) *Controller {
	return &Controller{state: NewState(authenticated), runner: runner}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies ev and returns the new state.
func (c *Controller) Dispatch(ev Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, ev)
	return c.state
}

// Edit replaces the form.
func (c *Controller) Edit(form models.SecretForm) State {
	return c.Dispatch(FormEdited{Form: form})
}

// Submit submits the current form. Outside Idle it is a no-op.
func (c *Controller) Submit(ctx context.Context) State {
	attemptID := c.runner.NewAttemptID()
	s := c.Dispatch(SubmitRequested{AttemptID: attemptID})
	if s.Phase != Submitting || s.AttemptID != attemptID {
		return s
	}
	return c.Dispatch(c.runner.Submit(ctx, attemptID, s.Form))
}

// Burn burns the revealed secret and resets. Without a revealed secret it is
// a no-op.
func (c *Controller) Burn(ctx context.Context) State {
	s := c.Dispatch(BurnRequested{})
	if s.Phase != Burned {
		return s
	}
	return c.Dispatch(c.runner.Burn(ctx, s.SecretID()))
}
