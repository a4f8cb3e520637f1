package lifecycle

import (
	"context"

	"github.com/MKhiriev/go-secret-share/internal/service"
	"github.com/MKhiriev/go-secret-share/internal/utils"
	"github.com/MKhiriev/go-secret-share/models"
)

type idGenerator interface {
	Generate() string
}

// Runner executes the effects requested by the lifecycle and turns their
// outcomes into completion events. It holds no state of its own, so results
// are correlated by the attempt id carried in the events.
type Runner struct {
	submissions service.SubmissionService
	burns       service.BurnService
	ids         idGenerator
}

func NewRunner(submissions service.SubmissionService, burns service.BurnService) *Runner {
	return &Runner{
		submissions: submissions,
		burns:       burns,
		ids:         utils.NewUUIDGenerator(),
	}
}

// NewAttemptID returns a fresh id for SubmitRequested.
func (r *Runner) NewAttemptID() string {
	return r.ids.Generate()
}

// Submit runs one attempt and returns SubmitSucceeded or SubmitFailed.
func (r *Runner) Submit(ctx context.Context, attemptID string, form models.SecretForm) Event {
	sub, err := r.submissions.Submit(utils.WithAttemptID(ctx, attemptID), form)
	if err != nil {
		return SubmitFailed{AttemptID: attemptID, Err: err}
	}
	sub.AttemptID = attemptID
	return SubmitSucceeded{AttemptID: attemptID, Submission: sub}
}

// Burn destroys secretID and returns BurnCompleted.
func (r *Runner) Burn(ctx context.Context, secretID string) Event {
	return BurnCompleted{Err: r.burns.Burn(ctx, secretID)}
}
