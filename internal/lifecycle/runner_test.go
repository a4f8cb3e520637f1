package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-share/internal/mock"
	"github.com/MKhiriev/go-secret-share/internal/utils"
	"github.com/MKhiriev/go-secret-share/models"
)

type seqIDs struct{ ids []string }

func (s *seqIDs) Generate() string {
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

func newTestRunner(t *testing.T, ctrl *gomock.Controller, ids ...string) (*Runner, *mock.MockSubmissionService, *mock.MockBurnService) {
	t.Helper()
	subs := mock.NewMockSubmissionService(ctrl)
	burns := mock.NewMockBurnService(ctrl)
	r := NewRunner(subs, burns)
	r.ids = &seqIDs{ids: ids}
	return r, subs, burns
}

func TestRunner_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, subs, _ := newTestRunner(t, ctrl)

	form := models.NewSecretForm()
	subs.EXPECT().Submit(gomock.Any(), form).DoAndReturn(
		func(ctx context.Context, _ models.SecretForm) (models.Submission, error) {
			id, ok := utils.GetAttemptIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "a1", id)
			return models.Submission{SecretID: "sid"}, nil
		},
	)

	ev := r.Submit(context.Background(), "a1", form)
	assert.Equal(t, SubmitSucceeded{AttemptID: "a1", Submission: models.Submission{AttemptID: "a1", SecretID: "sid"}}, ev)
}

func TestRunner_SubmitFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, subs, _ := newTestRunner(t, ctrl)

	boom := errors.New("boom")
	subs.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.Submission{}, boom)

	assert.Equal(t, SubmitFailed{AttemptID: "a1", Err: boom}, r.Submit(context.Background(), "a1", models.NewSecretForm()))
}

func TestRunner_Burn(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, _, burns := newTestRunner(t, ctrl)

	burns.EXPECT().Burn(gomock.Any(), "sid").Return(nil)
	assert.Equal(t, BurnCompleted{}, r.Burn(context.Background(), "sid"))
}

func TestController_FullCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, subs, burns := newTestRunner(t, ctrl, "a1")
	c := NewController(r, false)

	form := c.State().Form
	form.Text = "secret"
	c.Edit(form)

	subs.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.Submission{SecretID: "sid", KeyMaterial: "km"}, nil)
	s := c.Submit(context.Background())
	require.Equal(t, Revealed, s.Phase)
	assert.Equal(t, "a1", s.Submission.AttemptID)

	burns.EXPECT().Burn(gomock.Any(), "sid").Return(nil)
	s = c.Burn(context.Background())
	assert.Equal(t, NewState(false), s)
}

func TestController_BurnWithoutSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, _, _ := newTestRunner(t, ctrl)
	c := NewController(r, false)

	// no burn expectation: the service must not be called
	assert.Equal(t, Idle, c.Burn(context.Background()).Phase)
}

func TestController_SubmitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, subs, _ := newTestRunner(t, ctrl, "a1")
	c := NewController(r, false)

	subs.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.Submission{}, errors.New("offline"))
	s := c.Submit(context.Background())

	assert.Equal(t, Idle, s.Phase)
	assert.Equal(t, "offline", s.Feedback.Banner)
}
