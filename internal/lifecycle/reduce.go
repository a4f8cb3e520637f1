package lifecycle

import "github.com/MKhiriev/go-secret-share/internal/service"

// Reduce returns the state after ev. Events that make no sense in the
// current phase return s unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case FormEdited:
		if s.Phase != Idle {
			return s
		}
		s.Form = e.Form
		if !s.PasswordEnabled {
			s.Form.Password = ""
		}
		return s

	case PasswordToggled:
		if s.Phase != Idle {
			return s
		}
		s.PasswordEnabled = e.Enabled
		if e.Enabled {
			s.Form.Password = e.Generated
		} else {
			s.Form.Password = ""
		}
		return s

	case SubmitRequested:
		if s.Phase != Idle || e.AttemptID == "" {
			return s
		}
		s.Phase = Submitting
		s.AttemptID = e.AttemptID
		s.Feedback = service.Feedback{}
		return s

	case SubmitSucceeded:
		if !s.awaiting(e.AttemptID) {
			return s
		}
		s.Phase = Revealed
		s.AttemptID = ""
		s.Submission = e.Submission
		s.Feedback = service.Feedback{}
		return s

	case SubmitFailed:
		if !s.awaiting(e.AttemptID) {
			return s
		}
		s.Phase = Idle
		s.AttemptID = ""
		s.Feedback = service.NewFeedback(e.Err)
		return s

	case CreateNewRequested:
		return s.reset()

	case BurnRequested:
		if s.Phase != Revealed || s.Submission.SecretID == "" {
			return s
		}
		s.Phase = Burned
		return s

	case BurnCompleted:
		if s.Phase != Burned {
			return s
		}
		next := s.reset()
		if e.Err != nil {
			next.Feedback = service.Feedback{Banner: burnBanner(e.Err)}
		}
		return next

	default:
		return s
	}
}

func (s State) awaiting(attemptID string) bool {
	return s.Phase == Submitting && attemptID != "" && attemptID == s.AttemptID
}

func burnBanner(err error) string {
	if banner := service.NewFeedback(err).Banner; banner != "" {
		return banner
	}
	return err.Error()
}
