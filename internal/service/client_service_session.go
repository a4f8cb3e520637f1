package service

import (
	"time"

	"github.com/MKhiriev/go-secret-share/internal/adapter"
	"github.com/MKhiriev/go-secret-share/internal/utils"
	"github.com/MKhiriev/go-secret-share/models"
)

// sessionService keeps the token on the adapter so every request carries it.
type sessionService struct {
	api adapter.SecretAPI
	now func() time.Time
}

func NewSessionService(api adapter.SecretAPI) SessionService {
	return &sessionService{api: api, now: time.Now}
}

func (s *sessionService) SetToken(token string) {
	s.api.SetToken(token)
}

// Authenticated inspects the token claims without verifying the signature.
// The server decides for real; this only hides choices it would refuse.
func (s *sessionService) Authenticated() bool {
	return utils.IsAuthenticatedSession(s.api.Token(), s.now())
}

func (s *sessionService) TTLOptions() []models.TTLOption {
	return models.TTLOptions(s.Authenticated())
}
