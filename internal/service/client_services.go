package service

import (
	"github.com/MKhiriev/go-secret-share/internal/adapter"
	"github.com/MKhiriev/go-secret-share/internal/archive"
	"github.com/MKhiriev/go-secret-share/internal/config"
	"github.com/MKhiriev/go-secret-share/internal/crypto"
	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/internal/store"
	"github.com/MKhiriev/go-secret-share/internal/validators"
)

type ClientServices struct {
	Origin string

	SubmissionService SubmissionService
	BurnService       BurnService
	HistoryService    HistoryService
	SessionService    SessionService
}

func NewClientServices(cfg config.ClientApp, storages *store.ClientStorages, api adapter.SecretAPI, logger *logger.Logger) *ClientServices {
	sessionSvc := NewSessionService(api)
	sessionSvc.SetToken(cfg.Token)

	submissionSvc := NewSubmissionService(
		cfg.Origin,
		crypto.NewKeyChain(cfg.KeyDerivation),
		archive.NewArchiver(cfg.MaxArchiveBytes),
		api,
		storages.LedgerRepository,
		validators.NewSecretFormValidator(sessionSvc.Authenticated),
		logger,
	)

	return &ClientServices{
		Origin:            cfg.Origin,
		SubmissionService: submissionSvc,
		BurnService:       NewBurnService(api, storages.LedgerRepository, logger),
		HistoryService:    NewHistoryService(storages.LedgerRepository),
		SessionService:    sessionSvc,
	}
}
