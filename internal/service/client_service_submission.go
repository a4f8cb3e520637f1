// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-secret-share/internal/adapter"
	"github.com/MKhiriev/go-secret-share/internal/app"
	"github.com/MKhiriev/go-secret-share/internal/archive"
	"github.com/MKhiriev/go-secret-share/internal/crypto"
	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/internal/store"
	"github.com/MKhiriev/go-secret-share/internal/utils"
	"github.com/MKhiriev/go-secret-share/internal/validators"
	"github.com/MKhiriev/go-secret-share/models"
)

type idGenerator interface {
	Generate() string
}

type submissionService struct {
	origin    string
	keyChain  crypto.KeyChain
	archiver  archive.Archiver
	api       adapter.SecretAPI
	ledger    store.LedgerRepository
	validator validators.Validator
	ids       idGenerator
	now       func() time.Time
	logger    *logger.Logger
}

// NewSubmissionService wires the submission use case. origin is the public
// origin share links are composed with; it is recorded in the ledger.
func NewSubmissionService(
	origin string,
	keyChain crypto.KeyChain,
	archiver archive.Archiver,
	api adapter.SecretAPI,
	ledger store.LedgerRepository,
	validator validators.Validator,
	logger *logger.Logger,
) SubmissionService {
	return &submissionService{
		origin:    origin,
		keyChain:  keyChain,
		archiver:  archiver,
		api:       api,
		ledger:    ledger,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *submissionService) Submit(ctx context.Context, form models.SecretForm) (models.Submission, error) {
	form.Policy.AllowedIP = strings.TrimSpace(form.Policy.AllowedIP)

	if err := s.validator.Validate(ctx, form); err != nil {
		return models.Submission{}, toValidationError(err)
	}

	attemptID, ok := utils.GetAttemptIDFromContext(ctx)
	if !ok {
		attemptID = s.ids.Generate()
		ctx = utils.WithAttemptID(ctx, attemptID)
	}
	log := s.logger.WithAttempt(attemptID)

	keyMaterial, err := s.keyChain.NewKeyMaterial(form.Password)
	if err != nil {
		log.Err(err).Msg("failed to generate key material")
		return models.Submission{}, fmt.Errorf("generate key material: %w", err)
	}
	key := s.keyChain.DeriveEffectiveKey(keyMaterial, form.Password)
	defer clear(key)

	blob, err := s.archiver.Archive(form.Files)
	if err != nil {
		if errors.Is(err, archive.ErrArchiveTooLarge) {
			return models.Submission{}, &ValidationError{Field: validators.FieldFiles, Message: app.MsgFileTooLarge, Err: err}
		}
		return models.Submission{}, fmt.Errorf("archive files: %w", err)
	}
	var archiveData []byte
	if blob != nil {
		archiveData = blob.Data
	}

	payload, err := s.keyChain.SealPayload(ctx, form.Text, form.Title, archiveData, key)
	if err != nil {
		log.Err(err).Msg("failed to seal payload")
		return models.Submission{}, fmt.Errorf("seal payload: %w", err)
	}

	req := models.CreateSecretRequest{
		SealedPayload: payload,
		SecretPolicy:  form.Policy,
		Password:      form.Password,
	}

	resp, err := s.api.CreateSecret(ctx, req)
	if err != nil {
		log.Err(err).Msg("create secret request failed")
		return models.Submission{}, &SubmissionFailedError{Field: validators.FieldFiles, Message: err.Error(), Err: err}
	}

	if err = interpretCreateResponse(resp); err != nil {
		log.Warn().Int("status", resp.StatusCode).Err(err).Msg("server did not create the secret")
		return models.Submission{}, err
	}

	submission := models.Submission{
		AttemptID:   attemptID,
		SecretID:    resp.ID,
		KeyMaterial: keyMaterial,
		Policy:      form.Policy,
		HasPassword: form.Password != "",
	}

	if err = s.ledger.Save(ctx, models.NewLedgerEntry(s.origin, submission, s.now())); err != nil {
		log.Err(err).Str("secret_id", resp.ID).Msg("failed to record secret in ledger")
	}

	log.Info().Str("secret_id", resp.ID).Msg("secret created")
	return submission, nil
}

// interpretCreateResponse maps a create-secret answer to nil or the error
// the user should see.
func interpretCreateResponse(resp models.CreateSecretResponse) error {
	switch {
	case resp.StatusCode == http.StatusCreated:
		if resp.ID == "" {
			return fmt.Errorf("%w: server created a secret without an id", ErrInvalidState)
		}
		return nil
	case resp.StatusCode == http.StatusForbidden:
		return &SubmissionRejectedError{StatusCode: resp.StatusCode, Message: serverMessage(resp)}
	case isPayloadTooLarge(resp):
		return &ValidationError{Field: validators.FieldFiles, Message: app.MsgFileTooLarge}
	default:
		return &SubmissionFailedError{StatusCode: resp.StatusCode, Field: validators.FieldFiles, Message: serverMessage(resp)}
	}
}

func isPayloadTooLarge(resp models.CreateSecretResponse) bool {
	if resp.StatusCode == http.StatusRequestEntityTooLarge {
		return true
	}
	marker := app.TooLargeMarker
	return strings.Contains(strings.ToLower(resp.Message), marker) ||
		strings.Contains(strings.ToLower(resp.Error), marker)
}

// serverMessage prefers the short error text, as the web front end does.
func serverMessage(resp models.CreateSecretResponse) string {
	if resp.Error != "" {
		return resp.Error
	}
	return resp.Message
}

func toValidationError(err error) error {
	var fe *validators.FieldError
	if errors.As(err, &fe) {
		return &ValidationError{Field: fe.Field, Message: fe.Err.Error(), Err: fe.Err}
	}
	return fmt.Errorf("validate form: %w", err)
}
