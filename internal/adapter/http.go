package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-secret-share/internal/config"
	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/internal/utils"
	"github.com/MKhiriev/go-secret-share/models"
)

const (
	createSecretPath = "/api/secret"
	burnSecretPath   = "/api/secret/{id}/burn"

	requestIDHeader = "X-Request-ID"
)

type httpSecretAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSecretAPI constructs an HTTP/REST implementation of [SecretAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPSecretAPI(adapterCfg config.ClientAdapter, logger *logger.Logger) (SecretAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpSecretAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [SecretAPI]. A "Bearer " prefix is accepted and
// stripped.
func (h *httpSecretAPI) SetToken(token string) {
	token = strings.TrimSpace(token)
	if raw, err := utils.ParseBearerToken(token); err == nil {
		token = raw
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Token implements [SecretAPI].
func (h *httpSecretAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CreateSecret implements [SecretAPI]. It POSTs req to POST /api/secret.
func (h *httpSecretAPI) CreateSecret(ctx context.Context, req models.CreateSecretRequest) (models.CreateSecretResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(createSecretPath)
	if err != nil {
		return models.CreateSecretResponse{}, fmt.Errorf("%w: create secret request: %v", ErrTransport, err)
	}

	var out models.CreateSecretResponse
	if body := resp.Body(); len(body) > 0 {
		if err = json.Unmarshal(body, &out); err != nil {
			// Proxies answer with HTML or plain text; keep it as the message.
			out = models.CreateSecretResponse{Message: errorText(body)}
		}
	}
	out.StatusCode = resp.StatusCode()

	if out.StatusCode != http.StatusCreated {
		h.logger.Warn().
			Int("status", out.StatusCode).
			Str("error", out.Error).
			Msg("create secret rejected")
	}

	return out, nil
}

// BurnSecret implements [SecretAPI]. It POSTs to POST /api/secret/{id}/burn.
func (h *httpSecretAPI) BurnSecret(ctx context.Context, secretID string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", secretID).
		Post(burnSecretPath)
	if err != nil {
		return fmt.Errorf("%w: burn secret request: %v", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// request starts a request carrying the session token and the attempt id
// from ctx, if any.
func (h *httpSecretAPI) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	if attemptID, ok := utils.GetAttemptIDFromContext(ctx); ok {
		req.SetHeader(requestIDHeader, attemptID)
	}
	return req
}
