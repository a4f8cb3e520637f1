package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-secret-share/internal/crypto"
)

// ClientApp holds settings of the secret creation flow.
type ClientApp struct {
	// Origin is the public origin share URLs are composed with.
	Origin string
	// Token is the optional bearer token of a logged-in session.
	Token string
	// KeyDerivation selects how the effective key reaches the cipher.
	KeyDerivation crypto.Derivation
	// MaxArchiveBytes caps the combined size of attached files.
	MaxArchiveBytes int64
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the secret server base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the ledger.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PruneInterval defines how often expired ledger rows are removed.
	PruneInterval time.Duration
}

// ClientLog holds the resolved log level.
type ClientLog struct {
	Level zerolog.Level
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration. fs carries the command-line flags registered with
// [BindFlags]; it may be nil.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	derivation, err := crypto.ParseDerivation(cfg.App.KeyDerivation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	origin := cfg.App.Origin
	if origin == "" {
		origin = cfg.Adapter.HTTPAddress
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Origin:          origin,
			Token:           cfg.App.Token,
			KeyDerivation:   derivation,
			MaxArchiveBytes: cfg.App.MaxArchiveBytes,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{PruneInterval: cfg.Workers.PruneInterval},
		Log:     ClientLog{Level: level},
	}

	return clientCfg, clientCfg.validate()
}
