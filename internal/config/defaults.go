package config

import "time"

// Defaults applied before any other source.
const (
	DefaultAdapterAddress  = "http://localhost:3000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultKeyDerivation   = "concat"
	DefaultMaxArchiveBytes = 10 << 20
	DefaultDSN             = "secret-share.db"
	DefaultPruneInterval   = time.Hour
	DefaultLogLevel        = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KeyDerivation:   DefaultKeyDerivation,
			MaxArchiveBytes: DefaultMaxArchiveBytes,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{PruneInterval: DefaultPruneInterval},
		Log:     Log{Level: DefaultLogLevel},
	}
}
