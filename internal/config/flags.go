package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by [BindFlags] and [ParseFlags].
const (
	flagAddress         = "address"
	flagTimeout         = "timeout"
	flagOrigin          = "origin"
	flagToken           = "token"
	flagKeyDerivation   = "key-derivation"
	flagMaxArchiveBytes = "max-archive-bytes"
	flagDSN             = "db"
	flagPruneInterval   = "prune-interval"
	flagLogLevel        = "log-level"
	flagConfig          = "config"
)

// BindFlags registers all configuration flags on fs. Defaults are left
// zero: built-in defaults are applied by the config builder so that an unset
// flag never hides an environment variable.
//
// Flags:
//
//	-a/--address           secret server address
//	--timeout              request timeout (e.g., "30s", "1m")
//	--origin               public origin used in share URLs
//	--token                bearer token of a logged-in session
//	--key-derivation       concat or argon2id
//	--max-archive-bytes    combined attachment size limit
//	-d/--db                ledger database DSN
//	--prune-interval       ledger prune interval (e.g., "1h")
//	--log-level            log level
//	-c/--config            JSON or YAML config file path
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(flagAddress, "a", "", "Secret server address")
	fs.Duration(flagTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.String(flagOrigin, "", "Public origin used in share URLs")
	fs.String(flagToken, "", "Bearer token of a logged-in session")
	fs.String(flagKeyDerivation, "", "Key derivation: concat or argon2id")
	fs.Int64(flagMaxArchiveBytes, 0, "Combined attachment size limit in bytes")
	fs.StringP(flagDSN, "d", "", "Ledger database DSN")
	fs.Duration(flagPruneInterval, 0, "Ledger prune interval (e.g., 1h)")
	fs.String(flagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.StringP(flagConfig, "c", "", "JSON or YAML config file path")
}

// ParseFlags reads the flags registered by [BindFlags] from an already parsed
// fs. Flags the user did not set stay zero so they do not override other
// sources.
func ParseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	read := func(name string, fn func() error) {
		if err != nil || fs.Lookup(name) == nil || !fs.Changed(name) {
			return
		}
		if e := fn(); e != nil {
			err = fmt.Errorf("error reading flag --%s: %w", name, e)
		}
	}

	read(flagAddress, func() (e error) { cfg.Adapter.HTTPAddress, e = fs.GetString(flagAddress); return })
	read(flagTimeout, func() (e error) { cfg.Adapter.RequestTimeout, e = fs.GetDuration(flagTimeout); return })
	read(flagOrigin, func() (e error) { cfg.App.Origin, e = fs.GetString(flagOrigin); return })
	read(flagToken, func() (e error) { cfg.App.Token, e = fs.GetString(flagToken); return })
	read(flagKeyDerivation, func() (e error) { cfg.App.KeyDerivation, e = fs.GetString(flagKeyDerivation); return })
	read(flagMaxArchiveBytes, func() (e error) { cfg.App.MaxArchiveBytes, e = fs.GetInt64(flagMaxArchiveBytes); return })
	read(flagDSN, func() (e error) { cfg.Storage.DB.DSN, e = fs.GetString(flagDSN); return })
	read(flagPruneInterval, func() (e error) { cfg.Workers.PruneInterval, e = fs.GetDuration(flagPruneInterval); return })
	read(flagLogLevel, func() (e error) { cfg.Log.Level, e = fs.GetString(flagLogLevel); return })
	read(flagConfig, func() (e error) { cfg.FilePath, e = fs.GetString(flagConfig); return })

	if err != nil {
		return nil, err
	}
	return cfg, nil
}
