// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig] for values that can never be
// valid regardless of the consumer.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Workers.PruneInterval < 0 {
		return ErrNegativeDuration
	}
	if cfg.App.MaxArchiveBytes < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PruneInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Origin == "" || cfg.App.MaxArchiveBytes <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
