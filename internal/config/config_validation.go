package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying defaults
// for fields no source provided.
//
// The database DSN has no sensible default and must be supplied by at least
// one source.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.App.SessionCleanupInterval == 0 {
		cfg.App.SessionCleanupInterval = DefaultSessionCleanupInterval
	}

	return nil
}
