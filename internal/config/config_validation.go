// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"time"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Storage: Storage{
			DB: DB{DSN: "favsync.db"},
		},
		Adapter: Adapter{
			BaseURL:        "https://e-hentai.org",
			APIURL:         "https://api.e-hentai.org/api.php",
			RequestTimeout: 30 * time.Second,
			UserAgent:      "favsync/1.0",
		},
		Sync: Sync{
			RetryAttempts: 10,
			ThrottleStep:  10 * time.Millisecond,
			ThrottleMax:   5 * time.Second,
			ThrottleWarn:  time.Second,
			Interval:      time.Hour,
		},
	}
}

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if u, err := url.Parse(cfg.Adapter.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	s := cfg.Sync
	switch {
	case s.RetryAttempts < 1:
		return fmt.Errorf("%w: retry attempts must be at least 1", ErrInvalidSyncConfigs)
	case s.RetryDelay < 0:
		return fmt.Errorf("%w: retry delay must not be negative", ErrInvalidSyncConfigs)
	case s.ThrottleStep <= 0 || s.ThrottleMax < s.ThrottleStep:
		return fmt.Errorf("%w: throttle step must be positive and not above the ceiling", ErrInvalidSyncConfigs)
	case s.ThrottleWarn <= 0 || s.ThrottleWarn > s.ThrottleMax:
		return fmt.Errorf("%w: throttle warn level must be within the ceiling", ErrInvalidSyncConfigs)
	case s.Interval <= 0:
		return fmt.Errorf("%w: interval must be positive", ErrInvalidSyncConfigs)
	}

	return nil
}

// LockFilePath returns the configured lock file or one derived from the DSN.
func (cfg *StructuredConfig) LockFilePath() string {
	if cfg.Storage.DB.LockFile != "" {
		return cfg.Storage.DB.LockFile
	}
	return cfg.Storage.DB.DSN + ".lock"
}
