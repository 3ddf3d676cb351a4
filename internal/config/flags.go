package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by BindFlags and parseFlags.
const (
	flagConfig         = "config"
	flagDSN            = "db"
	flagLockFile       = "lock-file"
	flagLogFile        = "log-file"
	flagLogLevel       = "log-level"
	flagBaseURL        = "base-url"
	flagAPIURL         = "api-url"
	flagRequestTimeout = "request-timeout"
	flagMemberID       = "member-id"
	flagPassHash       = "pass-hash"
	flagIgneous        = "igneous"
	flagReadOnly       = "read-only"
	flagStrict         = "strict"
	flagRetryAttempts  = "retry-attempts"
	flagInterval       = "interval"
)

// BindFlags registers the configuration flags on fs.
//
// Flags:
//
//	-c/--config        config file path (.json, .yaml, .yml)
//	-d/--db            SQLite database DSN
//	--lock-file        cross-process lock file
//	--log-file         log file path
//	--log-level        log level
//	--base-url         remote site root
//	--api-url          remote metadata API endpoint
//	--request-timeout  per-request timeout (e.g. "30s")
//	--member-id        session member id cookie
//	--pass-hash        session pass hash cookie
//	--igneous          session igneous cookie
//	--read-only        never push local changes to the remote site
//	--strict           fail the run on the first per-item error
//	--retry-attempts   tries per remote mutation
//	--interval         period of the watch command (e.g. "1h")
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "config file path (.json, .yaml, .yml)")
	fs.StringP(flagDSN, "d", "", "SQLite database DSN")
	fs.String(flagLockFile, "", "cross-process lock file")
	fs.String(flagLogFile, "", "log file path")
	fs.String(flagLogLevel, "", "log level (debug, info, warn, error)")
	fs.String(flagBaseURL, "", "remote site root URL")
	fs.String(flagAPIURL, "", "remote metadata API URL")
	fs.Duration(flagRequestTimeout, 0, "per-request timeout (e.g. 30s)")
	fs.String(flagMemberID, "", "session member id cookie")
	fs.String(flagPassHash, "", "session pass hash cookie")
	fs.String(flagIgneous, "", "session igneous cookie")
	fs.Bool(flagReadOnly, false, "never push local changes to the remote site")
	fs.Bool(flagStrict, false, "fail the run on the first per-item error")
	fs.Int(flagRetryAttempts, 0, "tries per remote mutation")
	fs.Duration(flagInterval, 0, "period of the watch command (e.g. 1h)")
}

// parseFlags reads the flags the user actually set. Flags left at their
// default stay zero so that lower precedence sources can fill them.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	str := func(name string, dst *string) {
		if err != nil || !changed(fs, name) {
			return
		}
		*dst, err = fs.GetString(name)
	}

	str(flagConfig, &cfg.ConfigFilePath)
	str(flagDSN, &cfg.Storage.DB.DSN)
	str(flagLockFile, &cfg.Storage.DB.LockFile)
	str(flagLogFile, &cfg.App.LogFile)
	str(flagLogLevel, &cfg.App.LogLevel)
	str(flagBaseURL, &cfg.Adapter.BaseURL)
	str(flagAPIURL, &cfg.Adapter.APIURL)
	str(flagMemberID, &cfg.Adapter.MemberID)
	str(flagPassHash, &cfg.Adapter.PassHash)
	str(flagIgneous, &cfg.Adapter.Igneous)

	if err == nil && changed(fs, flagRequestTimeout) {
		cfg.Adapter.RequestTimeout, err = fs.GetDuration(flagRequestTimeout)
	}
	if err == nil && changed(fs, flagInterval) {
		cfg.Sync.Interval, err = fs.GetDuration(flagInterval)
	}
	if err == nil && changed(fs, flagRetryAttempts) {
		cfg.Sync.RetryAttempts, err = fs.GetInt(flagRetryAttempts)
	}
	if err == nil && changed(fs, flagReadOnly) {
		cfg.Sync.ReadOnly, err = fs.GetBool(flagReadOnly)
	}
	if err == nil && changed(fs, flagStrict) {
		cfg.Sync.Strict, err = fs.GetBool(flagStrict)
	}

	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}

func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}
