package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] in the layout of a config
// file. Durations accept either strings ("1h", "30s") or nanoseconds.
type StructuredFileConfig struct {
	App struct {
		LogFile  string `json:"log_file" yaml:"log_file"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN      string `json:"dsn" yaml:"dsn"`
			LockFile string `json:"lock_file" yaml:"lock_file"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Adapter struct {
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		APIURL         string   `json:"api_url" yaml:"api_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		UserAgent      string   `json:"user_agent" yaml:"user_agent"`
		MemberID       string   `json:"member_id" yaml:"member_id"`
		PassHash       string   `json:"pass_hash" yaml:"pass_hash"`
		Igneous        string   `json:"igneous" yaml:"igneous"`
	} `json:"adapter" yaml:"adapter"`

	Sync struct {
		ReadOnly      bool     `json:"read_only" yaml:"read_only"`
		Strict        bool     `json:"strict" yaml:"strict"`
		RetryAttempts int      `json:"retry_attempts" yaml:"retry_attempts"`
		RetryDelay    Duration `json:"retry_delay" yaml:"retry_delay"`
		ThrottleStep  Duration `json:"throttle_step" yaml:"throttle_step"`
		ThrottleMax   Duration `json:"throttle_max" yaml:"throttle_max"`
		ThrottleWarn  Duration `json:"throttle_warn" yaml:"throttle_warn"`
		Interval      Duration `json:"interval" yaml:"interval"`
	} `json:"sync" yaml:"sync"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, path)
	}

	return &StructuredConfig{
		App: App{
			LogFile:  fileCfg.App.LogFile,
			LogLevel: fileCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:      fileCfg.Storage.DB.DSN,
				LockFile: fileCfg.Storage.DB.LockFile,
			},
		},
		Adapter: Adapter{
			BaseURL:        fileCfg.Adapter.BaseURL,
			APIURL:         fileCfg.Adapter.APIURL,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			UserAgent:      fileCfg.Adapter.UserAgent,
			MemberID:       fileCfg.Adapter.MemberID,
			PassHash:       fileCfg.Adapter.PassHash,
			Igneous:        fileCfg.Adapter.Igneous,
		},
		Sync: Sync{
			ReadOnly:      fileCfg.Sync.ReadOnly,
			Strict:        fileCfg.Sync.Strict,
			RetryAttempts: fileCfg.Sync.RetryAttempts,
			RetryDelay:    time.Duration(fileCfg.Sync.RetryDelay),
			ThrottleStep:  time.Duration(fileCfg.Sync.ThrottleStep),
			ThrottleMax:   time.Duration(fileCfg.Sync.ThrottleMax),
			ThrottleWarn:  time.Duration(fileCfg.Sync.ThrottleWarn),
			Interval:      time.Duration(fileCfg.Sync.Interval),
		},
	}, nil
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var ns int64
	if err := node.Decode(&ns); err == nil {
		*d = Duration(time.Duration(ns))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
