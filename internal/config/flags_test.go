package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *StructuredConfig
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "short flags",
			args: []string{"-c", "cfg.yaml", "-d", "lib.db"},
			want: &StructuredConfig{
				ConfigFilePath: "cfg.yaml",
				Storage:        Storage{DB: DB{DSN: "lib.db"}},
			},
		},
		{
			name: "all long flags",
			args: []string{
				"--config=cfg.json", "--db=lib.db", "--lock-file=lib.lock",
				"--log-file=sync.log", "--log-level=error",
				"--base-url=https://exhentai.org", "--api-url=https://api.example/api.php",
				"--request-timeout=5s", "--member-id=1", "--pass-hash=p", "--igneous=i",
				"--read-only", "--strict", "--retry-attempts=4", "--interval=2h",
			},
			want: &StructuredConfig{
				ConfigFilePath: "cfg.json",
				App:            App{LogFile: "sync.log", LogLevel: "error"},
				Storage:        Storage{DB: DB{DSN: "lib.db", LockFile: "lib.lock"}},
				Adapter: Adapter{
					BaseURL:        "https://exhentai.org",
					APIURL:         "https://api.example/api.php",
					RequestTimeout: 5 * time.Second,
					MemberID:       "1",
					PassHash:       "p",
					Igneous:        "i",
				},
				Sync: Sync{ReadOnly: true, Strict: true, RetryAttempts: 4, Interval: 2 * time.Hour},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(newTestFlagSet(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_UnboundFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("empty", pflag.ContinueOnError)

	got, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, got)
}
