package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhkl-dev/navisonic/subsonic"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[server]
url = "https://music.example.com"
username = "admin"
password = "secret"

[client]
format = "xml"

[http]
timeout = "5s"

[report]
concurrency = 8
output = "yaml"
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "https://music.example.com", cfg.Server.URL)
	assert.Equal(t, AuthToken, cfg.Auth.Method)
	assert.Equal(t, "xml", cfg.Client.Format)
	assert.Equal(t, subsonic.DefaultAPIVersion, cfg.Client.APIVersion)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 8, cfg.Report.Concurrency)
	assert.Equal(t, "yaml", cfg.Report.Output)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
url = "https://music.example.com"
username = "admin"
password = "secret"
`)
	t.Setenv("NAVISONIC_SERVER_PASSWORD", "from-env")
	t.Setenv("NAVISONIC_HTTP_TIMEOUT", "1m")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Server.Password)
	assert.Equal(t, time.Minute, cfg.HTTP.Timeout)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NAVISONIC_SERVER_URL", "http://localhost:4533")
	t.Setenv("NAVISONIC_SERVER_API_KEY", "k-1")
	t.Setenv("NAVISONIC_AUTH_METHOD", "APIKey")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, AuthAPIKey, cfg.Auth.Method)
	assert.Equal(t, subsonic.APIKeyAuth{Key: "k-1"}, cfg.Authenticator())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   []string
	}{
		{name: "missing url", mutate: func(c *Config) { c.Server.URL = "" },
			want: []string{"server.url is required"}},
		{name: "token without password", mutate: func(c *Config) { c.Server.Password = "" },
			want: []string{"server.password is required"}},
		{name: "apikey with username", mutate: func(c *Config) { c.Auth.Method = AuthAPIKey },
			want: []string{"server.api_key is required", "server.username must be empty"}},
		{name: "bad enums", mutate: func(c *Config) { c.Client.Format = "yaml"; c.Auth.Method = "kerberos" },
			want: []string{"client.format must be one of [json xml]", "auth.method must be one of"}},
		{name: "bad numbers", mutate: func(c *Config) { c.Report.Concurrency = 0; c.HTTP.Timeout = 0 },
			want: []string{"report.concurrency must be at least 1", "http.timeout must be greater than 0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			for _, want := range tt.want {
				assert.Contains(t, err.Error(), want)
			}
		})
	}

	assert.NoError(t, validConfig().Validate())
}

func TestAuthenticator(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, subsonic.TokenAuth{Username: "admin", Password: "secret"}, cfg.Authenticator())

	cfg.Auth.Method = AuthHex
	assert.Equal(t, subsonic.PasswordAuth{Username: "admin", Password: "secret", Hex: true}, cfg.Authenticator())

	cfg.Auth.Method = AuthPassword
	assert.Equal(t, subsonic.PasswordAuth{Username: "admin", Password: "secret"}, cfg.Authenticator())
}

func TestClientOptions(t *testing.T) {
	cfg := validConfig()
	cfg.Client.Format = "xml"

	opts, err := cfg.ClientOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, subsonic.FormatXML, opts.Format)
	assert.Equal(t, cfg.HTTP.Timeout, opts.Timeout)
	assert.Equal(t, "https://music.example.com", opts.BaseURL)
}

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Server = ServerConfig{URL: "https://music.example.com", Username: "admin", Password: "secret"}
	return cfg
}
