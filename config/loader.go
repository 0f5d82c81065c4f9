package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. NAVISONIC_SERVER_URL.
const EnvPrefix = "NAVISONIC"

// New returns a viper instance carrying the defaults and environment
// bindings. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("server.url", defaults.Server.URL)
	v.SetDefault("server.username", defaults.Server.Username)
	v.SetDefault("server.password", defaults.Server.Password)
	v.SetDefault("server.api_key", defaults.Server.APIKey)
	v.SetDefault("auth.method", defaults.Auth.Method)
	v.SetDefault("client.id", defaults.Client.ID)
	v.SetDefault("client.api_version", defaults.Client.APIVersion)
	v.SetDefault("client.format", defaults.Client.Format)
	v.SetDefault("http.timeout", defaults.HTTP.Timeout.String())
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("report.concurrency", defaults.Report.Concurrency)
	v.SetDefault("report.output", defaults.Report.Output)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads config.toml (or the explicit file path) into v and returns the
// validated Config. Without an explicit path a missing file is not an error,
// so the whole configuration may come from the environment.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath("$HOME/.config/navisonic")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Auth.Method = strings.ToLower(cfg.Auth.Method)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
