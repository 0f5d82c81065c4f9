package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/yhkl-dev/navisonic/subsonic"
)

// Authentication methods accepted in auth.method.
const (
	AuthToken    = "token"
	AuthPassword = "password"
	AuthHex      = "hex"
	AuthAPIKey   = "apikey"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Client ClientConfig `mapstructure:"client"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Log    LogConfig    `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
}

// ServerConfig contains Subsonic server connection settings
type ServerConfig struct {
	URL      string `mapstructure:"url" validate:"required,url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	APIKey   string `mapstructure:"api_key"`
}

type AuthConfig struct {
	Method string `mapstructure:"method" validate:"oneof=token password hex apikey"`
}

// ClientConfig contains Subsonic API client settings
type ClientConfig struct {
	ID         string `mapstructure:"id" validate:"required"`
	APIVersion string `mapstructure:"api_version" validate:"required"`
	Format     string `mapstructure:"format" validate:"oneof=json xml"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// ReportConfig controls the server conformance report.
type ReportConfig struct {
	Concurrency int    `mapstructure:"concurrency" validate:"min=1,max=32"`
	Output      string `mapstructure:"output" validate:"oneof=text yaml"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			Method: AuthToken,
		},
		Client: ClientConfig{
			ID:         subsonic.DefaultClientID,
			APIVersion: subsonic.DefaultAPIVersion,
			Format:     string(subsonic.FormatJSON),
		},
		HTTP: HTTPConfig{
			Timeout: subsonic.DefaultTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Report: ReportConfig{
			Concurrency: 4,
			Output:      "text",
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if tag := f.Tag.Get("mapstructure"); tag != "" {
			return tag
		}
		return f.Name
	})
	return v
}

// Validate checks field constraints and that the credentials required by the
// chosen authentication method are present.
func (c *Config) Validate() error {
	problems := map[string]string{}
	if err := validate.Struct(c); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("invalid config: %w", err)
		}
		for _, fe := range errs {
			problems[configKey(fe)] = validationMessage(fe)
		}
	}

	switch c.Auth.Method {
	case AuthAPIKey:
		if c.Server.APIKey == "" {
			problems["server.api_key"] = "is required for apikey authentication"
		}
		if c.Server.Username != "" {
			problems["server.username"] = "must be empty for apikey authentication"
		}
	case AuthToken, AuthPassword, AuthHex:
		if c.Server.Username == "" {
			problems["server.username"] = "is required"
		}
		if c.Server.Password == "" {
			problems["server.password"] = "is required"
		}
	}

	if len(problems) == 0 {
		return nil
	}
	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = k + " " + problems[k]
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// configKey turns "Config.server.url" into "server.url".
func configKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return "is invalid"
}

// Authenticator returns the credential scheme selected by auth.method.
func (c *Config) Authenticator() subsonic.Authenticator {
	switch c.Auth.Method {
	case AuthAPIKey:
		return subsonic.APIKeyAuth{Key: c.Server.APIKey}
	case AuthPassword:
		return subsonic.PasswordAuth{Username: c.Server.Username, Password: c.Server.Password}
	case AuthHex:
		return subsonic.PasswordAuth{Username: c.Server.Username, Password: c.Server.Password, Hex: true}
	default:
		return subsonic.TokenAuth{Username: c.Server.Username, Password: c.Server.Password}
	}
}

// ClientOptions maps the configuration onto subsonic.Options.
func (c *Config) ClientOptions(logger *zerolog.Logger) (subsonic.Options, error) {
	format, err := subsonic.ParseFormat(c.Client.Format)
	if err != nil {
		return subsonic.Options{}, err
	}
	return subsonic.Options{
		BaseURL:    c.Server.URL,
		ClientID:   c.Client.ID,
		APIVersion: c.Client.APIVersion,
		Format:     format,
		Auth:       c.Authenticator(),
		Timeout:    c.HTTP.Timeout,
		Logger:     logger,
	}, nil
}
