package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by the CLI.
const EnvPrefix = "INTERSIGHT"

// Setting keys. Each key is also a flag name and maps to INTERSIGHT_<KEY>
// with dashes replaced by underscores (e.g. key-id -> INTERSIGHT_KEY_ID).
const (
	KeyKeyID          = "key-id"
	KeySecretKeyPath  = "secret-key-path"
	KeyEndpoint       = "endpoint"
	KeyRequestTimeout = "request-timeout"
	KeyLogLevel       = "log-level"
	KeyLogFormat      = "log-format"
	KeyLogFile        = "log-file"
)

// Defaults for optional settings.
const (
	DefaultEndpoint       = "https://intersight.com/api/v1"
	DefaultRequestTimeout = 60 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
)

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"console": true, "json": true}
)

// Settings holds runtime options that are not part of the inventory:
// API credentials, endpoint, timeouts and logging.
type Settings struct {
	KeyID          string
	SecretKeyPath  string
	Endpoint       string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	LogFile        string // optional rotating log file, in addition to stderr
}

// RegisterFlags adds the settings flags to a flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyKeyID, "", "Intersight API key ID (env: INTERSIGHT_KEY_ID)")
	flags.String(KeySecretKeyPath, "", "Path to the Intersight API secret key (env: INTERSIGHT_SECRET_KEY_PATH)")
	flags.String(KeyEndpoint, DefaultEndpoint, "Intersight API base URL (env: INTERSIGHT_ENDPOINT)")
	flags.Duration(KeyRequestTimeout, DefaultRequestTimeout, "Timeout for a single API request (env: INTERSIGHT_REQUEST_TIMEOUT)")
	flags.String(KeyLogLevel, DefaultLogLevel, "Log level: debug, info, warn, error (env: INTERSIGHT_LOG_LEVEL)")
	flags.String(KeyLogFormat, DefaultLogFormat, "Log format: console or json (env: INTERSIGHT_LOG_FORMAT)")
	flags.String(KeyLogFile, "", "Also write logs to this file, rotated by size (env: INTERSIGHT_LOG_FILE)")
}

// NewViper returns a viper instance bound to the given flags and to the
// INTERSIGHT_* environment. Explicit flags win over the environment, which
// wins over flag defaults.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}
	return v, nil
}

// LoadSettings reads and validates settings from viper.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	v.SetDefault(KeyEndpoint, DefaultEndpoint)
	v.SetDefault(KeyRequestTimeout, DefaultRequestTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	s := &Settings{
		KeyID:          strings.TrimSpace(v.GetString(KeyKeyID)),
		SecretKeyPath:  strings.TrimSpace(v.GetString(KeySecretKeyPath)),
		Endpoint:       strings.TrimSpace(v.GetString(KeyEndpoint)),
		RequestTimeout: v.GetDuration(KeyRequestTimeout),
		LogLevel:       strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:      strings.ToLower(v.GetString(KeyLogFormat)),
		LogFile:        strings.TrimSpace(v.GetString(KeyLogFile)),
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Validate checks that credentials are present and options are well formed.
func (s *Settings) Validate() error {
	var errs []error

	if s.KeyID == "" {
		errs = append(errs, errors.New("API key ID is required (set INTERSIGHT_KEY_ID or --key-id)"))
	}
	if s.SecretKeyPath == "" {
		errs = append(errs, errors.New("secret key path is required (set INTERSIGHT_SECRET_KEY_PATH or --secret-key-path)"))
	}

	u, err := url.Parse(s.Endpoint)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid endpoint %q: expected an http(s) URL", s.Endpoint))
	}

	if s.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %s", s.RequestTimeout))
	}
	if !validLogLevels[s.LogLevel] {
		errs = append(errs, fmt.Errorf("invalid log level %q", s.LogLevel))
	}
	if !validLogFormats[s.LogFormat] {
		errs = append(errs, fmt.Errorf("invalid log format %q", s.LogFormat))
	}

	return errors.Join(errs...)
}

// LoadDotEnv loads environment variables from a .env file if it exists.
// Variables already present in the environment are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
