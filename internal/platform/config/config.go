package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultStoreTimeout    = 10 * time.Second
	defaultStoreRetries    = 2
	defaultPrefsPath       = "data/prefs.db"
	defaultSessionTTL      = 12 * time.Hour
	defaultBannerDismissal = 5 * time.Minute
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Prefs    PrefsConfig
	Security SecurityConfig
	Features FeatureFlags
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StoreConfig points at the remote collection store.
type StoreConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// PrefsConfig configures the local preference store.
type PrefsConfig struct {
	Path string
}

// SecurityConfig groups admin session settings.
type SecurityConfig struct {
	SessionSecret   string
	SessionTTL      time.Duration
	BannerDismissal time.Duration
}

// FeatureFlags toggle optional behaviour without redeploying.
type FeatureFlags struct {
	EnableEvents    bool
	EnablePrefCache bool
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap supplies explicit key/value pairs that take precedence over every
// other source. Intended for tests.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load builds the configuration from, in increasing precedence: the optional
// YAML file named by CONFIG_FILE, the .env file, the process environment, and
// an explicit override map.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	values := make(map[string]string)
	merge := func(source map[string]string) {
		for key, value := range source {
			values[key] = value
		}
	}

	merge(dotEnvValues)
	if options.useSystemEnv {
		for _, entry := range os.Environ() {
			parts := strings.SplitN(entry, "=", 2)
			if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
				continue
			}
			values[strings.TrimSpace(parts[0])] = parts[1]
		}
	}
	merge(options.envMap)

	fileValues, err := loadConfigFile(values["CONFIG_FILE"])
	if err != nil {
		return Config{}, err
	}
	for key, value := range fileValues {
		if _, ok := values[key]; !ok {
			values[key] = value
		}
	}

	lookup := func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         stringWithDefault(lookup, "PORT", defaultPort),
			ReadTimeout:  durationWithDefault(lookup, "SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Store: StoreConfig{
			BaseURL:    strings.TrimRight(stringWithDefault(lookup, "STORE_BASE_URL", ""), "/"),
			Timeout:    durationWithDefault(lookup, "STORE_TIMEOUT", defaultStoreTimeout),
			MaxRetries: intWithDefault(lookup, "STORE_MAX_RETRIES", defaultStoreRetries),
		},
		Prefs: PrefsConfig{
			Path: stringWithDefault(lookup, "PREFS_DB_PATH", defaultPrefsPath),
		},
		Security: SecurityConfig{
			SessionSecret:   stringWithDefault(lookup, "SESSION_SECRET", ""),
			SessionTTL:      durationWithDefault(lookup, "SESSION_TTL", defaultSessionTTL),
			BannerDismissal: durationWithDefault(lookup, "BANNER_DISMISSAL", defaultBannerDismissal),
		},
		Features: FeatureFlags{
			EnableEvents:    boolWithDefault(lookup, "FEATURE_EVENTS", true),
			EnablePrefCache: boolWithDefault(lookup, "FEATURE_PREF_CACHE", true),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "Server.Port")
	}
	if cfg.Store.BaseURL == "" {
		missing = append(missing, "Store.BaseURL")
	}
	if cfg.Store.Timeout <= 0 {
		missing = append(missing, "Store.Timeout")
	}
	if cfg.Prefs.Path == "" {
		missing = append(missing, "Prefs.Path")
	}
	if cfg.Security.SessionSecret == "" {
		missing = append(missing, "Security.SessionSecret")
	}
	if cfg.Security.SessionTTL <= 0 {
		missing = append(missing, "Security.SessionTTL")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

// loadConfigFile reads an optional YAML file of flat string key/value pairs.
// File values sit below every environment source in precedence.
func loadConfigFile(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}

	parsed := make(map[string]string)
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", path, err)
	}

	values := make(map[string]string, len(parsed))
	for key, value := range parsed {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.TrimSpace(value)
	}
	return values, nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		value = strings.Trim(value, "\"'")
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
