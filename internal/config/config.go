package config

import (
	"strings"
)

type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 4321,
		},
		OpenAI: OpenAIConfig{
			Model:   "gpt-4o-mini",
			BaseURL: "https://api.openai.com/v1",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the platform-native backend, environment
// variables, and the platform secret store.
//
// On macOS the backend is UserDefaults (domain: com.storylab.app) and the
// API key falls back to macOS Keychain. On Linux the backend is a JSON
// file at $XDG_CONFIG_HOME/storylab/config.json and the key falls back to
// the secrets file written by `storylab config set-secret`.
//
// Environment variables (STORYLAB_*) override backend values on all
// platforms. A missing API key is not an error here: the lesson catalog,
// progress tracking and PDFs all work offline, so only the feedback
// endpoint reports it.
func Load() (Config, error) {
	return loadWith(newPlatformBackend(), keychainReader{})
}

// keychain abstracts secret-store access for testing.
type keychain interface {
	Get(service, account string) (string, error)
}

func loadWith(b ConfigBackend, kc keychain) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if cfg.OpenAI.APIKey == "" {
		if key, err := kc.Get(secretService, secretAccountAPIKey); err == nil && key != "" {
			cfg.OpenAI.APIKey = key
		}
	}

	return cfg, nil
}

const (
	secretService       = "storylab"
	secretAccountAPIKey = "openai_api_key"
)

// keychainReader reads from the platform secret store.
type keychainReader struct{}

func (keychainReader) Get(service, account string) (string, error) {
	out, err := keychainGet(service, account)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
