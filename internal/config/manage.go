package config

import (
	"fmt"
	"strconv"
)

// KeyInfo describes a config key for display purposes.
type KeyInfo struct {
	Key    string
	EnvVar string
	Value  string
}

// ShowAll returns all non-secret config key/value pairs from the current
// config.
func ShowAll(cfg Config) []KeyInfo {
	var result []KeyInfo
	for _, s := range specs {
		if s.secret {
			continue
		}
		result = append(result, KeyInfo{
			Key:    s.key,
			EnvVar: s.env,
			Value:  fmt.Sprintf("%v", s.extract(cfg)),
		})
	}
	return result
}

// GetKey returns the display value for a single non-secret key.
func GetKey(cfg Config, key string) (string, error) {
	for _, s := range specs {
		if s.key != key {
			continue
		}
		if s.secret {
			return "", fmt.Errorf("%q is a secret and is never displayed", key)
		}
		return fmt.Sprintf("%v", s.extract(cfg)), nil
	}
	return "", fmt.Errorf("unknown config key: %q", key)
}

// SetKey writes a config key to the platform backend.
func SetKey(key, value string) error {
	b := newPlatformBackend()

	for _, s := range specs {
		if s.key != key {
			continue
		}
		if s.secret {
			return fmt.Errorf("cannot set secret %q via config set; use 'config set-secret %s' or environment variable %s", key, key, s.env)
		}
		switch s.typ {
		case kString:
			return b.SetString(key, value)
		case kInt:
			i, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer value for %s: %w", key, err)
			}
			return b.SetInt(key, i)
		}
	}

	return fmt.Errorf("unknown config key: %q", key)
}

// SetSecret stores a secret in the platform secret store. On macOS this
// is the Keychain; elsewhere a mode-0600 secrets file under XDG data.
func SetSecret(key, value string) error {
	for _, s := range specs {
		if s.key != key {
			continue
		}
		if !s.secret {
			return fmt.Errorf("%q is not a secret; use 'config set'", key)
		}
		switch key {
		case "openai.api_key":
			return keychainSet(secretService, secretAccountAPIKey, value)
		}
		return fmt.Errorf("no secret store mapping for %q", key)
	}
	return fmt.Errorf("unknown config key: %q", key)
}

// ValidKeys returns the list of valid non-secret config key names.
func ValidKeys() []string {
	var keys []string
	for _, s := range specs {
		if !s.secret {
			keys = append(keys, s.key)
		}
	}
	return keys
}

// SecretKeys returns the list of keys settable via set-secret.
func SecretKeys() []string {
	var keys []string
	for _, s := range specs {
		if s.secret {
			keys = append(keys, s.key)
		}
	}
	return keys
}
