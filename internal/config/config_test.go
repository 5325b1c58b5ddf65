package config

import (
	"errors"
	"testing"
)

// fakeBackend is an in-memory ConfigBackend.
type fakeBackend struct {
	strings map[string]string
	ints    map[string]int
	err     error
}

func (b *fakeBackend) GetString(key string) (string, bool, error) {
	if b.err != nil {
		return "", false, b.err
	}
	v, ok := b.strings[key]
	return v, ok, nil
}

func (b *fakeBackend) GetInt(key string) (int, bool, error) {
	if b.err != nil {
		return 0, false, b.err
	}
	v, ok := b.ints[key]
	return v, ok, nil
}

func (b *fakeBackend) SetString(key, val string) error  { return nil }
func (b *fakeBackend) SetInt(key string, val int) error { return nil }
func (b *fakeBackend) Delete(key string) error          { return nil }

type fakeKeychain struct {
	key string
	err error
}

func (k fakeKeychain) Get(service, account string) (string, error) {
	if k.err != nil {
		return "", k.err
	}
	return k.key, nil
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadWith(&fakeBackend{}, fakeKeychain{err: errors.New("no keychain")})
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.Server.Port != 4321 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Storage.DataDir == "" {
		t.Error("DataDir is empty")
	}
}

func TestLoadMissingAPIKeyIsNotAnError(t *testing.T) {
	cfg, err := loadWith(&fakeBackend{}, fakeKeychain{err: errors.New("no keychain")})
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.OpenAI.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.OpenAI.APIKey)
	}
}

func TestLoadBackendValues(t *testing.T) {
	b := &fakeBackend{
		strings: map[string]string{
			"openai.model": "gpt-4o",
			"log.level":    "debug",
		},
		ints: map[string]int{
			"server.port": 9000,
		},
	}
	cfg, err := loadWith(b, fakeKeychain{})
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q", cfg.OpenAI.Model)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadBackendError(t *testing.T) {
	b := &fakeBackend{err: errors.New("backend broken")}
	if _, err := loadWith(b, fakeKeychain{}); err == nil {
		t.Fatal("expected error from broken backend")
	}
}

func TestEnvOverridesBackend(t *testing.T) {
	t.Setenv("STORYLAB_OPENAI_MODEL", "gpt-4.1-mini")
	t.Setenv("STORYLAB_SERVER_PORT", "5555")

	b := &fakeBackend{
		strings: map[string]string{"openai.model": "gpt-4o"},
		ints:    map[string]int{"server.port": 9000},
	}
	cfg, err := loadWith(b, fakeKeychain{})
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.OpenAI.Model != "gpt-4.1-mini" {
		t.Errorf("Model = %q", cfg.OpenAI.Model)
	}
	if cfg.Server.Port != 5555 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
}

func TestEnvBadIntKeepsDefault(t *testing.T) {
	t.Setenv("STORYLAB_SERVER_PORT", "not-a-port")
	cfg, err := loadWith(&fakeBackend{}, fakeKeychain{})
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.Server.Port != 4321 {
		t.Errorf("Port = %d, want default", cfg.Server.Port)
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("STORYLAB_OPENAI_API_KEY", "sk-env")
	cfg, err := loadWith(&fakeBackend{}, fakeKeychain{key: "sk-keychain"})
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-env" {
		t.Errorf("APIKey = %q, env should win over keychain", cfg.OpenAI.APIKey)
	}
}

func TestAPIKeyFromKeychain(t *testing.T) {
	cfg, err := loadWith(&fakeBackend{}, fakeKeychain{key: "sk-keychain"})
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-keychain" {
		t.Errorf("APIKey = %q", cfg.OpenAI.APIKey)
	}
}

func TestShowAllHidesSecrets(t *testing.T) {
	cfg := defaults()
	cfg.OpenAI.APIKey = "sk-secret"
	for _, info := range ShowAll(cfg) {
		if info.Key == "openai.api_key" {
			t.Error("ShowAll exposed a secret key")
		}
		if info.Value == "sk-secret" {
			t.Errorf("ShowAll exposed a secret value under %s", info.Key)
		}
	}
}

func TestGetKey(t *testing.T) {
	cfg := defaults()
	v, err := GetKey(cfg, "openai.model")
	if err != nil {
		t.Fatalf("GetKey: %v", err)
	}
	if v != "gpt-4o-mini" {
		t.Errorf("value = %q", v)
	}
	if _, err := GetKey(cfg, "openai.api_key"); err == nil {
		t.Error("GetKey returned a secret")
	}
	if _, err := GetKey(cfg, "nope"); err == nil {
		t.Error("GetKey accepted an unknown key")
	}
}

func TestSetKeyRejectsSecretAndUnknown(t *testing.T) {
	if err := SetKey("openai.api_key", "sk-x"); err == nil {
		t.Error("SetKey accepted a secret")
	}
	if err := SetKey("nope", "x"); err == nil {
		t.Error("SetKey accepted an unknown key")
	}
	if err := SetKey("server.port", "not-an-int"); err == nil {
		t.Error("SetKey accepted a non-integer port")
	}
}

func TestValidAndSecretKeys(t *testing.T) {
	for _, k := range ValidKeys() {
		if k == "openai.api_key" {
			t.Error("ValidKeys lists a secret")
		}
	}
	secrets := SecretKeys()
	if len(secrets) != 1 || secrets[0] != "openai.api_key" {
		t.Errorf("SecretKeys = %v", secrets)
	}
}
