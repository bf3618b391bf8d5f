package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the autocommit configuration.
type Config struct {
	Style               string      `json:"style"`
	Model               string      `json:"model"` // auto, rules, llm
	UseCache            bool        `json:"useCache"`
	MaxDiffForRules     int         `json:"maxDiffForRules"`
	AutoStage           bool        `json:"autoStage"`
	AutoPush            bool        `json:"autoPush"`
	ConfirmBeforeCommit bool        `json:"confirmBeforeCommit"`
	RedactSecrets       bool        `json:"redactSecrets"`
	Cache               CacheConfig `json:"cache"`
	LLM                 LLMConfig   `json:"llm"`
}

// CacheConfig controls where and how long messages are cached.
type CacheConfig struct {
	Path       string `json:"path,omitempty"`
	TTLDays    int    `json:"ttlDays"`
	MaxEntries int    `json:"maxEntries"`
}

// LLMConfig selects the provider used when a diff is routed past the
// rule-based classifier.
type LLMConfig struct {
	Provider  string `json:"provider"`
	Model     string `json:"model,omitempty"`
	MaxTokens int    `json:"maxTokens"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Style:               "conventional",
		Model:               "auto",
		UseCache:            true,
		MaxDiffForRules:     5000,
		AutoStage:           true,
		AutoPush:            false,
		ConfirmBeforeCommit: true,
		RedactSecrets:       true,
		Cache: CacheConfig{
			TTLDays:    30,
			MaxEntries: 500,
		},
		LLM: LLMConfig{
			Provider:  "openai",
			MaxTokens: 256,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "autocommit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "autocommit"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "autocommit"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "autocommit"), nil
	default:
		return filepath.Join(home, ".config", "autocommit"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// fileConfig mirrors Config with pointer fields so an absent key in the
// config file can be told apart from an explicit false/zero.
type fileConfig struct {
	Style               *string `json:"style"`
	Model               *string `json:"model"`
	UseCache            *bool   `json:"useCache"`
	MaxDiffForRules     *int    `json:"maxDiffForRules"`
	AutoStage           *bool   `json:"autoStage"`
	AutoPush            *bool   `json:"autoPush"`
	ConfirmBeforeCommit *bool   `json:"confirmBeforeCommit"`
	RedactSecrets       *bool   `json:"redactSecrets"`
	Cache               struct {
		Path       *string `json:"path"`
		TTLDays    *int    `json:"ttlDays"`
		MaxEntries *int    `json:"maxEntries"`
	} `json:"cache"`
	LLM struct {
		Provider  *string `json:"provider"`
		Model     *string `json:"model"`
		MaxTokens *int    `json:"maxTokens"`
	} `json:"llm"`
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only set values appear).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	if err := mergeFile(&cfg); err != nil {
		return Config{}, err
	}
	mergeEnv(&cfg)
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func mergeFile(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	setString(&cfg.Style, fc.Style)
	setString(&cfg.Model, fc.Model)
	setBool(&cfg.UseCache, fc.UseCache)
	setInt(&cfg.MaxDiffForRules, fc.MaxDiffForRules)
	setBool(&cfg.AutoStage, fc.AutoStage)
	setBool(&cfg.AutoPush, fc.AutoPush)
	setBool(&cfg.ConfirmBeforeCommit, fc.ConfirmBeforeCommit)
	setBool(&cfg.RedactSecrets, fc.RedactSecrets)
	setString(&cfg.Cache.Path, fc.Cache.Path)
	setInt(&cfg.Cache.TTLDays, fc.Cache.TTLDays)
	setInt(&cfg.Cache.MaxEntries, fc.Cache.MaxEntries)
	setString(&cfg.LLM.Provider, fc.LLM.Provider)
	setString(&cfg.LLM.Model, fc.LLM.Model)
	setInt(&cfg.LLM.MaxTokens, fc.LLM.MaxTokens)
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("AUTOCOMMIT_STYLE"); v != "" {
		cfg.Style = v
	}
	if v := os.Getenv("AUTOCOMMIT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AUTOCOMMIT_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("AUTOCOMMIT_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("AUTOCOMMIT_USE_CACHE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UseCache = b
		}
	}
	if v := os.Getenv("AUTOCOMMIT_MAX_DIFF_FOR_RULES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDiffForRules = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFile loads only the config file contents over defaults, without env
// or flag merging. Used by `config set` so unrelated keys keep their
// persisted values.
func LoadFile() (Config, error) {
	cfg := Default()
	if err := mergeFile(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown or the value does not parse.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "style":
		cfg.Style = value
	case "model":
		cfg.Model = value
	case "useCache":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("useCache must be a boolean: %w", err)
		}
		cfg.UseCache = b
	case "maxDiffForRules":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxDiffForRules must be an integer: %w", err)
		}
		cfg.MaxDiffForRules = n
	case "autoStage":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("autoStage must be a boolean: %w", err)
		}
		cfg.AutoStage = b
	case "autoPush":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("autoPush must be a boolean: %w", err)
		}
		cfg.AutoPush = b
	case "confirmBeforeCommit":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("confirmBeforeCommit must be a boolean: %w", err)
		}
		cfg.ConfirmBeforeCommit = b
	case "redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redactSecrets must be a boolean: %w", err)
		}
		cfg.RedactSecrets = b
	case "cache.path":
		cfg.Cache.Path = value
	case "cache.ttlDays":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.ttlDays must be an integer: %w", err)
		}
		cfg.Cache.TTLDays = n
	case "cache.maxEntries":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.maxEntries must be an integer: %w", err)
		}
		cfg.Cache.MaxEntries = n
	case "llm.provider":
		cfg.LLM.Provider = value
	case "llm.model":
		cfg.LLM.Model = value
	case "llm.maxTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("llm.maxTokens must be an integer: %w", err)
		}
		cfg.LLM.MaxTokens = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
