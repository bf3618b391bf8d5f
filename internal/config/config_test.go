package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Style != "conventional" {
		t.Errorf("Style = %q, want conventional", cfg.Style)
	}
	if cfg.Model != "auto" {
		t.Errorf("Model = %q, want auto", cfg.Model)
	}
	if !cfg.UseCache {
		t.Error("UseCache should default to true")
	}
	if cfg.MaxDiffForRules != 5000 {
		t.Errorf("MaxDiffForRules = %d, want 5000", cfg.MaxDiffForRules)
	}
	if !cfg.AutoStage || cfg.AutoPush || !cfg.ConfirmBeforeCommit {
		t.Errorf("commit flow defaults wrong: stage=%v push=%v confirm=%v",
			cfg.AutoStage, cfg.AutoPush, cfg.ConfirmBeforeCommit)
	}
	if cfg.Cache.TTLDays != 30 || cfg.Cache.MaxEntries != 500 {
		t.Errorf("Cache = %+v, want 30 days and 500 entries", cfg.Cache)
	}
	if cfg.LLM.Provider != "openai" || cfg.LLM.MaxTokens != 256 {
		t.Errorf("LLM = %+v", cfg.LLM)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("Load with no file = %+v, want defaults", cfg)
	}
}

func TestLoad_FileMerge(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "autocommit")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"style": "short", "useCache": false, "llm": {"provider": "ollama"}}`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != "short" {
		t.Errorf("Style = %q, want short", cfg.Style)
	}
	if cfg.UseCache {
		t.Error("explicit false in the file must override the true default")
	}
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("LLM.Provider = %q, want ollama", cfg.LLM.Provider)
	}
	// Keys absent from the file keep their defaults.
	if cfg.MaxDiffForRules != 5000 {
		t.Errorf("MaxDiffForRules = %d, want default 5000", cfg.MaxDiffForRules)
	}
	if !cfg.ConfirmBeforeCommit {
		t.Error("ConfirmBeforeCommit should keep its default when absent")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "autocommit")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte("{bad"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(nil); err == nil {
		t.Error("corrupt config file should be reported")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "autocommit")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(`{"style": "short"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("AUTOCOMMIT_STYLE", "verbose")
	t.Setenv("AUTOCOMMIT_USE_CACHE", "false")
	t.Setenv("AUTOCOMMIT_MAX_DIFF_FOR_RULES", "1234")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != "verbose" {
		t.Errorf("Style = %q, env must beat the file", cfg.Style)
	}
	if cfg.UseCache {
		t.Error("AUTOCOMMIT_USE_CACHE=false not applied")
	}
	if cfg.MaxDiffForRules != 1234 {
		t.Errorf("MaxDiffForRules = %d, want 1234", cfg.MaxDiffForRules)
	}
}

func TestLoad_OverridesBeatEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("AUTOCOMMIT_STYLE", "short")

	cfg, err := Load(map[string]string{"style": "verbose", "model": ""})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != "verbose" {
		t.Errorf("Style = %q, flag overrides must win", cfg.Style)
	}
	if cfg.Model != "auto" {
		t.Errorf("Model = %q, empty override values must be ignored", cfg.Model)
	}
}

func TestLoad_UnknownOverrideKey(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := Load(map[string]string{"bogus": "x"}); err == nil {
		t.Error("unknown override key should be rejected")
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(Config) bool
	}{
		{"style", "short", func(c Config) bool { return c.Style == "short" }},
		{"model", "rules", func(c Config) bool { return c.Model == "rules" }},
		{"useCache", "false", func(c Config) bool { return !c.UseCache }},
		{"maxDiffForRules", "9000", func(c Config) bool { return c.MaxDiffForRules == 9000 }},
		{"autoStage", "false", func(c Config) bool { return !c.AutoStage }},
		{"autoPush", "true", func(c Config) bool { return c.AutoPush }},
		{"confirmBeforeCommit", "false", func(c Config) bool { return !c.ConfirmBeforeCommit }},
		{"redactSecrets", "false", func(c Config) bool { return !c.RedactSecrets }},
		{"cache.path", "/tmp/c.json", func(c Config) bool { return c.Cache.Path == "/tmp/c.json" }},
		{"cache.ttlDays", "7", func(c Config) bool { return c.Cache.TTLDays == 7 }},
		{"cache.maxEntries", "100", func(c Config) bool { return c.Cache.MaxEntries == 100 }},
		{"llm.provider", "anthropic", func(c Config) bool { return c.LLM.Provider == "anthropic" }},
		{"llm.model", "gpt-4o-mini", func(c Config) bool { return c.LLM.Model == "gpt-4o-mini" }},
		{"llm.maxTokens", "512", func(c Config) bool { return c.LLM.MaxTokens == 512 }},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := Default()
			if err := SetField(&cfg, tt.key, tt.value); err != nil {
				t.Fatalf("SetField(%s, %s): %v", tt.key, tt.value, err)
			}
			if !tt.check(cfg) {
				t.Errorf("SetField(%s, %s) did not take effect", tt.key, tt.value)
			}
		})
	}
}

func TestSetField_Errors(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "nope", "x"); err == nil {
		t.Error("unknown key should error")
	}
	if err := SetField(&cfg, "useCache", "maybe"); err == nil {
		t.Error("non-boolean value for useCache should error")
	}
	if err := SetField(&cfg, "maxDiffForRules", "lots"); err == nil {
		t.Error("non-integer value for maxDiffForRules should error")
	}
}

func TestSaveLoadFile_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Style = "verbose"
	cfg.Cache.MaxEntries = 42
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Style != "verbose" || loaded.Cache.MaxEntries != 42 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
