package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/autocommit/internal/cache"
	"github.com/dshills/autocommit/internal/config"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagStyle = ""
	flagModel = ""
	flagNoCache = false
	flagAllStyles = false
	flagExplain = false
	flagVerbose = false
	flagOut = ""
	flagYes = false
	flagDryRun = false
	flagPush = false
}

// --- buildOverrides tests ---

func TestBuildOverrides_NoFlags(t *testing.T) {
	resetFlags()
	m := buildOverrides()
	if len(m) != 0 {
		t.Errorf("buildOverrides() with no flags = %v, want empty map", m)
	}
}

func TestBuildOverrides_AllFlags(t *testing.T) {
	resetFlags()
	flagStyle = "short"
	flagModel = "rules"
	flagNoCache = true

	m := buildOverrides()
	if m["style"] != "short" {
		t.Errorf("style = %q, want short", m["style"])
	}
	if m["model"] != "rules" {
		t.Errorf("model = %q, want rules", m["model"])
	}
	if m["useCache"] != "false" {
		t.Errorf("useCache = %q, want false", m["useCache"])
	}
}

// --- loadGenerateConfig tests ---

func TestLoadGenerateConfig_FlagOverrides(t *testing.T) {
	resetFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	flagStyle = "verbose"
	flagNoCache = true

	cfg, err := loadGenerateConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != "verbose" {
		t.Errorf("Style = %q, want verbose", cfg.Style)
	}
	if cfg.UseCache {
		t.Error("--no-cache must disable the cache")
	}
}

func TestLoadGenerateConfig_InvalidStyle(t *testing.T) {
	resetFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	flagStyle = "haiku"

	if _, err := loadGenerateConfig(); err == nil {
		t.Error("invalid style should be rejected before generation")
	}
}

// --- openStore tests ---

func TestOpenStore_MissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Path = filepath.Join(t.TempDir(), "cache.json")

	store, path, err := openStore(cfg)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	if path != cfg.Cache.Path {
		t.Errorf("path = %q, want %q", path, cfg.Cache.Path)
	}
	if st := store.Stats(); st.Entries != 0 {
		t.Errorf("Entries = %d, want empty store", st.Entries)
	}
}

func TestOpenStore_CorruptFileReinitializes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Cache.Path = path

	store, _, err := openStore(cfg)
	if err != nil {
		t.Fatalf("corrupt cache must not be fatal: %v", err)
	}
	if st := store.Stats(); st.Entries != 0 {
		t.Errorf("Entries = %d, want reinitialized empty store", st.Entries)
	}
}

func TestOpenStore_SaveStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	cfg := config.Default()
	cfg.Cache.Path = path

	store, _, err := openStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	store.Put("k:conventional", []string{"feat: add thing"})
	if err := saveStore(store, path); err != nil {
		t.Fatalf("saveStore: %v", err)
	}

	reopened, _, err := openStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := reopened.Get("k:conventional")
	if !ok || got[0] != "feat: add thing" {
		t.Errorf("reopened Get = %v, %v", got, ok)
	}
}

func TestOpenStore_DefaultPathWhenUnset(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cfg := config.Default()
	_, path, err := openStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want, err := cache.DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestOpenStore_UsesConfiguredLimits(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Cache.Path = filepath.Join(dir, "cache.json")
	cfg.Cache.MaxEntries = 2
	cfg.Cache.TTLDays = 1

	store, _, err := openStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	store.Put("a", []string{"a"})
	time.Sleep(time.Millisecond)
	store.Put("b", []string{"b"})
	time.Sleep(time.Millisecond)
	store.Put("c", []string{"c"})

	if st := store.Stats(); st.Entries != 2 {
		t.Errorf("Entries = %d, want eviction down to 2", st.Entries)
	}
}
