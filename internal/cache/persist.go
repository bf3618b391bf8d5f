package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Snapshot is the serialized form of a Store: the fingerprint mapping plus
// the cumulative counters.
type Snapshot struct {
	Entries map[string]Entry `json:"entries"`
	Hits    int              `json:"hits"`
	Misses  int              `json:"misses"`
}

// Snapshot captures the store's current state for persistence.
func (s *Store) Snapshot() Snapshot {
	entries := make(map[string]Entry, len(s.entries))
	for k, e := range s.entries {
		entries[k] = *e
	}
	return Snapshot{
		Entries: entries,
		Hits:    s.hits,
		Misses:  s.misses,
	}
}

// Restore replaces the store's state with a previously captured snapshot.
func (s *Store) Restore(snap Snapshot) {
	s.entries = make(map[string]*Entry, len(snap.Entries))
	for k, e := range snap.Entries {
		entry := e
		s.entries[k] = &entry
	}
	s.hits = snap.Hits
	s.misses = snap.Misses
}

// LoadFile reads a snapshot from path. A missing file yields an empty
// snapshot and no error; an unreadable or corrupt file is reported so the
// caller can decide whether to reinitialize.
func LoadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{Entries: map[string]Entry{}}, nil
		}
		return Snapshot{}, fmt.Errorf("reading cache file: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parsing cache file: %w", err)
	}
	if snap.Entries == nil {
		snap.Entries = map[string]Entry{}
	}
	return snap, nil
}

// SaveFile writes a snapshot to path, creating parent directories as needed.
func SaveFile(path string, snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling cache: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns the platform-appropriate location of the cache file.
func DefaultPath() (string, error) {
	dir, err := defaultCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache.json"), nil
}

func defaultCacheDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "autocommit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "autocommit"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "autocommit", "cache"), nil
		}
		return filepath.Join(home, "AppData", "Local", "autocommit", "cache"), nil
	default:
		return filepath.Join(home, ".cache", "autocommit"), nil
	}
}
