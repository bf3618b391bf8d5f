// Package cache stores generated commit messages keyed by diff fingerprint.
//
// The Store is an explicit in-memory instance, not a process-wide singleton.
// Entries expire 30 days after creation and are lazily purged on lookup;
// whether an entry is still valid is a pure function of its timestamps,
// separate from the recency ordering used for eviction. When the store grows
// past its maximum entry count the least-recently-accessed entries are
// evicted, ties broken by oldest creation time.
//
// Persistence is a single load-at-start, save-at-end concern owned by the
// caller: Snapshot and Restore round-trip the mapping plus the cumulative
// hit and miss counters, and LoadFile/SaveFile serialize a snapshot as JSON.
// Concurrent access from multiple processes is not guaranteed safe; a
// concurrent writer may lose updates.
package cache
