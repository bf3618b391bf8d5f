// Package diff parses raw unified-diff text into a structured summary and
// computes stable fingerprints for cache lookups.
//
// Parsing is best-effort and total: unrecognized lines are skipped, partial
// file sections keep whatever counts were extracted, and an empty diff yields
// a sentinel Summary whose Empty method reports true. A file section with
// only mode or permission changes still produces a FileChange with zero line
// counts.
//
// Fingerprints are SHA-256 digests of the diff after normalization (volatile
// header lines dropped, whitespace stripped, lines sorted), so that
// semantically identical diffs produced in different working-directory states
// hash identically.
package diff
