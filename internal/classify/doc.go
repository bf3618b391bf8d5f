// Package classify turns a diff summary into a conventional-commit
// classification without calling any network collaborator.
//
// The commit type is decided by an ordered rule chain evaluated
// first-match-wins: file-path rules (all-tests, all-docs, all-config) run
// before keyword rules (fix, refactor, perf, style), with a change-metric
// fallback deciding between feat and chore. The chain is data, not nested
// conditionals, so rule priority is directly testable.
//
// Classification is deterministic and total: the same summary always yields
// the same Result, and every input maps to one of the eight commit types.
package classify
