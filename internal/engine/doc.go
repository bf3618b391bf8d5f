// Package engine orchestrates commit-message generation for one diff.
//
// A diff is fingerprinted and looked up in the cache first. On a miss it is
// routed either to the rule-based classifier (small diffs, or when forced)
// or to an LLM provider (large diffs under "auto", or when forced), and the
// result is cached for next time. Secrets are redacted before any diff text
// leaves the machine on the LLM path.
//
// An empty diff is not an error: Generate returns ErrNoChanges so the caller
// can decide whether to abort or report "nothing to commit".
package engine
