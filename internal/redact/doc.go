// Package redact strips secrets from diff text before it leaves the machine.
//
// Redaction applies regex heuristics for common secret shapes (API keys,
// bearer tokens, JWTs, private key blocks, provider-specific token prefixes).
// Assignment keys are kept and only the value is blanked, so the diff stays
// descriptive without the secret. Only the LLM path sends
// diff content anywhere, so redaction runs exactly once, just before that
// call; the rule-based path never needs it.
package redact
