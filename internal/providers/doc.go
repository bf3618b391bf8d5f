// Package providers implements the Generator interface for each supported
// LLM backend.
//
// Supported providers: OpenAI (default, gpt-4o-mini), Anthropic (Claude),
// and Ollama / LM Studio for local models.
//
// All providers share a common retry helper with exponential back-off for
// rate limits and transient server errors. Authentication failures are typed
// so callers can distinguish them from runtime errors.
//
// Use [New] to obtain a Generator by provider name and model string.
package providers
