package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dshills/autocommit/internal/cache"
	"github.com/dshills/autocommit/internal/classify"
	"github.com/dshills/autocommit/internal/config"
	"github.com/dshills/autocommit/internal/diff"
	"github.com/dshills/autocommit/internal/format"
	"github.com/dshills/autocommit/internal/providers"
	"github.com/dshills/autocommit/internal/redact"
)

// ErrNoChanges signals an empty diff: a no-op, not a failure.
var ErrNoChanges = errors.New("no staged changes")

// Suggestion is the outcome of one generation: the rendered message(s), the
// classification behind them, and where they came from.
type Suggestion struct {
	Messages  []string
	Result    classify.Result
	FromCache bool
	Source    string // "cache", "rules", or provider name
}

// Message returns the primary rendered message.
func (s Suggestion) Message() string {
	if len(s.Messages) == 0 {
		return ""
	}
	return s.Messages[0]
}

// Engine generates commit messages according to a Config, consulting a
// cache Store owned by the caller.
type Engine struct {
	cfg         config.Config
	store       *cache.Store
	log         zerolog.Logger
	newProvider func(provider, model string) (providers.Generator, error)
}

// New creates an Engine. The store may be nil when caching is disabled.
func New(cfg config.Config, store *cache.Store, log zerolog.Logger) *Engine {
	return &Engine{
		cfg:         cfg,
		store:       store,
		log:         log,
		newProvider: providers.New,
	}
}

// RoutesToLLM reports whether a diff of the given length would be sent to an
// LLM provider rather than the rule-based classifier. Callers use it to
// decide whether to show progress feedback.
func (e *Engine) RoutesToLLM(diffLen int) bool {
	switch e.cfg.Model {
	case "rules":
		return false
	case "llm":
		return true
	default: // auto
		return diffLen > e.cfg.MaxDiffForRules
	}
}

// Generate produces commit message suggestions for the raw staged diff.
// branch is optional context for the LLM path.
func (e *Engine) Generate(ctx context.Context, rawDiff, branch string) (Suggestion, error) {
	rawDiff = strings.TrimSpace(rawDiff)
	if rawDiff == "" {
		return Suggestion{}, ErrNoChanges
	}

	summary := diff.Parse(rawDiff)
	if summary.Empty() {
		return Suggestion{}, ErrNoChanges
	}
	result := classify.Classify(summary)

	e.log.Debug().
		Int("diffChars", len(rawDiff)).
		Int("files", len(summary.Files)).
		Str("branch", branch).
		Msg("parsed staged diff")

	key := cacheKey(rawDiff, e.cfg.Style)
	if e.useCache() {
		if messages, ok := e.store.Get(key); ok {
			e.log.Debug().Str("key", key).Msg("cache hit")
			return Suggestion{
				Messages:  messages,
				Result:    result,
				FromCache: true,
				Source:    "cache",
			}, nil
		}
		e.log.Debug().Str("key", key).Msg("cache miss")
	}

	var suggestion Suggestion
	if e.RoutesToLLM(len(rawDiff)) {
		s, err := e.generateLLM(ctx, rawDiff, branch, result)
		if err != nil {
			return Suggestion{}, err
		}
		suggestion = s
	} else {
		s, err := e.generateRules(result)
		if err != nil {
			return Suggestion{}, err
		}
		suggestion = s
	}

	if e.useCache() && len(suggestion.Messages) > 0 {
		e.store.Put(key, suggestion.Messages)
	}
	return suggestion, nil
}

func (e *Engine) generateRules(result classify.Result) (Suggestion, error) {
	message, err := format.Render(result, format.Style(e.cfg.Style))
	if err != nil {
		return Suggestion{}, err
	}
	e.log.Debug().Str("type", string(result.Type)).Msg("rule-based classification")
	return Suggestion{
		Messages: []string{message},
		Result:   result,
		Source:   "rules",
	}, nil
}

func (e *Engine) generateLLM(ctx context.Context, rawDiff, branch string, result classify.Result) (Suggestion, error) {
	provider, err := e.newProvider(e.cfg.LLM.Provider, e.cfg.LLM.Model)
	if err != nil {
		return Suggestion{}, fmt.Errorf("creating provider: %w", err)
	}

	payload := rawDiff
	if e.cfg.RedactSecrets {
		payload = redact.Secrets(payload)
	}

	e.log.Debug().Str("provider", provider.Name()).Msg("routing diff to LLM")

	resp, err := provider.Generate(ctx, providers.Request{
		SystemPrompt: providers.SystemPrompt(e.cfg.Style),
		UserPrompt:   providers.UserPrompt(payload, branch),
		MaxTokens:    e.cfg.LLM.MaxTokens,
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("provider generate: %w", err)
	}

	message := cleanResponse(resp.Content)
	if message == "" {
		return Suggestion{}, fmt.Errorf("provider returned an empty message")
	}

	return Suggestion{
		Messages: []string{message},
		Result:   result,
		Source:   provider.Name(),
	}, nil
}

func (e *Engine) useCache() bool {
	return e.cfg.UseCache && e.store != nil
}

func cacheKey(rawDiff, style string) string {
	return diff.Fingerprint(rawDiff) + ":" + style
}

// cleanResponse strips markdown code fences some models wrap output in.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return content
	}
	end := len(lines)
	if strings.TrimSpace(lines[end-1]) == "```" {
		end--
	}
	return strings.TrimSpace(strings.Join(lines[1:end], "\n"))
}
