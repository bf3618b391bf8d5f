package redact

import "regexp"

const placeholder = "[REDACTED]"

// rule pairs a detector with its replacement template. Rules that capture a
// key prefix keep it in the output so the diff line stays meaningful to the
// model; only the secret value is blanked.
type rule struct {
	re   *regexp.Regexp
	repl string
}

var rules = []rule{
	// API keys and secrets in assignments: keep the key, blank the value
	{regexp.MustCompile(`(?i)((?:api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?)[A-Za-z0-9/+=_-]{20,}(["']?)`), "${1}" + placeholder + "${2}"},
	{regexp.MustCompile(`(?i)((?:aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?)[A-Za-z0-9/+=]{40}(["']?)`), "${1}" + placeholder + "${2}"},
	{regexp.MustCompile(`(?i)((?:secret|token|password|passwd|credential)\s*[:=]\s*["'])[^"']{8,}(["'])`), "${1}" + placeholder + "${2}"},
	{regexp.MustCompile(`(?i)((?:key|secret|token)\s*[:=]\s*["']?)[0-9a-f]{32,}(["']?)`), "${1}" + placeholder + "${2}"},
	// Bearer tokens: keep the scheme
	{regexp.MustCompile(`(?i)(Bearer\s+)[A-Za-z0-9._-]{20,}`), "${1}" + placeholder},
	// Self-identifying token formats: blank the whole match
	{regexp.MustCompile(`AKIA[0-9A-Z]{16}`), placeholder},
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`), placeholder},
	{regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`), placeholder},
	{regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`), placeholder},
	{regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`), placeholder},
	{regexp.MustCompile(`-----BEGIN\s+(RSA\s+)?PRIVATE KEY-----`), placeholder},
}

// Secrets scrubs secret values from diff text before it leaves the machine.
func Secrets(text string) string {
	result := text
	for _, r := range rules {
		result = r.re.ReplaceAllString(result, r.repl)
	}
	return result
}
