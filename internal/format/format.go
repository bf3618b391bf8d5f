package format

import (
	"fmt"
	"strings"

	"github.com/dshills/autocommit/internal/classify"
)

// Style selects a commit-message rendering.
type Style string

const (
	StyleConventional Style = "conventional"
	StyleShort        Style = "short"
	StyleVerbose      Style = "verbose"
)

// Styles lists every supported style.
func Styles() []Style {
	return []Style{StyleConventional, StyleShort, StyleVerbose}
}

// Valid reports whether s names a supported style.
func Valid(s Style) bool {
	switch s {
	case StyleConventional, StyleShort, StyleVerbose:
		return true
	}
	return false
}

// Render produces the commit message for a classification in the given
// style. Unknown styles are a programming error on the caller's side.
func Render(res classify.Result, style Style) (string, error) {
	switch style {
	case StyleConventional:
		return header(res), nil
	case StyleShort:
		if res.Scope != "" {
			return fmt.Sprintf("%s in %s", res.Description, res.Scope), nil
		}
		return res.Description, nil
	case StyleVerbose:
		var b strings.Builder
		b.WriteString(header(res))
		if res.Body != "" {
			b.WriteString("\n\nChanged files:\n")
			b.WriteString(res.Body)
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("unsupported style: %s", style)
	}
}

func header(res classify.Result) string {
	if res.Scope != "" {
		return fmt.Sprintf("%s(%s): %s", res.Type, res.Scope, res.Description)
	}
	return fmt.Sprintf("%s: %s", res.Type, res.Description)
}
