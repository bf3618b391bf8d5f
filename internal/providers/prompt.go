package providers

import "fmt"

var styleInstructions = map[string]string{
	"conventional": "Use the Conventional Commits format: <type>(<optional-scope>): <description>. Types include: feat, fix, docs, test, refactor, chore, style, perf.",
	"short":        "Create a brief, single-line commit message that describes the change concisely.",
	"verbose":      "Create a detailed commit message with a summary line followed by a blank line and a body explaining what and why.",
}

// SystemPrompt returns the generation instructions for a commit-message style.
func SystemPrompt(style string) string {
	hint, ok := styleInstructions[style]
	if !ok {
		hint = styleInstructions["conventional"]
	}
	return fmt.Sprintf(`You are an expert at writing clear, concise git commit messages.

Rules:
1. %s
2. Be specific about what changed
3. Use present tense ("add" not "added")
4. Don't end with a period
5. Keep the summary under 72 characters
6. Only output the commit message, no explanations

Analyze the diff and generate an appropriate commit message.`, hint)
}

// UserPrompt wraps the diff (and branch context when known) for the model.
func UserPrompt(diff, branch string) string {
	if branch != "" {
		return fmt.Sprintf("Generate a commit message for this diff:\n\n%s\n\nBranch: %s", diff, branch)
	}
	return fmt.Sprintf("Generate a commit message for this diff:\n\n%s", diff)
}
