package gitio

import (
	"fmt"
	"os/exec"
	"strings"
)

// StagedDiff returns the unified diff of the index vs HEAD.
func StagedDiff() (string, error) {
	out, err := gitOutput("diff", "--cached")
	if err != nil {
		return "", fmt.Errorf("git diff --cached: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// BranchName returns the current branch, or "" on a detached HEAD.
func BranchName() string {
	out, err := gitOutput("branch", "--show-current")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// StageAll stages every change in the working tree.
func StageAll() error {
	if _, err := gitOutput("add", "--all"); err != nil {
		return fmt.Errorf("git add --all: %w", err)
	}
	return nil
}

// Commit records the staged changes with the given message.
func Commit(message string) error {
	if _, err := gitOutput("commit", "-m", message); err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	return nil
}

// Push publishes the current branch to its upstream.
func Push() error {
	if _, err := gitOutput("push"); err != nil {
		return fmt.Errorf("git push: %w", err)
	}
	return nil
}

// InRepository reports whether the working directory is inside a git repo.
func InRepository() bool {
	_, err := gitOutput("rev-parse", "--git-dir")
	return err == nil
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
