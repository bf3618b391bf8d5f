// Package gitio shells out to git for the handful of operations the tool
// needs: reading the staged diff and branch name, staging, committing, and
// pushing. Errors carry git's stderr for diagnosis.
package gitio
