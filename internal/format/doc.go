// Package format renders a classification into commit-message text.
//
// Three styles are supported:
//   - conventional — "type(scope): description" per Conventional Commits
//   - short        — "description in scope"
//   - verbose      — conventional header plus a "Changed files:" body
//
// Rendering is total over valid classifications; an unknown style is a
// caller defect and fails fast with an error rather than being tolerated.
package format
