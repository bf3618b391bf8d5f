package classify

import (
	"fmt"
	"path"
	"strings"

	"github.com/dshills/autocommit/internal/diff"
)

// CommitType is a Conventional Commits type.
type CommitType string

const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeDocs     CommitType = "docs"
	TypeTest     CommitType = "test"
	TypeRefactor CommitType = "refactor"
	TypeChore    CommitType = "chore"
	TypeStyle    CommitType = "style"
	TypePerf     CommitType = "perf"
)

// Types lists every commit type the classifier can produce.
func Types() []CommitType {
	return []CommitType{
		TypeFeat, TypeFix, TypeDocs, TypeTest,
		TypeRefactor, TypeChore, TypeStyle, TypePerf,
	}
}

// Result is a fully populated classification. Scope and Body may be empty.
type Result struct {
	Type        CommitType
	Scope       string
	Description string
	Body        string
}

// rule pairs a predicate with the commit type it selects. The chain in
// typeRules is evaluated in order and the first match wins.
type rule struct {
	name    string
	matches func(diff.Summary) bool
	result  CommitType
}

var typeRules = []rule{
	{"all-test-paths", allFiles(isTestPath), TypeTest},
	{"all-doc-paths", allFiles(isDocPath), TypeDocs},
	{"all-config-paths", allFiles(isConfigPath), TypeChore},
	{"fix-keywords", hasKeyword("fix", "bug", "patch"), TypeFix},
	{"refactor-keywords", hasKeyword("refactor", "rename", "restructure"), TypeRefactor},
	{"perf-keywords", hasKeyword("optimize", "optimise", "performance", "speed"), TypePerf},
	{"style-keywords", hasKeyword("format", "lint", "style"), TypeStyle},
	{"net-addition", isNetAddition, TypeFeat},
}

// Classify maps a diff summary to a commit classification. An empty summary
// short-circuits before any rule is evaluated.
func Classify(s diff.Summary) Result {
	if s.Empty() {
		return Result{Type: TypeChore, Description: "no changes"}
	}
	t := commitType(s)
	return Result{
		Type:        t,
		Scope:       inferScope(s.Directories),
		Description: describe(t, s),
		Body:        buildBody(s.Files),
	}
}

func commitType(s diff.Summary) CommitType {
	for _, r := range typeRules {
		if r.matches(s) {
			return r.result
		}
	}
	return TypeChore
}

func allFiles(pred func(string) bool) func(diff.Summary) bool {
	return func(s diff.Summary) bool {
		for _, f := range s.Files {
			if !pred(f.Path) {
				return false
			}
		}
		return true
	}
}

func hasKeyword(words ...string) func(diff.Summary) bool {
	return func(s diff.Summary) bool {
		for _, w := range words {
			if strings.Contains(s.Content, w) {
				return true
			}
		}
		return false
	}
}

func isNetAddition(s diff.Summary) bool {
	if s.TotalAdded <= s.TotalRemoved {
		return false
	}
	for _, f := range s.Files {
		if f.Status == diff.StatusAdded {
			return true
		}
	}
	return false
}

var testSegments = map[string]bool{
	"test": true, "tests": true, "spec": true, "specs": true, "__tests__": true,
}

func isTestPath(p string) bool {
	lower := strings.ToLower(p)
	for _, seg := range strings.Split(path.Dir(lower), "/") {
		if testSegments[seg] {
			return true
		}
	}
	base := path.Base(lower)
	name := strings.TrimSuffix(base, path.Ext(base))
	return strings.HasSuffix(name, "_test") ||
		strings.HasSuffix(name, "_spec") ||
		strings.HasPrefix(name, "test_") ||
		strings.Contains(base, ".test.") ||
		strings.Contains(base, ".spec.")
}

func isDocPath(p string) bool {
	lower := strings.ToLower(p)
	for _, seg := range strings.Split(path.Dir(lower), "/") {
		if seg == "docs" || seg == "doc" {
			return true
		}
	}
	base := path.Base(lower)
	if strings.HasPrefix(base, "readme") || strings.HasPrefix(base, "changelog") {
		return true
	}
	switch path.Ext(base) {
	case ".md", ".rst":
		return true
	}
	return false
}

var configNames = map[string]bool{
	"makefile": true, "dockerfile": true, "go.mod": true, "go.sum": true,
	"package.json": true, "package-lock.json": true, "yarn.lock": true,
	"requirements.txt": true, "pyproject.toml": true, "setup.cfg": true,
	"gemfile": true, "cargo.toml": true,
}

func isConfigPath(p string) bool {
	base := strings.ToLower(path.Base(p))
	if strings.HasPrefix(base, ".") {
		return true // dotfile
	}
	if configNames[base] {
		return true
	}
	switch path.Ext(base) {
	case ".yml", ".yaml", ".toml", ".ini", ".cfg", ".conf":
		return true
	}
	return false
}

// inferScope picks a scope from the changed directories: the single
// directory's last segment, or the last segment of the longest common
// prefix when several directories are touched. Root-level changes and
// directories with nothing in common yield no scope.
func inferScope(dirs []string) string {
	if len(dirs) == 0 {
		return ""
	}
	common := splitDir(dirs[0])
	for _, d := range dirs[1:] {
		common = commonPrefix(common, splitDir(d))
		if len(common) == 0 {
			return ""
		}
	}
	if len(common) == 0 {
		return ""
	}
	return common[len(common)-1]
}

func splitDir(d string) []string {
	if d == "." || d == "" {
		return nil
	}
	return strings.Split(d, "/")
}

func commonPrefix(a, b []string) []string {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return a[:n]
}

// describe builds the short description from a template keyed by commit type
// and the most-changed file. Ties on change volume go to the file that
// appears first in the diff.
func describe(t CommitType, s diff.Summary) string {
	f := dominantFile(s.Files)
	name := baseName(f.Path)
	added := f.Status == diff.StatusAdded

	switch t {
	case TypeFeat:
		if added {
			return "add " + name
		}
		return "add " + name + " support"
	case TypeFix:
		return "fix " + name
	case TypeDocs:
		if added {
			return "add " + name
		}
		return "update " + name
	case TypeTest:
		target := trimTestMarkers(name)
		if added {
			return "add " + target + " tests"
		}
		return "update " + target + " tests"
	case TypeRefactor:
		return "refactor " + name
	case TypePerf:
		return "optimize " + name
	case TypeStyle:
		return "format " + name
	default:
		if f.Status == diff.StatusDeleted {
			return "remove " + name
		}
		return "update " + name
	}
}

func dominantFile(files []diff.FileChange) diff.FileChange {
	best := files[0]
	for _, f := range files[1:] {
		if f.Added+f.Removed > best.Added+best.Removed {
			best = f
		}
	}
	return best
}

func baseName(p string) string {
	base := path.Base(p)
	name := strings.TrimSuffix(base, path.Ext(base))
	if name == "" {
		return base
	}
	return name
}

func trimTestMarkers(name string) string {
	name = strings.TrimSuffix(name, "_test")
	name = strings.TrimSuffix(name, "_spec")
	name = strings.TrimPrefix(name, "test_")
	if name == "" {
		return "unit"
	}
	return name
}

// buildBody lists each file change on its own line with a status marker.
func buildBody(files []diff.FileChange) string {
	var b strings.Builder
	for i, f := range files {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s (+%d, -%d)", statusMarker(f.Status), f.Path, f.Added, f.Removed)
	}
	return b.String()
}

func statusMarker(st diff.Status) string {
	switch st {
	case diff.StatusAdded:
		return "+"
	case diff.StatusDeleted:
		return "-"
	case diff.StatusRenamed:
		return ">"
	default:
		return "*"
	}
}
