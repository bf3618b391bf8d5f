package diff

import (
	"path"
	"sort"
	"strings"
)

// Status describes what happened to a file in a diff.
type Status string

const (
	StatusAdded    Status = "added"
	StatusModified Status = "modified"
	StatusDeleted  Status = "deleted"
	StatusRenamed  Status = "renamed"
)

// FileChange holds the per-file counts extracted from one diff section.
type FileChange struct {
	Path    string
	OldPath string
	Status  Status
	Added   int
	Removed int
}

// Summary is the structured form of a raw diff. Files preserve diff order.
// Content carries the lowercased text of every changed line so keyword
// scans downstream stay a pure function of the Summary.
type Summary struct {
	Files        []FileChange
	TotalAdded   int
	TotalRemoved int
	Directories  []string
	Content      string
}

// Empty reports whether the summary was produced from a diff with no file
// sections. Callers use it as the "nothing to commit" sentinel.
func (s Summary) Empty() bool {
	return len(s.Files) == 0
}

// Parse converts raw unified-diff text into a Summary. It never fails:
// malformed fragments are skipped and partial sections are kept with
// whatever was extracted so far.
func Parse(raw string) Summary {
	var (
		files   []FileChange
		content []string
	)

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			oldPath, newPath, ok := parseHeaderPaths(line)
			if !ok {
				continue
			}
			fc := FileChange{Path: newPath, OldPath: oldPath, Status: StatusModified}
			if oldPath != newPath {
				fc.Status = StatusRenamed
			}
			files = append(files, fc)

		case strings.HasPrefix(line, "new file mode"):
			if len(files) > 0 {
				files[len(files)-1].Status = StatusAdded
			}

		case strings.HasPrefix(line, "deleted file mode"):
			if len(files) > 0 {
				last := &files[len(files)-1]
				last.Status = StatusDeleted
				last.Path = last.OldPath
			}

		case strings.HasPrefix(line, "rename from "):
			if len(files) > 0 {
				files[len(files)-1].OldPath = strings.TrimPrefix(line, "rename from ")
				files[len(files)-1].Status = StatusRenamed
			}

		case strings.HasPrefix(line, "rename to "):
			if len(files) > 0 {
				files[len(files)-1].Path = strings.TrimPrefix(line, "rename to ")
				files[len(files)-1].Status = StatusRenamed
			}

		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			// hunk file markers, not content

		case strings.HasPrefix(line, "+"):
			if len(files) > 0 {
				files[len(files)-1].Added++
			}
			content = append(content, strings.ToLower(line[1:]))

		case strings.HasPrefix(line, "-"):
			if len(files) > 0 {
				files[len(files)-1].Removed++
			}
			content = append(content, strings.ToLower(line[1:]))
		}
	}

	s := Summary{
		Files:   files,
		Content: strings.Join(content, "\n"),
	}
	for _, f := range files {
		s.TotalAdded += f.Added
		s.TotalRemoved += f.Removed
	}
	s.Directories = collectDirectories(files)
	return s
}

// parseHeaderPaths extracts old and new paths from a "diff --git a/X b/Y"
// line. Paths with embedded spaces are not recoverable from this header
// alone; such lines are skipped and the section picked up from rename
// markers if present.
func parseHeaderPaths(line string) (oldPath, newPath string, ok bool) {
	parts := strings.Fields(line)
	if len(parts) < 4 {
		return "", "", false
	}
	oldPath = strings.TrimPrefix(parts[2], "a/")
	newPath = strings.TrimPrefix(parts[3], "b/")
	return oldPath, newPath, true
}

func collectDirectories(files []FileChange) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		d := path.Dir(f.Path)
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	sort.Strings(dirs)
	return dirs
}
