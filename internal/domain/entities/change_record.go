package entities

import "strings"

// ChangeType is the raw status code printed by `git diff --name-status`.
type ChangeType string

const (
	ChangeAdded    ChangeType = "A"
	ChangeModified ChangeType = "M"
	ChangeDeleted  ChangeType = "D"
	ChangeRenamed  ChangeType = "R"
	ChangeCopied   ChangeType = "C"
)

// ChangeRecord is one changed file relative to the parent branch.
type ChangeRecord struct {
	Type ChangeType
	Path string // repository-relative, forward slashes
}

// Is reports whether the record has the given type, ignoring rename/copy scores ("R100").
func (c ChangeRecord) Is(t ChangeType) bool {
	return strings.HasPrefix(string(c.Type), string(t))
}

// TopLevelDir returns the first path segment, the candidate package directory.
func (c ChangeRecord) TopLevelDir() string {
	first, _, _ := strings.Cut(c.Path, "/")
	return first
}

// BaseName returns the final path segment.
func (c ChangeRecord) BaseName() string {
	if idx := strings.LastIndex(c.Path, "/"); idx >= 0 {
		return c.Path[idx+1:]
	}
	return c.Path
}

// ParseNameStatus parses `git diff --name-status` output.
// Lines that do not have exactly two tab-separated fields are skipped.
func ParseNameStatus(output string) []ChangeRecord {
	records := make([]ChangeRecord, 0)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(fields) != 2 { //nolint:mnd // status + path
			continue
		}
		records = append(records, ChangeRecord{Type: ChangeType(fields[0]), Path: fields[1]})
	}
	return records
}
