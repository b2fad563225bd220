package entities

import "strings"

const (
	unreleasedHeading = "## [Unreleased]"
	h2Prefix          = "## ["
	h3Prefix          = "### "
	bulletPrefix      = "- "

	// ChangelogAdded is the Keep-a-Changelog subsection for new packages.
	ChangelogAdded = "Added"
)

// InsertChangelogEntry adds bullet entries to the given subsection (e.g. "Added")
// of the "## [Unreleased]" section of a Keep-a-Changelog document.
//
// The content is returned unchanged when there is no Unreleased section. A
// missing subsection is created right below the Unreleased heading; an existing
// one receives the entries after its last bullet.
func InsertChangelogEntry(content, subsection string, entries []string) string {
	if len(entries) == 0 {
		return content
	}

	lines := strings.Split(content, "\n")

	start := indexOf(lines, 0, len(lines), func(l string) bool { return l == unreleasedHeading })
	if start < 0 {
		return content
	}

	end := indexOf(lines, start+1, len(lines), func(l string) bool { return strings.HasPrefix(l, h2Prefix) })
	if end < 0 {
		end = len(lines)
	}

	heading := h3Prefix + subsection
	sub := indexOf(lines, start+1, end, func(l string) bool { return l == heading })
	if sub < 0 {
		block := append([]string{"", heading, ""}, entries...)
		return strings.Join(splice(lines, start+1, block), "\n")
	}

	at := sub
	for i := sub + 1; i < end; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, bulletPrefix) {
			break
		}
		at = i
	}
	return strings.Join(splice(lines, at+1, entries), "\n")
}

// indexOf returns the first index in [from, to) whose trimmed line satisfies match, or -1.
func indexOf(lines []string, from, to int, match func(string) bool) int {
	for i := from; i < to; i++ {
		if match(strings.TrimSpace(lines[i])) {
			return i
		}
	}
	return -1
}

func splice(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	return append(result, lines[at:]...)
}
