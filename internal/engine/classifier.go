package engine

import "strings"

// ClassifySubjects maps free-text goals and weak/strong areas onto the AP
// subject catalog by keyword containment. Matches are deduplicated in
// keyword-table order and truncated to the subject cap; when nothing
// matches the default subject set is returned. It never fails.
func ClassifySubjects(goals, weakAreas, strongAreas []string) []string {
	var b strings.Builder
	for _, list := range [][]string{goals, weakAreas, strongAreas} {
		for _, entry := range list {
			b.WriteString(strings.ToLower(entry))
			b.WriteString(" ")
		}
	}
	blob := b.String()

	seen := make(map[string]bool)
	var subjects []string
	for _, kw := range subjectKeywordTable {
		if !strings.Contains(blob, kw.keyword) || seen[kw.subject] {
			continue
		}
		seen[kw.subject] = true
		subjects = append(subjects, kw.subject)
	}

	if len(subjects) == 0 {
		return append([]string(nil), defaultSubjects...)
	}
	if len(subjects) > maxSubjects {
		subjects = subjects[:maxSubjects]
	}
	return subjects
}
