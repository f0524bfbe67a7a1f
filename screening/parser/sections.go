package parser

import "strings"

// Section identifies a scoped region of a resume
type Section string

const (
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionProjects   Section = "projects"
)

// sectionLabels is the recognized header vocabulary per section.
// More specific labels come first so "work experience" is tried
// before "experience".
var sectionLabels = map[Section][]string{
	SectionExperience: {"work experience", "professional experience", "experience", "employment history"},
	SectionEducation:  {"education", "academic background", "qualifications", "educational background", "educational qualification"},
	SectionProjects:   {"projects", "project", "portfolio", "personal projects", "academic projects"},
}

type sectionMark struct {
	section Section
	line    int
}

// detectSections scans the document in two passes. Pass one finds
// every line that is a recognized section header and records its
// position. Pass two slices the lines between consecutive headers
// into per-section bodies. A document with no recognized headers
// yields an empty map; callers fall back to the whole document.
func detectSections(lines []string) map[Section]string {
	var marks []sectionMark
	for i, line := range lines {
		if s, ok := matchHeader(line); ok {
			marks = append(marks, sectionMark{section: s, line: i})
		}
	}

	sections := make(map[Section]string, len(marks))
	for i, m := range marks {
		end := len(lines)
		if i+1 < len(marks) {
			end = marks[i+1].line
		}
		body := strings.TrimSpace(strings.Join(lines[m.line+1:end], "\n"))
		// First occurrence of a section wins
		if _, seen := sections[m.section]; !seen && body != "" {
			sections[m.section] = body
		}
	}
	return sections
}

// matchHeader reports whether a line is a section header. A header
// is a label from the vocabulary, alone on its line, optionally
// followed by a colon.
func matchHeader(line string) (Section, bool) {
	normalized := strings.ToLower(strings.TrimSpace(line))
	normalized = strings.TrimSuffix(normalized, ":")
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return "", false
	}

	for _, section := range []Section{SectionExperience, SectionEducation, SectionProjects} {
		for _, label := range sectionLabels[section] {
			if normalized == label {
				return section, true
			}
		}
	}
	return "", false
}
