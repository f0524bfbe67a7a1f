package taxonomy

import (
	"regexp"
	"strings"
)

// Category groups related skills
type Category string

const (
	CategoryProgrammingLanguages Category = "Programming Languages"
	CategoryWebTechnologies      Category = "Web Technologies"
	CategoryDatabases            Category = "Databases"
	CategoryCloudDevOps          Category = "Cloud & DevOps"
	CategoryDataScienceAI        Category = "Data Science & AI"
)

// Entry maps a canonical skill name to the synonyms it is known by
type Entry struct {
	Canonical string
	Category  Category
	Synonyms  []string
}

// Match is a skill found in a piece of text
type Match struct {
	Canonical string
	Category  Category
	Synonyms  []string
}

// Taxonomy is an immutable, pre-compiled skill lookup table.
// Construct one with New or Default and share it freely; lookups
// are safe for concurrent use.
type Taxonomy struct {
	entries  []Entry
	patterns []*regexp.Regexp
}

// New builds a taxonomy from entries, compiling a whole-word
// case-insensitive pattern per entry
func New(entries []Entry) *Taxonomy {
	t := &Taxonomy{
		entries:  entries,
		patterns: make([]*regexp.Regexp, len(entries)),
	}
	for i, e := range entries {
		alts := make([]string, len(e.Synonyms))
		for j, syn := range e.Synonyms {
			alts[j] = wordPattern(syn)
		}
		t.patterns[i] = regexp.MustCompile(`(?i)(?:` + strings.Join(alts, "|") + `)`)
	}
	return t
}

// wordPattern wraps a synonym in whole-word edges. \b only asserts
// next to word characters, so synonyms with symbol edges ("c++",
// "c#", ".net") get an explicit non-word neighbor or string edge
// on that side instead.
func wordPattern(syn string) string {
	quoted := regexp.QuoteMeta(syn)
	left, right := `\b`, `\b`
	if !isWordChar(syn[0]) {
		left = `(?:^|\W)`
	}
	if !isWordChar(syn[len(syn)-1]) {
		right = `(?:\W|$)`
	}
	return left + quoted + right
}

func isWordChar(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// Entries returns the taxonomy contents in definition order
func (t *Taxonomy) Entries() []Entry {
	return t.entries
}

// Lookup finds every skill mentioned in text, deduplicated by
// canonical name and returned in definition order
func (t *Taxonomy) Lookup(text string) []Match {
	var matches []Match
	for i, e := range t.entries {
		if t.patterns[i].MatchString(text) {
			matches = append(matches, Match{
				Canonical: e.Canonical,
				Category:  e.Category,
				Synonyms:  e.Synonyms,
			})
		}
	}
	return matches
}

// Contains reports whether text mentions the given entry
func (t *Taxonomy) Contains(text, canonical string) bool {
	for i, e := range t.entries {
		if e.Canonical == canonical {
			return t.patterns[i].MatchString(text)
		}
	}
	return false
}
