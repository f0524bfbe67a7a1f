package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_SynonymsResolveToCanonical(t *testing.T) {
	tax := Default()

	matches := tax.Lookup("Built backend services with js, Node.js and nodejs tooling")

	require.Len(t, matches, 1)
	assert.Equal(t, "JavaScript", matches[0].Canonical)
	assert.Equal(t, CategoryProgrammingLanguages, matches[0].Category)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	tax := Default()

	matches := tax.Lookup("Experienced with PYTHON and PostgreSQL")

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Canonical)
	}
	assert.Contains(t, names, "Python")
	assert.Contains(t, names, "PostgreSQL")
}

func TestLookup_WholeWordOnly(t *testing.T) {
	tax := Default()

	// "going" must not match the Go synonym "go lang", and "pyramid"
	// must not match "py"
	matches := tax.Lookup("going to build a pyramid scheme detector")

	for _, m := range matches {
		assert.NotEqual(t, "Go", m.Canonical)
		assert.NotEqual(t, "Python", m.Canonical)
	}
}

func TestLookup_SymbolEdgedSynonyms(t *testing.T) {
	tax := Default()

	cases := []struct {
		text string
		want string
	}{
		{"Proficient in C++ and Java", "C++"},
		{"Expert C# developer", "C#"},
		{"Built services on .NET", "C#"},
		{"Ten years of C++.", "C++"},
		{"c# at the start of a sentence", "C#"},
	}
	for _, tc := range cases {
		names := make([]string, 0)
		for _, m := range tax.Lookup(tc.text) {
			names = append(names, m.Canonical)
		}
		assert.Contains(t, names, tc.want, "text %q", tc.text)
	}

	// symbol synonyms still respect word edges
	for _, m := range tax.Lookup("libc++abi internals") {
		assert.NotEqual(t, "C++", m.Canonical)
	}
}

func TestLookup_EmptyText(t *testing.T) {
	tax := Default()

	assert.Empty(t, tax.Lookup(""))
}

func TestLookup_DefinitionOrder(t *testing.T) {
	tax := Default()

	matches := tax.Lookup("docker, react and python on my resume")

	require.Len(t, matches, 3)
	assert.Equal(t, "Python", matches[0].Canonical)
	assert.Equal(t, "React", matches[1].Canonical)
	assert.Equal(t, "Docker", matches[2].Canonical)
}

func TestContains(t *testing.T) {
	tax := Default()

	assert.True(t, tax.Contains("shipped with golang", "Go"))
	assert.False(t, tax.Contains("shipped with golang", "Rust"))
	assert.False(t, tax.Contains("anything", "NotASkill"))
}

func TestDefault_SynonymsAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, e := range Default().Entries() {
		for _, syn := range e.Synonyms {
			key := strings.ToLower(syn)
			if prev, ok := seen[key]; ok {
				t.Fatalf("synonym %q maps to both %q and %q", syn, prev, e.Canonical)
			}
			seen[key] = e.Canonical
		}
	}
}

func TestDefault_CoversAllCategories(t *testing.T) {
	cats := make(map[Category]bool)
	for _, e := range Default().Entries() {
		cats[e.Category] = true
	}

	for _, c := range []Category{
		CategoryProgrammingLanguages,
		CategoryWebTechnologies,
		CategoryDatabases,
		CategoryCloudDevOps,
		CategoryDataScienceAI,
	} {
		assert.True(t, cats[c], "category %s has no entries", c)
	}
}
