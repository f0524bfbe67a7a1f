package objective

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	g := NewGenerator()
	profile := ProfileInput{
		FullName:        "Jane Doe",
		TechnicalSkills: []string{"Python", "TensorFlow"},
		Experience: []RoleSummary{
			{Title: "ML Engineer", Description: "trained models"},
		},
	}

	first := g.Generate(profile, "Machine Learning Engineer", "")
	second := g.Generate(profile, "Machine Learning Engineer", "")

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestGenerate_FillsPlaceholders(t *testing.T) {
	g := NewGenerator()
	profile := ProfileInput{
		FullName:        "Jane Doe",
		TechnicalSkills: []string{"Go", "Docker"},
	}

	out := g.Generate(profile, "", "")

	assert.NotContains(t, out, "{primarySkills}")
	assert.NotContains(t, out, "{emergingSkills}")
	assert.Contains(t, out, "Go")
}

func TestGenerate_EmptyProfileFallsBackToGeneralTech(t *testing.T) {
	g := NewGenerator()

	out := g.Generate(ProfileInput{}, "", "")

	// general-tech entry template, populated from trending skills only
	assert.NotEmpty(t, out)
	assert.NotContains(t, out, "{")
}

func TestDetectField(t *testing.T) {
	g := NewGenerator()
	tests := []struct {
		name     string
		title    string
		desc     string
		expected Field
	}{
		{"ai role", "Machine Learning Engineer", "build deep learning models", FieldAIML},
		{"security role", "Security Analyst", "penetration testing and cybersecurity audits", FieldCybersecurity},
		{"devops role", "Platform Engineer", "kubernetes and cloud infrastructure", FieldDevOpsCloud},
		{"data role", "Data Engineer", "big data analytics pipelines", FieldDataScience},
		{"software role", "Backend Developer", "software programming", FieldSoftwareDevelopment},
		{"nothing matches", "Chef", "fine dining", FieldGeneralTech},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.DetectField(ProfileInput{}, tt.title, tt.desc))
		})
	}
}

func TestInferExperienceLevel(t *testing.T) {
	role := func(title string) RoleSummary { return RoleSummary{Title: title} }

	assert.Equal(t, levelEntry, inferExperienceLevel(ProfileInput{}))
	assert.Equal(t, levelMid, inferExperienceLevel(ProfileInput{
		Experience: []RoleSummary{role("Developer"), role("Developer")},
	}))
	assert.Equal(t, levelSenior, inferExperienceLevel(ProfileInput{
		Experience: []RoleSummary{role("a"), role("b"), role("c"), role("d"), role("e")},
	}))
	// leadership title promotes regardless of count
	assert.Equal(t, levelSenior, inferExperienceLevel(ProfileInput{
		Experience: []RoleSummary{role("Senior Engineer")},
	}))
}

func TestCombineSkills_PrioritizesUserSkills(t *testing.T) {
	combined := combineSkills(
		[]string{"Go", "Rust", "Python", "Java"},
		[]string{"go", "Kubernetes", "Cloud Computing"},
		4,
	)

	// first three user skills lead, trending fills the rest, and the
	// case-insensitive duplicate "go" is dropped
	assert.Equal(t, []string{"Go", "Rust", "Python", "Kubernetes"}, combined)
}

func TestFallbackObjective_UsesFirstName(t *testing.T) {
	out := fallbackObjective(ProfileInput{FullName: "Jane Doe"})
	assert.True(t, strings.HasPrefix(out, "Dedicated Jane "))

	out = fallbackObjective(ProfileInput{})
	assert.True(t, strings.HasPrefix(out, "Dedicated Professional "))
}

func TestTrendingSkillsForField_SortedByGrowth(t *testing.T) {
	skills := TrendingSkillsForField(FieldDevOpsCloud)

	require.NotEmpty(t, skills)
	for i := 1; i < len(skills); i++ {
		assert.GreaterOrEqual(t, skills[i-1].Growth, skills[i].Growth)
	}
	for _, s := range skills {
		assert.True(t, skillRelevantToField(s, FieldDevOpsCloud), s.Name)
	}
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("ai-ml")
	assert.True(t, ok)
	assert.Equal(t, FieldAIML, f)

	_, ok = ParseField("cooking")
	assert.False(t, ok)
}
