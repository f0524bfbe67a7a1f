package scoring

import (
	"testing"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/parser"
	"github.com/Abraxas-365/sift/screening/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func technicalSkills(names ...string) []parser.TechnicalSkill {
	skills := make([]parser.TechnicalSkill, len(names))
	for i, n := range names {
		skills[i] = parser.TechnicalSkill{
			Name:     n,
			Level:    parser.SkillIntermediate,
			Category: taxonomy.CategoryProgrammingLanguages,
		}
	}
	return skills
}

func TestScore_MissingSkillsAndPartialMatch(t *testing.T) {
	e := NewEngine()
	parsed := parser.ParsedResume{
		Skills: parser.Skills{Technical: technicalSkills("Python")},
	}
	req := JobRequirements{RequiredSkills: []string{"Python", "React"}}

	analysis := e.Score(parsed, req)

	assert.Equal(t, []string{"React"}, analysis.Skills.Missing)
	// half the required skills matched: 40 * 0.5 = 20 skill points,
	// plus 0 experience (no level, 0 years) and 5 education points
	assert.Equal(t, kernel.MatchScore(25), analysis.MatchScore)
}

func TestScore_EmptyResume(t *testing.T) {
	e := NewEngine()

	analysis := e.Score(parser.ParsedResume{}, JobRequirements{})

	assert.True(t, analysis.MatchScore.IsValid())
	assert.Equal(t, CategoryNeedsImprovement, analysis.Category)
	assert.NotEmpty(t, analysis.Strengths)
	assert.NotEmpty(t, analysis.Weaknesses)
	assert.NotEmpty(t, analysis.Recommendations)
}

func TestScore_SeniorLevelWithLittleExperience(t *testing.T) {
	_ = NewEngine()
	parsed := parser.ParsedResume{
		Experience: parser.Experience{TotalYears: 1},
	}
	req := JobRequirements{ExperienceLevel: "senior"}

	score := experienceScore(summarizeExperience(parsed), req)

	assert.Equal(t, float64(10), score)
}

func TestExperienceScore_Thresholds(t *testing.T) {
	tests := []struct {
		name  string
		level string
		years int
		roles []string
		want  float64
	}{
		{"entry always full", "entry", 0, nil, 35},
		{"junior alias", "Junior Developer", 0, nil, 35},
		{"mid with 2 years", "mid", 2, nil, 35},
		{"mid with 1 year", "mid-level", 1, nil, 25},
		{"mid with none", "intermediate", 0, nil, 15},
		{"senior with 5", "senior", 5, nil, 35},
		{"senior with 3", "lead", 3, nil, 25},
		{"senior with 1", "senior", 1, nil, 10},
		{"unspecified scales by years", "", 3, nil, 21},
		{"unspecified caps at 35", "", 10, nil, 35},
		{"role bonus capped", "entry", 0, []string{"Software Developer"}, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := ExperienceSummary{TotalYears: tt.years, RelevantRoles: tt.roles}
			got := experienceScore(exp, JobRequirements{ExperienceLevel: tt.level})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSkillsScore_FallbackWithoutRequirements(t *testing.T) {
	skills := SkillsSummary{
		Technical: []string{"Python", "Go"},
		Soft:      []string{"communication"},
	}

	// 2*3 + 1*2 = 8
	assert.Equal(t, float64(8), skillsScore(skills, JobRequirements{}))

	many := SkillsSummary{Technical: make([]string, 20)}
	assert.Equal(t, float64(40), skillsScore(many, JobRequirements{}))
}

func TestEducationScore(t *testing.T) {
	assert.Equal(t, float64(25), educationScore(EducationSummary{
		Degrees: []string{"B.Tech"}, Relevant: true,
	}))
	assert.Equal(t, float64(15), educationScore(EducationSummary{
		Degrees: []string{"Diploma in Arts"},
	}))
	assert.Equal(t, float64(5), educationScore(EducationSummary{}))
}

func TestEducationRelevant(t *testing.T) {
	assert.True(t, educationRelevant([]string{"B.Tech Computer Science"}, "Bachelor's degree"))
	assert.True(t, educationRelevant([]string{"Master of Science"}, "master"))
	assert.True(t, educationRelevant([]string{"PhD in Physics"}, "PhD preferred"))
	assert.False(t, educationRelevant([]string{"B.Tech"}, "Master's degree"))
	assert.False(t, educationRelevant(nil, "Bachelor's degree"))
	assert.False(t, educationRelevant([]string{"B.Tech"}, ""))
}

func TestCategorize_ThresholdBoundaries(t *testing.T) {
	assert.Equal(t, CategoryHighlySuitable, Categorize(75))
	assert.Equal(t, CategoryHighlySuitable, Categorize(100))
	assert.Equal(t, CategoryModerateFit, Categorize(74))
	assert.Equal(t, CategoryModerateFit, Categorize(50))
	assert.Equal(t, CategoryNeedsImprovement, Categorize(49))
	assert.Equal(t, CategoryNeedsImprovement, Categorize(0))
}

func TestScore_AlwaysBounded(t *testing.T) {
	e := NewEngine()
	parsed := parser.ParsedResume{
		Skills: parser.Skills{
			Technical: technicalSkills("Python", "Go", "React", "Docker", "AWS", "SQL"),
			Soft:      []string{"communication", "leadership", "teamwork"},
		},
		Experience: parser.Experience{
			TotalYears:    40,
			RelevantRoles: []string{"Software Developer"},
			Industries:    []string{"technology"},
		},
		Education: parser.Education{
			Degrees: []parser.Degree{{Degree: "B.Tech", Institution: "IIT"}},
		},
	}
	req := JobRequirements{
		RequiredSkills:  []string{"Python", "Go"},
		ExperienceLevel: "senior",
		Education:       "Bachelor's degree",
	}

	analysis := e.Score(parsed, req)

	assert.True(t, analysis.MatchScore.IsValid())
	assert.Equal(t, kernel.MatchScore(100), analysis.MatchScore)
	assert.Equal(t, CategoryHighlySuitable, analysis.Category)
	assert.Empty(t, analysis.Skills.Missing)
}

func TestScore_CategoryMatchesScore(t *testing.T) {
	e := NewEngine()
	cases := []parser.ParsedResume{
		{},
		{Skills: parser.Skills{Technical: technicalSkills("Python")}},
		{Experience: parser.Experience{TotalYears: 5}},
	}
	for _, parsed := range cases {
		analysis := e.Score(parsed, JobRequirements{RequiredSkills: []string{"Python"}})
		require.Equal(t, Categorize(analysis.MatchScore), analysis.Category)
	}
}

func TestGenerateInsights_RuleFiring(t *testing.T) {
	skills := SkillsSummary{
		Technical: []string{"Python", "Go", "React", "Docker"},
		Missing:   []string{"Kubernetes"},
	}
	exp := ExperienceSummary{TotalYears: 3, RelevantRoles: []string{"Software Developer"}}
	edu := EducationSummary{Degrees: []string{"B.Tech"}, Institutions: []string{"IIT"}, Relevant: true}

	strengths, weaknesses, recommendations := generateInsights(skills, exp, edu, JobRequirements{})

	assert.Contains(t, strengths[0], "4 technologies")
	assert.Contains(t, weaknesses[0], "Kubernetes")
	assert.Contains(t, recommendations[0], "Kubernetes")
}
