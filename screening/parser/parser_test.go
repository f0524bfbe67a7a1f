package parser

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Abraxas-365/sift/screening/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "Jane Doe\njane.doe@example.com\n+91 9876543210\n\nTechnical skill:\n• Python(Advanced)\n• SQL(Intermediate)\n\nExperience:\nSoftware Engineer at Acme Corp  Jan 2020 - Present\nBuilt backend services."

func testParser() *Parser {
	fixed := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	return New(taxonomy.Default(), WithClock(func() time.Time { return fixed }))
}

func TestParse_SampleResume(t *testing.T) {
	p := testParser()

	parsed := p.Parse(sampleResume)

	assert.Equal(t, "Jane Doe", parsed.PersonalInfo.Name)
	assert.Equal(t, "jane.doe@example.com", parsed.PersonalInfo.Email)
	assert.Equal(t, "+919876543210", parsed.PersonalInfo.Phone)

	levels := make(map[string]SkillLevel)
	for _, s := range parsed.Skills.Technical {
		levels[s.Name] = s.Level
	}
	assert.Equal(t, SkillAdvanced, levels["Python"])
	assert.Equal(t, SkillIntermediate, levels["SQL"])

	require.NotEmpty(t, parsed.Experience.Positions)
	assert.Equal(t, "Software Engineer", parsed.Experience.Positions[0].Title)
	assert.Equal(t, "Acme Corp", parsed.Experience.Positions[0].Company)
	assert.Greater(t, parsed.Experience.TotalYears, 0)
}

func TestParse_Idempotent(t *testing.T) {
	p := testParser()

	first := p.Parse(sampleResume)
	second := p.Parse(sampleResume)

	assert.Equal(t, first, second)
}

func TestParse_NeverPanics(t *testing.T) {
	p := testParser()

	rng := rand.New(rand.NewSource(42))
	garbage := make([]byte, 10000)
	for i := range garbage {
		garbage[i] = byte(rng.Intn(256))
	}

	for name, input := range map[string]string{
		"empty":        "",
		"single char":  "x",
		"random bytes": string(garbage),
	} {
		assert.NotPanics(t, func() { p.Parse(input) }, name)
	}
}

func TestParse_EmptyInputYieldsEmptyResult(t *testing.T) {
	p := testParser()

	parsed := p.Parse("")

	assert.Empty(t, parsed.PersonalInfo.Name)
	assert.Empty(t, parsed.PersonalInfo.Email)
	assert.Zero(t, parsed.Experience.TotalYears)
	assert.Empty(t, parsed.Experience.Positions)
	assert.Empty(t, parsed.Skills.Technical)
	assert.Empty(t, parsed.Projects)
	assert.Empty(t, parsed.Achievements)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"simple", []string{"Jane Doe", "jane@example.com"}, "Jane Doe"},
		{"skips contact lines", []string{"jane@example.com", "+91 9876543210", "Jane Doe"}, "Jane Doe"},
		{"skips headings", []string{"RESUME", "Jane Doe"}, "Jane Doe"},
		{"initials accepted", []string{"Thanush S"}, "Thanush S"},
		{"too many words", []string{"one two three four five"}, ""},
		{"lowercase rejected", []string{"jane doe"}, ""},
		{"none found", []string{"EXPERIENCE", "2020 - 2023"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractName(tt.lines))
		})
	}
}

func TestExtractPhone_PriorityOrder(t *testing.T) {
	// Indian mobile wins over the generic international pattern
	assert.Equal(t, "+919876543210", extractPhone("call +91 9876543210 or +1 555 123 4567"))
	assert.Equal(t, "+15551234567", extractPhone("call +1 555 123 4567"))
	assert.Empty(t, extractPhone("no numbers here"))
}

func TestExtractLocation(t *testing.T) {
	assert.Equal(t, "Chennai", extractLocation("Location: Chennai"))
	assert.Equal(t, "Mumbai", extractLocation("lives near Mumbai airport"))
	assert.Empty(t, extractLocation("remote worker"))
}

func TestDetectSections(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"",
		"Work Experience:",
		"Software Engineer at Acme",
		"Shipped things",
		"",
		"Education",
		"B.Tech, Some University, 2019",
		"",
		"Projects:",
		"Inventory Management System",
	}

	sections := detectSections(lines)

	assert.Contains(t, sections[SectionExperience], "Software Engineer at Acme")
	assert.Contains(t, sections[SectionEducation], "B.Tech")
	assert.Contains(t, sections[SectionProjects], "Inventory Management System")
	assert.NotContains(t, sections[SectionExperience], "B.Tech")
}

func TestTotalYears(t *testing.T) {
	p := testParser()

	assert.Equal(t, 3, p.totalYears("Acme 2018 - 2021"))
	// present resolves against the injected clock (2026)
	assert.Equal(t, 6, p.totalYears("Acme 2020 - present"))
	// overlapping ranges double-count
	assert.Equal(t, 6, p.totalYears("2018-2021 and 2018 – 2021"))
	// inverted ranges contribute nothing
	assert.Equal(t, 0, p.totalYears("2021 - 2018"))
	assert.Equal(t, 0, p.totalYears("no dates at all"))
}

func TestExtractPositions_LevelInference(t *testing.T) {
	text := "Senior Engineer at BigCo 2015 - 2020\nLed the platform team\n\nIntern Developer at SmallCo 2014 - 2015\nLearned the ropes"

	positions := extractPositions(text)

	require.Len(t, positions, 2)
	assert.Equal(t, LevelSenior, positions[0].Level)
	assert.Equal(t, LevelEntry, positions[1].Level)
}

func TestExtractRelevantRolesAndIndustries(t *testing.T) {
	text := "Worked as a backend developer in the fintech industry, then as an SRE"

	roles := extractRelevantRoles(text)
	assert.Contains(t, roles, "Software Developer")
	assert.Contains(t, roles, "DevOps Engineer")

	assert.Equal(t, []string{"fintech"}, extractIndustries(text))
}

func TestExtractEducation(t *testing.T) {
	section := "B.Tech Computer Science, Anna University, 2019\nMaster of Science, MIT, 2021"

	degrees := extractDegrees(section)

	require.Len(t, degrees, 2)
	assert.Contains(t, degrees[0].Degree, "B.Tech")
	assert.Equal(t, "2019", degrees[0].Year)
	assert.Contains(t, degrees[1].Degree, "Master")
}

func TestExtractCertifications(t *testing.T) {
	text := "Certified in Kubernetes Administration\nCertification: AWS Solutions Architect, Amazon, 2023"

	certs := extractCertifications(text)

	require.Len(t, certs, 2)
	assert.Equal(t, "Kubernetes Administration", certs[0].Name)
	assert.Equal(t, "AWS Solutions Architect", certs[1].Name)
	assert.Equal(t, "2023", certs[1].Year)
}

func TestExtractProjects(t *testing.T) {
	text := "Inventory Management System\nTracks warehouse stock in real time\nBuilt using React, PostgreSQL\n\nWeather Dashboard\nShows forecasts"

	projects := extractProjects(text)

	require.Len(t, projects, 2)
	assert.Equal(t, "Inventory Management System", projects[0].Name)
	assert.Contains(t, projects[0].Technologies, "React")
	assert.Contains(t, projects[0].Technologies, "PostgreSQL")
	assert.Equal(t, "Weather Dashboard", projects[1].Name)
}

func TestExtractAchievements(t *testing.T) {
	text := "Won first prize at the national hackathon.\nSecured second place in a coding contest.\nWon first prize at the national hackathon."

	achievements := extractAchievements(text)

	assert.LessOrEqual(t, len(achievements), 10)
	// Deduplicated
	counts := make(map[string]int)
	for _, a := range achievements {
		counts[a]++
	}
	for a, n := range counts {
		assert.Equal(t, 1, n, a)
	}
	assert.NotEmpty(t, achievements)
}

func TestExtractLanguages(t *testing.T) {
	languages := extractLanguages("English - fluent, Hindi, and some French: basic")

	byName := make(map[string]string)
	for _, l := range languages {
		byName[l.Name] = l.Proficiency
	}
	assert.Equal(t, "fluent", byName["English"])
	assert.Equal(t, "intermediate", byName["Hindi"])
	assert.Equal(t, "basic", byName["French"])
}
