package scoring

import (
	"math"
	"strings"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/parser"
)

// Category buckets candidates by match score
type Category string

const (
	CategoryHighlySuitable   Category = "highly-suitable"
	CategoryModerateFit      Category = "moderate-fit"
	CategoryNeedsImprovement Category = "needs-improvement"
)

// Component weights and category thresholds
const (
	skillsWeight     = 40
	experienceWeight = 35
	educationWeight  = 25

	highlySuitableThreshold = 75
	moderateFitThreshold    = 50
)

// JobRequirements describes the position a resume is scored against
type JobRequirements struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceLevel string   `json:"experience_level"`
	Education       string   `json:"education"`
	Location        string   `json:"location"`
}

// ContactInfo is the candidate contact summary carried in the analysis
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

// SkillsSummary lists candidate skills and the required skills they lack
type SkillsSummary struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Missing   []string `json:"missing"`
}

// ExperienceSummary condenses the extracted work history
type ExperienceSummary struct {
	TotalYears    int      `json:"total_years"`
	RelevantRoles []string `json:"relevant_roles"`
	Industries    []string `json:"industries"`
}

// EducationSummary condenses degrees and their requirement fit
type EducationSummary struct {
	Degrees      []string `json:"degrees"`
	Institutions []string `json:"institutions"`
	Relevant     bool     `json:"relevant"`
}

// ResumeAnalysis is the full scored assessment of one resume
// against one job requirement set
type ResumeAnalysis struct {
	CandidateName   string            `json:"candidate_name"`
	ContactInfo     ContactInfo       `json:"contact_info"`
	Skills          SkillsSummary     `json:"skills"`
	Experience      ExperienceSummary `json:"experience"`
	Education       EducationSummary  `json:"education"`
	MatchScore      kernel.MatchScore `json:"match_score"`
	Category        Category          `json:"category"`
	Strengths       []string          `json:"strengths"`
	Weaknesses      []string          `json:"weaknesses"`
	Recommendations []string          `json:"recommendations"`
}

// Engine computes weighted match scores. Stateless and safe for
// concurrent use.
type Engine struct{}

// NewEngine creates a scoring engine
func NewEngine() *Engine {
	return &Engine{}
}

// Score evaluates a parsed resume against job requirements. It is
// total: empty or partially-empty parse results score through the
// same formulas with zero-valued components, never an error.
func (e *Engine) Score(parsed parser.ParsedResume, req JobRequirements) ResumeAnalysis {
	skills := summarizeSkills(parsed, req)
	experience := summarizeExperience(parsed)
	education := summarizeEducation(parsed, req)

	raw := skillsScore(skills, req) + experienceScore(experience, req) + educationScore(education)
	score := kernel.MatchScore(clamp(int(math.Round(raw)), 0, 100))

	strengths, weaknesses, recommendations := generateInsights(skills, experience, education, req)

	return ResumeAnalysis{
		CandidateName: parsed.PersonalInfo.Name,
		ContactInfo: ContactInfo{
			Email:    parsed.PersonalInfo.Email,
			Phone:    parsed.PersonalInfo.Phone,
			LinkedIn: parsed.PersonalInfo.LinkedIn,
		},
		Skills:          skills,
		Experience:      experience,
		Education:       education,
		MatchScore:      score,
		Category:        Categorize(score),
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
	}
}

// Categorize maps a match score to its tier. The 75/50 thresholds
// apply uniformly everywhere a category is derived.
func Categorize(score kernel.MatchScore) Category {
	switch {
	case score >= highlySuitableThreshold:
		return CategoryHighlySuitable
	case score >= moderateFitThreshold:
		return CategoryModerateFit
	default:
		return CategoryNeedsImprovement
	}
}

func summarizeSkills(parsed parser.ParsedResume, req JobRequirements) SkillsSummary {
	technical := make([]string, 0, len(parsed.Skills.Technical))
	for _, s := range parsed.Skills.Technical {
		technical = append(technical, s.Name)
	}
	return SkillsSummary{
		Technical: technical,
		Soft:      parsed.Skills.Soft,
		Missing:   missingSkills(technical, req.RequiredSkills),
	}
}

func summarizeExperience(parsed parser.ParsedResume) ExperienceSummary {
	return ExperienceSummary{
		TotalYears:    parsed.Experience.TotalYears,
		RelevantRoles: parsed.Experience.RelevantRoles,
		Industries:    parsed.Experience.Industries,
	}
}

func summarizeEducation(parsed parser.ParsedResume, req JobRequirements) EducationSummary {
	degrees := make([]string, 0, len(parsed.Education.Degrees))
	institutions := make([]string, 0, len(parsed.Education.Degrees))
	for _, d := range parsed.Education.Degrees {
		degrees = append(degrees, d.Degree)
		institutions = append(institutions, d.Institution)
	}
	return EducationSummary{
		Degrees:      degrees,
		Institutions: institutions,
		Relevant:     educationRelevant(degrees, req.Education),
	}
}

// missingSkills returns the required skills with no case-insensitive
// substring match among the candidate's technical skill names
func missingSkills(technical, required []string) []string {
	var missing []string
	for _, want := range required {
		if !anyContains(technical, want) {
			missing = append(missing, want)
		}
	}
	return missing
}

func anyContains(haystack []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

// skillsScore awards up to 40 points proportional to required-skill
// coverage, counting matches against both technical and soft skill
// names. With no required skills, skill breadth scores instead.
func skillsScore(skills SkillsSummary, req JobRequirements) float64 {
	if len(req.RequiredSkills) > 0 {
		matched := 0
		for _, want := range req.RequiredSkills {
			if anyContains(skills.Technical, want) || anyContains(skills.Soft, want) {
				matched++
			}
		}
		return float64(matched) / float64(len(req.RequiredSkills)) * skillsWeight
	}
	return math.Min(float64(len(skills.Technical)*3+len(skills.Soft)*2), skillsWeight)
}

// experienceScore awards up to 35 points against the required
// level's year thresholds, with small bonuses for relevant roles
// and identified industries
func experienceScore(exp ExperienceSummary, req JobRequirements) float64 {
	level := strings.ToLower(req.ExperienceLevel)
	years := exp.TotalYears

	var score float64
	switch {
	case strings.Contains(level, "entry") || strings.Contains(level, "junior"):
		score = 35
	case strings.Contains(level, "mid") || strings.Contains(level, "intermediate"):
		switch {
		case years >= 2:
			score = 35
		case years >= 1:
			score = 25
		default:
			score = 15
		}
	case strings.Contains(level, "senior") || strings.Contains(level, "lead"):
		switch {
		case years >= 5:
			score = 35
		case years >= 3:
			score = 25
		default:
			score = 10
		}
	default:
		score = math.Min(float64(years)*7, experienceWeight)
	}

	if len(exp.RelevantRoles) > 0 {
		score += 3
	}
	if len(exp.Industries) > 0 {
		score += 2
	}
	return math.Min(score, experienceWeight)
}

// educationScore awards 25 for a requirement-relevant degree, 15
// for any degree, 5 otherwise
func educationScore(edu EducationSummary) float64 {
	switch {
	case edu.Relevant:
		return educationWeight
	case len(edu.Degrees) > 0:
		return 15
	default:
		return 5
	}
}

// educationRelevant matches degree families against the stated
// requirement: bachelor covers B.Tech/BE/BSc style degrees, master
// and doctorate cover their spelled and abbreviated forms
func educationRelevant(degrees []string, requirement string) bool {
	req := strings.ToLower(requirement)
	if req == "" {
		return false
	}
	for _, d := range degrees {
		dl := strings.ToLower(d)
		switch {
		case strings.Contains(req, "bachelor") &&
			(strings.Contains(dl, "bachelor") || strings.Contains(dl, "b.tech") ||
				strings.Contains(dl, "b.e") || strings.Contains(dl, "b.sc")):
			return true
		case strings.Contains(req, "master") &&
			(strings.Contains(dl, "master") || strings.Contains(dl, "m.tech") ||
				strings.Contains(dl, "m.sc") || strings.Contains(dl, "mba")):
			return true
		case (strings.Contains(req, "phd") || strings.Contains(req, "doctorate")) &&
			(strings.Contains(dl, "phd") || strings.Contains(dl, "doctorate")):
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
