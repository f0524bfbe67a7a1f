package objective

import (
	"strings"

	"github.com/Abraxas-365/sift/pkg/logx"
)

// ProfileInput is the normalized profile view the generator works
// from; callers map their own profile shapes onto it
type ProfileInput struct {
	FullName            string
	CareerObjective     string
	ProfessionalSummary string
	TechnicalSkills     []string
	SoftSkills          []string
	Experience          []RoleSummary
	Projects            []ProjectSummary
}

// RoleSummary is one past role, enough for field and level detection
type RoleSummary struct {
	Title       string
	Description string
}

// ProjectSummary is one project, used only for field detection
type ProjectSummary struct {
	Name        string
	Description string
}

type experienceLevel int

const (
	levelEntry experienceLevel = iota
	levelMid
	levelSenior
)

// Generator produces career objective text from profile data. The
// output is deterministic for identical inputs.
type Generator struct{}

// NewGenerator creates a career objective generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate synthesizes a career objective for a profile, optionally
// steered toward a target job title and description. Any internal
// failure degrades to a generic sentence built from the profile's
// first name.
func (g *Generator) Generate(profile ProfileInput, jobTitle, jobDescription string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			logx.Warnf("objective generation recovered from panic: %v", r)
			out = fallbackObjective(profile)
		}
	}()

	field := g.DetectField(profile, jobTitle, jobDescription)
	level := inferExperienceLevel(profile)

	tpl, ok := fieldTemplates[field]
	if !ok {
		tpl = fieldTemplates[FieldGeneralTech]
	}

	userSkills := append(append([]string{}, profile.TechnicalSkills...), profile.SoftSkills...)
	trending := relevantTrendingSkills(field)
	primary := combineSkills(userSkills, trending, 4)
	emerging := firstN(tpl.EmergingSkills, 2)

	text := tpl.Templates[level]
	text = strings.Replace(text, "{primarySkills}", strings.Join(primary, ", "), 1)
	text = strings.Replace(text, "{emergingSkills}", strings.Join(emerging, " and "), 1)
	return text
}

// DetectField classifies the profile, job title and description
// into a professional field
func (g *Generator) DetectField(profile ProfileInput, jobTitle, jobDescription string) Field {
	var sb strings.Builder
	sb.WriteString(jobTitle)
	sb.WriteString(" ")
	sb.WriteString(jobDescription)
	sb.WriteString(" ")
	sb.WriteString(profile.CareerObjective)
	sb.WriteString(" ")
	sb.WriteString(profile.ProfessionalSummary)
	for _, r := range profile.Experience {
		sb.WriteString(" ")
		sb.WriteString(r.Title)
		sb.WriteString(" ")
		sb.WriteString(r.Description)
	}
	for _, p := range profile.Projects {
		sb.WriteString(" ")
		sb.WriteString(p.Name)
		sb.WriteString(" ")
		sb.WriteString(p.Description)
	}
	return detectField(sb.String())
}

// inferExperienceLevel derives seniority from the number of roles
// and the presence of leadership titles
func inferExperienceLevel(profile ProfileInput) experienceLevel {
	leadership := false
	for _, r := range profile.Experience {
		title := strings.ToLower(r.Title)
		if strings.Contains(title, "lead") || strings.Contains(title, "senior") || strings.Contains(title, "manager") {
			leadership = true
			break
		}
	}

	switch {
	case len(profile.Experience) >= 5 || leadership:
		return levelSenior
	case len(profile.Experience) >= 2:
		return levelMid
	default:
		return levelEntry
	}
}

// relevantTrendingSkills returns the top three field-relevant
// trending skill names by growth
func relevantTrendingSkills(field Field) []string {
	ranked := TrendingSkillsForField(field)
	names := make([]string, 0, 3)
	for _, s := range ranked {
		names = append(names, s.Name)
		if len(names) == 3 {
			break
		}
	}
	return names
}

// combineSkills merges user skills (first three, highest priority)
// with trending skills, deduplicated, capped at limit
func combineSkills(userSkills, trending []string, limit int) []string {
	combined := make([]string, 0, 3+len(trending))
	combined = append(combined, firstN(userSkills, 3)...)
	combined = append(combined, trending...)
	seen := make(map[string]bool, len(combined))
	var out []string
	for _, s := range combined {
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

func fallbackObjective(profile ProfileInput) string {
	name := "Professional"
	if fields := strings.Fields(profile.FullName); len(fields) > 0 {
		name = fields[0]
	}
	return "Dedicated " + name + " seeking to leverage technical expertise and innovative thinking to contribute to cutting-edge projects while continuously learning and growing in a dynamic technology environment."
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
