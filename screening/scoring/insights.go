package scoring

import (
	"fmt"
	"strings"
)

// generateInsights derives strengths, weaknesses and
// recommendations from the summarized resume. Each list always has
// at least one entry; a generic line stands in when no rule fires.
func generateInsights(skills SkillsSummary, exp ExperienceSummary, edu EducationSummary, req JobRequirements) (strengths, weaknesses, recommendations []string) {
	if len(skills.Technical) > 3 {
		strengths = append(strengths, fmt.Sprintf(
			"Strong technical foundation with %d technologies: %s",
			len(skills.Technical), strings.Join(firstN(skills.Technical, 3), ", ")))
	}
	if len(skills.Soft) > 2 {
		strengths = append(strengths, fmt.Sprintf(
			"Well-developed soft skills including %s", strings.Join(firstN(skills.Soft, 3), ", ")))
	}
	if exp.TotalYears > 0 {
		strengths = append(strengths, fmt.Sprintf("%d years of relevant experience", exp.TotalYears))
	}
	if len(exp.RelevantRoles) > 0 {
		strengths = append(strengths, fmt.Sprintf(
			"Relevant role experience: %s", strings.Join(exp.RelevantRoles, ", ")))
	}
	if edu.Relevant && len(edu.Degrees) > 0 {
		institution := "recognized institution"
		if len(edu.Institutions) > 0 && edu.Institutions[0] != "" {
			institution = edu.Institutions[0]
		}
		strengths = append(strengths, fmt.Sprintf(
			"Educational background: %s from %s", edu.Degrees[0], institution))
	}

	if len(skills.Missing) > 0 {
		weaknesses = append(weaknesses, fmt.Sprintf(
			"Missing required skills: %s", strings.Join(firstN(skills.Missing, 3), ", ")))
	}
	if exp.TotalYears < 1 && strings.Contains(strings.ToLower(req.ExperienceLevel), "senior") {
		weaknesses = append(weaknesses, "Limited experience for senior-level position")
	}
	if len(skills.Technical) < 3 {
		weaknesses = append(weaknesses, "Limited technical skill diversity")
	}
	if len(skills.Soft) < 3 {
		weaknesses = append(weaknesses, "Could benefit from more soft skill development")
	}

	if len(skills.Missing) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Develop proficiency in required skills: %s", strings.Join(firstN(skills.Missing, 3), ", ")))
	}
	if exp.TotalYears < 2 {
		recommendations = append(recommendations,
			"Gain more hands-on experience through projects, internships, or volunteer work")
	}
	if len(skills.Technical) < 5 {
		recommendations = append(recommendations,
			"Expand technical skill set with modern industry-relevant technologies")
	}
	if len(skills.Soft) < 4 {
		recommendations = append(recommendations,
			"Develop additional soft skills like leadership, project management, and team collaboration")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Candidate shows potential for growth and development")
	}
	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, "No significant weaknesses identified")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Continue building experience and expanding skill set")
	}
	return strengths, weaknesses, recommendations
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
