package parser

import (
	"regexp"
	"strings"

	"github.com/Abraxas-365/sift/screening/taxonomy"
)

// softSkillVocabulary is the fixed soft-skill dictionary, matched
// whole-word and case-insensitive
var softSkillVocabulary = []string{
	"communication", "leadership", "teamwork", "problem solving", "time management",
	"project management", "critical thinking", "analytical thinking", "creativity",
	"adaptability", "collaboration", "organization", "presentation skills",
	"interpersonal skills", "decision making", "conflict resolution", "negotiation",
	"customer service", "marketing", "sales", "business development",
}

var softSkillPatterns = compileWordPatterns(softSkillVocabulary)

var languageRe = regexp.MustCompile(
	`(?i)\b(English|Hindi|Tamil|Telugu|Kannada|Malayalam|Bengali|Gujarati|Marathi|French|German|Spanish|Chinese|Japanese)\b(?:\s*[:\-]?\s*(native|fluent|proficient|intermediate|basic|beginner)\b)?`)

func compileWordPatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return patterns
}

func extractSkills(text string, tax *taxonomy.Taxonomy) Skills {
	return Skills{
		Technical: extractTechnicalSkills(text, tax),
		Soft:      extractSoftSkills(text),
		Languages: extractLanguages(text),
	}
}

func extractTechnicalSkills(text string, tax *taxonomy.Taxonomy) []TechnicalSkill {
	matches := tax.Lookup(text)
	skills := make([]TechnicalSkill, 0, len(matches))
	for _, m := range matches {
		skills = append(skills, TechnicalSkill{
			Name:     m.Canonical,
			Level:    inferSkillLevel(text, m.Synonyms),
			Category: m.Category,
		})
	}
	return skills
}

// inferSkillLevel reads a 100-character window around the first
// synonym occurrence and maps level keywords to the level they
// name; no keyword means intermediate
func inferSkillLevel(text string, synonyms []string) SkillLevel {
	ctx := strings.ToLower(skillContext(text, synonyms))
	switch {
	case strings.Contains(ctx, "expert") || strings.Contains(ctx, "senior"):
		return SkillExpert
	case strings.Contains(ctx, "advanced"):
		return SkillAdvanced
	case strings.Contains(ctx, "proficient"):
		return SkillAdvanced
	case strings.Contains(ctx, "basic") || strings.Contains(ctx, "beginner") || strings.Contains(ctx, "learning"):
		return SkillBeginner
	default:
		return SkillIntermediate
	}
}

func skillContext(text string, synonyms []string) string {
	for _, syn := range synonyms {
		re := regexp.MustCompile(`(?i).{0,50}` + regexp.QuoteMeta(syn) + `.{0,50}`)
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func extractSoftSkills(text string) []string {
	var soft []string
	for i, re := range softSkillPatterns {
		if re.MatchString(text) {
			soft = append(soft, softSkillVocabulary[i])
		}
	}
	return soft
}

func extractLanguages(text string) []Language {
	var languages []Language
	seen := make(map[string]bool)
	for _, m := range languageRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		proficiency := strings.ToLower(m[2])
		if proficiency == "" {
			proficiency = "intermediate"
		}
		languages = append(languages, Language{Name: name, Proficiency: proficiency})
	}
	return languages
}
