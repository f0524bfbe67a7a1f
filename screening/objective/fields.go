package objective

import (
	"regexp"
	"strings"
)

// Field is a professional field a profile can be classified into
type Field string

const (
	FieldSoftwareDevelopment Field = "software-development"
	FieldDataScience         Field = "data-science"
	FieldAIML                Field = "ai-ml"
	FieldCybersecurity       Field = "cybersecurity"
	FieldDevOpsCloud         Field = "devops-cloud"
	FieldGeneralTech         Field = "general-tech"
)

// ParseField validates a field name from external input
func ParseField(s string) (Field, bool) {
	switch Field(strings.ToLower(strings.TrimSpace(s))) {
	case FieldSoftwareDevelopment:
		return FieldSoftwareDevelopment, true
	case FieldDataScience:
		return FieldDataScience, true
	case FieldAIML:
		return FieldAIML, true
	case FieldCybersecurity:
		return FieldCybersecurity, true
	case FieldDevOpsCloud:
		return FieldDevOpsCloud, true
	case FieldGeneralTech:
		return FieldGeneralTech, true
	default:
		return "", false
	}
}

// fieldKeywords score profile text per field. Evaluation order is
// the tie-break order: the earlier field wins an equal score.
var fieldKeywords = []struct {
	Field    Field
	Keywords []string
}{
	{FieldAIML, []string{"ai", "machine learning", "artificial intelligence", "llm", "deep learning"}},
	{FieldDataScience, []string{"data scientist", "data engineer", "analytics", "big data", "data science"}},
	{FieldCybersecurity, []string{"security", "cybersecurity", "penetration", "ethical hacking"}},
	{FieldDevOpsCloud, []string{"devops", "cloud", "kubernetes", "infrastructure", "sre"}},
	{FieldSoftwareDevelopment, []string{"developer", "engineer", "programming", "software", "full stack"}},
}

var fieldKeywordPatterns = compileFieldPatterns()

func compileFieldPatterns() map[Field][]*regexp.Regexp {
	patterns := make(map[Field][]*regexp.Regexp, len(fieldKeywords))
	for _, fk := range fieldKeywords {
		compiled := make([]*regexp.Regexp, len(fk.Keywords))
		for i, kw := range fk.Keywords {
			compiled[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		}
		patterns[fk.Field] = compiled
	}
	return patterns
}

// detectField classifies free text into a professional field by
// counting whole-word keyword hits per field. Highest count wins,
// ties break toward the earlier field, zero hits means general-tech.
func detectField(text string) Field {
	best := FieldGeneralTech
	bestScore := 0
	for _, fk := range fieldKeywords {
		score := 0
		for _, re := range fieldKeywordPatterns[fk.Field] {
			if re.MatchString(text) {
				score++
			}
		}
		if score > bestScore {
			best = fk.Field
			bestScore = score
		}
	}
	return best
}
