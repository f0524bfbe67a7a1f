package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var jobTitleKeywords = []string{
	"developer", "engineer", "manager", "analyst", "specialist", "coordinator",
	"intern", "associate", "lead", "director", "designer", "consultant",
	"administrator", "architect", "scientist", "researcher", "ambassador",
}

// jobTitleSynonyms maps a standard role name to the variations
// candidates write; hits populate relevantRoles
var jobTitleSynonyms = []struct {
	Standard   string
	Variations []string
}{
	{"Software Developer", []string{
		"software engineer", "programmer", "developer", "software dev",
		"full stack developer", "backend developer", "frontend developer",
	}},
	{"Data Scientist", []string{
		"data analyst", "data engineer", "ml engineer", "ai specialist",
	}},
	{"Product Manager", []string{
		"product owner", "pm", "product lead",
	}},
	{"DevOps Engineer", []string{
		"devops specialist", "site reliability engineer", "sre", "platform engineer",
	}},
	{"UI/UX Designer", []string{
		"user experience designer", "user interface designer", "ux designer", "ui designer",
	}},
}

var industryVocabulary = []string{
	"technology", "healthcare", "finance", "education", "marketing", "consulting",
	"retail", "manufacturing", "telecommunications", "automotive", "aerospace",
	"e-commerce", "fintech", "edtech", "advertising", "media", "gaming",
}

var industryPatterns = compileWordPatterns(industryVocabulary)

// positionLevelIndicators are checked in order; the first level
// with an indicator present in title+description wins
var positionLevelIndicators = []struct {
	Level      PositionLevel
	Indicators []string
}{
	{LevelEntry, []string{"intern", "junior", "trainee", "graduate", "entry level", "0-2 years"}},
	{LevelMid, []string{"mid level", "intermediate", "associate", "2-5 years", "3-7 years"}},
	{LevelSenior, []string{"senior", "lead", "principal", "staff", "architect", "5+ years", "7+ years"}},
}

var (
	yearRangeRe = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`)
	durationRe  = regexp.MustCompile(`(?i)((?:[A-Za-z]{3,9}\.?\s+)?\d{4}\s*[-–]\s*(?:(?:[A-Za-z]{3,9}\.?\s+)?\d{4}|present|current))`)
	titleAtRe   = regexp.MustCompile(`(?i)^(.*?)\s+at\s+(.*)$`)
	bulletRe    = regexp.MustCompile(`\s*[•·]\s*`)
	anyYearRe   = regexp.MustCompile(`\d{4}`)
)

func (p *Parser) extractExperience(fullText, sectionText string) Experience {
	return Experience{
		TotalYears:    p.totalYears(fullText),
		Positions:     extractPositions(sectionText),
		RelevantRoles: extractRelevantRoles(fullText),
		Industries:    extractIndustries(fullText),
	}
}

// totalYears sums max(0, end-start) over every YYYY-YYYY/present
// range anywhere in the document. Overlapping ranges double-count;
// the aggregate is a coarse optimistic estimate, not a timeline.
func (p *Parser) totalYears(text string) int {
	currentYear := p.now().Year()
	total := 0
	for _, m := range yearRangeRe.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if y, err := strconv.Atoi(m[2]); err == nil {
			end = y
		}
		if end > start {
			total += end - start
		}
	}
	return total
}

// extractPositions walks the experience section line by line. A
// line containing a job-title keyword opens a position; up to four
// following lines without a year or another title are folded into
// its description.
func extractPositions(text string) []Position {
	lines := strings.Split(text, "\n")
	var positions []Position

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || !isJobTitleLine(line) {
			continue
		}

		title, company, duration := splitPositionHeader(line)

		var descParts []string
		for j := i + 1; j < len(lines) && j <= i+4; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" || isJobTitleLine(next) || anyYearRe.MatchString(next) {
				break
			}
			descParts = append(descParts, next)
		}
		description := strings.Join(descParts, " ")

		positions = append(positions, Position{
			Title:       title,
			Company:     company,
			Duration:    duration,
			Description: description,
			Level:       inferPositionLevel(title, description),
		})
	}
	return positions
}

// splitPositionHeader pulls the date range out of a header line,
// then splits the remainder into title and company on " at " or a
// bullet separator
func splitPositionHeader(line string) (title, company, duration string) {
	duration = strings.TrimSpace(durationRe.FindString(line))
	rest := strings.TrimSpace(durationRe.ReplaceAllString(line, ""))

	if m := titleAtRe.FindStringSubmatch(rest); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), duration
	}
	if parts := bulletRe.Split(rest, 2); len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), duration
	}
	return rest, "", duration
}

func isJobTitleLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range jobTitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func inferPositionLevel(title, description string) PositionLevel {
	combined := strings.ToLower(title + " " + description)
	for _, group := range positionLevelIndicators {
		for _, indicator := range group.Indicators {
			if strings.Contains(combined, indicator) {
				return group.Level
			}
		}
	}
	return LevelMid
}

func extractRelevantRoles(text string) []string {
	var roles []string
	for _, entry := range jobTitleSynonyms {
		for _, variation := range entry.Variations {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(variation) + `\b`)
			if re.MatchString(text) {
				roles = append(roles, entry.Standard)
				break
			}
		}
	}
	return roles
}

func extractIndustries(text string) []string {
	var industries []string
	for i, re := range industryPatterns {
		if re.MatchString(text) {
			industries = append(industries, industryVocabulary[i])
		}
	}
	return industries
}
