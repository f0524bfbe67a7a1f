package parser

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Phone patterns tried in priority order
	phoneIndianRe  = regexp.MustCompile(`(\+91[\s-]?)?[6-9]\d{9}`)
	phoneIntlRe    = regexp.MustCompile(`\+?\d{1,3}[\s-]?\d{3,4}[\s-]?\d{3,4}[\s-]?\d{3,4}`)
	phoneLooseRe   = regexp.MustCompile(`[+]?[\d\s\-()]{10,15}`)
	whitespaceOnly = regexp.MustCompile(`\s+`)

	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/[^\s]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[^\s]+`)

	locationLabelRe = regexp.MustCompile(`(?i)(?:Location|Address|City)[:\s]\s*([^\n]+)`)
	locationPinRe   = regexp.MustCompile(`[A-Za-z ]+,\s*[A-Za-z ]+,\s*\d{6}`)
	locationCityRe  = regexp.MustCompile(`(?i)\b(Bangalore|Mumbai|Delhi|Chennai|Hyderabad|Pune|Kolkata|Ahmedabad|Bengaluru)\b`)
)

// Tokens that disqualify a line from being a candidate name
var nameExcludedTokens = []string{
	"RESUME", "CV", "CURRICULUM", "VITAE", "EMAIL", "PHONE", "ADDRESS",
	"CAREER", "OBJECTIVE", "EDUCATION", "EXPERIENCE", "SKILLS",
	"TECHNICAL", "SOFT",
}

func extractPersonalInfo(text string, lines []string) PersonalInfo {
	return PersonalInfo{
		Name:     extractName(lines),
		Email:    emailRe.FindString(text),
		Phone:    extractPhone(text),
		Location: extractLocation(text),
		LinkedIn: linkedinRe.FindString(text),
		GitHub:   githubRe.FindString(text),
	}
}

// extractName scans the first eight non-empty lines for a
// name-shaped line. The first qualifying line wins; an unresolvable
// name is an empty string.
func extractName(lines []string) string {
	scanned := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if scanned++; scanned > 8 {
			break
		}
		if isNameLine(line) {
			return line
		}
	}
	return ""
}

func isNameLine(line string) bool {
	if len(line) < 2 || len(line) > 50 {
		return false
	}
	// Contact lines and headings are never names
	if strings.ContainsAny(line, "@+") ||
		strings.Contains(strings.ToLower(line), "http") {
		return false
	}
	if r := rune(line[0]); unicode.IsDigit(r) {
		return false
	}

	upper := strings.ToUpper(line)
	for _, token := range nameExcludedTokens {
		if strings.Contains(upper, token) {
			return false
		}
	}

	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !isNameWord(w) {
			return false
		}
	}
	return true
}

// isNameWord accepts alphabetic words that are either a single
// initial or start with an uppercase letter
func isNameWord(w string) bool {
	w = strings.TrimSuffix(w, ".")
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	runes := []rune(w)
	if len(runes) == 1 {
		return true
	}
	return unicode.IsUpper(runes[0])
}

// extractPhone tries the Indian mobile pattern first, then a
// generic international pattern, then a loose punctuation-tolerant
// fallback, returning the first hit with whitespace stripped
func extractPhone(text string) string {
	for _, re := range []*regexp.Regexp{phoneIndianRe, phoneIntlRe, phoneLooseRe} {
		if m := strings.TrimSpace(re.FindString(text)); m != "" {
			return whitespaceOnly.ReplaceAllString(m, "")
		}
	}
	return ""
}

// extractLocation tries an explicit label, then a "City, State,
// PIN" shaped line, then a fixed list of major cities
func extractLocation(text string) string {
	if m := locationLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := locationPinRe.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	if m := locationCityRe.FindString(text); m != "" {
		return m
	}
	return ""
}
