package parser

import (
	"regexp"
	"strings"
)

// Degree patterns cover the abbreviated forms (B.Tech, BE, M.Sc,
// ...) and the spelled-out forms, each optionally followed by an
// institution and a year or year range
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([BM]\.?(?:Tech|E|Sc|A|Com)\.?[^,\n]*)\s*,?\s*([^,\n]+?)(?:\s*,?\s*(\d{4}(?:\s*[-–]\s*\d{4})?))?$`),
	regexp.MustCompile(`(?i)((?:Bachelor|Master|PhD|Doctorate)[^,\n]*)\s*,?\s*([^,\n]+?)(?:\s*,?\s*(\d{4}(?:\s*[-–]\s*\d{4})?))?$`),
}

var certificationRe = regexp.MustCompile(`(?i)(?:certification|certified|certificate)(?:\s+in)?[:\s]\s*([^,\n]+)(?:\s*,\s*([^,\n]+?))?(?:\s*,\s*(\d{4}))?$`)

func extractEducation(fullText, sectionText string) Education {
	return Education{
		Degrees:        extractDegrees(sectionText),
		Certifications: extractCertifications(fullText),
	}
}

// extractDegrees runs each degree pattern line by line over the
// education section so one malformed line cannot swallow the rest
func extractDegrees(text string) []Degree {
	var degrees []Degree
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, re := range degreePatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			degrees = append(degrees, Degree{
				Degree:      strings.TrimSpace(m[1]),
				Institution: strings.TrimSpace(m[2]),
				Year:        strings.TrimSpace(m[3]),
			})
			break
		}
	}
	return degrees
}

// extractCertifications matches "Certified in X", "Certificate in
// X" and "Certification: X" style lines anywhere in the document
func extractCertifications(text string) []Certification {
	var certs []Certification
	for _, line := range strings.Split(text, "\n") {
		m := certificationRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		certs = append(certs, Certification{
			Name:   strings.TrimSpace(m[1]),
			Issuer: strings.TrimSpace(m[2]),
			Year:   strings.TrimSpace(m[3]),
		})
	}
	return certs
}
