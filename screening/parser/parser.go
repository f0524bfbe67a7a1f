package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/Abraxas-365/sift/pkg/logx"
	"github.com/Abraxas-365/sift/screening/taxonomy"
)

// Parser turns raw resume text into a ParsedResume. It holds no
// per-parse state, so a single instance is safe for concurrent use.
type Parser struct {
	tax *taxonomy.Taxonomy
	now func() time.Time
}

// Option configures a Parser
type Option func(*Parser)

// WithClock overrides the clock used to resolve open-ended date
// ranges like "2020 - present"
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// New creates a parser bound to a skill taxonomy
func New(tax *taxonomy.Taxonomy, opts ...Option) *Parser {
	p := &Parser{tax: tax, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var (
	spaceRunRe = regexp.MustCompile(`[^\S\n]+`)
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// normalize collapses runs of spaces and multiple blank lines while
// preserving line structure, which the extractors depend on
func normalize(text string) string {
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Parse extracts every supported field from raw resume text. It
// never fails: a field that cannot be extracted is returned as its
// zero value, and a panicking extractor is isolated so one bad
// field cannot abort the whole parse.
func (p *Parser) Parse(rawText string) ParsedResume {
	text := normalize(rawText)
	lines := strings.Split(text, "\n")
	sections := detectSections(lines)

	// Section-scoped extractors fall back to the full document when
	// the resume has no recognizable headers
	scoped := func(s Section) string {
		if body, ok := sections[s]; ok {
			return body
		}
		return text
	}

	return ParsedResume{
		PersonalInfo: guard("personal_info", func() PersonalInfo {
			return extractPersonalInfo(text, lines)
		}),
		Experience: guard("experience", func() Experience {
			return p.extractExperience(text, scoped(SectionExperience))
		}),
		Education: guard("education", func() Education {
			return extractEducation(text, scoped(SectionEducation))
		}),
		Skills: guard("skills", func() Skills {
			return extractSkills(text, p.tax)
		}),
		Projects: guard("projects", func() []Project {
			return extractProjects(scoped(SectionProjects))
		}),
		Achievements: guard("achievements", func() []string {
			return extractAchievements(text)
		}),
	}
}

// guard runs one extractor in isolation, converting a panic into
// the field's zero value
func guard[T any](field string, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			logx.Warnf("resume extractor %s recovered from panic: %v", field, r)
			var zero T
			out = zero
		}
	}()
	return fn()
}
