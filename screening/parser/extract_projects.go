package parser

import (
	"regexp"
	"strings"
)

var (
	projectHeaderRe = regexp.MustCompile(`(?i)^([A-Za-z &-]+(?:System|Management|Platform|Application|Website|App|Tool|API|Dashboard))\b`)
	projectTechRe   = regexp.MustCompile(`(?i)(?:using|with|technologies?)[:\s]\s*([^.]+)`)
	techSplitRe     = regexp.MustCompile(`[,\s]+`)

	achievementPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:secured|won|achieved|awarded)[^.!?\n]+`),
		regexp.MustCompile(`(?i)(?:first|1st|second|2nd|third|3rd)\s+(?:prize|place|position)[^.!?\n]*`),
		regexp.MustCompile(`(?i)(?:certificate|certification|award)[^.!?\n]+`),
	}
)

const maxAchievements = 10

// extractProjects finds project headers (lines ending in a project
// noun like System or Dashboard), folds up to three following lines
// into the description, and splits any "using/with/technologies"
// phrase into a technology list
func extractProjects(text string) []Project {
	lines := strings.Split(text, "\n")
	var projects []Project

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		m := projectHeaderRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		var descParts []string
		var technologies []string
		for j := i + 1; j < len(lines) && j <= i+3; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" || projectHeaderRe.MatchString(next) {
				break
			}
			descParts = append(descParts, next)

			if tm := projectTechRe.FindStringSubmatch(next); tm != nil {
				for _, tech := range techSplitRe.Split(strings.TrimSpace(tm[1]), -1) {
					if tech != "" {
						technologies = append(technologies, tech)
					}
				}
			}
		}

		projects = append(projects, Project{
			Name:         strings.TrimSpace(m[1]),
			Description:  strings.Join(descParts, " "),
			Technologies: technologies,
		})
	}
	return projects
}

// extractAchievements collects award and prize phrases anywhere in
// the document, deduplicated in order of appearance and capped
func extractAchievements(text string) []string {
	var achievements []string
	seen := make(map[string]bool)

	for _, re := range achievementPatterns {
		for _, m := range re.FindAllString(text, -1) {
			m = strings.TrimSpace(m)
			if m == "" || seen[m] {
				continue
			}
			seen[m] = true
			achievements = append(achievements, m)
			if len(achievements) == maxAchievements {
				return achievements
			}
		}
	}
	return achievements
}
