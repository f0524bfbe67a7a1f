package parser

import "github.com/Abraxas-365/sift/screening/taxonomy"

// PositionLevel classifies seniority of a single position
type PositionLevel string

const (
	LevelEntry  PositionLevel = "entry"
	LevelMid    PositionLevel = "mid"
	LevelSenior PositionLevel = "senior"
)

// SkillLevel classifies proficiency of a technical skill
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// ParsedResume is the structured result of parsing one resume
// document. Fields that could not be resolved hold their zero
// value, never a null marker.
type ParsedResume struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Experience   Experience   `json:"experience"`
	Education    Education    `json:"education"`
	Skills       Skills       `json:"skills"`
	Projects     []Project    `json:"projects"`
	Achievements []string     `json:"achievements"`
}

// PersonalInfo holds identity and contact fields
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// Experience aggregates everything extracted about work history
type Experience struct {
	TotalYears    int        `json:"total_years"`
	Positions     []Position `json:"positions"`
	RelevantRoles []string   `json:"relevant_roles"`
	Industries    []string   `json:"industries"`
}

// Position is a single job entry
type Position struct {
	Title       string        `json:"title"`
	Company     string        `json:"company"`
	Duration    string        `json:"duration"`
	Description string        `json:"description"`
	Level       PositionLevel `json:"level"`
}

// Education holds degrees and certifications
type Education struct {
	Degrees        []Degree        `json:"degrees"`
	Certifications []Certification `json:"certifications"`
}

// Degree is one academic qualification
type Degree struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Certification is one professional certification
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Skills groups technical skills, soft skills and spoken languages
type Skills struct {
	Technical []TechnicalSkill `json:"technical"`
	Soft      []string         `json:"soft"`
	Languages []Language       `json:"languages"`
}

// TechnicalSkill is a taxonomy hit with an inferred level
type TechnicalSkill struct {
	Name     string            `json:"name"`
	Level    SkillLevel        `json:"level"`
	Category taxonomy.Category `json:"category"`
}

// Language is a spoken language with proficiency
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Project is one project entry with its technology list
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}
