package objective

import "sort"

// SkillCategory classifies a trending skill
type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillEmerging  SkillCategory = "emerging"
)

// Demand grades current market demand for a skill
type Demand string

const (
	DemandHigh     Demand = "high"
	DemandVeryHigh Demand = "very-high"
	DemandCritical Demand = "critical"
)

// TrendingSkill is a market-trend annotated skill used by the
// content generators; it plays no part in match scoring
type TrendingSkill struct {
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category"`
	Demand      Demand        `json:"demand"`
	Growth      int           `json:"growth"`
	Industries  []string      `json:"industries"`
	Description string        `json:"description"`
}

var trendingSkills = []TrendingSkill{
	// AI & Machine Learning
	{Name: "Artificial Intelligence", Category: SkillTechnical, Demand: DemandCritical, Growth: 85, Industries: []string{"Tech", "Healthcare", "Finance"}, Description: "AI development and implementation"},
	{Name: "Machine Learning", Category: SkillTechnical, Demand: DemandCritical, Growth: 78, Industries: []string{"Tech", "E-commerce", "Automotive"}, Description: "ML model development and deployment"},
	{Name: "Large Language Models", Category: SkillTechnical, Demand: DemandVeryHigh, Growth: 95, Industries: []string{"Tech", "Content", "Education"}, Description: "LLM fine-tuning and applications"},
	{Name: "Prompt Engineering", Category: SkillTechnical, Demand: DemandVeryHigh, Growth: 120, Industries: []string{"Tech", "Marketing", "Content"}, Description: "AI prompt optimization and design"},

	// Cloud & DevOps
	{Name: "Cloud Computing", Category: SkillTechnical, Demand: DemandCritical, Growth: 65, Industries: []string{"Tech", "Enterprise", "Startups"}, Description: "Cloud infrastructure and services"},
	{Name: "Kubernetes", Category: SkillTechnical, Demand: DemandVeryHigh, Growth: 70, Industries: []string{"Tech", "DevOps", "Enterprise"}, Description: "Container orchestration"},
	{Name: "DevSecOps", Category: SkillTechnical, Demand: DemandVeryHigh, Growth: 82, Industries: []string{"Tech", "Security", "Finance"}, Description: "Security-integrated development operations"},
	{Name: "Infrastructure as Code", Category: SkillTechnical, Demand: DemandHigh, Growth: 75, Industries: []string{"Tech", "DevOps", "Cloud"}, Description: "Automated infrastructure management"},

	// Data & Analytics
	{Name: "Data Science", Category: SkillTechnical, Demand: DemandCritical, Growth: 68, Industries: []string{"Tech", "Healthcare", "Finance"}, Description: "Advanced data analysis and insights"},
	{Name: "Data Engineering", Category: SkillTechnical, Demand: DemandVeryHigh, Growth: 72, Industries: []string{"Tech", "Data", "Analytics"}, Description: "Data pipeline and infrastructure"},
	{Name: "Real-time Analytics", Category: SkillTechnical, Demand: DemandHigh, Growth: 88, Industries: []string{"Tech", "E-commerce", "Gaming"}, Description: "Live data processing and analysis"},

	// Development
	{Name: "Full-Stack Development", Category: SkillTechnical, Demand: DemandCritical, Growth: 55, Industries: []string{"Tech", "Startups", "E-commerce"}, Description: "End-to-end web development"},
	{Name: "React/Next.js", Category: SkillTechnical, Demand: DemandVeryHigh, Growth: 60, Industries: []string{"Tech", "Web", "Mobile"}, Description: "Modern frontend frameworks"},
	{Name: "Node.js", Category: SkillTechnical, Demand: DemandHigh, Growth: 58, Industries: []string{"Tech", "Backend", "API"}, Description: "Server-side JavaScript development"},
	{Name: "TypeScript", Category: SkillTechnical, Demand: DemandVeryHigh, Growth: 75, Industries: []string{"Tech", "Web", "Enterprise"}, Description: "Type-safe JavaScript development"},
	{Name: "Rust", Category: SkillTechnical, Demand: DemandHigh, Growth: 92, Industries: []string{"Tech", "Systems", "Blockchain"}, Description: "Systems programming language"},
	{Name: "Go", Category: SkillTechnical, Demand: DemandHigh, Growth: 70, Industries: []string{"Tech", "Cloud", "Microservices"}, Description: "Concurrent programming language"},

	// Emerging Technologies
	{Name: "Blockchain Development", Category: SkillTechnical, Demand: DemandHigh, Growth: 65, Industries: []string{"Fintech", "Web3", "Gaming"}, Description: "Decentralized application development"},
	{Name: "Quantum Computing", Category: SkillEmerging, Demand: DemandHigh, Growth: 110, Industries: []string{"Research", "Tech", "Defense"}, Description: "Quantum algorithm development"},
	{Name: "Edge Computing", Category: SkillTechnical, Demand: DemandHigh, Growth: 78, Industries: []string{"IoT", "Tech", "Automotive"}, Description: "Distributed computing at network edge"},
	{Name: "AR/VR Development", Category: SkillTechnical, Demand: DemandHigh, Growth: 85, Industries: []string{"Gaming", "Education", "Healthcare"}, Description: "Immersive technology development"},

	// Cybersecurity
	{Name: "Cybersecurity", Category: SkillTechnical, Demand: DemandCritical, Growth: 73, Industries: []string{"Security", "Finance", "Healthcare"}, Description: "Information security and protection"},
	{Name: "Ethical Hacking", Category: SkillTechnical, Demand: DemandVeryHigh, Growth: 80, Industries: []string{"Security", "Consulting", "Government"}, Description: "Penetration testing and security assessment"},
	{Name: "Zero Trust Security", Category: SkillTechnical, Demand: DemandVeryHigh, Growth: 95, Industries: []string{"Security", "Enterprise", "Cloud"}, Description: "Modern security architecture"},

	// Soft Skills
	{Name: "AI Collaboration", Category: SkillSoft, Demand: DemandVeryHigh, Growth: 100, Industries: []string{"All"}, Description: "Working effectively with AI tools"},
	{Name: "Cross-functional Leadership", Category: SkillSoft, Demand: DemandCritical, Growth: 45, Industries: []string{"All"}, Description: "Leading diverse teams and projects"},
	{Name: "Data-Driven Decision Making", Category: SkillSoft, Demand: DemandVeryHigh, Growth: 60, Industries: []string{"All"}, Description: "Using data to guide strategic decisions"},
	{Name: "Digital Transformation", Category: SkillSoft, Demand: DemandHigh, Growth: 55, Industries: []string{"Enterprise", "Consulting", "Management"}, Description: "Leading organizational digital change"},
	{Name: "Remote Team Management", Category: SkillSoft, Demand: DemandHigh, Growth: 50, Industries: []string{"All"}, Description: "Managing distributed teams effectively"},
}

// fieldIndustries maps a professional field to the trend industries
// considered relevant for it
var fieldIndustries = map[Field][]string{
	FieldAIML:                {"Tech", "AI", "Data"},
	FieldDataScience:         {"Tech", "Data", "Analytics"},
	FieldCybersecurity:       {"Security", "Tech"},
	FieldDevOpsCloud:         {"Cloud", "DevOps", "Tech"},
	FieldSoftwareDevelopment: {"Tech", "Web", "Mobile"},
	FieldGeneralTech:         {"Tech"},
}

func skillRelevantToField(skill TrendingSkill, field Field) bool {
	relevant, ok := fieldIndustries[field]
	if !ok {
		relevant = fieldIndustries[FieldGeneralTech]
	}
	for _, industry := range skill.Industries {
		for _, r := range relevant {
			if industry == r {
				return true
			}
		}
	}
	return false
}

func sortByGrowthDesc(skills []TrendingSkill) {
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Growth > skills[j].Growth
	})
}

// TrendingSkillsForField returns the trending skills relevant to a
// field, ordered by growth descending
func TrendingSkillsForField(field Field) []TrendingSkill {
	var out []TrendingSkill
	for _, s := range trendingSkills {
		if skillRelevantToField(s, field) {
			out = append(out, s)
		}
	}
	sortByGrowthDesc(out)
	return out
}

// AllTrendingSkills returns every trending skill ordered by growth
// descending
func AllTrendingSkills() []TrendingSkill {
	out := make([]TrendingSkill, len(trendingSkills))
	copy(out, trendingSkills)
	sortByGrowthDesc(out)
	return out
}
