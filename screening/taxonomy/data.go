package taxonomy

// Default returns the built-in skill taxonomy. Every synonym list
// includes the variations candidates actually write, so "nodejs",
// "node.js" and "js" all resolve to JavaScript.
func Default() *Taxonomy {
	return New(defaultEntries)
}

var defaultEntries = []Entry{
	// Programming Languages
	{Canonical: "JavaScript", Category: CategoryProgrammingLanguages, Synonyms: []string{"js", "javascript", "node.js", "nodejs", "ecmascript"}},
	{Canonical: "Python", Category: CategoryProgrammingLanguages, Synonyms: []string{"python", "py", "python3"}},
	{Canonical: "Java", Category: CategoryProgrammingLanguages, Synonyms: []string{"java", "openjdk", "oracle java"}},
	{Canonical: "C++", Category: CategoryProgrammingLanguages, Synonyms: []string{"c++", "cpp", "c plus plus"}},
	{Canonical: "C#", Category: CategoryProgrammingLanguages, Synonyms: []string{"c#", "csharp", "c sharp", ".net"}},
	{Canonical: "C", Category: CategoryProgrammingLanguages, Synonyms: []string{"c programming", "c language"}},
	{Canonical: "PHP", Category: CategoryProgrammingLanguages, Synonyms: []string{"php", "php7", "php8"}},
	{Canonical: "TypeScript", Category: CategoryProgrammingLanguages, Synonyms: []string{"typescript", "ts"}},
	{Canonical: "Go", Category: CategoryProgrammingLanguages, Synonyms: []string{"golang", "go lang"}},
	{Canonical: "Rust", Category: CategoryProgrammingLanguages, Synonyms: []string{"rust lang"}},
	{Canonical: "Kotlin", Category: CategoryProgrammingLanguages, Synonyms: []string{"kotlin"}},
	{Canonical: "Swift", Category: CategoryProgrammingLanguages, Synonyms: []string{"swift"}},
	{Canonical: "Ruby", Category: CategoryProgrammingLanguages, Synonyms: []string{"ruby", "ruby on rails"}},
	{Canonical: "Scala", Category: CategoryProgrammingLanguages, Synonyms: []string{"scala"}},
	{Canonical: "Perl", Category: CategoryProgrammingLanguages, Synonyms: []string{"perl"}},
	{Canonical: "R", Category: CategoryProgrammingLanguages, Synonyms: []string{"r programming", "r language"}},
	{Canonical: "MATLAB", Category: CategoryProgrammingLanguages, Synonyms: []string{"matlab"}},

	// Web Technologies
	{Canonical: "HTML", Category: CategoryWebTechnologies, Synonyms: []string{"html", "html5", "markup"}},
	{Canonical: "CSS", Category: CategoryWebTechnologies, Synonyms: []string{"css", "css3", "styling", "stylesheets"}},
	{Canonical: "React", Category: CategoryWebTechnologies, Synonyms: []string{"react", "reactjs", "react.js"}},
	{Canonical: "Angular", Category: CategoryWebTechnologies, Synonyms: []string{"angular", "angularjs"}},
	{Canonical: "Vue.js", Category: CategoryWebTechnologies, Synonyms: []string{"vue", "vuejs", "vue.js"}},
	{Canonical: "Express.js", Category: CategoryWebTechnologies, Synonyms: []string{"express", "expressjs"}},
	{Canonical: "Django", Category: CategoryWebTechnologies, Synonyms: []string{"django"}},
	{Canonical: "Flask", Category: CategoryWebTechnologies, Synonyms: []string{"flask"}},
	{Canonical: "Laravel", Category: CategoryWebTechnologies, Synonyms: []string{"laravel"}},
	{Canonical: "Spring", Category: CategoryWebTechnologies, Synonyms: []string{"spring framework", "spring boot"}},
	{Canonical: "Bootstrap", Category: CategoryWebTechnologies, Synonyms: []string{"bootstrap", "twitter bootstrap"}},
	{Canonical: "jQuery", Category: CategoryWebTechnologies, Synonyms: []string{"jquery"}},
	{Canonical: "Sass", Category: CategoryWebTechnologies, Synonyms: []string{"sass", "scss"}},
	{Canonical: "Less", Category: CategoryWebTechnologies, Synonyms: []string{"less css"}},

	// Databases
	{Canonical: "SQL", Category: CategoryDatabases, Synonyms: []string{"sql", "structured query language"}},
	{Canonical: "MySQL", Category: CategoryDatabases, Synonyms: []string{"mysql"}},
	{Canonical: "PostgreSQL", Category: CategoryDatabases, Synonyms: []string{"postgresql", "postgres"}},
	{Canonical: "MongoDB", Category: CategoryDatabases, Synonyms: []string{"mongodb", "mongo"}},
	{Canonical: "SQLite", Category: CategoryDatabases, Synonyms: []string{"sqlite"}},
	{Canonical: "Oracle", Category: CategoryDatabases, Synonyms: []string{"oracle db", "oracle database"}},
	{Canonical: "SQL Server", Category: CategoryDatabases, Synonyms: []string{"sql server", "mssql"}},
	{Canonical: "Redis", Category: CategoryDatabases, Synonyms: []string{"redis"}},
	{Canonical: "Cassandra", Category: CategoryDatabases, Synonyms: []string{"cassandra"}},
	{Canonical: "DynamoDB", Category: CategoryDatabases, Synonyms: []string{"dynamodb"}},
	{Canonical: "Firebase", Category: CategoryDatabases, Synonyms: []string{"firebase"}},

	// Cloud & DevOps
	{Canonical: "AWS", Category: CategoryCloudDevOps, Synonyms: []string{"amazon web services", "aws"}},
	{Canonical: "Azure", Category: CategoryCloudDevOps, Synonyms: []string{"microsoft azure", "azure"}},
	{Canonical: "Google Cloud", Category: CategoryCloudDevOps, Synonyms: []string{"gcp", "google cloud platform"}},
	{Canonical: "Docker", Category: CategoryCloudDevOps, Synonyms: []string{"docker", "containerization"}},
	{Canonical: "Kubernetes", Category: CategoryCloudDevOps, Synonyms: []string{"kubernetes", "k8s"}},
	{Canonical: "Jenkins", Category: CategoryCloudDevOps, Synonyms: []string{"jenkins", "ci/cd"}},
	{Canonical: "Git", Category: CategoryCloudDevOps, Synonyms: []string{"git", "version control", "github", "gitlab"}},
	{Canonical: "Terraform", Category: CategoryCloudDevOps, Synonyms: []string{"terraform"}},
	{Canonical: "Ansible", Category: CategoryCloudDevOps, Synonyms: []string{"ansible"}},
	{Canonical: "Linux", Category: CategoryCloudDevOps, Synonyms: []string{"linux", "unix"}},

	// Data Science & AI
	{Canonical: "Machine Learning", Category: CategoryDataScienceAI, Synonyms: []string{"ml", "machine learning", "artificial intelligence", "ai"}},
	{Canonical: "Deep Learning", Category: CategoryDataScienceAI, Synonyms: []string{"deep learning", "neural networks"}},
	{Canonical: "Data Analysis", Category: CategoryDataScienceAI, Synonyms: []string{"data analysis", "data analytics"}},
	{Canonical: "Pandas", Category: CategoryDataScienceAI, Synonyms: []string{"pandas"}},
	{Canonical: "NumPy", Category: CategoryDataScienceAI, Synonyms: []string{"numpy"}},
	{Canonical: "TensorFlow", Category: CategoryDataScienceAI, Synonyms: []string{"tensorflow"}},
	{Canonical: "PyTorch", Category: CategoryDataScienceAI, Synonyms: []string{"pytorch"}},
	{Canonical: "Scikit-learn", Category: CategoryDataScienceAI, Synonyms: []string{"scikit-learn", "sklearn"}},
	{Canonical: "Tableau", Category: CategoryDataScienceAI, Synonyms: []string{"tableau"}},
	{Canonical: "Power BI", Category: CategoryDataScienceAI, Synonyms: []string{"power bi", "powerbi"}},
}
