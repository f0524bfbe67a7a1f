package objective

// fieldTemplate holds the three objective templates for one field,
// indexed by experience level (entry, mid, senior), plus the
// emerging skills woven into them
type fieldTemplate struct {
	Templates      [3]string
	KeySkills      []string
	EmergingSkills []string
}

var fieldTemplates = map[Field]fieldTemplate{
	FieldSoftwareDevelopment: {
		Templates: [3]string{
			"Seeking a dynamic software development role where I can leverage {primarySkills} and emerging technologies like {emergingSkills} to build scalable, innovative solutions that drive business growth and user engagement.",
			"Passionate software engineer with expertise in {primarySkills} seeking to contribute to cutting-edge projects involving {emergingSkills}, while continuously advancing my technical skills in a collaborative environment.",
			"Dedicated to creating robust, high-performance applications using {primarySkills} and staying ahead of industry trends through {emergingSkills}, aiming to deliver exceptional user experiences and technical excellence.",
		},
		KeySkills:      []string{"Full-Stack Development", "React/Next.js", "Node.js", "TypeScript", "Cloud Computing"},
		EmergingSkills: []string{"AI Collaboration", "Large Language Models", "Edge Computing"},
	},
	FieldDataScience: {
		Templates: [3]string{
			"Aspiring to leverage advanced {primarySkills} and cutting-edge {emergingSkills} to extract meaningful insights from complex datasets, driving data-informed decision making and business strategy.",
			"Data science professional seeking to apply {primarySkills} and emerging {emergingSkills} technologies to solve real-world problems, optimize processes, and unlock hidden patterns in big data.",
			"Committed to advancing the field of data science through {primarySkills} while embracing {emergingSkills} to deliver predictive analytics and machine learning solutions that create measurable business impact.",
		},
		KeySkills:      []string{"Data Science", "Machine Learning", "Data Engineering", "Real-time Analytics", "Cloud Computing"},
		EmergingSkills: []string{"Large Language Models", "Quantum Computing", "AI Collaboration"},
	},
	FieldAIML: {
		Templates: [3]string{
			"Seeking to push the boundaries of artificial intelligence through {primarySkills} and revolutionary {emergingSkills}, developing intelligent systems that transform industries and enhance human capabilities.",
			"AI/ML engineer passionate about implementing {primarySkills} and pioneering {emergingSkills} to create next-generation intelligent applications that solve complex, real-world challenges.",
			"Dedicated to advancing machine intelligence using {primarySkills} while exploring {emergingSkills} to build ethical, scalable AI solutions that positively impact society and drive innovation.",
		},
		KeySkills:      []string{"Artificial Intelligence", "Machine Learning", "Large Language Models", "Data Science", "Prompt Engineering"},
		EmergingSkills: []string{"Quantum Computing", "Edge Computing", "AI Collaboration"},
	},
	FieldCybersecurity: {
		Templates: [3]string{
			"Cybersecurity professional seeking to protect digital assets through {primarySkills} and advanced {emergingSkills}, ensuring robust security postures in an evolving threat landscape.",
			"Committed to safeguarding organizations using {primarySkills} and cutting-edge {emergingSkills}, while staying ahead of emerging cyber threats and implementing proactive security measures.",
			"Security expert dedicated to building resilient systems through {primarySkills} and innovative {emergingSkills}, focusing on zero-trust architectures and comprehensive risk management.",
		},
		KeySkills:      []string{"Cybersecurity", "Ethical Hacking", "Zero Trust Security", "DevSecOps", "Cloud Computing"},
		EmergingSkills: []string{"AI Collaboration", "Quantum Computing", "Edge Computing"},
	},
	FieldDevOpsCloud: {
		Templates: [3]string{
			"DevOps engineer seeking to optimize development lifecycles through {primarySkills} and innovative {emergingSkills}, enabling rapid, reliable software delivery and scalable infrastructure.",
			"Cloud infrastructure specialist passionate about implementing {primarySkills} and emerging {emergingSkills} to build resilient, automated systems that support modern application architectures.",
			"Dedicated to streamlining operations through {primarySkills} while embracing {emergingSkills} to create efficient, secure, and scalable cloud-native solutions.",
		},
		KeySkills:      []string{"DevSecOps", "Kubernetes", "Cloud Computing", "Infrastructure as Code", "Full-Stack Development"},
		EmergingSkills: []string{"Edge Computing", "AI Collaboration", "Zero Trust Security"},
	},
	FieldGeneralTech: {
		Templates: [3]string{
			"Technology professional eager to contribute technical expertise in {primarySkills} while exploring {emergingSkills} to drive innovation, solve complex problems, and create impactful solutions.",
			"Seeking a challenging role where I can apply {primarySkills} and stay at the forefront of technology through {emergingSkills}, contributing to projects that shape the future of digital transformation.",
			"Passionate technologist committed to leveraging {primarySkills} and embracing {emergingSkills} to build next-generation solutions that enhance user experiences and drive business success.",
		},
		KeySkills:      []string{"Full-Stack Development", "Cloud Computing", "Data-Driven Decision Making", "Cross-functional Leadership"},
		EmergingSkills: []string{"AI Collaboration", "Digital Transformation", "Large Language Models"},
	},
}
