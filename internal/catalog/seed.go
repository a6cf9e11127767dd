package catalog

import "github.com/abhisek/coursefit/internal/subjects"

// DefaultVersion is the version of the built-in reference catalog.
const DefaultVersion = "v1.0.0"

var defaultCourses = []Course{
	{
		ID:            "medicine-uct",
		Name:          "Bachelor of Medicine and Bachelor of Surgery (MBChB)",
		University:    "University of Cape Town",
		Faculty:       "Faculty of Health Sciences",
		Description:   "A 6-year medical degree preparing students to practise as doctors, combining theory with clinical rotations in hospitals and clinics.",
		Duration:      "6 years",
		Qualification: "MBChB",
		MinimumAPS:    42,
		Requirements: Requirements{
			Mathematics:      70,
			PhysicalSciences: 70,
			English:          60,
			EnglishLevel:     subjects.LevelHL,
			Additional: []string{
				"Life Sciences recommended (60%+)",
				"National Benchmark Test (NBT) required",
				"Interview and selection process",
				"Medical fitness certificate required",
			},
		},
		CareerOpportunities:   []string{"General Practitioner", "Specialist Doctor", "Surgeon", "Medical Researcher", "Public Health Officer", "Medical Officer"},
		RelatedInterests:      []string{"helping people", "science", "medicine", "healthcare", "research", "biology"},
		LanguageOfInstruction: []string{"English"},
	},
	{
		ID:            "engineering-wits",
		Name:          "Bachelor of Science in Engineering (Mechanical)",
		University:    "University of the Witwatersrand",
		Faculty:       "Faculty of Engineering and the Built Environment",
		Description:   "A 4-year programme in mechanical engineering covering thermodynamics, fluid mechanics, materials and the design of mechanical systems.",
		Duration:      "4 years",
		Qualification: "BSc Engineering (Mechanical)",
		MinimumAPS:    38,
		Requirements: Requirements{
			Mathematics:      70,
			PhysicalSciences: 70,
			English:          50,
			EnglishLevel:     subjects.LevelHL,
			Additional: []string{
				"National Benchmark Test (NBT) required",
				"Engineering Graphics and Design recommended",
			},
		},
		CareerOpportunities:   []string{"Mechanical Engineer", "Design Engineer", "Manufacturing Engineer", "Project Manager", "Consulting Engineer", "Research and Development Engineer"},
		RelatedInterests:      []string{"mathematics", "science", "technology", "engineering", "design", "mechanics"},
		LanguageOfInstruction: []string{"English"},
	},
	{
		ID:            "computer-science-up",
		Name:          "Bachelor of Science in Computer Science",
		University:    "University of Pretoria",
		Faculty:       "Faculty of Engineering, Built Environment and Information Technology",
		Description:   "Covers programming, algorithms, software engineering, databases, artificial intelligence and networks for a career in the technology industry.",
		Duration:      "3 years",
		Qualification: "BSc Computer Science",
		MinimumAPS:    32,
		Requirements: Requirements{
			Mathematics: 60,
			English:     50,
			Additional: []string{
				"Physical Sciences recommended (50%+)",
				"Information Technology advantageous",
				"Computer Applications Technology acceptable alternative",
			},
		},
		CareerOpportunities:   []string{"Software Developer", "Systems Analyst", "Data Scientist", "Cybersecurity Specialist", "IT Consultant", "Database Administrator"},
		RelatedInterests:      []string{"technology", "computers", "mathematics", "engineering", "design"},
		LanguageOfInstruction: []string{"English", "Afrikaans"},
	},
	{
		ID:            "agricultural-sciences-up",
		Name:          "Bachelor of Science in Agricultural Sciences",
		University:    "University of Pretoria",
		Faculty:       "Faculty of Natural and Agricultural Sciences",
		Description:   "Crop production, animal science, soil science, agricultural economics and sustainable farming for careers in agriculture and food security.",
		Duration:      "4 years",
		Qualification: "BSc Agricultural Sciences",
		MinimumAPS:    28,
		Requirements: Requirements{
			Mathematics:  50,
			LifeSciences: 50,
			English:      50,
			Additional: []string{
				"Agricultural Sciences highly recommended",
				"Physical Sciences recommended",
				"Geography advantageous",
			},
		},
		CareerOpportunities:   []string{"Agricultural Scientist", "Farm Manager", "Agricultural Consultant", "Crop Specialist", "Livestock Specialist", "Agricultural Extension Officer"},
		RelatedInterests:      []string{"agriculture", "environment", "science", "animals", "plants", "sustainability"},
		LanguageOfInstruction: []string{"English", "Afrikaans"},
	},
	{
		ID:            "law-uct",
		Name:          "Bachelor of Laws (LLB)",
		University:    "University of Cape Town",
		Faculty:       "Faculty of Law",
		Description:   "A 4-year undergraduate law degree in constitutional, criminal, contract and human rights law, with practical legal training and moot court.",
		Duration:      "4 years",
		Qualification: "LLB",
		MinimumAPS:    35,
		Requirements: Requirements{
			English:      70,
			EnglishLevel: subjects.LevelHL,
			Additional: []string{
				"Strong language and communication skills required",
				"Critical thinking and analytical abilities",
				"National Benchmark Test (NBT) required",
				"History recommended",
			},
		},
		CareerOpportunities:   []string{"Attorney", "Advocate", "Legal Advisor", "Magistrate", "Corporate Lawyer", "Human Rights Lawyer", "Prosecutor"},
		RelatedInterests:      []string{"law", "human rights", "politics", "helping people", "writing", "research"},
		LanguageOfInstruction: []string{"English"},
	},
	{
		ID:            "business-stellenbosch",
		Name:          "Bachelor of Commerce (BCom)",
		University:    "Stellenbosch University",
		Faculty:       "Faculty of Economic and Management Sciences",
		Description:   "Accounting, finance, marketing, management and economics, with specialisation options and internships for practical business experience.",
		Duration:      "3 years",
		Qualification: "BCom",
		MinimumAPS:    30,
		Requirements: Requirements{
			Mathematics: 50,
			English:     50,
			Additional: []string{
				"Accounting recommended (50%+)",
				"Business Studies advantageous",
				"Economics recommended",
			},
		},
		CareerOpportunities:   []string{"Financial Analyst", "Marketing Manager", "Business Consultant", "Accountant", "Investment Banker", "Entrepreneur", "Management Trainee"},
		RelatedInterests:      []string{"business", "finance", "economics", "leadership", "mathematics"},
		LanguageOfInstruction: []string{"English", "Afrikaans"},
	},
	{
		ID:            "psychology-ukzn",
		Name:          "Bachelor of Social Science in Psychology",
		University:    "University of KwaZulu-Natal",
		Faculty:       "Faculty of Humanities",
		Description:   "Human behaviour, cognition, developmental and social psychology and research methods, with practical training in assessment and counselling.",
		Duration:      "3 years",
		Qualification: "BA Psychology",
		MinimumAPS:    28,
		Requirements: Requirements{
			English:      60,
			EnglishLevel: subjects.LevelHL,
			Additional: []string{
				"Life Sciences recommended (50%+)",
				"Mathematics or Mathematical Literacy acceptable",
				"Strong communication skills required",
			},
		},
		CareerOpportunities:   []string{"Clinical Psychologist", "Counselor", "Human Resources Specialist", "Research Psychologist", "Educational Psychologist", "Industrial Psychologist"},
		RelatedInterests:      []string{"helping people", "psychology", "research", "healthcare", "human rights"},
		LanguageOfInstruction: []string{"English"},
	},
	{
		ID:            "teaching-nwu",
		Name:          "Bachelor of Education (BEd) - Foundation Phase",
		University:    "North-West University",
		Faculty:       "Faculty of Education",
		Description:   "A 4-year teaching degree for the foundation phase (Grades R-3) covering child development, literacy and numeracy teaching, and classroom management.",
		Duration:      "4 years",
		Qualification: "BEd Foundation Phase",
		MinimumAPS:    26,
		Requirements: Requirements{
			English:      50,
			EnglishLevel: subjects.LevelHL,
			Additional: []string{
				"Mathematics or Mathematical Literacy (40%+)",
				"Teaching aptitude assessment",
				"Good communication skills required",
				"Criminal background check required",
			},
		},
		CareerOpportunities:   []string{"Foundation Phase Teacher", "Grade R Teacher", "Educational Specialist", "Curriculum Developer", "School Principal", "Educational Consultant"},
		RelatedInterests:      []string{"teaching", "helping people", "working with children", "education"},
		LanguageOfInstruction: []string{"English", "Afrikaans"},
	},
	{
		ID:            "sports-science-ufs",
		Name:          "Bachelor of Science in Sport Science",
		University:    "University of the Free State",
		Faculty:       "Faculty of Health Sciences",
		Description:   "Exercise physiology, biomechanics, sports psychology, nutrition and management, with practical fitness assessment and performance analysis.",
		Duration:      "3 years",
		Qualification: "BSc Sport Science",
		MinimumAPS:    28,
		Requirements: Requirements{
			Mathematics:  50,
			LifeSciences: 50,
			English:      50,
			Additional: []string{
				"Physical Sciences recommended (50%+)",
				"Physical fitness assessment required",
				"Sports participation advantageous",
			},
		},
		CareerOpportunities:  []string{"Sports Scientist", "Fitness Trainer", "Sports Coach", "Exercise Physiologist", "Sports Manager", "Sports Nutritionist"},
		RelatedInterests:     []string{"sports", "fitness", "health", "science", "helping people"},
		PhysicalRequirements: []string{
			"Good physical fitness required",
			"Interest in sports and exercise",
			"Ability to demonstrate physical activities",
		},
		LanguageOfInstruction: []string{"English", "Afrikaans"},
	},
	{
		ID:            "nursing-wits",
		Name:          "Bachelor of Nursing Science",
		University:    "University of the Witwatersrand",
		Faculty:       "Faculty of Health Sciences",
		Description:   "A 4-year nursing programme in medical-surgical, paediatric, psychiatric and community health nursing with extensive clinical practice.",
		Duration:      "4 years",
		Qualification: "BNSc",
		MinimumAPS:    32,
		Requirements: Requirements{
			Mathematics:  50,
			LifeSciences: 60,
			English:      60,
			EnglishLevel: subjects.LevelHL,
			Additional: []string{
				"Physical Sciences recommended (50%+)",
				"Medical fitness certificate required",
				"Criminal background check required",
				"Interview may be required",
			},
		},
		CareerOpportunities:   []string{"Professional Nurse", "Nurse Manager", "Clinical Nurse Specialist", "Community Health Nurse", "Nurse Educator", "Nurse Researcher"},
		RelatedInterests:      []string{"helping people", "healthcare", "medicine", "science"},
		LanguageOfInstruction: []string{"English"},
	},
}

// reference is the validated built-in catalog, set by init.
var reference *Catalog

func init() {
	c, err := New(DefaultVersion, defaultCourses)
	if err != nil {
		panic(err)
	}
	reference = c
}

// Default returns the built-in reference catalog.
func Default() *Catalog {
	return reference
}
