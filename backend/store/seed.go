package store

import "eduvibe/backend/models"

// catalog is the demo course dataset. It is inserted at startup and treated
// as read-only afterwards.
var catalog = []models.Course{
	{
		ID:       "course-001",
		Title:    "AI & Machine Learning Professional",
		Category: "Technology",
		Duration: "12 weeks",
		Price:    499,
		Rating:   4.9,
		Enrolled: 3847,
		Badge:    "BESTSELLER",
		Description: "Master neural networks, model deployment, and MLOps " +
			"practices used at top engineering companies.",
		Instructor: models.Instructor{Name: "Dr. Priya Sharma", Title: "Lead AI Research Scientist", Avatar: "PS"},
		Modules: []models.CourseModule{
			{Title: "Foundations of Machine Learning", Lessons: 8},
			{Title: "Deep Neural Networks", Lessons: 10},
			{Title: "Model Training & Evaluation", Lessons: 7},
			{Title: "MLOps & Deployment", Lessons: 9},
		},
		VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
	},
	{
		ID:       "course-002",
		Title:    "Strategic Project Management (PMP Prep)",
		Category: "Business",
		Duration: "8 weeks",
		Price:    349,
		Rating:   4.8,
		Enrolled: 5120,
		Badge:    "TOP RATED",
		Description: "An industry-aligned PMP prep track designed to help you " +
			"pass the exam and apply skills on the job.",
		Instructor: models.Instructor{Name: "James O'Brien", Title: "PMP, Senior Program Manager", Avatar: "JO"},
		Modules: []models.CourseModule{
			{Title: "Project Initiation & Scope", Lessons: 6},
			{Title: "Planning & Scheduling", Lessons: 8},
			{Title: "Risk Management", Lessons: 5},
			{Title: "Exam Preparation & Mock Tests", Lessons: 10},
		},
		VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	},
	{
		ID:       "course-003",
		Title:    "Data Science & Business Intelligence",
		Category: "Data",
		Duration: "10 weeks",
		Price:    429,
		Rating:   4.7,
		Enrolled: 4290,
		Description: "Python, SQL, Power BI, and statistical modeling — " +
			"everything to become a data-driven decision maker.",
		Instructor: models.Instructor{Name: "Ananya Krishnan", Title: "Data Scientist, ex-Google", Avatar: "AK"},
		Modules: []models.CourseModule{
			{Title: "Python for Data Science", Lessons: 9},
			{Title: "SQL & Database Fundamentals", Lessons: 7},
			{Title: "Statistical Analysis", Lessons: 6},
			{Title: "Power BI & Dashboards", Lessons: 8},
		},
		VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
	},
	{
		ID:       "course-004",
		Title:    "Cloud Architecture (AWS & Azure)",
		Category: "Technology",
		Duration: "6 weeks",
		Price:    379,
		Rating:   4.8,
		Enrolled: 2980,
		Description: "Design and deploy scalable cloud infrastructure aligned " +
			"with AWS Solutions Architect and Azure certs.",
		Instructor: models.Instructor{Name: "Carlos Martinez", Title: "AWS Certified Solutions Architect", Avatar: "CM"},
		Modules: []models.CourseModule{
			{Title: "Cloud Fundamentals", Lessons: 5},
			{Title: "AWS Core Services", Lessons: 8},
			{Title: "Azure & Hybrid Cloud", Lessons: 7},
			{Title: "Security & Cost Optimization", Lessons: 6},
		},
		VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
	},
	{
		ID:       "course-005",
		Title:    "Executive Communication & Influence",
		Category: "Leadership",
		Duration: "5 weeks",
		Price:    299,
		Rating:   4.9,
		Enrolled: 6120,
		Badge:    "POPULAR",
		Description: "Master the soft skills that separate individual " +
			"contributors from leaders — negotiation, presence, and persuasion.",
		Instructor: models.Instructor{Name: "Sarah Mitchell", Title: "Executive Coach, ex-McKinsey", Avatar: "SM"},
		Modules: []models.CourseModule{
			{Title: "Executive Presence", Lessons: 4},
			{Title: "Storytelling & Narrative", Lessons: 5},
			{Title: "Negotiation Tactics", Lessons: 6},
			{Title: "Leading in the C-Suite", Lessons: 4},
		},
		VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/SubaruOutbackOnStreetAndDirt.mp4",
	},
	{
		ID:       "course-006",
		Title:    "Cybersecurity Risk & Compliance",
		Category: "Data",
		Duration: "7 weeks",
		Price:    449,
		Rating:   4.7,
		Enrolled: 2210,
		Description: "Understand threat modeling, regulatory frameworks " +
			"(GDPR, ISO 27001), and building organizational resilience.",
		Instructor: models.Instructor{Name: "Lena Fischer", Title: "CISO & Cybersecurity Consultant", Avatar: "LF"},
		Modules: []models.CourseModule{
			{Title: "Threat Modeling & Attack Surfaces", Lessons: 7},
			{Title: "GDPR & ISO 27001 Frameworks", Lessons: 6},
			{Title: "Incident Response", Lessons: 5},
			{Title: "Security Architecture", Lessons: 8},
		},
		VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
	},
}

// quizAnswerKeys maps courseId -> questionId -> expected choice letter.
var quizAnswerKeys = map[string]map[string]string{
	"course-001": {"q1": "b", "q2": "c", "q3": "a", "q4": "b", "q5": "d"},
	"course-002": {"q1": "a", "q2": "a", "q3": "c", "q4": "b", "q5": "c"},
	"course-003": {"q1": "c", "q2": "b", "q3": "a", "q4": "d", "q5": "b"},
	"course-004": {"q1": "b", "q2": "c", "q3": "b", "q4": "a", "q5": "c"},
	"course-005": {"q1": "a", "q2": "d", "q3": "c", "q4": "b", "q5": "a"},
	"course-006": {"q1": "d", "q2": "b", "q3": "a", "q4": "c", "q5": "b"},
}
