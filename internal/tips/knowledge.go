package tips

// entry is one piece of resume-writing advice. Context carries extra
// search terms that never appear in the tip text itself, so both the
// keyword index and the embedding retrieval have something to bite on.
type entry struct {
	Text     string
	Category string
	Context  string
	Priority string
}

var knowledgeBase = []entry{
	// Writing style and language.
	{
		Text:     "Start each bullet point with a strong action verb like 'Led', 'Developed', 'Implemented', 'Achieved', 'Architected'",
		Category: "writing_style",
		Context:  "professional resume action verbs",
		Priority: "high",
	},
	{
		Text:     "Avoid personal pronouns (I, me, my) and use action-focused language instead",
		Category: "writing_style",
		Context:  "professional tone third person",
		Priority: "high",
	},
	{
		Text:     "Use present tense for current roles and past tense for previous positions",
		Category: "writing_style",
		Context:  "verb tense consistency grammar",
		Priority: "medium",
	},
	{
		Text:     "Replace weak verbs like 'helped' or 'worked on' with stronger alternatives like 'drove', 'spearheaded', 'engineered'",
		Category: "writing_style",
		Context:  "strong action verbs impact",
		Priority: "high",
	},
	{
		Text:     "Keep sentences concise, aiming for 15-20 words per bullet point maximum",
		Category: "writing_style",
		Context:  "brevity clarity readability",
		Priority: "medium",
	},
	{
		Text:     "Avoid jargon and acronyms unless industry-standard, spelling them out on first use",
		Category: "writing_style",
		Context:  "clarity accessibility jargon",
		Priority: "low",
	},
	{
		Text:     "Use active voice instead of passive voice for stronger impact",
		Category: "writing_style",
		Context:  "active voice passive voice grammar",
		Priority: "medium",
	},

	// Quantification and impact.
	{
		Text:     "Quantify achievements with specific metrics such as 'Increased sales by 25%', 'Managed team of 10', 'Reduced costs by $50K'",
		Category: "impact",
		Context:  "measurable results numbers metrics quantification",
		Priority: "critical",
	},
	{
		Text:     "Include scale indicators: team size, budget, user base, revenue impact",
		Category: "impact",
		Context:  "scale scope magnitude business impact",
		Priority: "high",
	},
	{
		Text:     "Show before/after comparisons: 'Reduced load time from 5s to 800ms'",
		Category: "impact",
		Context:  "improvement comparison optimization",
		Priority: "high",
	},
	{
		Text:     "Highlight time-based achievements: 'Delivered project 2 weeks ahead of schedule'",
		Category: "impact",
		Context:  "efficiency timeline delivery speed",
		Priority: "medium",
	},
	{
		Text:     "Include frequency and volume: 'Processed 10K+ transactions daily', 'Deployed 50+ features'",
		Category: "impact",
		Context:  "volume throughput frequency scale",
		Priority: "medium",
	},
	{
		Text:     "Add percentage improvements: 'Increased conversion rate by 35%', 'Reduced errors by 60%'",
		Category: "impact",
		Context:  "percentage growth improvement optimization",
		Priority: "high",
	},

	// ATS compatibility.
	{
		Text:     "Use industry-specific keywords from the job description to pass automated filters",
		Category: "ats_optimization",
		Context:  "keyword matching applicant tracking system",
		Priority: "critical",
	},
	{
		Text:     "Include both full terms and acronyms: 'Search Engine Optimization (SEO)', 'Application Programming Interface (API)'",
		Category: "ats_optimization",
		Context:  "acronyms ATS parsing terminology",
		Priority: "high",
	},
	{
		Text:     "Use standard section headings like Experience, Education and Skills, not creative alternatives",
		Category: "ats_optimization",
		Context:  "section headers structure ATS compatibility",
		Priority: "high",
	},
	{
		Text:     "Avoid tables, text boxes and headers/footers, and use a simple single-column layout",
		Category: "ats_optimization",
		Context:  "formatting layout ATS parsing compatibility",
		Priority: "critical",
	},
	{
		Text:     "Use standard bullet points instead of custom graphics or symbols",
		Category: "ats_optimization",
		Context:  "bullets formatting special characters",
		Priority: "high",
	},
	{
		Text:     "Save as .docx or a clean PDF with selectable text, not scanned images",
		Category: "ats_optimization",
		Context:  "file format PDF DOCX ATS submission",
		Priority: "critical",
	},
	{
		Text:     "Avoid images, charts and graphs because automated parsers cannot read visual content",
		Category: "ats_optimization",
		Context:  "images graphics visual content ATS",
		Priority: "high",
	},
	{
		Text:     "Use standard fonts such as Arial, Calibri or Times New Roman at 10-12pt",
		Category: "ats_optimization",
		Context:  "fonts typography readability",
		Priority: "medium",
	},

	// Skills section.
	{
		Text:     "Include relevant technical skills in a dedicated Skills section for easy scanning",
		Category: "skills",
		Context:  "technical competencies skills section",
		Priority: "high",
	},
	{
		Text:     "Group skills by category: Languages, Frameworks, Tools, Soft Skills",
		Category: "skills",
		Context:  "organization categorization structure",
		Priority: "medium",
	},
	{
		Text:     "Remove outdated skills and focus on current, in-demand technologies",
		Category: "skills",
		Context:  "modern tech stack relevant skills",
		Priority: "medium",
	},
	{
		Text:     "List proficiency levels for key skills: Expert, Advanced, Intermediate",
		Category: "skills",
		Context:  "proficiency level expertise competency",
		Priority: "low",
	},
	{
		Text:     "Include both hard skills and soft skills such as leadership and communication",
		Category: "skills",
		Context:  "hard skills soft skills balanced",
		Priority: "medium",
	},
	{
		Text:     "Match skill keywords exactly as they appear in the job description",
		Category: "skills",
		Context:  "keyword matching exact match alignment",
		Priority: "high",
	},

	// Experience section.
	{
		Text:     "Structure experience entries: Company, Title, Dates, Location, then 3-5 bullet points",
		Category: "experience",
		Context:  "structure format organization work history",
		Priority: "high",
	},
	{
		Text:     "Focus on achievements, not just responsibilities: what you accomplished, not what you did",
		Category: "experience",
		Context:  "achievements results accomplishments impact",
		Priority: "critical",
	},
	{
		Text:     "Use the CAR method (Context, Action, Result) for each bullet point",
		Category: "experience",
		Context:  "CAR method STAR method storytelling",
		Priority: "high",
	},
	{
		Text:     "List experiences in reverse chronological order, most recent first",
		Category: "experience",
		Context:  "chronological order dates timeline",
		Priority: "high",
	},
	{
		Text:     "Include relevant internships, co-ops and contract work",
		Category: "experience",
		Context:  "internships contract work relevant experience",
		Priority: "medium",
	},
	{
		Text:     "Dedicate more space to recent roles (3-5 bullets) than to older roles (1-2 bullets)",
		Category: "experience",
		Context:  "prioritization recent experience relevant",
		Priority: "medium",
	},

	// Customization.
	{
		Text:     "Tailor your resume for each position by emphasizing relevant experience",
		Category: "customization",
		Context:  "job targeting personalization tailoring",
		Priority: "critical",
	},
	{
		Text:     "Mirror the language and terminology from the job description",
		Category: "customization",
		Context:  "language alignment matching terminology",
		Priority: "high",
	},
	{
		Text:     "Reorder bullet points to highlight the most relevant achievements first",
		Category: "customization",
		Context:  "prioritization relevance ordering",
		Priority: "medium",
	},
	{
		Text:     "Create a master resume, then customize 20-30% of it for each application",
		Category: "customization",
		Context:  "master resume efficiency customization strategy",
		Priority: "low",
	},

	// Format and length.
	{
		Text:     "Keep the resume concise: 1 page under 5 years of experience, 2 pages for senior roles",
		Category: "format",
		Context:  "resume length page count concise",
		Priority: "high",
	},
	{
		Text:     "Use consistent formatting: same font, spacing and bullet style throughout",
		Category: "format",
		Context:  "visual consistency formatting style",
		Priority: "medium",
	},
	{
		Text:     "Maintain adequate white space with 0.5-1 inch margins instead of cramming content",
		Category: "format",
		Context:  "white space margins readability spacing",
		Priority: "medium",
	},
	{
		Text:     "Use bold for company names and job titles, regular weight for descriptions",
		Category: "format",
		Context:  "emphasis hierarchy bold formatting",
		Priority: "low",
	},
	{
		Text:     "Align dates consistently, right-aligned is common",
		Category: "format",
		Context:  "date alignment consistency formatting",
		Priority: "low",
	},

	// Contact and links.
	{
		Text:     "Include LinkedIn profile and portfolio/GitHub links in the contact section",
		Category: "contact",
		Context:  "professional presence online portfolio",
		Priority: "high",
	},
	{
		Text:     "Use a professional email address (firstname.lastname@domain.com)",
		Category: "contact",
		Context:  "email address professional contact",
		Priority: "medium",
	},
	{
		Text:     "Include city and state, a full street address is not necessary",
		Category: "contact",
		Context:  "location address privacy",
		Priority: "low",
	},
	{
		Text:     "Add a phone number with area code in a standard format",
		Category: "contact",
		Context:  "phone number contact information",
		Priority: "medium",
	},
	{
		Text:     "Link to a personal website or portfolio if relevant to the role",
		Category: "contact",
		Context:  "portfolio website personal brand",
		Priority: "medium",
	},

	// Education.
	{
		Text:     "List education after experience unless you are a recent graduate",
		Category: "education",
		Context:  "section order prioritization experience",
		Priority: "medium",
	},
	{
		Text:     "Include GPA only if above 3.5 and you graduated within the last 2 years",
		Category: "education",
		Context:  "GPA grades academic performance",
		Priority: "low",
	},
	{
		Text:     "List relevant coursework, honors or academic achievements",
		Category: "education",
		Context:  "coursework honors achievements academic",
		Priority: "low",
	},
	{
		Text:     "Format education entries as Degree, Major, University, Graduation Year",
		Category: "education",
		Context:  "format structure organization education",
		Priority: "medium",
	},
}
