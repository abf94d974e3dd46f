// Package template generates industry-specific resume templates as
// DOCX documents with ATS-friendly, single-column content.
package template

import (
	"fmt"
	"sort"
)

// Job is one sample experience entry.
type Job struct {
	Company  string
	Title    string
	Location string
	Dates    string
	Bullets  []string
}

// SkillGroup is a labeled list inside a skills-style section.
type SkillGroup struct {
	Label  string
	Skills []string
}

// SectionContent holds one of the possible section shapes: free text,
// a bullet list, grouped skills, or experience entries.
type SectionContent struct {
	Text        string
	Items       []string
	SkillGroups []SkillGroup
	Jobs        []Job
}

// Template is the content ruleset for one industry.
type Template struct {
	Industry    string
	Description string
	Font        string
	Order       []string
	Required    []string
	Sample      map[string]SectionContent
}

var templates = map[string]Template{
	"tech": {
		Industry:    "tech",
		Description: "Modern technical design",
		Font:        "Calibri",
		Order:       []string{"Professional Summary", "Technical Skills", "Experience", "Projects", "Education"},
		Required:    []string{"Technical Skills", "Experience", "Education"},
		Sample: map[string]SectionContent{
			"Professional Summary": {
				Text: "Results-driven Software Engineer with [X] years of experience in full-stack development, cloud architecture, and scalable system design. Proven track record of delivering high-impact solutions.",
			},
			"Technical Skills": {
				SkillGroups: []SkillGroup{
					{Label: "Languages", Skills: []string{"Python", "JavaScript", "TypeScript", "SQL", "Java"}},
					{Label: "Frameworks", Skills: []string{"React", "Django", "FastAPI", "Node.js", "Express"}},
					{Label: "Tools & Platforms", Skills: []string{"Docker", "Kubernetes", "AWS", "Git", "Jenkins"}},
				},
			},
			"Experience": {
				Jobs: []Job{{
					Company:  "Tech Company Inc.",
					Title:    "Senior Software Engineer",
					Location: "San Francisco, CA",
					Dates:    "Jan 2020 - Present",
					Bullets: []string{
						"Architected microservices platform processing 2M+ requests/day, reducing API latency by 40%",
						"Led team of 5 engineers in developing real-time analytics dashboard using React and FastAPI",
						"Implemented CI/CD pipeline reducing deployment time from 2 hours to 15 minutes",
					},
				}},
			},
			"Projects": {
				Items: []string{
					"Open Source Contribution - describe the project, your role, and measurable impact",
					"Side Project - what it does, the stack, and usage numbers if any",
				},
			},
			"Education": {
				Text: "B.Sc. Computer Science, University Name, Graduation Year",
			},
		},
	},
	"finance": {
		Industry:    "finance",
		Description: "Conservative professional",
		Font:        "Georgia",
		Order:       []string{"Professional Summary", "Core Competencies", "Experience", "Certifications", "Education"},
		Required:    []string{"Professional Summary", "Experience", "Education"},
		Sample: map[string]SectionContent{
			"Professional Summary": {
				Text: "Strategic Financial Analyst with [X] years of experience in portfolio management, risk assessment, and financial modeling. CPA-certified with proven expertise in driving ROI.",
			},
			"Core Competencies": {
				Items: []string{"Financial Modeling", "Portfolio Management", "Risk Analysis", "Excel/VBA", "Bloomberg Terminal", "Regulatory Compliance"},
			},
			"Experience": {
				Jobs: []Job{{
					Company:  "Investment Firm LLC",
					Title:    "Senior Financial Analyst",
					Location: "New York, NY",
					Dates:    "Mar 2018 - Present",
					Bullets: []string{
						"Managed $50M portfolio with 18% YoY returns, exceeding benchmark by 6%",
						"Developed financial models reducing forecasting error by 25% through advanced Excel/VBA automation",
						"Conducted risk assessments for 100+ investment opportunities, maintaining 95% accuracy rate",
					},
				}},
			},
			"Certifications": {
				Items: []string{"CPA (Certified Public Accountant)", "CFA Level II Candidate"},
			},
			"Education": {
				Text: "B.Sc. Finance, University Name, Graduation Year",
			},
		},
	},
	"healthcare": {
		Industry:    "healthcare",
		Description: "Clean and trustworthy",
		Font:        "Arial",
		Order:       []string{"Licensure & Certifications", "Clinical Experience", "Skills", "Education"},
		Required:    []string{"Licensure & Certifications", "Clinical Experience", "Education"},
		Sample: map[string]SectionContent{
			"Licensure & Certifications": {
				Items: []string{"RN License (State)", "BLS Certification", "ACLS Certification", "HIPAA Compliance Certified"},
			},
			"Clinical Experience": {
				Jobs: []Job{{
					Company:  "City General Hospital",
					Title:    "Registered Nurse",
					Location: "Chicago, IL",
					Dates:    "Jun 2019 - Present",
					Bullets: []string{
						"Provided patient care for 15-20 patients per shift in high-acuity medical-surgical unit",
						"Improved patient satisfaction scores by 25% through compassionate care and clear communication",
						"Collaborated with interdisciplinary team to implement new EMR system, improving documentation efficiency by 30%",
					},
				}},
			},
			"Skills": {
				SkillGroups: []SkillGroup{
					{Label: "Clinical", Skills: []string{"Patient Assessment", "Medication Administration", "Wound Care"}},
					{Label: "Systems", Skills: []string{"Epic EMR", "Cerner", "Meditech"}},
				},
			},
			"Education": {
				Text: "B.Sc. Nursing, University Name, Graduation Year",
			},
		},
	},
	"marketing": {
		Industry:    "marketing",
		Description: "Creative and bold",
		Font:        "Helvetica",
		Order:       []string{"Professional Summary", "Key Achievements", "Experience", "Skills & Tools", "Education"},
		Required:    []string{"Professional Summary", "Experience", "Education"},
		Sample: map[string]SectionContent{
			"Professional Summary": {
				Text: "Data-driven Marketing Manager with [X] years of experience in digital campaigns, brand strategy, and ROI optimization. Proven success in scaling revenue through innovative marketing.",
			},
			"Key Achievements": {
				Items: []string{
					"Led campaign generating $2.5M revenue with 320% ROI and 45% conversion rate",
					"Grew organic traffic by 150% in 12 months through SEO optimization",
					"Managed $500K digital ad budget across Google Ads, Facebook, and LinkedIn",
				},
			},
			"Experience": {
				Jobs: []Job{{
					Company:  "Digital Marketing Agency",
					Title:    "Marketing Manager",
					Location: "Austin, TX",
					Dates:    "Feb 2019 - Present",
					Bullets: []string{
						"Spearheaded multi-channel campaigns reaching 2M+ users, increasing brand awareness by 85%",
						"Optimized email marketing strategy achieving 28% open rate and 8% CTR, 2x industry average",
						"Managed team of 4 content creators producing 50+ pieces of engaging content monthly",
					},
				}},
			},
			"Skills & Tools": {
				SkillGroups: []SkillGroup{
					{Label: "Channels", Skills: []string{"SEO", "SEM", "Email", "Social"}},
					{Label: "Tools", Skills: []string{"Google Analytics", "HubSpot", "Figma", "Ahrefs"}},
				},
			},
			"Education": {
				Text: "B.A. Marketing, University Name, Graduation Year",
			},
		},
	},
}

// Get returns the template for an industry.
func Get(industry string) (Template, error) {
	t, ok := templates[industry]
	if !ok {
		return Template{}, fmt.Errorf("unknown industry %q", industry)
	}
	return t, nil
}

// List returns all templates sorted by industry name.
func List() []Template {
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Industry < out[j].Industry })
	return out
}
