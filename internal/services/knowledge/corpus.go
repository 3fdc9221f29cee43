package knowledge

// CorpusEntry is a raw corpus definition before indexing
type CorpusEntry struct {
	ID      string
	Title   string
	Tags    []string
	Content string
}

// DefaultCorpus returns the curated knowledge base. Entries are ordered;
// the ranker falls back to the first entries in definition order when a
// query matches nothing.
func DefaultCorpus() []CorpusEntry {
	return []CorpusEntry{
		{
			ID:      "gradus-overview",
			Title:   "Gradus overview",
			Tags:    []string{"gradus", "overview", "company", "mission", "century finance"},
			Content: "Gradus is the career acceleration initiative of Century Finance Limited. It closes the gap between classroom instruction and industry expectations by combining outcome-driven curricula, paid internships, and mentor-led coaching so learners convert theory into boardroom-ready competence.",
		},
		{
			ID:      "value-proposition",
			Title:   "Why learners choose Gradus",
			Tags:    []string{"why gradus", "value", "benefits", "placements"},
			Content: "Gradus compresses the journey from student to professional through guaranteed placements, nationwide hiring partnerships, and experiential modules. Each pathway is shaped with 178 partner companies to place learners into high-impact roles across finance, technology, and management.",
		},
		{
			ID:      "flagship-programs",
			Title:   "Flagship programs",
			Tags:    []string{"programs", "gradusfinlit", "gradusx", "graduslead", "courses"},
			Content: "Gradus offers three signature pathways: GradusFinlit for financial literacy and capital markets mastery, GradusX for full-stack technology and AI growth careers, and GradusLead for business and leadership excellence. Each program is approved by Skill India and NSDC and delivered with a placement MoU that secures packages from 6 LPA to 14 LPA.",
		},
		{
			ID:      "placements",
			Title:   "Placements and hiring network",
			Tags:    []string{"placements", "careers", "network", "partners"},
			Content: "Gradus operates a dedicated placement cell that mentors learners for interviews, runs nationwide hiring drives, and manages relationships with 178 strategic recruiters. Every learner signs a placement MoU offering packages between 6 LPA and 14 LPA with partner companies.",
		},
		{
			ID:      "mentors",
			Title:   "Mentor ecosystem",
			Tags:    []string{"mentors", "faculty", "coach", "support"},
			Content: "Programs are delivered by SEBI-certified mentors and veteran industry leaders. They run case clinics, trading simulations, project reviews, and personalised coaching to build critical thinking, resilience, and interview-ready communication.",
		},
		{
			ID:      "internships",
			Title:   "Paid internship journey",
			Tags:    []string{"internship", "experience", "industry exposure"},
			Content: "Every Gradus learner completes immersive paid internships that translate classroom learning into real-world execution. Internships are designed with hiring partners so trainees gain market context before stepping into a full-time role.",
		},
		{
			ID:      "admissions",
			Title:   "Admissions guidance",
			Tags:    []string{"admissions", "apply", "enrolment", "contact"},
			Content: "Prospective learners can explore Gradus programs through the About Us, Our Courses, and Apply Admission pages. To start the process, review program details, submit the admission form, and connect with the Gradus team for counselling and cohort scheduling.",
		},
		{
			ID:      "contact-support",
			Title:   "Contact and support",
			Tags:    []string{"contact", "support", "help", "reach out"},
			Content: "For personalised assistance, learners can use the contact form, email the Gradus counsellor team, or reach out via the Apply Admission and Contact pages. The support staff help with program selection, cohort timelines, tuition details, and placement queries.",
		},
		{
			ID:      "century-finance",
			Title:   "About Century Finance Limited",
			Tags:    []string{"century finance", "cfl", "company", "parent"},
			Content: "Century Finance Limited is Gradus parent organisation, providing institutional credibility and a strong foundation for career acceleration programs. With strategic partnerships across 178 organisations, Century Finance ensures robust placement support and industry alignment.",
		},
		{
			ID:      "skill-india-certification",
			Title:   "Skill India and NSDC Approval",
			Tags:    []string{"skill india", "nsdc", "certification", "approval", "government"},
			Content: "All Gradus programs are approved by Skill India and the National Skill Development Corporation (NSDC), ensuring curriculum quality, industry relevance, and recognised certifications that employers value.",
		},
	}
}
