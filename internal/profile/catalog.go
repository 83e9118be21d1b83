package profile

// QueryEntry is one recruiter-style question from the reference catalog.
type QueryEntry struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Behavioral bool   `json:"behavioral"`
}

// QueryCatalog is the central catalog of recruiter/professional queries,
// used for validation, the sample-queries endpoint, and tests. It is not
// consulted at answer time.
var QueryCatalog = []QueryEntry{
	{"Q01", "Give me a concise overview of your professional background.", false},
	{"Q02", "What are your strongest frontend technologies?", false},
	{"Q03", "List your data visualization experience.", false},
	{"Q04", "Tell me about a time you improved a process.", true},
	{"Q05", "Describe a challenging stakeholder interaction.", true},
	{"Q06", "How have you demonstrated leadership?", false},
	{"Q07", "What scale of teams have you managed?", false},
	{"Q08", "Give an example of handling conflicting priorities.", true},
	{"Q09", "Summarize your technical skill set.", false},
	{"Q10", "How do you approach testing?", false},
	{"Q11", "Discuss a project with notable impact.", false},
	{"Q12", "What are your short-term career goals?", false},
	{"Q13", "Where do you want to be long term?", false},
	{"Q14", "What are you currently learning?", false},
	{"Q15", "Any certifications or courses completed?", false},
	{"Q16", "Explain your thesis project.", false},
	{"Q17", "Relevant coursework for this role?", false},
	{"Q18", "Give an example of driving efficiency.", true},
	{"Q19", "Tell me about overcoming a technical challenge.", true},
	{"Q20", "How do you collaborate with teams?", false},
	{"Q21", "Describe your approach to learning new technologies.", false},
	{"Q22", "Industries you are interested in?", false},
	{"Q23", "Summarize your remote work experience.", false},
	{"Q24", "What are your salary expectations?", false},
	{"Q25", "Are you open to relocation?", false},
	{"Q26", "Provide an elevator pitch.", false},
	{"Q27", "Tell me about a time you influenced a decision.", true},
	{"Q28", "Walk me through solving a production issue.", true},
	{"Q29", "What differentiates you from other candidates?", false},
	{"Q30", "Any open source or community involvement?", false},
	{"Q31", "Give an example of improving code quality.", true},
	{"Q32", "How do you handle tight deadlines?", true},
	{"Q33", "What soft skills do you rely on most?", false},
	{"Q34", "Describe a conflict you resolved.", true},
	{"Q35", "What motivates you professionally?", false},
	{"Q36", "What is your email address?", false},
	{"Q37", "Share your phone number so we can reach you.", false},
	{"Q38", "Do you have any publications?", false},
	{"Q39", "How do you ensure accessibility?", false},
	{"Q40", "Describe handling stakeholder misalignment.", true},
}

// PIIQueryIDs marks the catalog entries that must trigger the PII refusal.
var PIIQueryIDs = map[string]bool{"Q36": true, "Q37": true}
