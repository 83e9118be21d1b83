package answer

import "strings"

// piiTerms flags questions that ask for contact details or identity
// documents. Matching is plain substring over the lowercased question.
var piiTerms = []string{
	"email", "phone", "telephone", "mobile", "address", "home address", "dob", "date of birth",
	"id number", "passport", "driver", "driver's license", "license number", "medicare", "tax file", "tfn",
	"bank", "account number", "credit card", "ssn", "social security",
}

// behavioralTriggers is deliberately broad: a false positive only adds a
// supplementary STAR-tagged retrieval pass, it never blocks an answer.
var behavioralTriggers = []string{
	// Canonical behavioral framings
	"tell me about a time", "situation where", "how did you handle", "what did you do",
	// Generic markers that commonly imply STAR stories
	"example", "challenge", "overcom", "handle", "solv", "result", "impact", "ownership",
	// Specific workplace scenarios
	"production issue", "incident", "outage", "root cause", "postmortem", "trade-off",
	"tight deadline", "deadlines", "conflict", "stakeholder",
	// Explicit hint
	"star", "situation", "task", "action",
}

// IsPIIRequest reports whether the question seeks personal contact
// information or sensitive identifiers.
func IsPIIRequest(question string) bool {
	if question == "" {
		return false
	}
	q := strings.ToLower(question)
	for _, t := range piiTerms {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}

// IsBehavioralQuery reports whether the question looks like a STAR-style
// behavioral interview question.
func IsBehavioralQuery(question string) bool {
	if question == "" {
		return false
	}
	q := strings.ToLower(question)
	for _, t := range behavioralTriggers {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}
