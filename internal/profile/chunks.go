package profile

import (
	"fmt"
	"sort"
	"strings"
)

// Chunk is a titled, categorized unit of retrievable text derived from the
// profile. IDs are assigned in build order as chunk_1, chunk_2, ...
type Chunk struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// ContactTitle is the chunk title that must never surface in retrieval
// results, regardless of any query or filter.
const ContactTitle = "Contact Information"

type chunkBuilder struct {
	chunks []Chunk
	cid    int
}

func (b *chunkBuilder) add(title, content, ctype, category string, tags []string) {
	b.cid++
	if tags == nil {
		tags = []string{}
	}
	b.chunks = append(b.chunks, Chunk{
		ID:       fmt.Sprintf("chunk_%d", b.cid),
		Title:    title,
		Content:  strings.TrimSpace(content),
		Type:     ctype,
		Category: category,
		Tags:     tags,
	})
}

// BuildChunks flattens the profile tree into the list of retrievable chunks.
// The transform is deterministic: identical profiles yield identical chunk
// lists, including IDs.
func BuildChunks(p *Profile) []Chunk {
	b := &chunkBuilder{}
	b.personal(p.Personal)
	b.salaryLocation(p.SalaryLocation)
	for _, exp := range p.Experience {
		b.experience(exp)
	}
	b.skills(p.Skills)
	b.education(p.Education)
	for _, proj := range p.Projects {
		b.project(proj)
	}
	b.careerGoals(p.CareerGoals)
	b.interviewPrep(p.InterviewPrep)
	b.development(p.ProfessionalDevelopment)
	b.methodology()
	return b.chunks
}

func (b *chunkBuilder) personal(personal Personal) {
	if personal.Name == "" && personal.Title == "" && personal.Location == "" &&
		personal.Summary == "" && personal.ElevatorPitch == "" && len(personal.Contact) == 0 {
		return
	}
	var parts []string
	for _, v := range []string{personal.Name, personal.Title, personal.Location, personal.Summary} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	b.add("Personal Summary", strings.Join(parts, " | "), "section", "personal",
		[]string{"summary", personal.Title, personal.Name})
	if personal.ElevatorPitch != "" {
		b.add("Elevator Pitch", personal.ElevatorPitch, "snippet", "personal", []string{"pitch"})
	}
	if len(personal.Contact) > 0 {
		keys := make([]string, 0, len(personal.Contact))
		for k := range personal.Contact {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var lines []string
		for _, k := range keys {
			if v := personal.Contact[k]; v != "" {
				lines = append(lines, titleCase(k)+": "+v)
			}
		}
		if len(lines) > 0 {
			b.add(ContactTitle, strings.Join(lines, "\n"), "personal", "personal", []string{"contact"})
		}
	}
}

func (b *chunkBuilder) salaryLocation(sl SalaryLocation) {
	fields := []struct {
		val   FlexStrings
		label string
	}{
		{sl.CurrentSalary, "Current Salary"},
		{sl.SalaryExpectations, "Salary Expectations"},
		{sl.LocationPreferences, "Location Preferences"},
		{sl.RelocationWilling, "Relocation Willing"},
		{sl.RemoteExperience, "Remote Experience"},
		{sl.TravelAvailability, "Travel Availability"},
		{sl.WorkAuthorization, "Work Authorization"},
	}
	var parts []string
	for _, f := range fields {
		if !f.val.IsZero() {
			parts = append(parts, f.label+": "+f.val.Join())
		}
	}
	if len(parts) > 0 {
		b.add("Salary & Location", strings.Join(parts, "\n"), "profile", "salary_location",
			[]string{"work_authorization", "remote_experience"})
	}
}

func (b *chunkBuilder) experience(exp Experience) {
	parts := []string{
		"Company: " + exp.Company,
		"Title: " + exp.Title,
		"Duration: " + exp.Duration,
		"Context: " + exp.CompanyContext,
	}
	if exp.TeamStructure != "" {
		parts = append(parts, "Team Structure: "+exp.TeamStructure)
	}
	for _, a := range exp.AchievementsSTAR {
		lines := []string{
			"Situation: " + a.Situation,
			"Task: " + a.Task,
			"Action: " + a.Action,
			"Result: " + a.Result,
		}
		parts = append(parts, "STAR -> "+strings.Join(lines, "; "))
		// Dedicated STAR chunk for higher retrieval precision.
		b.add("STAR - "+exp.Company+" - "+exp.Title, strings.Join(lines, "\n"),
			"experience", "experience", []string{"star", "behavioral", exp.Company, exp.Title})
	}
	if len(exp.LeadershipExamples) > 0 {
		parts = append(parts, "Leadership Examples: "+strings.Join(exp.LeadershipExamples, "; "))
	}
	if !exp.TeamSizeManaged.IsZero() {
		parts = append(parts, "Team Size Managed: "+exp.TeamSizeManaged.Join())
	}
	b.add("Experience - "+exp.Company, strings.Join(parts, "\n"), "experience", "experience", exp.TechnicalSkills)
}

func (b *chunkBuilder) skills(skills Skills) {
	var langLines, focusLines []string
	for _, lang := range skills.Technical.ProgrammingLanguages {
		base := fmt.Sprintf("%s: %s (Frameworks: %s)", lang.Language, lang.Proficiency,
			strings.Join(lang.Frameworks, ", "))
		if lang.Focus != "" {
			base += fmt.Sprintf(" (Focus: %s)", lang.Focus)
			focusLines = append(focusLines, lang.Language+": "+lang.Focus)
		}
		langLines = append(langLines, base)
	}
	if len(langLines) > 0 {
		b.add("Technical Skills", "Programming Languages:\n"+strings.Join(langLines, "\n"),
			"skills", "skills", []string{"languages", "frameworks"})
	}
	if len(focusLines) > 0 {
		b.add("Language Focus", strings.Join(focusLines, "\n"), "skills", "skills", []string{"language_focus"})
	}
	categories := []struct {
		items []string
		tag   string
		label string
	}{
		{skills.Technical.Frontend, "frontend", "Frontend"},
		{skills.Technical.Databases, "databases", "Databases"},
		{skills.Technical.DataVisualisation, "data_visualisation", "Data Visualisation"},
		{skills.Technical.Testing, "testing", "Testing"},
		{skills.Technical.AITools, "ai_tools", "AI Tools"},
		{skills.Technical.DevOpsTooling, "devops_tooling", "DevOps Tooling"},
		{skills.Technical.AnalyticsResearch, "analytics_research", "Analytics & Research"},
	}
	for _, c := range categories {
		if len(c.items) > 0 {
			b.add(c.label+" Skills", strings.Join(c.items, ", "), "skills", "skills", []string{c.tag})
		}
	}
	if len(skills.Certifications) > 0 {
		b.add("Certifications", strings.Join(skills.Certifications, "; "), "skills", "skills", []string{"certifications"})
	}
	if len(skills.SoftSkills) > 0 {
		b.add("Soft Skills", strings.Join(skills.SoftSkills, ", "), "skills", "skills", []string{"soft-skills"})
	}
}

func (b *chunkBuilder) education(edu Education) {
	var parts []string
	for _, v := range []string{edu.University, edu.Degree, edu.Duration} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if !edu.GPA.IsZero() {
		parts = append(parts, "GPA: "+edu.GPA.Join())
	}
	if len(parts) == 0 {
		return
	}
	b.add("Education", strings.Join(parts, " | "), "education", "education", []string{"degree", "gpa"})
	if len(edu.Awards) > 0 {
		b.add("Education Awards", strings.Join(edu.Awards, "; "), "education", "education", []string{"awards"})
	}
	if len(edu.RelevantCoursework) > 0 {
		b.add("Relevant Coursework", strings.Join(edu.RelevantCoursework, ", "), "education", "education", []string{"coursework"})
	}
	if !edu.ThesisProject.IsZero() {
		b.add("Thesis Project", edu.ThesisProject.Join(), "education", "education", []string{"thesis"})
	}
}

func (b *chunkBuilder) project(proj Project) {
	var parts []string
	if proj.Name != "" {
		parts = append(parts, proj.Name)
	}
	if proj.Description != "" {
		parts = append(parts, proj.Description)
	}
	parts = append(parts, "Tech: "+strings.Join(proj.Technologies, ", "))
	if proj.Impact != "" {
		parts = append(parts, "Impact: "+proj.Impact)
	}
	if proj.Role != "" {
		parts = append(parts, "Role: "+proj.Role)
	}
	b.add("Project - "+proj.Name, strings.Join(parts, " | "), "project", "projects", proj.Technologies)
}

func (b *chunkBuilder) careerGoals(goals CareerGoals) {
	if goals.ShortTerm == "" && goals.LongTerm == "" && len(goals.LearningFocus) == 0 &&
		len(goals.IndustriesInterested) == 0 {
		return
	}
	b.add("Career Goals", "Short Term: "+goals.ShortTerm+"\nLong Term: "+goals.LongTerm,
		"goals", "career", []string{"goals"})
	if len(goals.LearningFocus) > 0 {
		b.add("Learning Focus", strings.Join(goals.LearningFocus, ", "), "goals", "career", []string{"learning_focus"})
	}
	if len(goals.IndustriesInterested) > 0 {
		b.add("Industries Interested", strings.Join(goals.IndustriesInterested, ", "), "goals", "career", []string{"industries"})
	}
}

func (b *chunkBuilder) interviewPrep(prep InterviewPrep) {
	categories := make([]string, 0, len(prep.CommonQuestions))
	for c := range prep.CommonQuestions {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, category := range categories {
		qs := prep.CommonQuestions[category]
		if qs.IsResearch() {
			text := "Research Areas:\n" + strings.Join(qs.ResearchAreas, "\n") +
				"\nQuestions:\n" + strings.Join(qs.PreparationQuestions, "\n")
			b.add("Interview - Company Research", text, "interview", "interview", []string{"company-research"})
			continue
		}
		b.add("Interview - "+titleCase(category), strings.Join(qs.Questions, "\n"),
			"interview", "interview", []string{category})
	}
	if len(prep.WeaknessMitigation) > 0 {
		var lines []string
		for _, w := range prep.WeaknessMitigation {
			lines = append(lines, "Weakness: "+w.Weakness+"\nMitigation: "+w.Mitigation)
		}
		b.add("Weakness Mitigation", strings.Join(lines, "\n\n"), "interview", "interview", []string{"weakness_mitigation"})
	}
}

func (b *chunkBuilder) development(dev ProfessionalDevelopment) {
	if len(dev.RecentLearning) > 0 {
		b.add("Recent Learning", strings.Join(dev.RecentLearning, ", "), "development", "development", []string{"learning"})
	}
	if len(dev.OpenSource) > 0 {
		b.add("Open Source", strings.Join(dev.OpenSource, "; "), "development", "development", []string{"open_source"})
	}
	if len(dev.CoursesCertifications) > 0 {
		b.add("Courses & Certifications", strings.Join(dev.CoursesCertifications, "; "),
			"development", "development", []string{"courses", "certifications"})
	}
	if len(dev.ConferencesAttended) > 0 {
		b.add("Conferences Attended", strings.Join(dev.ConferencesAttended, "; "),
			"development", "development", []string{"conferences"})
	}
	if len(dev.Publications) > 0 {
		b.add("Publications", strings.Join(dev.Publications, "; "), "development", "development", []string{"publications"})
	}
}

// methodology adds a neutral-titled chunk describing how behavioral answers
// are structured, tagged so behavioral retrieval surfaces it.
func (b *chunkBuilder) methodology() {
	b.add(
		"Behavioral Methodology Overview",
		"I present experience using a structured situation-task-action-result methodology without labeling answers explicitly. "+
			"I first outline the context and objective, then clarify my specific responsibilities, detail decisive actions (technical and collaborative), and conclude with quantified impact (performance gains, reliability improvements, efficiency, cost savings, stakeholder outcomes). "+
			"This approach keeps responses concise, outcome-focused, and easy for interviewers to follow while highlighting ownership and measurable results.",
		"methodology",
		"experience",
		[]string{"behavioral", "methodology", "star"},
	)
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
