package profile

// Masked placeholder values used in the public view.
const (
	MaskedEmail = "[redacted email]"
	MaskedPhone = "[redacted phone]"
)

// PublicPersonal is the personal section without contact details.
type PublicPersonal struct {
	Name          string `json:"name,omitempty"`
	Title         string `json:"title,omitempty"`
	Location      string `json:"location,omitempty"`
	Summary       string `json:"summary,omitempty"`
	ElevatorPitch string `json:"elevator_pitch,omitempty"`
}

// ExperienceStory is one STAR achievement flattened with its employment
// context.
type ExperienceStory struct {
	Company   string `json:"company,omitempty"`
	Role      string `json:"role,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Context   string `json:"context,omitempty"`
	Situation string `json:"situation,omitempty"`
	Task      string `json:"task,omitempty"`
	Action    string `json:"action,omitempty"`
	Result    string `json:"result,omitempty"`
}

// PublicView is the recruiter-facing projection of the profile. Contact
// values for email and phone are replaced with masked placeholders; all
// other contact keys pass through unchanged.
type PublicView struct {
	Personal          PublicPersonal    `json:"personal"`
	Contact           map[string]string `json:"contact"`
	ExperienceStories []ExperienceStory `json:"experience_stories"`
	Skills            Skills            `json:"skills"`
	Education         Education         `json:"education"`
	Projects          []Project         `json:"projects"`
	CareerGoals       CareerGoals       `json:"career_goals"`
}

// Public builds the masked public view of the profile.
func (p *Profile) Public() PublicView {
	contact := make(map[string]string, len(p.Personal.Contact))
	for k, v := range p.Personal.Contact {
		contact[k] = v
	}
	if _, ok := contact["email"]; ok {
		contact["email"] = MaskedEmail
	}
	if _, ok := contact["phone"]; ok {
		contact["phone"] = MaskedPhone
	}

	var stories []ExperienceStory
	for _, exp := range p.Experience {
		for _, s := range exp.AchievementsSTAR {
			stories = append(stories, ExperienceStory{
				Company:   exp.Company,
				Role:      exp.Title,
				Duration:  exp.Duration,
				Context:   exp.CompanyContext,
				Situation: s.Situation,
				Task:      s.Task,
				Action:    s.Action,
				Result:    s.Result,
			})
		}
	}

	return PublicView{
		Personal: PublicPersonal{
			Name:          p.Personal.Name,
			Title:         p.Personal.Title,
			Location:      p.Personal.Location,
			Summary:       p.Personal.Summary,
			ElevatorPitch: p.Personal.ElevatorPitch,
		},
		Contact:           contact,
		ExperienceStories: stories,
		Skills:            p.Skills,
		Education:         p.Education,
		Projects:          p.Projects,
		CareerGoals:       p.CareerGoals,
	}
}
