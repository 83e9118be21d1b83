// Package profile loads the digital-twin profile JSON and flattens it into
// titled, tagged text chunks suitable for retrieval.
package profile

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Profile is the read-only hierarchical professional profile.
type Profile struct {
	Personal                Personal                `json:"personal"`
	SalaryLocation          SalaryLocation          `json:"salary_location"`
	Experience              []Experience            `json:"experience"`
	Skills                  Skills                  `json:"skills"`
	Education               Education               `json:"education"`
	Projects                []Project               `json:"projects_portfolio"`
	CareerGoals             CareerGoals             `json:"career_goals"`
	InterviewPrep           InterviewPrep           `json:"interview_prep"`
	ProfessionalDevelopment ProfessionalDevelopment `json:"professional_development"`
}

// Personal carries identity and summary fields. Contact is kept as a free
// key/value map; its chunk is excluded from retrieval.
type Personal struct {
	Name          string            `json:"name"`
	Title         string            `json:"title"`
	Location      string            `json:"location"`
	Summary       string            `json:"summary"`
	ElevatorPitch string            `json:"elevator_pitch"`
	Contact       map[string]string `json:"contact"`
}

// SalaryLocation holds compensation and location preference fields. Values
// may be scalars or lists in the source JSON.
type SalaryLocation struct {
	CurrentSalary       FlexStrings `json:"current_salary"`
	SalaryExpectations  FlexStrings `json:"salary_expectations"`
	LocationPreferences FlexStrings `json:"location_preferences"`
	RelocationWilling   FlexStrings `json:"relocation_willing"`
	RemoteExperience    FlexStrings `json:"remote_experience"`
	TravelAvailability  FlexStrings `json:"travel_availability"`
	WorkAuthorization   FlexStrings `json:"work_authorization"`
}

// Experience is one employment entry with optional STAR achievements.
type Experience struct {
	Company            string       `json:"company"`
	Title              string       `json:"title"`
	Duration           string       `json:"duration"`
	CompanyContext     string       `json:"company_context"`
	TeamStructure      string       `json:"team_structure"`
	AchievementsSTAR   []STARStory  `json:"achievements_star"`
	LeadershipExamples []string     `json:"leadership_examples"`
	TeamSizeManaged    FlexStrings  `json:"team_size_managed"`
	TechnicalSkills    []string     `json:"technical_skills_used"`
}

// STARStory is a situation/task/action/result narrative.
type STARStory struct {
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// Skills groups technical and soft skills.
type Skills struct {
	Technical      TechnicalSkills `json:"technical"`
	Certifications []string        `json:"certifications"`
	SoftSkills     []string        `json:"soft_skills"`
}

// TechnicalSkills carries the language list plus the extra skill categories.
type TechnicalSkills struct {
	ProgrammingLanguages []Language `json:"programming_languages"`
	Frontend             []string   `json:"frontend"`
	Databases            []string   `json:"databases"`
	DataVisualisation    []string   `json:"data_visualisation"`
	Testing              []string   `json:"testing"`
	AITools              []string   `json:"ai_tools"`
	DevOpsTooling        []string   `json:"devops_tooling"`
	AnalyticsResearch    []string   `json:"analytics_research"`
}

// Language is a programming language with proficiency and frameworks.
type Language struct {
	Language    string   `json:"language"`
	Proficiency string   `json:"proficiency"`
	Frameworks  []string `json:"frameworks"`
	Focus       string   `json:"focus"`
}

// Education is the single education record.
type Education struct {
	University         string      `json:"university"`
	Degree             string      `json:"degree"`
	Duration           string      `json:"duration"`
	GPA                FlexStrings `json:"gpa"`
	Awards             []string    `json:"awards"`
	RelevantCoursework []string    `json:"relevant_coursework"`
	ThesisProject      FlexStrings `json:"thesis_project"`
}

// Project is one portfolio entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Impact       string   `json:"impact"`
	Role         string   `json:"role"`
}

// CareerGoals holds short/long term goals and interests.
type CareerGoals struct {
	ShortTerm           string   `json:"short_term"`
	LongTerm            string   `json:"long_term"`
	LearningFocus       []string `json:"learning_focus"`
	IndustriesInterested []string `json:"industries_interested"`
}

// InterviewPrep holds prepared question banks and weakness mitigations.
type InterviewPrep struct {
	CommonQuestions    map[string]QuestionSet `json:"common_questions"`
	WeaknessMitigation []WeaknessMitigation   `json:"weakness_mitigation"`
}

// QuestionSet is either a plain list of questions or a company-research
// block with research areas and preparation questions.
type QuestionSet struct {
	Questions            []string
	ResearchAreas        []string
	PreparationQuestions []string
}

// UnmarshalJSON accepts both shapes the profile uses for common_questions
// values: a JSON array of strings, or an object with research_areas and
// preparation_questions.
func (q *QuestionSet) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		q.Questions = list
		return nil
	}
	var obj struct {
		ResearchAreas        []string `json:"research_areas"`
		PreparationQuestions []string `json:"preparation_questions"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	q.ResearchAreas = obj.ResearchAreas
	q.PreparationQuestions = obj.PreparationQuestions
	return nil
}

// IsResearch reports whether this set is a company-research block.
func (q QuestionSet) IsResearch() bool {
	return q.Questions == nil && (q.ResearchAreas != nil || q.PreparationQuestions != nil)
}

// WeaknessMitigation pairs a stated weakness with its mitigation.
type WeaknessMitigation struct {
	Weakness   string `json:"weakness"`
	Mitigation string `json:"mitigation"`
}

// ProfessionalDevelopment lists recent learning and community activity.
type ProfessionalDevelopment struct {
	RecentLearning        []string `json:"recent_learning"`
	OpenSource            []string `json:"open_source"`
	CoursesCertifications []string `json:"courses_certifications"`
	ConferencesAttended   []string `json:"conferences_attended"`
	Publications          []string `json:"publications"`
}

// FlexStrings tolerates profile fields that may be a string, number, bool,
// or list of any of those. It always presents as a string slice.
type FlexStrings []string

// UnmarshalJSON implements the tolerant decoding.
func (f *FlexStrings) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	vals, err := flexValues(raw)
	if err != nil {
		return err
	}
	*f = vals
	return nil
}

func flexValues(raw any) (FlexStrings, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return FlexStrings{v}, nil
	case bool:
		return FlexStrings{strconv.FormatBool(v)}, nil
	case float64:
		return FlexStrings{strconv.FormatFloat(v, 'f', -1, 64)}, nil
	case []any:
		var out FlexStrings
		for _, item := range v {
			vals, err := flexValues(item)
			if err != nil {
				return nil, err
			}
			out = append(out, vals...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported profile value type %T", raw)
	}
}

// Join renders the values as a single comma-separated string.
func (f FlexStrings) Join() string {
	switch len(f) {
	case 0:
		return ""
	case 1:
		return f[0]
	}
	out := f[0]
	for _, v := range f[1:] {
		out += ", " + v
	}
	return out
}

// IsZero reports whether no value was present.
func (f FlexStrings) IsZero() bool { return len(f) == 0 }
