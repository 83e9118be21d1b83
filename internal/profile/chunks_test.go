package profile

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func sampleProfile() *Profile {
	return &Profile{
		Personal: Personal{
			Name:          "Jordan Avery",
			Title:         "Senior Data Engineer",
			Location:      "Melbourne, AU",
			Summary:       "Builds reliable analytics platforms.",
			ElevatorPitch: "I turn messy data into dependable pipelines.",
			Contact: map[string]string{
				"email":  "jordan@example.com",
				"phone":  "+61 400 123 456",
				"github": "github.com/javery",
			},
		},
		SalaryLocation: SalaryLocation{
			WorkAuthorization: FlexStrings{"Australian citizen"},
			RemoteExperience:  FlexStrings{"4 years remote-first"},
		},
		Experience: []Experience{{
			Company:        "Acme Analytics",
			Title:          "Data Engineer",
			Duration:       "2019-2023",
			CompanyContext: "Analytics consultancy",
			AchievementsSTAR: []STARStory{{
				Situation: "Slow nightly batch",
				Task:      "Cut runtime",
				Action:    "Rebuilt ingestion layer",
				Result:    "60 percent faster",
			}},
			TechnicalSkills: []string{"Python", "SQL"},
		}},
		Skills: Skills{
			Technical: TechnicalSkills{
				ProgrammingLanguages: []Language{{
					Language:    "Python",
					Proficiency: "Expert",
					Frameworks:  []string{"pandas"},
					Focus:       "data pipelines",
				}},
				Frontend: []string{"React"},
			},
			SoftSkills: []string{"Communication"},
		},
		Education: Education{
			University: "RMIT",
			Degree:     "BSc Computer Science",
			Duration:   "2015-2018",
			GPA:        FlexStrings{"3.8"},
		},
		Projects: []Project{{
			Name:         "Metrics Hub",
			Description:  "Self-serve metrics",
			Technologies: []string{"Go", "Postgres"},
			Impact:       "Cut reporting time",
			Role:         "Lead",
		}},
		CareerGoals: CareerGoals{
			ShortTerm: "Lead a platform team",
			LongTerm:  "Head of data",
		},
	}
}

func findChunk(t *testing.T, chunks []Chunk, title string) Chunk {
	t.Helper()
	for _, c := range chunks {
		if c.Title == title {
			return c
		}
	}
	t.Fatalf("no chunk titled %q", title)
	return Chunk{}
}

func TestBuildChunks_SequentialIDs(t *testing.T) {
	chunks := BuildChunks(sampleProfile())
	if len(chunks) == 0 {
		t.Fatal("no chunks built")
	}
	for i, c := range chunks {
		want := fmt.Sprintf("chunk_%d", i+1)
		if c.ID != want {
			t.Errorf("chunk %d: ID = %q, want %q", i, c.ID, want)
		}
	}
}

func TestBuildChunks_Deterministic(t *testing.T) {
	a := BuildChunks(sampleProfile())
	b := BuildChunks(sampleProfile())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical profiles produced different chunk lists")
	}
}

func TestBuildChunks_ContactChunk(t *testing.T) {
	chunks := BuildChunks(sampleProfile())
	c := findChunk(t, chunks, ContactTitle)

	want := "Email: jordan@example.com\nGithub: github.com/javery\nPhone: +61 400 123 456"
	if c.Content != want {
		t.Errorf("contact content = %q, want %q", c.Content, want)
	}
	if c.Category != "personal" {
		t.Errorf("contact category = %q, want personal", c.Category)
	}
}

func TestBuildChunks_STARChunk(t *testing.T) {
	chunks := BuildChunks(sampleProfile())
	c := findChunk(t, chunks, "STAR - Acme Analytics - Data Engineer")

	want := "Situation: Slow nightly batch\nTask: Cut runtime\nAction: Rebuilt ingestion layer\nResult: 60 percent faster"
	if c.Content != want {
		t.Errorf("star content = %q, want %q", c.Content, want)
	}
	for _, tag := range []string{"star", "behavioral", "Acme Analytics"} {
		found := false
		for _, got := range c.Tags {
			if got == tag {
				found = true
			}
		}
		if !found {
			t.Errorf("star chunk missing tag %q, got %v", tag, c.Tags)
		}
	}
}

func TestBuildChunks_ExperienceChunk(t *testing.T) {
	chunks := BuildChunks(sampleProfile())
	c := findChunk(t, chunks, "Experience - Acme Analytics")

	if !strings.Contains(c.Content, "Company: Acme Analytics") {
		t.Errorf("experience content missing company line: %q", c.Content)
	}
	if !strings.Contains(c.Content, "STAR -> Situation: Slow nightly batch") {
		t.Errorf("experience content missing inline star summary: %q", c.Content)
	}
	if !reflect.DeepEqual(c.Tags, []string{"Python", "SQL"}) {
		t.Errorf("experience tags = %v, want technical skills", c.Tags)
	}
}

func TestBuildChunks_MethodologyLast(t *testing.T) {
	chunks := BuildChunks(sampleProfile())
	last := chunks[len(chunks)-1]
	if last.Title != "Behavioral Methodology Overview" {
		t.Fatalf("last chunk title = %q", last.Title)
	}
	found := false
	for _, tag := range last.Tags {
		if tag == "star" {
			found = true
		}
	}
	if !found {
		t.Errorf("methodology chunk missing star tag: %v", last.Tags)
	}
}

func TestBuildChunks_EmptyProfile(t *testing.T) {
	chunks := BuildChunks(&Profile{})
	// Only the methodology chunk survives an empty profile.
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0].ID != "chunk_1" || chunks[0].Title != "Behavioral Methodology Overview" {
		t.Errorf("unexpected chunk %+v", chunks[0])
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"phone", "Phone"},
		{"company culture", "Company Culture"},
		{"linkedIn", "LinkedIn"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
