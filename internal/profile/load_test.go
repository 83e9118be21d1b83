package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "digitaltwin.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const minimalProfileJSON = `{
	"personal": {
		"name": "Jordan Avery",
		"title": "Senior Data Engineer",
		"contact": {"email": "jordan@example.com"}
	},
	"salary_location": {
		"current_salary": 120000,
		"relocation_willing": true,
		"location_preferences": ["Melbourne", "Remote"]
	},
	"education": {
		"university": "RMIT",
		"gpa": 3.8
	}
}`

func TestResolve(t *testing.T) {
	existing := writeProfileFile(t, minimalProfileJSON)

	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv("TWIN_PROFILE", "")
		if got := Resolve(existing); got != existing {
			t.Errorf("Resolve(%q) = %q", existing, got)
		}
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv("TWIN_PROFILE", existing)
		if got := Resolve(""); got != existing {
			t.Errorf("Resolve(\"\") = %q, want %q", got, existing)
		}
	})

	t.Run("missing everything falls back to default name", func(t *testing.T) {
		t.Setenv("TWIN_PROFILE", "")
		if got := Resolve(filepath.Join(t.TempDir(), "absent.json")); got != DefaultFile {
			t.Errorf("Resolve() = %q, want %q", got, DefaultFile)
		}
	})
}

func TestLoad(t *testing.T) {
	path := writeProfileFile(t, minimalProfileJSON)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if p.Personal.Name != "Jordan Avery" {
		t.Errorf("name = %q", p.Personal.Name)
	}
	if got := p.SalaryLocation.CurrentSalary.Join(); got != "120000" {
		t.Errorf("current salary = %q, want 120000", got)
	}
	if got := p.SalaryLocation.RelocationWilling.Join(); got != "true" {
		t.Errorf("relocation = %q, want true", got)
	}
	if got := p.SalaryLocation.LocationPreferences.Join(); got != "Melbourne, Remote" {
		t.Errorf("location preferences = %q", got)
	}
	if got := p.Education.GPA.Join(); got != "3.8" {
		t.Errorf("gpa = %q, want 3.8", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := writeProfileFile(t, "{not json")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestCanonicalName(t *testing.T) {
	var nilProfile *Profile
	if got := nilProfile.CanonicalName("the candidate"); got != "the candidate" {
		t.Errorf("nil profile name = %q", got)
	}

	p := &Profile{}
	if got := p.CanonicalName("the candidate"); got != "the candidate" {
		t.Errorf("empty name = %q", got)
	}

	p.Personal.Name = "  Jordan Avery  "
	if got := p.CanonicalName("the candidate"); got != "Jordan Avery" {
		t.Errorf("name = %q, want trimmed", got)
	}
}
