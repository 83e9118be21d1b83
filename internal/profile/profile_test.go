package profile

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFlexStrings_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexStrings
	}{
		{"string", `"open to discussion"`, FlexStrings{"open to discussion"}},
		{"integer", `120000`, FlexStrings{"120000"}},
		{"float", `95.5`, FlexStrings{"95.5"}},
		{"bool", `true`, FlexStrings{"true"}},
		{"mixed list", `["Melbourne", 2, false]`, FlexStrings{"Melbourne", "2", "false"}},
		{"null", `null`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexStrings
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFlexStrings_UnmarshalJSON_Object(t *testing.T) {
	var f FlexStrings
	if err := json.Unmarshal([]byte(`{"nested": true}`), &f); err == nil {
		t.Error("expected error for object value")
	}
}

func TestFlexStrings_Join(t *testing.T) {
	tests := []struct {
		in   FlexStrings
		want string
	}{
		{nil, ""},
		{FlexStrings{"solo"}, "solo"},
		{FlexStrings{"a", "b", "c"}, "a, b, c"},
	}
	for _, tt := range tests {
		if got := tt.in.Join(); got != tt.want {
			t.Errorf("Join(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuestionSet_UnmarshalJSON(t *testing.T) {
	t.Run("question list", func(t *testing.T) {
		var q QuestionSet
		if err := json.Unmarshal([]byte(`["Why us?", "Tell me about yourself"]`), &q); err != nil {
			t.Fatal(err)
		}
		if len(q.Questions) != 2 || q.IsResearch() {
			t.Errorf("unexpected set %+v", q)
		}
	})

	t.Run("research block", func(t *testing.T) {
		var q QuestionSet
		in := `{"research_areas": ["Team structure"], "preparation_questions": ["What does success look like?"]}`
		if err := json.Unmarshal([]byte(in), &q); err != nil {
			t.Fatal(err)
		}
		if !q.IsResearch() {
			t.Errorf("expected research block, got %+v", q)
		}
		if len(q.ResearchAreas) != 1 || len(q.PreparationQuestions) != 1 {
			t.Errorf("unexpected set %+v", q)
		}
	})
}
