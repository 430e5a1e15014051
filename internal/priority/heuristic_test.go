package priority

import (
	"context"
	"strings"
	"testing"
)

func TestClassifyUrgentKeywords(t *testing.T) {
	got := classify("Urgent task with deadline", "Must be done ASAP")
	if got.Priority != High {
		t.Fatalf("expected high priority, got %s", got.Priority)
	}
	if !strings.Contains(got.Reason, "'urgent'") || !strings.Contains(got.Reason, "deadline") {
		t.Fatalf("expected reason to name the matched keywords, got %q", got.Reason)
	}
}

func TestClassifyRoutineDefaultsMedium(t *testing.T) {
	got := classify("Regular daily task", "Normal work item")
	if got.Priority != Medium {
		t.Fatalf("expected medium priority, got %s", got.Priority)
	}
	if got.Reason != reasonRoutine {
		t.Fatalf("expected routine reason, got %q", got.Reason)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	got := classify("", "")
	if got.Priority != Medium {
		t.Fatalf("expected medium priority for empty input, got %s", got.Priority)
	}
	if got.Reason == "" {
		t.Fatalf("expected non-empty reason for empty input")
	}
}

func TestClassifyExamNeedsTimeOrImportance(t *testing.T) {
	got := classify("Study for the exam", "")
	if got.Priority != Medium {
		t.Fatalf("expected exam alone to stay medium, got %s", got.Priority)
	}

	got = classify("Final exam", "very important")
	if got.Priority != High || got.Reason != reasonExam {
		t.Fatalf("expected exam rule to fire, got %+v", got)
	}
}

func TestClassifyExamRuleWinsOverUrgent(t *testing.T) {
	got := classify("Urgent exam tomorrow", "")
	if got.Priority != High {
		t.Fatalf("expected high priority, got %s", got.Priority)
	}
	if got.Reason != reasonExam {
		t.Fatalf("expected exam reason to win, got %q", got.Reason)
	}
}

func TestClassifyDescriptionContributes(t *testing.T) {
	got := classify("Prepare slides", "this is urgent")
	if got.Priority != High {
		t.Fatalf("expected description keywords to raise priority, got %s", got.Priority)
	}
}

func TestClassifyLowKeywords(t *testing.T) {
	got := classify("Clean the garage", "can be done later")
	if got.Priority != Low {
		t.Fatalf("expected low priority, got %s", got.Priority)
	}
	if !strings.Contains(got.Reason, "'later'") {
		t.Fatalf("expected reason to name the matched keyword, got %q", got.Reason)
	}
}

func TestClassifyReasonNamesAtMostThreeKeywords(t *testing.T) {
	got := classify("urgent critical asap important", "")
	if got.Priority != High {
		t.Fatalf("expected high priority, got %s", got.Priority)
	}
	if !strings.Contains(got.Reason, "'urgent', 'critical', 'asap'") {
		t.Fatalf("expected first three keywords quoted, got %q", got.Reason)
	}
	if strings.Contains(got.Reason, "'important'") {
		t.Fatalf("expected fourth keyword to be dropped, got %q", got.Reason)
	}
}

func TestClassifyLocaleVariants(t *testing.T) {
	cases := []struct {
		name        string
		title       string
		description string
		priority    Level
	}{
		{
			name:     "polish_urgent",
			title:    "Pilne zadanie",
			priority: High,
		},
		{
			name:        "polish_low",
			title:       "Posprzątać biurko",
			description: "opcjonalne",
			priority:    Low,
		},
		{
			name:     "polish_exam_tomorrow",
			title:    "Egzamin z matematyki jutro",
			priority: High,
		},
		{
			name:        "english_exam_today",
			title:       "exam",
			description: "today",
			priority:    High,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.title, tc.description)
			if got.Priority != tc.priority {
				t.Fatalf("expected %s, got %s (reason %q)", tc.priority, got.Priority, got.Reason)
			}
		})
	}
}

func TestHeuristicSuggestAlwaysConcrete(t *testing.T) {
	h := Heuristic{}
	inputs := []struct{ title, description string }{
		{"", ""},
		{"   ", "   "},
		{"Urgent", "deadline"},
		{"zwykłe zadanie", ""},
	}
	for _, in := range inputs {
		got := h.Suggest(context.Background(), in.title, in.description)
		if !got.Priority.Valid() {
			t.Fatalf("expected valid priority for %q/%q, got %q", in.title, in.description, got.Priority)
		}
		if got.Reason == "" {
			t.Fatalf("expected non-empty reason for %q/%q", in.title, in.description)
		}
	}
}
