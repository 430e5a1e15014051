package priority

import (
	"context"
	"fmt"
	"strings"
)

// Keyword lists drive the rules in classify, scanned in the order written.
// Polish variants sit alongside English so both locales classify the same way.
var (
	examKeywords       = []string{"egzamin", "exam"}
	timeKeywords       = []string{"jutro", "dzisiaj", "dzis", "today", "tomorrow"}
	importanceKeywords = []string{"bardzo ważny", "bardzo wazny", "ważny", "wazny", "critical", "important"}
	urgentKeywords     = []string{"urgent", "critical", "asap", "important", "pilne", "deadline"}
	lowKeywords        = []string{"low", "minor", "later", "opcjonalne", "później"}
)

const (
	reasonExam    = "High priority: task involves an important exam on a short deadline (keywords: exam, tomorrow/very important)."
	reasonRoutine = "Medium priority: task covers routine duties with no specific deadline"
)

// Heuristic classifies urgency with keyword rules. It needs no external
// service and never fails.
type Heuristic struct{}

// Suggest applies the keyword rules to the task text.
func (Heuristic) Suggest(ctx context.Context, title, description string) Suggestion {
	_ = ctx
	return classify(title, description)
}

// classify applies the rules in order; the first matching rule wins. Empty
// input falls through to the medium default.
func classify(title, description string) Suggestion {
	haystack := strings.ToLower(title)
	if description != "" {
		haystack += " " + strings.ToLower(description)
	}

	if containsAny(haystack, examKeywords) &&
		(containsAny(haystack, timeKeywords) || containsAny(haystack, importanceKeywords)) {
		return Suggestion{Priority: High, Reason: reasonExam}
	}

	if matched := matchKeywords(haystack, urgentKeywords); len(matched) > 0 {
		return Suggestion{
			Priority: High,
			Reason:   fmt.Sprintf("High priority: task contains keywords %s and is tied to a deadline", quoteKeywords(matched)),
		}
	}

	if matched := matchKeywords(haystack, lowKeywords); len(matched) > 0 {
		return Suggestion{
			Priority: Low,
			Reason:   fmt.Sprintf("Low priority: task is optional and can be done later (keywords: %s)", quoteKeywords(matched)),
		}
	}

	return Suggestion{Priority: Medium, Reason: reasonRoutine}
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// matchKeywords collects the keywords present in the haystack, in list order.
func matchKeywords(haystack string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// quoteKeywords renders up to the first three matches as 'kw', 'kw', 'kw'.
func quoteKeywords(matched []string) string {
	if len(matched) > 3 {
		matched = matched[:3]
	}
	quoted := make([]string, 0, len(matched))
	for _, kw := range matched {
		quoted = append(quoted, "'"+kw+"'")
	}
	return strings.Join(quoted, ", ")
}

var _ Suggester = Heuristic{}
