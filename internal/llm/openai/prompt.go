package openai

import (
	"fmt"
	"strings"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are a task prioritization assistant. Analyze tasks and suggest priority " +
	"(low, medium, high) with a clear, natural language explanation. Your explanation should " +
	"mention specific keywords, factors, or context that influenced the decision."

// BuildPrompt creates the chat messages for a priority suggestion request.
// The reply is expected in the fixed two-line PRIORITY/REASON format.
func BuildPrompt(title, description string) []Message {
	var content strings.Builder
	content.WriteString("Title: ")
	content.WriteString(title)
	if description != "" {
		content.WriteString("\nDescription: ")
		content.WriteString(description)
	}

	user := fmt.Sprintf(
		"%s\n\nSuggest priority and reason in format:\nPRIORITY: <low|medium|high>\nREASON: <natural language explanation mentioning key factors, keywords, or context>",
		content.String(),
	)

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: user},
	}
}
