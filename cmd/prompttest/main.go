package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	openai "todo-backend/internal/llm/openai"
	"todo-backend/internal/priority"
	"todo-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	title := flag.String("title", "", "Task title")
	description := flag.String("description", "", "Task description (optional)")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	heuristic := flag.Bool("heuristic", false, "Use the keyword heuristic instead of the remote classifier")
	flag.Parse()

	if strings.TrimSpace(*title) == "" {
		exitErr("title is required")
	}

	suggester, err := buildSuggester(*provider, *model, *heuristic)
	if err != nil {
		exitErr(err.Error())
	}

	suggestion := priority.NewService(suggester).Suggest(context.Background(), *title, *description)

	fmt.Printf("PRIORITY: %s\nREASON: %s\n", suggestion.Priority, suggestion.Reason)
}

func buildSuggester(provider, model string, useHeuristic bool) (priority.Suggester, error) {
	if useHeuristic {
		return priority.Heuristic{}, nil
	}
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "openai":
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), model)
		if err != nil {
			return nil, err
		}
		return priority.NewRemote(client, 0), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
