package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"jobtrail-backend/internal/application/repository"
	"jobtrail-backend/pkg/ai"
	"jobtrail-backend/pkg/websearch"

	"go.uber.org/zap"
)

// searchTrigger marks questions that benefit from current web content rather
// than the caller's own records.
var searchTrigger = regexp.MustCompile(`(?i)how to|what is|who is|when to|where to|best practices|tips for|advice on|latest|current|recent`)

// contextLimit caps how many of the caller's applications go into the prompt.
const contextLimit = 5

// Reply is one assistant answer.
type Reply struct {
	Response string
	Sources  []string
}

// ChatUsecase answers a user message grounded in their application list and,
// for how-to style questions, a web search.
type ChatUsecase interface {
	Chat(ctx context.Context, userID, message string) (*Reply, error)
}

type chatUsecase struct {
	repo      repository.ApplicationRepository
	generator ai.Generator
	search    *websearch.Client
	log       *zap.Logger
}

func NewChatUsecase(repo repository.ApplicationRepository, generator ai.Generator, search *websearch.Client, log *zap.Logger) ChatUsecase {
	return &chatUsecase{repo: repo, generator: generator, search: search, log: log}
}

func (u *chatUsecase) Chat(ctx context.Context, userID, message string) (*Reply, error) {
	apps, err := u.repo.FindByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}

	var webContext string
	var sources []string
	if NeedsWebSearch(message) && u.search != nil {
		result := u.search.Search(ctx, message)
		webContext = result.Content
		sources = result.Sources
	}

	appContext := "User has no applications yet."
	if len(apps) > 0 {
		var lines []string
		for i, app := range apps {
			if i == contextLimit {
				break
			}
			line := fmt.Sprintf("- %s (%s) - Status: %s", app.Company, app.Position, app.Status)
			if app.Priority != "" {
				line += ", Priority: " + app.Priority
			}
			lines = append(lines, line)
		}
		appContext = fmt.Sprintf("User has %d applications:\n%s", len(apps), strings.Join(lines, "\n"))
	}

	prompt := fmt.Sprintf(`You are Isla (Intelligent Search & Labor Assistant), an AI job search assistant. Be helpful, professional, and concise.

User Context:
%s

%sUser Question: %s

Provide a helpful, actionable response. If discussing their applications, reference specific details. Keep responses under 150 words.`,
		appContext, webSection(webContext), message)

	response, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	return &Reply{Response: response, Sources: sources}, nil
}

func webSection(webContext string) string {
	if webContext == "" {
		return ""
	}
	return fmt.Sprintf("Web Search Result:\n%s\n\n", webContext)
}

// NeedsWebSearch reports whether the message matches the search trigger
// pattern.
func NeedsWebSearch(message string) bool {
	return searchTrigger.MatchString(message)
}
