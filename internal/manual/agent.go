package manual

import (
	"context"
	"fmt"
	"strings"
)

// contentPreviewLen bounds how much of each passage the agent reports back
// to the workflow transcript.
const contentPreviewLen = 200

// Agent is the executor-facing wrapper over the manual search service. It
// renders search hits as numbered text lines with source attribution, and
// folds search failures into the result text so a broken index degrades one
// step instead of the run.
type Agent struct {
	service *Service
}

// NewAgent wraps a manual search service for the workflow executor.
func NewAgent(service *Service) *Agent {
	return &Agent{service: service}
}

// Search runs a manual search and formats the results for the transcript.
func (a *Agent) Search(ctx context.Context, query string, topK int) (string, error) {
	results, err := a.service.Search(ctx, query, topK)
	if err != nil {
		return fmt.Sprintf("Manual search error: %v", err), nil
	}
	if len(results) == 0 {
		return "No relevant information found.", nil
	}

	lines := make([]string, len(results))
	for i, res := range results {
		lines[i] = fmt.Sprintf("%d. %s (Source: %s, page %s)",
			i+1, previewContent(res.Content), res.Source, res.Page)
	}
	return strings.Join(lines, "\n"), nil
}

func previewContent(content string) string {
	runes := []rune(content)
	if len(runes) <= contentPreviewLen {
		return content
	}
	return string(runes[:contentPreviewLen]) + "..."
}
