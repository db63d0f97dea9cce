package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/i-fancy-u/SentientAI/internal/workflow"
)

// resultPreviewLen bounds how much of each step result the summary shows.
const resultPreviewLen = 100

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// renderSummary formats the run state for the human reviewer: the query, the
// executed steps with truncated result previews, and the remaining plan.
func renderSummary(state *workflow.State) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("--- Human Review Required ---"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Query:"), state.Input)

	fmt.Fprintf(&b, "%s\n", labelStyle.Render(fmt.Sprintf("Completed steps (%d):", len(state.PastSteps))))
	if len(state.PastSteps) == 0 {
		b.WriteString(dimStyle.Render("  none yet"))
		b.WriteString("\n")
	}
	for i, past := range state.PastSteps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, past.Step.Descriptor())
		fmt.Fprintf(&b, "     %s\n", dimStyle.Render(previewResult(past.Result)))
	}

	fmt.Fprintf(&b, "%s\n", labelStyle.Render(fmt.Sprintf("Remaining plan (%d):", len(state.Plan))))
	if len(state.Plan) == 0 {
		b.WriteString(dimStyle.Render("  no further steps proposed"))
		b.WriteString("\n")
	}
	for i, step := range state.Plan {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step.Descriptor())
	}

	b.WriteString("\nOptions:\n")
	b.WriteString("  c / continue    proceed with the current plan\n")
	b.WriteString("  s / synthesize  force a final answer now\n")
	b.WriteString("  e / edit        replace the plan manually\n")
	b.WriteString("  q / quit        abort the workflow\n")

	return b.String()
}

func previewResult(result string) string {
	if result == "" {
		return "no result"
	}
	runes := []rune(result)
	if len(runes) <= resultPreviewLen {
		return result
	}
	return string(runes[:resultPreviewLen]) + "..."
}
