package review

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/i-fancy-u/SentientAI/internal/workflow"
)

// ConsoleReviewer collects review directives from a line-oriented console.
// Each reviewer owns its reader, so a run blocked in Review only ties up its
// own input source.
type ConsoleReviewer struct {
	out     io.Writer
	scanner *bufio.Scanner
}

// NewConsoleReviewer creates a reviewer reading directives from in and
// writing the state summary and prompts to out.
func NewConsoleReviewer(in io.Reader, out io.Writer) *ConsoleReviewer {
	return &ConsoleReviewer{
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// Review renders the state summary and blocks until the human enters a valid
// directive. Unrecognized input is re-prompted. A closed input stream cannot
// keep supervising the run, so EOF maps to quit.
func (r *ConsoleReviewer) Review(ctx context.Context, state *workflow.State) (workflow.ReviewDecision, error) {
	fmt.Fprint(r.out, renderSummary(state))

	for {
		if err := ctx.Err(); err != nil {
			return workflow.ReviewDecision{}, err
		}

		fmt.Fprint(r.out, promptStyle.Render("Your decision (c/s/e/q): "))
		line, ok := r.readLine()
		if !ok {
			return workflow.ReviewDecision{Directive: workflow.DirectiveQuit}, nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "c", "continue":
			return workflow.ReviewDecision{Directive: workflow.DirectiveContinue}, nil
		case "s", "synthesize":
			return workflow.ReviewDecision{Directive: workflow.DirectiveSynthesize}, nil
		case "e", "edit":
			plan, ok := r.promptPlan()
			if !ok {
				return workflow.ReviewDecision{Directive: workflow.DirectiveQuit}, nil
			}
			if len(plan) == 0 {
				fmt.Fprintln(r.out, "No steps recognized. Enter at least one step.")
				continue
			}
			return workflow.ReviewDecision{Directive: workflow.DirectiveEdit, NewPlan: plan}, nil
		case "q", "quit":
			return workflow.ReviewDecision{Directive: workflow.DirectiveQuit}, nil
		default:
			fmt.Fprintln(r.out, "Invalid choice. Please enter 'c', 's', 'e', or 'q'.")
		}
	}
}

// promptPlan collects the comma-separated replacement plan for the edit
// directive.
func (r *ConsoleReviewer) promptPlan() ([]workflow.Step, bool) {
	fmt.Fprint(r.out, promptStyle.Render("Enter new plan steps (comma-separated, e.g. 'SCADA: Get X, MANUAL: Search Y'): "))
	line, ok := r.readLine()
	if !ok {
		return nil, false
	}
	return workflow.ParsePlan(line), true
}

func (r *ConsoleReviewer) readLine() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return r.scanner.Text(), true
}
