package agents

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/i-fancy-u/SentientAI/internal/llm"
	"github.com/i-fancy-u/SentientAI/internal/workflow"
)

// LLMPlanner turns the user query into an ordered plan of tool steps.
type LLMPlanner struct {
	client llm.Client
	logger *zap.Logger
}

// NewLLMPlanner creates a planner over the chat client.
func NewLLMPlanner(client llm.Client, logger *zap.Logger) *LLMPlanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMPlanner{client: client, logger: logger}
}

// CreatePlan prompts for a step list and parses it. An unusable reply or a
// client failure yields an empty plan; deciding that the run cannot proceed
// is the runner's call.
func (p *LLMPlanner) CreatePlan(ctx context.Context, state *workflow.State) ([]workflow.Step, error) {
	reply, err := p.client.Generate(ctx, buildPlannerPrompt(state.Input))
	if err != nil {
		return nil, fmt.Errorf("planner generation: %w", err)
	}

	plan := parsePlanLines(reply)
	p.logger.Debug("planner reply parsed",
		zap.Int("steps", len(plan)),
		zap.Strings("plan", workflow.Descriptors(plan)))
	return plan, nil
}

func buildPlannerPrompt(input string) string {
	var b strings.Builder
	b.WriteString("You are the planner for an industrial equipment diagnostic assistant.\n")
	b.WriteString("Two tools are available:\n")
	b.WriteString("- SCADA: queries telemetry logs (pressure, temperature, vibration, load, rpm, fault codes)\n")
	b.WriteString("- MANUAL: searches technical manuals and troubleshooting procedures\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", input)
	b.WriteString("Produce a short ordered plan, one step per line, each line formatted as\n")
	b.WriteString("'SCADA: <specific question>' or 'MANUAL: <specific search>'.\n")
	b.WriteString("Output only the step lines, no commentary.")
	return b.String()
}

// parsePlanLines extracts recognized tool steps from the model reply,
// tolerating list markers and surrounding prose.
func parsePlanLines(reply string) []workflow.Step {
	var plan []workflow.Step
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		if line == "" {
			continue
		}
		step := workflow.ParseStep(line)
		if step.Kind == workflow.StepKindUnknown {
			continue
		}
		plan = append(plan, step)
	}
	return plan
}
