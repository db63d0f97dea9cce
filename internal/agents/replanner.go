package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/i-fancy-u/SentientAI/internal/llm"
	"github.com/i-fancy-u/SentientAI/internal/workflow"
)

// LLMReplanner decides after each executed step whether the run has enough
// evidence to answer, needs synthesis, or needs more steps.
type LLMReplanner struct {
	client llm.Client
	logger *zap.Logger
}

// NewLLMReplanner creates a replanner over the chat client.
func NewLLMReplanner(client llm.Client, logger *zap.Logger) *LLMReplanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMReplanner{client: client, logger: logger}
}

// replanReply is the JSON decision the model is asked to produce.
type replanReply struct {
	Action   string   `json:"action"`
	Response string   `json:"response"`
	Steps    []string `json:"steps"`
}

// DecideNextAction prompts for a decision and maps it to the workflow
// contract. A malformed reply yields a zero Decision, which the runner
// treats as a request for synthesis.
func (r *LLMReplanner) DecideNextAction(ctx context.Context, state *workflow.State) (workflow.Decision, error) {
	reply, err := r.client.Generate(ctx, buildReplannerPrompt(state))
	if err != nil {
		return workflow.Decision{}, fmt.Errorf("replanner generation: %w", err)
	}

	var parsed replanReply
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &parsed); err != nil {
		r.logger.Warn("replanner reply was not valid JSON", zap.Error(err))
		return workflow.Decision{}, nil
	}

	switch strings.ToLower(parsed.Action) {
	case "respond":
		return workflow.Decision{Response: parsed.Response}, nil
	case "synthesize":
		return workflow.Decision{Ready: true}, nil
	case "extend":
		var steps []workflow.Step
		for _, descriptor := range parsed.Steps {
			if strings.TrimSpace(descriptor) == "" {
				continue
			}
			steps = append(steps, workflow.ParseStep(descriptor))
		}
		return workflow.Decision{AddSteps: steps}, nil
	default:
		r.logger.Warn("replanner returned unknown action", zap.String("action", parsed.Action))
		return workflow.Decision{}, nil
	}
}

func buildReplannerPrompt(state *workflow.State) string {
	var b strings.Builder
	b.WriteString("You are the replanner for an industrial equipment diagnostic assistant.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", state.Input)

	b.WriteString("Evidence gathered so far:\n")
	for i, past := range state.PastSteps {
		fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, past.Step.Descriptor(), past.Result)
	}

	if len(state.Plan) > 0 {
		b.WriteString("\nSteps still pending:\n")
		for i, step := range state.Plan {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step.Descriptor())
		}
	}

	b.WriteString("\nDecide how to proceed and reply with JSON only:\n")
	b.WriteString(`{"action": "respond", "response": "<final answer>"} to answer directly,` + "\n")
	b.WriteString(`{"action": "synthesize"} when the evidence suffices for a final summary,` + "\n")
	b.WriteString(`{"action": "extend", "steps": ["SCADA: ...", "MANUAL: ..."]} to gather more evidence.`)
	return b.String()
}

// stripCodeFences removes a surrounding markdown code fence from a model
// reply, if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
