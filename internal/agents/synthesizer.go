package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/i-fancy-u/SentientAI/internal/llm"
	"github.com/i-fancy-u/SentientAI/internal/workflow"
)

// LLMSynthesizer produces the final answer from the full transcript.
type LLMSynthesizer struct {
	client llm.Client
	logger *zap.Logger
}

// NewLLMSynthesizer creates a synthesizer over the chat client.
func NewLLMSynthesizer(client llm.Client, logger *zap.Logger) *LLMSynthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMSynthesizer{client: client, logger: logger}
}

// SynthesizeResponse prompts for the final answer. An empty completion is an
// error so the runner substitutes its fixed fallback.
func (s *LLMSynthesizer) SynthesizeResponse(ctx context.Context, state *workflow.State) (string, error) {
	reply, err := s.client.Generate(ctx, buildSynthesizerPrompt(state))
	if err != nil {
		return "", fmt.Errorf("synthesizer generation: %w", err)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", errors.New("synthesizer returned an empty response")
	}

	s.logger.Debug("final response synthesized", zap.Int("length", len(reply)))
	return reply, nil
}

func buildSynthesizerPrompt(state *workflow.State) string {
	var b strings.Builder
	b.WriteString("You are the synthesizer for an industrial equipment diagnostic assistant.\n")
	b.WriteString("Write the final answer for the operator from the evidence below.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", state.Input)

	b.WriteString("Evidence:\n")
	for i, past := range state.PastSteps {
		fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, past.Step.Descriptor(), past.Result)
	}

	b.WriteString("\nGive a clear diagnosis with the likely cause and recommended next actions.\n")
	b.WriteString("If the evidence is insufficient, say so and name what is missing.")
	return b.String()
}
