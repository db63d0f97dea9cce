package agents

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/i-fancy-u/SentientAI/internal/workflow"
)

// defaultTopK is passed to tools that rank their results.
const defaultTopK = 3

// Tool is a capability the executor can dispatch a step to. Implementations
// format their findings as transcript text and fold backend failures into
// that text rather than returning errors for them.
type Tool interface {
	Search(ctx context.Context, query string, topK int) (string, error)
}

// ToolExecutor executes the head plan step by dispatching on its kind. The
// kind was decided when the step was parsed, so no descriptor re-parsing
// happens here.
type ToolExecutor struct {
	tools  map[workflow.StepKind]Tool
	topK   int
	logger *zap.Logger
}

// ExecutorOption configures a ToolExecutor.
type ExecutorOption func(*ToolExecutor)

// WithTopK overrides the result count passed to ranking tools.
func WithTopK(k int) ExecutorOption {
	return func(e *ToolExecutor) {
		if k > 0 {
			e.topK = k
		}
	}
}

// NewToolExecutor creates an executor with an empty tool registry.
func NewToolExecutor(logger *zap.Logger, opts ...ExecutorOption) *ToolExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &ToolExecutor{
		tools:  make(map[workflow.StepKind]Tool),
		topK:   defaultTopK,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterTool binds a step kind to a tool.
func (e *ToolExecutor) RegisterTool(kind workflow.StepKind, tool Tool) {
	e.tools[kind] = tool
}

// ExecuteStep runs the single head step of the plan and returns its
// transcript entry. A step with no registered tool, and a tool call that
// fails, both produce a failure result; only a missing head step is an
// error, since calling the executor without one is a contract violation.
func (e *ToolExecutor) ExecuteStep(ctx context.Context, state *workflow.State) (workflow.PastStep, error) {
	head, ok := state.HeadStep()
	if !ok {
		return workflow.PastStep{}, errors.New("no pending step to execute")
	}

	tool, ok := e.tools[head.Kind]
	if !ok {
		e.logger.Warn("no tool for step kind",
			zap.String("kind", string(head.Kind)),
			zap.String("step", head.Descriptor()))
		return workflow.PastStep{
			Step:   head,
			Result: fmt.Sprintf("no tool agent registered for step kind %q", head.Kind),
		}, nil
	}

	result, err := tool.Search(ctx, head.Query, e.topK)
	if err != nil {
		e.logger.Warn("tool call failed",
			zap.String("step", head.Descriptor()),
			zap.Error(err))
		result = fmt.Sprintf("%s search error: %v", head.Kind, err)
	}

	return workflow.PastStep{Step: head, Result: result}, nil
}
