package workflow

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("sentient/workflow")

// Fixed responses for the run's deterministic failure paths. Callers
// distinguish failures only by these exact strings.
const (
	// ResponsePlanningFailed ends a run whose planner produced no steps.
	ResponsePlanningFailed = "The planner could not create a valid plan. Please try a different query."

	// ResponseSynthesisFailed substitutes for a failed synthesizer call.
	ResponseSynthesisFailed = "An error occurred during final synthesis."

	// ResponseInconclusive ends a run that exhausted its iteration budget
	// without a response.
	ResponseInconclusive = "The diagnostic process completed without a final synthesized response. Please review the past steps for information."

	// ResponseAborted ends a run on the human quit directive.
	ResponseAborted = "Workflow aborted by human."
)

// DefaultMaxIterations bounds the execution loop. A human plan edit resets
// the counter, so a supervised run can exceed it.
const DefaultMaxIterations = 5

// Status labels the phase a run is currently in.
type Status string

const (
	StatusPlanning     Status = "planning"
	StatusExecuting    Status = "executing"
	StatusReplanning   Status = "replanning"
	StatusHumanReview  Status = "human_review"
	StatusSynthesizing Status = "synthesizing"
	StatusDone         Status = "done"
	StatusAborted      Status = "aborted"
)

// Runner drives one diagnostic workflow run at a time over an exclusively
// owned State. It invokes the agents in fixed order, applies their typed
// deltas, and enforces the iteration bound and termination predicates.
type Runner struct {
	planner       Planner
	executor      Executor
	replanner     Replanner
	synthesizer   Synthesizer
	reviewer      Reviewer
	maxIterations int
	logger        *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithMaxIterations overrides the iteration budget.
func WithMaxIterations(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxIterations = n
		}
	}
}

// WithReviewer sets the human review gate. Without one the gate is skipped
// and every iteration proceeds as if the human chose continue.
func WithReviewer(rev Reviewer) Option {
	return func(r *Runner) {
		r.reviewer = rev
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner. Planner, executor, replanner and synthesizer
// are required.
func NewRunner(planner Planner, executor Executor, replanner Replanner, synthesizer Synthesizer, opts ...Option) (*Runner, error) {
	if planner == nil || executor == nil || replanner == nil || synthesizer == nil {
		return nil, errors.New("planner, executor, replanner and synthesizer are required")
	}

	r := &Runner{
		planner:       planner,
		executor:      executor,
		replanner:     replanner,
		synthesizer:   synthesizer,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r, nil
}

// Run executes the complete workflow for one query and returns the final
// response text. Every failure path inside the workflow resolves to a fixed
// response string; the returned error is non-nil only when the context is
// cancelled mid-run.
func (r *Runner) Run(ctx context.Context, query string) (string, error) {
	ctx, span := tracer.Start(ctx, "Runner.Run")
	defer span.End()

	state := NewState(query)
	logger := r.logger.With(zap.String("run_id", state.RunID))
	logger.Info("workflow started", zap.String("input", query))

	response, err := r.run(ctx, state, logger)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	span.SetAttributes(
		attribute.Int("steps_executed", len(state.PastSteps)),
		attribute.Int("response_len", len(response)),
	)
	logger.Info("workflow finished", zap.Int("steps_executed", len(state.PastSteps)))
	return response, nil
}

func (r *Runner) run(ctx context.Context, state *State, logger *zap.Logger) (string, error) {
	// Planning: one shot, empty plan is fatal for the run.
	plan, err := r.planner.CreatePlan(ctx, state)
	if err != nil {
		logger.Warn("planner failed", zap.Error(err))
	}
	state.Plan = plan
	if len(state.Plan) == 0 {
		logger.Warn("planner produced no steps, ending run")
		runsTotal.WithLabelValues(outcomePlanFailed).Inc()
		state.Response = ResponsePlanningFailed
		return state.Response, nil
	}
	logger.Info("plan created", zap.Strings("plan", Descriptors(state.Plan)))

	iteration := 0
	totalPasses := 0
	aborted := false

	for !state.ReadyForSynthesis && !state.Terminal() && iteration < r.maxIterations {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		iteration++
		totalPasses++
		logger.Debug("loop iteration", zap.Int("iteration", iteration))

		// An empty plan with no terminal signal is a replanning dead-end.
		if len(state.Plan) == 0 {
			logger.Warn("plan empty without synthesis signal, forcing synthesis")
			state.ReadyForSynthesis = true
		}

		if head, ok := state.HeadStep(); ok {
			r.executeHead(ctx, state, head, logger)
		}

		if !state.ReadyForSynthesis {
			r.replan(ctx, state, logger)
		}

		// Human review only when the iteration produced no terminal signal.
		if state.ReadyForSynthesis || state.Terminal() || r.reviewer == nil {
			continue
		}
		decision, err := r.reviewer.Review(ctx, state)
		if err != nil {
			// The gate must not kill a run; treat as continue.
			logger.Warn("human review failed, continuing", zap.Error(err))
			continue
		}
		switch decision.Directive {
		case DirectiveQuit:
			logger.Info("run aborted by human")
			state.Response = ResponseAborted
			aborted = true
		case DirectiveSynthesize:
			logger.Info("human forced synthesis")
			state.ReadyForSynthesis = true
		case DirectiveEdit:
			logger.Info("human edited plan", zap.Strings("plan", Descriptors(decision.NewPlan)))
			state.Plan = decision.NewPlan
			iteration = 0
		}
	}

	iterationsPerRun.Observe(float64(totalPasses))

	if state.ReadyForSynthesis && !state.Terminal() {
		r.synthesize(ctx, state, logger)
	} else if !state.Terminal() {
		logger.Warn("iteration budget exhausted without response")
		state.Response = ResponseInconclusive
		runsTotal.WithLabelValues(outcomeInconclusive).Inc()
		return state.Response, nil
	}

	if aborted {
		runsTotal.WithLabelValues(outcomeAborted).Inc()
	} else {
		runsTotal.WithLabelValues(outcomeCompleted).Inc()
	}
	return state.Response, nil
}

// executeHead runs the head step and records its result, then pops the head.
// The pop happens strictly after the transcript entry is appended so a
// failed attempt is never lost.
func (r *Runner) executeHead(ctx context.Context, state *State, head Step, logger *zap.Logger) {
	past, err := r.executor.ExecuteStep(ctx, state)
	if err != nil {
		// Tool failures surface as result text; the run keeps going.
		logger.Warn("step execution failed",
			zap.String("step", head.Descriptor()),
			zap.Error(err))
		past = PastStep{Step: head, Result: err.Error()}
	}
	state.AppendPastStep(past)
	state.Plan = state.Plan[1:]
	logger.Debug("step executed",
		zap.String("step", past.Step.Descriptor()),
		zap.Int("remaining", len(state.Plan)))
}

// replan applies the replanner's decision under the merge rules: response
// and ready flags are adopted, new steps are appended to the plan tail, and
// a decision with no signal at all forces synthesis.
func (r *Runner) replan(ctx context.Context, state *State, logger *zap.Logger) {
	decision, err := r.replanner.DecideNextAction(ctx, state)
	if err != nil {
		logger.Warn("replanner failed, forcing synthesis", zap.Error(err))
		state.ReadyForSynthesis = true
		return
	}

	if decision.Response != "" {
		state.Response = decision.Response
	}
	if decision.Ready {
		state.ReadyForSynthesis = true
	}
	if len(decision.AddSteps) > 0 {
		state.Plan = append(state.Plan, decision.AddSteps...)
		logger.Info("replanner extended plan",
			zap.Int("added", len(decision.AddSteps)),
			zap.Strings("plan", Descriptors(state.Plan)))
	}

	if !decision.Actionable() && !state.Terminal() && !state.ReadyForSynthesis {
		logger.Warn("replanner returned no actionable decision, forcing synthesis")
		state.ReadyForSynthesis = true
	}
}

// synthesize produces the final response, substituting the fixed fallback on
// any synthesizer failure.
func (r *Runner) synthesize(ctx context.Context, state *State, logger *zap.Logger) {
	response, err := r.synthesizer.SynthesizeResponse(ctx, state)
	if err != nil || response == "" {
		logger.Error("synthesis failed", zap.Error(err))
		state.Response = ResponseSynthesisFailed
		return
	}
	state.Response = response
}
