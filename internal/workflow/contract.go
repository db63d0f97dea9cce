package workflow

import "context"

// Planner produces the initial plan from the user query in state.Input.
// Returning an empty plan means the query cannot be planned; the Runner ends
// the run with ResponsePlanningFailed.
type Planner interface {
	CreatePlan(ctx context.Context, state *State) ([]Step, error)
}

// Executor executes exactly the head step of state.Plan and returns the
// resulting transcript entry. It must not consume more than the one visible
// step; the Runner pops the head after the result is recorded.
type Executor interface {
	ExecuteStep(ctx context.Context, state *State) (PastStep, error)
}

// Decision is the replanner's verdict after an executed step.
//
// A non-empty Response answers the query directly and terminates the run.
// Ready requests synthesis from the accumulated transcript. AddSteps extends
// the plan (appended to the existing tail, never replacing it). A zero
// Decision is a contract violation that the Runner treats as an implicit
// request for synthesis.
type Decision struct {
	Ready    bool
	Response string
	AddSteps []Step
}

// Actionable reports whether the decision carries any signal.
func (d Decision) Actionable() bool {
	return d.Ready || d.Response != "" || len(d.AddSteps) > 0
}

// Replanner evaluates the state after each executed step and decides how the
// run proceeds.
type Replanner interface {
	DecideNextAction(ctx context.Context, state *State) (Decision, error)
}

// Synthesizer produces the final response from state.Input and the full
// transcript. An empty response is an error; the Runner substitutes
// ResponseSynthesisFailed.
type Synthesizer interface {
	SynthesizeResponse(ctx context.Context, state *State) (string, error)
}

// Directive is a human review verdict.
type Directive int

const (
	// DirectiveContinue proceeds with the current plan unchanged.
	DirectiveContinue Directive = iota

	// DirectiveSynthesize forces synthesis of a final answer now.
	DirectiveSynthesize

	// DirectiveEdit replaces the plan wholesale and resets the iteration
	// counter, handing control back to the execution loop.
	DirectiveEdit

	// DirectiveQuit aborts the run immediately.
	DirectiveQuit
)

// ReviewDecision is the outcome of one human review. NewPlan is only
// consulted for DirectiveEdit.
type ReviewDecision struct {
	Directive Directive
	NewPlan   []Step
}

// Reviewer suspends the run between iterations and collects a directive.
// The blocking wait is isolated per run: implementations read from a
// per-run input source so one run's review cannot starve another's.
type Reviewer interface {
	Review(ctx context.Context, state *State) (ReviewDecision, error)
}
