package workflow

import "github.com/google/uuid"

// PastStep records one executed step and its result text.
type PastStep struct {
	Step   Step
	Result string
}

// State is the shared mutable record for one workflow run. It is owned
// exclusively by the Runner for the duration of the run; concurrent runs
// each hold an independent State, so no locking is needed.
type State struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	// Input is the original user query. Immutable once set.
	Input string

	// Plan is the ordered queue of pending steps; the head is always the
	// next step to execute.
	Plan []Step

	// PastSteps is the append-only transcript of executed steps in
	// execution order.
	PastSteps []PastStep

	// Response is the final answer text. Empty until the run is terminal.
	Response string

	// ReadyForSynthesis signals that enough evidence has been gathered and
	// the synthesizer should produce the final response.
	ReadyForSynthesis bool
}

// NewState creates the state for a fresh run.
func NewState(input string) *State {
	return &State{
		RunID: uuid.New().String(),
		Input: input,
	}
}

// AppendPastStep records an executed step. The transcript never shrinks or
// reorders; this is the only way it grows.
func (s *State) AppendPastStep(ps PastStep) {
	s.PastSteps = append(s.PastSteps, ps)
}

// HeadStep returns the next pending step, if any.
func (s *State) HeadStep() (Step, bool) {
	if len(s.Plan) == 0 {
		return Step{}, false
	}
	return s.Plan[0], true
}

// Terminal reports whether the run has produced a final response.
func (s *State) Terminal() bool {
	return s.Response != ""
}
