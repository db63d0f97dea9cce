// Package workflow implements the diagnostic workflow core.
//
// # Overview
//
// A workflow run answers one diagnostic question by driving four agents over
// a shared state object:
//
//	Planning → { Executing → Replanning → Human Review } → Synthesizing
//
// The Runner owns the state for the duration of the run. Agents never mutate
// state directly; each returns a typed delta (a plan, an executed step, a
// replanning decision, a response) and the Runner applies it under fixed
// merge rules.
//
// # Key Components
//
// ## State
//
// The mutable record threaded through every agent call: the original input,
// the pending plan, the append-only transcript of executed steps, and the
// terminal response. Each run owns an independent State, so concurrent runs
// never contend.
//
// ## Agent Contract
//
// Planner, Executor, Replanner and Synthesizer are interfaces so the Runner
// can be exercised with fakes. Implementations live in internal/agents.
//
// ## Human Review
//
// Between iterations the Runner suspends on a Reviewer, which collects one
// of four directives: continue, synthesize, edit (replace the plan and reset
// the iteration counter), or quit. The review is skipped when the iteration
// already produced a terminal signal.
//
// # Failure Semantics
//
// No agent error aborts a run. Executor errors are folded into the
// transcript as the step's result text, replanner errors force synthesis,
// and synthesizer errors substitute a fixed fallback response. The only
// deterministic failure responses are an empty initial plan and iteration
// exhaustion; Run always returns a non-empty response unless the context is
// cancelled.
package workflow
