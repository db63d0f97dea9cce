// Package agents provides the workflow agent implementations.
//
// The planner, replanner and synthesizer are prompt-driven: each builds a
// prompt from the run state, calls the chat client, and parses the reply
// into the typed delta the workflow contract expects. The executor is not an
// LLM — it dispatches the head plan step to the tool registered for the
// step's kind.
//
// Parsing is defensive throughout: an unusable model reply degrades to the
// contract's empty value (empty plan, zero decision) and the workflow
// runner's recovery rules take over.
package agents
