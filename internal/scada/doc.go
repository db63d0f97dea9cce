// Package scada implements the telemetry query tool.
//
// A natural-language question is classified by keyword matching against a
// fixed metric vocabulary (pressure, temperature, vibration, load, rotation
// speed, fault codes) plus an optional month token. The classifier selects
// one bounded read against the SCADA log store; results are rendered as
// tabular text or explained by the LLM when a client is configured.
// Questions that match no keyword fall back to a general LLM response.
//
// Query failures surface as plain result text, never as errors that cross
// the tool boundary.
package scada
