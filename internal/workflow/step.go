package workflow

import "strings"

// StepKind identifies the tool agent that executes a step. The kind is
// decided once when the descriptor is parsed; the executor dispatches on the
// kind and never re-parses the descriptor text.
type StepKind string

const (
	// StepKindSCADA routes to the telemetry query tool.
	StepKindSCADA StepKind = "SCADA"

	// StepKindManual routes to the manual search tool.
	StepKindManual StepKind = "MANUAL"

	// StepKindUnknown marks a descriptor with no recognized routing prefix.
	// Executing such a step records a failure result; the run continues.
	StepKindUnknown StepKind = "UNKNOWN"
)

// Step is one unit of work in a plan: a target capability and the query to
// send to it.
type Step struct {
	Kind  StepKind
	Query string
}

// Descriptor returns the wire form of the step, e.g. "SCADA: check pressure".
// Unknown steps reproduce their original text unchanged.
func (s Step) Descriptor() string {
	if s.Kind == StepKindUnknown {
		return s.Query
	}
	return string(s.Kind) + ": " + s.Query
}

// ParseStep parses a free-text step descriptor into a tagged Step. The
// routing prefix is everything before the first colon, matched
// case-insensitively. Descriptors without a recognized prefix become
// StepKindUnknown with the full text preserved as the query.
func ParseStep(descriptor string) Step {
	descriptor = strings.TrimSpace(descriptor)

	prefix, rest, ok := strings.Cut(descriptor, ":")
	if ok {
		switch strings.ToUpper(strings.TrimSpace(prefix)) {
		case string(StepKindSCADA):
			return Step{Kind: StepKindSCADA, Query: strings.TrimSpace(rest)}
		case string(StepKindManual):
			return Step{Kind: StepKindManual, Query: strings.TrimSpace(rest)}
		}
	}

	return Step{Kind: StepKindUnknown, Query: descriptor}
}

// ParsePlan parses a comma-separated list of step descriptors, dropping
// empty fragments. This is the format of the human edit directive.
func ParsePlan(s string) []Step {
	var plan []Step
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		plan = append(plan, ParseStep(part))
	}
	return plan
}

// Descriptors returns the wire form of every step in the plan.
func Descriptors(plan []Step) []string {
	out := make([]string, len(plan))
	for i, s := range plan {
		out[i] = s.Descriptor()
	}
	return out
}
