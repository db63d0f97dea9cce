package manual

import (
	"regexp"
	"sort"
	"strings"
)

// abbreviations maps field shorthand to the expanded terms the manuals use.
// Expansion is whole-word only: "temp" expands, "temperature" is untouched.
var abbreviations = map[string]string{
	"temp":         "temperature",
	"press":        "pressure",
	"vib":          "vibration",
	"rpm":          "rotations per minute",
	"psi":          "pressure",
	"err":          "error",
	"troubleshoot": "troubleshooting diagnosis problem",
	"fix":          "repair solution troubleshooting",
	"alarm":        "error alarm warning",
	"fault":        "error fault problem",
	"maintenance":  "maintenance service repair",
	"calibration":  "calibration adjustment setup",
	"installation": "installation setup configuration",
}

type expansion struct {
	pattern     *regexp.Regexp
	replacement string
}

var expansions = buildExpansions()

func buildExpansions() []expansion {
	// Deterministic order so repeated normalization is stable.
	keys := make([]string, 0, len(abbreviations))
	for k := range abbreviations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]expansion, 0, len(keys))
	for _, k := range keys {
		out = append(out, expansion{
			pattern:     regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`),
			replacement: abbreviations[k],
		})
	}
	return out
}

// normalizeQuery lowercases the query and expands known abbreviations as
// whole words.
func normalizeQuery(query string) string {
	q := strings.ToLower(query)
	for _, e := range expansions {
		q = e.pattern.ReplaceAllString(q, e.replacement)
	}
	return q
}
