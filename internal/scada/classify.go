package scada

import "strings"

// Metric names as stored in the scada_logs table.
const (
	MetricPressure    = "pressure_psi"
	MetricTemperature = "temperature_celsius"
	MetricVibration   = "vibration_hz"
	MetricLoad        = "load_kw"
	MetricRPM         = "rpm"
)

// intent is the classified form of a natural-language telemetry question.
type intent struct {
	// Metric is the matched metric name; empty for error-record queries.
	Metric string

	// Aggregate selects an average instead of recent rows (load queries).
	Aggregate bool

	// ErrorsOnly selects records carrying a fault code.
	ErrorsOnly bool

	// Month is a "01".."12" filter, empty when no month token was found.
	Month string
}

// metricVocabulary maps each query category to its trigger keywords. Order
// matters: the first category with a match wins, mirroring the original
// classifier's precedence.
var metricVocabulary = []struct {
	metric     string
	aggregate  bool
	errorsOnly bool
	keywords   []string
}{
	{metric: MetricPressure, keywords: []string{"pressure", "psi", "capper", "compressor", "bar", "leak"}},
	{metric: MetricTemperature, keywords: []string{"temperature", "temp", "celsius", "overheat", "boiler", "furnace", "chiller"}},
	{metric: MetricVibration, keywords: []string{"vibration", "shake", "hz", "unbalance", "resonance", "oscillation"}},
	{metric: MetricLoad, aggregate: true, keywords: []string{"load", "power", "grid", "electric", "kw", "average load", "main supply"}},
	{metric: MetricRPM, keywords: []string{"rpm", "rotation", "overspeed", "underspeed", "shaft speed"}},
	{errorsOnly: true, keywords: []string{"error", "anomaly", "fault", "issue", "warning", "alarm", "problem", "503", "504", "505"}},
}

var monthNumbers = map[string]string{
	"january": "01", "february": "02", "march": "03", "april": "04",
	"may": "05", "june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
}

// classify matches the question against the metric vocabulary. The second
// return value is false when no category matched and the question should go
// to the LLM fallback.
func classify(question string) (intent, bool) {
	q := strings.ToLower(question)

	var in intent
	for name, num := range monthNumbers {
		if strings.Contains(q, name) {
			in.Month = num
			break
		}
	}

	for _, category := range metricVocabulary {
		for _, kw := range category.keywords {
			if strings.Contains(q, kw) {
				in.Metric = category.metric
				in.Aggregate = category.aggregate
				in.ErrorsOnly = category.errorsOnly
				return in, true
			}
		}
	}

	return intent{}, false
}
