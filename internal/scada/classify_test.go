package scada

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     intent
		wantOK   bool
	}{
		{
			name:     "pressure keyword",
			question: "What is the pressure on the capper?",
			want:     intent{Metric: MetricPressure},
			wantOK:   true,
		},
		{
			name:     "temperature full word",
			question: "Is the boiler temperature stable?",
			want:     intent{Metric: MetricTemperature},
			wantOK:   true,
		},
		{
			name:     "temp abbreviation",
			question: "check temp now",
			want:     intent{Metric: MetricTemperature},
			wantOK:   true,
		},
		{
			name:     "vibration",
			question: "Any unusual vibration on pump P-101?",
			want:     intent{Metric: MetricVibration},
			wantOK:   true,
		},
		{
			name:     "load is aggregate",
			question: "What was the average load?",
			want:     intent{Metric: MetricLoad, Aggregate: true},
			wantOK:   true,
		},
		{
			name:     "rpm",
			question: "Show shaft speed readings",
			want:     intent{Metric: MetricRPM},
			wantOK:   true,
		},
		{
			name:     "error keyword",
			question: "Were there any alarms yesterday?",
			want:     intent{ErrorsOnly: true},
			wantOK:   true,
		},
		{
			name:     "numeric fault code",
			question: "Did we log any 503 events?",
			want:     intent{ErrorsOnly: true},
			wantOK:   true,
		},
		{
			name:     "month extracted",
			question: "What was the average load in January?",
			want:     intent{Metric: MetricLoad, Aggregate: true, Month: "01"},
			wantOK:   true,
		},
		{
			name:     "month case insensitive",
			question: "errors in DECEMBER",
			want:     intent{ErrorsOnly: true, Month: "12"},
			wantOK:   true,
		},
		{
			name:     "pressure wins over error category",
			question: "pressure fault on the compressor",
			want:     intent{Metric: MetricPressure},
			wantOK:   true,
		},
		{
			name:     "no match",
			question: "tell me a joke",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classify(tt.question)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
