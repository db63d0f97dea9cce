package manual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "abbreviation expands",
			query: "check temp now",
			want:  "check temperature now",
		},
		{
			name:  "full word untouched",
			query: "temperature limits",
			want:  "temperature limits",
		},
		{
			name:  "no partial match inside word",
			query: "attempt the restart",
			want:  "attempt the restart",
		},
		{
			name:  "lowercased",
			query: "CHECK TEMP NOW",
			want:  "check temperature now",
		},
		{
			name:  "multiple abbreviations",
			query: "vib and press readings",
			want:  "vibration and pressure readings",
		},
		{
			name:  "rpm expands to phrase",
			query: "rpm limit",
			want:  "rotations per minute limit",
		},
		{
			name:  "domain terms enriched",
			query: "fault on the capper",
			want:  "error fault problem on the capper",
		},
		{
			name:  "troubleshoot expands",
			query: "troubleshoot error 503",
			want:  "troubleshooting diagnosis problem error 503",
		},
		{
			name:  "empty",
			query: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeQuery(tt.query))
		})
	}
}

func TestNormalizeQuery_Idempotent(t *testing.T) {
	once := normalizeQuery("check temp and vib")
	assert.Equal(t, once, normalizeQuery(once))
}
