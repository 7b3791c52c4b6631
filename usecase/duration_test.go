package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Idkwii/Cycle-youtube-analytics/usecase"
)

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		input   string
		seconds float64
	}{
		{"PT45S", 45},
		{"PT2M", 120},
		{"PT0M30S", 30},
		{"PT1H2M3S", 3723},
		{"P1DT1S", 86401},
		{"PT59.999S", 59.999},
		{"P1W", 604800},
		{"PT0S", 0},
	}

	for _, tc := range cases {
		seconds, err := usecase.ParseISODuration(tc.input)
		assert.NoError(t, err, tc.input)
		assert.Equal(t, tc.seconds, seconds, tc.input)
	}
}

func TestParseISODuration_Invalid(t *testing.T) {
	for _, input := range []string{"", "P", "45S", "PT", "PTS", "PT1X", "P1M", "PT5"} {
		_, err := usecase.ParseISODuration(input)
		assert.Error(t, err, input)
	}
}
