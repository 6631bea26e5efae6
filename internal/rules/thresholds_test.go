package rules_test

import (
	"errors"
	"testing"

	"github.com/jeffleon2/draftea-stream-processor/internal/rules"
	"github.com/stretchr/testify/assert"
)

func TestThresholds_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, rules.DefaultThresholds().Validate())
}

func TestThresholds_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*rules.Thresholds)
	}{
		{name: "negative high amount", mutate: func(th *rules.Thresholds) { th.HighAmount = -1 }},
		{name: "risk above one", mutate: func(th *rules.Thresholds) { th.HighRiskScore = 1.5 }},
		{name: "zero frequent count", mutate: func(th *rules.Thresholds) { th.FrequentCount = 0 }},
		{name: "hour out of range", mutate: func(th *rules.Thresholds) { th.LateNightStartHour = 24 }},
		{name: "zero round unit", mutate: func(th *rules.Thresholds) { th.RoundAmountUnit = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := rules.DefaultThresholds()
			tt.mutate(&th)

			err := th.Validate()

			assert.True(t, errors.Is(err, rules.ErrInvalidThresholds))
		})
	}
}

func TestThresholds_ShouldNotify(t *testing.T) {
	th := rules.DefaultThresholds()

	assert.False(t, th.ShouldNotify(0.5))
	assert.False(t, th.ShouldNotify(0.7))
	assert.True(t, th.ShouldNotify(0.8))
}
