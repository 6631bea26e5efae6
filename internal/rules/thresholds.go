package rules

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidThresholds = errors.New("invalid fraud thresholds")

// Thresholds holds every tunable limit of the fraud rules. Keys absent from a
// rules file keep their defaults.
type Thresholds struct {
	HighAmount             float64 `yaml:"high_amount"`
	HighRiskScore          float64 `yaml:"high_risk_score"`
	FrequentCount          int64   `yaml:"frequent_count"`
	FrequentAmount         float64 `yaml:"frequent_amount"`
	VelocityAmount         float64 `yaml:"velocity_amount"`
	RoundAmountUnit        float64 `yaml:"round_amount_unit"`
	RoundAmountMin         float64 `yaml:"round_amount_min"`
	InternationalRiskScore float64 `yaml:"international_risk_score"`
	LateNightStartHour     int     `yaml:"late_night_start_hour"`
	LateNightEndHour       int     `yaml:"late_night_end_hour"`
	LateNightAmount        float64 `yaml:"late_night_amount"`
	NotifySeverity         float64 `yaml:"notify_severity"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HighAmount:             10000,
		HighRiskScore:          0.8,
		FrequentCount:          10,
		FrequentAmount:         15000,
		VelocityAmount:         20000,
		RoundAmountUnit:        100,
		RoundAmountMin:         1000,
		InternationalRiskScore: 0.6,
		LateNightStartHour:     22,
		LateNightEndHour:       5,
		LateNightAmount:        5000,
		NotifySeverity:         0.7,
	}
}

func (t Thresholds) Validate() error {
	for name, v := range map[string]float64{
		"high_amount":       t.HighAmount,
		"frequent_amount":   t.FrequentAmount,
		"velocity_amount":   t.VelocityAmount,
		"round_amount_unit": t.RoundAmountUnit,
		"round_amount_min":  t.RoundAmountMin,
		"late_night_amount": t.LateNightAmount,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidThresholds, name)
		}
	}
	for name, v := range map[string]float64{
		"high_risk_score":          t.HighRiskScore,
		"international_risk_score": t.InternationalRiskScore,
		"notify_severity":          t.NotifySeverity,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1]", ErrInvalidThresholds, name)
		}
	}
	if t.FrequentCount <= 0 {
		return fmt.Errorf("%w: frequent_count must be positive", ErrInvalidThresholds)
	}
	if t.LateNightStartHour < 0 || t.LateNightStartHour > 23 || t.LateNightEndHour < 0 || t.LateNightEndHour > 23 {
		return fmt.Errorf("%w: late night hours must be within [0, 23]", ErrInvalidThresholds)
	}
	return nil
}

// ShouldNotify reports whether an alert is severe enough to be forwarded.
func (t Thresholds) ShouldNotify(severity float64) bool {
	return severity > t.NotifySeverity
}

// isLateNight treats start > end as a window that wraps midnight.
func (t Thresholds) isLateNight(hour int) bool {
	if t.LateNightStartHour > t.LateNightEndHour {
		return hour >= t.LateNightStartHour || hour <= t.LateNightEndHour
	}
	return hour >= t.LateNightStartHour && hour <= t.LateNightEndHour
}

func amount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
