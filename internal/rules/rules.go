package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-stream-processor/internal/models"
)

const (
	severityHighAmount  = 0.7
	severityFrequent    = 0.6
	severityVelocity    = 0.8
	severityLocation    = 0.5
	severitySuspicious  = 0.7
	alertIDPrefix       = "ALERT-"
	alertIDSuffixLength = 8
)

// finding is what a single rule reports when it fires.
type finding struct {
	reason      models.FraudReason
	severity    float64
	description string
}

type rule func(txn *models.Transaction, summary *models.CustomerSummary, th Thresholds) (finding, bool)

// ordered is the fixed evaluation order; alerts come out in the same order.
var ordered = []rule{
	highAmount,
	highRiskScore,
	frequentTransactions,
	velocityCheck,
	unusualLocation,
	suspiciousPattern,
}

// Evaluate runs every rule against the transaction and the customer's current summary
// and returns one NEW alert per rule that fired. It does not write anywhere.
func Evaluate(txn *models.Transaction, summary *models.CustomerSummary, th Thresholds, now time.Time) []models.FraudAlert {
	if txn == nil {
		return nil
	}
	if summary == nil {
		summary = models.NewCustomerSummary(txn.CustomerID)
	}

	var alerts []models.FraudAlert
	for _, r := range ordered {
		f, ok := r(txn, summary, th)
		if !ok {
			continue
		}
		alerts = append(alerts, models.FraudAlert{
			AlertID:       NewAlertID(),
			CustomerID:    txn.CustomerID,
			TransactionID: txn.TransactionID,
			Reason:        f.reason,
			Description:   f.description,
			Severity:      f.severity,
			Amount:        txn.Amount,
			Timestamp:     txn.Timestamp,
			Status:        models.AlertStatusNew,
			CreatedAt:     now,
		})
	}
	return alerts
}

// NewAlertID returns an identifier like ALERT-1A2B3C4D.
func NewAlertID() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return alertIDPrefix + id[:alertIDSuffixLength]
}

func highAmount(txn *models.Transaction, _ *models.CustomerSummary, th Thresholds) (finding, bool) {
	if !txn.Amount.GreaterThan(amount(th.HighAmount)) {
		return finding{}, false
	}
	return finding{
		reason:      models.ReasonHighAmount,
		severity:    severityHighAmount,
		description: fmt.Sprintf("Transaction amount %s exceeds threshold %s", txn.Amount.StringFixed(2), amount(th.HighAmount).StringFixed(2)),
	}, true
}

func highRiskScore(txn *models.Transaction, _ *models.CustomerSummary, th Thresholds) (finding, bool) {
	if txn.RiskScore == nil || *txn.RiskScore <= th.HighRiskScore {
		return finding{}, false
	}
	return finding{
		reason:      models.ReasonHighRiskScore,
		severity:    *txn.RiskScore,
		description: fmt.Sprintf("High risk score detected: %.2f", *txn.RiskScore),
	}, true
}

func frequentTransactions(_ *models.Transaction, summary *models.CustomerSummary, th Thresholds) (finding, bool) {
	if summary.TransactionsLast1Hour <= th.FrequentCount && !summary.AmountLast1Hour.GreaterThan(amount(th.FrequentAmount)) {
		return finding{}, false
	}
	return finding{
		reason:   models.ReasonFrequentTransactions,
		severity: severityFrequent,
		description: fmt.Sprintf("High transaction frequency: %d transactions totaling %s in the last hour",
			summary.TransactionsLast1Hour, summary.AmountLast1Hour.StringFixed(2)),
	}, true
}

func velocityCheck(_ *models.Transaction, summary *models.CustomerSummary, th Thresholds) (finding, bool) {
	if !summary.AmountLast24Hours.GreaterThan(amount(th.VelocityAmount)) {
		return finding{}, false
	}
	return finding{
		reason:      models.ReasonVelocityCheckFailed,
		severity:    severityVelocity,
		description: fmt.Sprintf("24-hour spending velocity exceeded: %s", summary.AmountLast24Hours.StringFixed(2)),
	}, true
}

func unusualLocation(txn *models.Transaction, summary *models.CustomerSummary, _ Thresholds) (finding, bool) {
	if !summary.HasPreferredLocation() || summary.PreferredLocation == txn.SourceLocation {
		return finding{}, false
	}
	return finding{
		reason:      models.ReasonUnusualLocation,
		severity:    severityLocation,
		description: fmt.Sprintf("Transaction from unusual location: %s (usual: %s)", txn.SourceLocation, summary.PreferredLocation),
	}, true
}

func suspiciousPattern(txn *models.Transaction, _ *models.CustomerSummary, th Thresholds) (finding, bool) {
	var patterns []string

	if txn.Amount.Mod(amount(th.RoundAmountUnit)).IsZero() && txn.Amount.GreaterThan(amount(th.RoundAmountMin)) {
		patterns = append(patterns, "round amount")
	}
	if txn.IsInternational && txn.RiskScore != nil && *txn.RiskScore > th.InternationalRiskScore {
		patterns = append(patterns, "risky international transaction")
	}
	if th.isLateNight(txn.Timestamp.Hour()) && txn.Amount.GreaterThan(amount(th.LateNightAmount)) {
		patterns = append(patterns, "large late-night transaction")
	}

	if len(patterns) == 0 {
		return finding{}, false
	}
	return finding{
		reason:      models.ReasonSuspiciousPattern,
		severity:    severitySuspicious,
		description: "Suspicious transaction pattern detected: " + strings.Join(patterns, ", "),
	}, true
}
