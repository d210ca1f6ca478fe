package costmodel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput reports an input field that cannot be computed with.
var ErrInvalidInput = errors.New("invalid input")

// Validate rejects NaN and infinite fields. Negative values are accepted;
// Compute propagates them.
func Validate(in Input) error {
	for _, f := range in.fields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, f.name)
		}
	}
	return nil
}

type namedValue struct {
	name  string
	value float64
}

func (in Input) fields() []namedValue {
	return []namedValue{
		{"employee_count", in.EmployeeCount},
		{"avg_hourly_rate", in.AvgHourlyRate},
		{"census_size", in.CensusSize},
		{"turnover_cost_per_employee", in.TurnoverCostPerEmployee},
		{"compliance_turnover_pct", in.ComplianceTurnoverPct},
		{"pre_audit_hours", in.PreAuditHours},
		{"audit_hours", in.AuditHours},
		{"post_audit_hours", in.PostAuditHours},
		{"consultant_rate", in.ConsultantRate},
		{"consultant_hours", in.ConsultantHours},
		{"violation_count", in.ViolationCount},
		{"violation_cost", in.ViolationCost},
		{"denial_rate_pct", in.DenialRatePct},
		{"monthly_claims", in.MonthlyClaims},
		{"avg_claim_value", in.AvgClaimValue},
		{"monthly_referrals", in.MonthlyReferrals},
		{"referral_loss_pct", in.ReferralLossPct},
		{"avg_revenue_per_client", in.AvgRevenuePerClient},
		{"marketing_recovery_cost", in.MarketingRecoveryCost},
		{"risk_multiplier", in.RiskMultiplier},
	}
}

// ValidateBreakdown rejects a breakdown whose components or totals overflowed
// to ±Inf (or became NaN) even though every input was finite.
func ValidateBreakdown(b Breakdown) error {
	values := append(b.Components(),
		Component{Name: "base_total", Value: b.BaseTotal},
		Component{Name: "adjusted_total", Value: b.AdjustedTotal},
	)
	for _, c := range values {
		if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
			return fmt.Errorf("%w: %s overflows", ErrInvalidInput, c.Name)
		}
	}
	return nil
}
