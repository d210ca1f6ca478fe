package costmodel

// Input holds every parameter of an audit cost estimate.
// Count-like fields are float64 so fractional values flow through unchanged.
type Input struct {
	// Facility & staffing.
	EmployeeCount           float64 `json:"employee_count" yaml:"employee_count"`
	AvgHourlyRate           float64 `json:"avg_hourly_rate" yaml:"avg_hourly_rate"`
	CensusSize              float64 `json:"census_size" yaml:"census_size"` // display only
	TurnoverCostPerEmployee float64 `json:"turnover_cost_per_employee" yaml:"turnover_cost_per_employee"`
	ComplianceTurnoverPct   float64 `json:"compliance_turnover_pct" yaml:"compliance_turnover_pct"`

	// Audit effort.
	PreAuditHours   float64 `json:"pre_audit_hours" yaml:"pre_audit_hours"`
	AuditHours      float64 `json:"audit_hours" yaml:"audit_hours"`
	PostAuditHours  float64 `json:"post_audit_hours" yaml:"post_audit_hours"`
	ConsultantRate  float64 `json:"consultant_rate" yaml:"consultant_rate"`
	ConsultantHours float64 `json:"consultant_hours" yaml:"consultant_hours"`

	// Compliance & claims.
	ViolationCount float64 `json:"violation_count" yaml:"violation_count"`
	ViolationCost  float64 `json:"violation_cost" yaml:"violation_cost"`
	DenialRatePct  float64 `json:"denial_rate_pct" yaml:"denial_rate_pct"`
	MonthlyClaims  float64 `json:"monthly_claims" yaml:"monthly_claims"`
	AvgClaimValue  float64 `json:"avg_claim_value" yaml:"avg_claim_value"`

	// Reputation.
	MonthlyReferrals      float64 `json:"monthly_referrals" yaml:"monthly_referrals"`
	ReferralLossPct       float64 `json:"referral_loss_pct" yaml:"referral_loss_pct"`
	AvgRevenuePerClient   float64 `json:"avg_revenue_per_client" yaml:"avg_revenue_per_client"`
	MarketingRecoveryCost float64 `json:"marketing_recovery_cost" yaml:"marketing_recovery_cost"`

	RiskMultiplier float64 `json:"risk_multiplier" yaml:"risk_multiplier"`
}

// Breakdown contains every derived cost component and both totals.
type Breakdown struct {
	LaborCost             float64 `json:"labor_cost"`
	ConsultantCost        float64 `json:"consultant_cost"`
	ViolationTotal        float64 `json:"violation_total"`
	DenialCost            float64 `json:"denial_cost"`
	TurnoverTotal         float64 `json:"turnover_total"`
	ReferralLoss          float64 `json:"referral_loss"`
	MarketingRecoveryCost float64 `json:"marketing_recovery_cost"`
	BaseTotal             float64 `json:"base_total"`
	RiskMultiplier        float64 `json:"risk_multiplier"`
	AdjustedTotal         float64 `json:"adjusted_total"`
}

// Component is one named additive term of the base total.
type Component struct {
	Name  string
	Value float64
}

// Compute derives the cost breakdown for in. It never fails and never rounds;
// negative inputs propagate into negative components.
func Compute(in Input) Breakdown {
	laborCost := (in.PreAuditHours + in.AuditHours + in.PostAuditHours) * in.AvgHourlyRate
	consultantCost := in.ConsultantRate * in.ConsultantHours
	violationTotal := in.ViolationCount * in.ViolationCost
	denialCost := (in.DenialRatePct / 100.0) * in.MonthlyClaims * in.AvgClaimValue
	turnoverTotal := (in.ComplianceTurnoverPct / 100.0) * in.EmployeeCount * in.TurnoverCostPerEmployee
	referralLoss := (in.ReferralLossPct / 100.0) * in.MonthlyReferrals * in.AvgRevenuePerClient

	baseTotal := laborCost + consultantCost + violationTotal + denialCost +
		turnoverTotal + referralLoss + in.MarketingRecoveryCost

	return Breakdown{
		LaborCost:             laborCost,
		ConsultantCost:        consultantCost,
		ViolationTotal:        violationTotal,
		DenialCost:            denialCost,
		TurnoverTotal:         turnoverTotal,
		ReferralLoss:          referralLoss,
		MarketingRecoveryCost: in.MarketingRecoveryCost,
		BaseTotal:             baseTotal,
		RiskMultiplier:        in.RiskMultiplier,
		AdjustedTotal:         baseTotal * in.RiskMultiplier,
	}
}

// Components returns the seven additive terms of BaseTotal in display order.
func (b Breakdown) Components() []Component {
	return []Component{
		{Name: "labor_cost", Value: b.LaborCost},
		{Name: "consultant_cost", Value: b.ConsultantCost},
		{Name: "violation_total", Value: b.ViolationTotal},
		{Name: "denial_cost", Value: b.DenialCost},
		{Name: "turnover_total", Value: b.TurnoverTotal},
		{Name: "referral_loss", Value: b.ReferralLoss},
		{Name: "marketing_recovery_cost", Value: b.MarketingRecoveryCost},
	}
}
