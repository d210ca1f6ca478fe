package form

import "github.com/Simplici0/auditcost/internal/costmodel"

// Field describes one numeric control of the estimator form.
type Field struct {
	Key     string
	Label   string
	Group   string
	Min     float64
	Integer bool

	get func(*costmodel.Input) *float64
}

// Group is a titled set of fields with their current values.
type Group struct {
	Title  string
	Fields []FieldValue
}

// FieldValue pairs a field with the value shown in its control.
type FieldValue struct {
	Field
	Value string
}

const (
	groupFacility   = "Facility & Staffing"
	groupAudit      = "Audit Effort"
	groupCompliance = "Compliance & Claims Impact"
	groupReputation = "Reputation & Referral Impact"
	groupRisk       = "Risk Adjustment"
)

// Fields lists every control in display order.
var Fields = []Field{
	{Key: "employee_count", Label: "Employee Count", Group: groupFacility, Integer: true,
		get: func(in *costmodel.Input) *float64 { return &in.EmployeeCount }},
	{Key: "avg_hourly_rate", Label: "Average Hourly Rate ($)", Group: groupFacility,
		get: func(in *costmodel.Input) *float64 { return &in.AvgHourlyRate }},
	{Key: "census_size", Label: "Average Census Size", Group: groupFacility, Integer: true,
		get: func(in *costmodel.Input) *float64 { return &in.CensusSize }},
	{Key: "turnover_cost_per_employee", Label: "Turnover Cost per Employee ($)", Group: groupFacility,
		get: func(in *costmodel.Input) *float64 { return &in.TurnoverCostPerEmployee }},
	{Key: "compliance_turnover_pct", Label: "Compliance-Driven Turnover (%)", Group: groupFacility,
		get: func(in *costmodel.Input) *float64 { return &in.ComplianceTurnoverPct }},

	{Key: "pre_audit_hours", Label: "Pre-Audit Remediation Hours", Group: groupAudit,
		get: func(in *costmodel.Input) *float64 { return &in.PreAuditHours }},
	{Key: "audit_hours", Label: "Audit Hours", Group: groupAudit,
		get: func(in *costmodel.Input) *float64 { return &in.AuditHours }},
	{Key: "post_audit_hours", Label: "Post-Audit Remediation Hours", Group: groupAudit,
		get: func(in *costmodel.Input) *float64 { return &in.PostAuditHours }},
	{Key: "consultant_rate", Label: "Consultant Hourly Rate ($)", Group: groupAudit,
		get: func(in *costmodel.Input) *float64 { return &in.ConsultantRate }},
	{Key: "consultant_hours", Label: "Consultant Hours", Group: groupAudit,
		get: func(in *costmodel.Input) *float64 { return &in.ConsultantHours }},

	{Key: "violation_count", Label: "Compliance Violations Found", Group: groupCompliance, Integer: true,
		get: func(in *costmodel.Input) *float64 { return &in.ViolationCount }},
	{Key: "violation_cost", Label: "Average Cost per Violation ($)", Group: groupCompliance,
		get: func(in *costmodel.Input) *float64 { return &in.ViolationCost }},
	{Key: "denial_rate_pct", Label: "Documentation-Related Denial Rate (%)", Group: groupCompliance,
		get: func(in *costmodel.Input) *float64 { return &in.DenialRatePct }},
	{Key: "monthly_claims", Label: "Monthly Claims Volume", Group: groupCompliance, Integer: true,
		get: func(in *costmodel.Input) *float64 { return &in.MonthlyClaims }},
	{Key: "avg_claim_value", Label: "Average Claim Value ($)", Group: groupCompliance,
		get: func(in *costmodel.Input) *float64 { return &in.AvgClaimValue }},

	{Key: "monthly_referrals", Label: "Average Monthly Referrals", Group: groupReputation, Integer: true,
		get: func(in *costmodel.Input) *float64 { return &in.MonthlyReferrals }},
	{Key: "referral_loss_pct", Label: "Referral Loss Due to Accreditation Risk (%)", Group: groupReputation,
		get: func(in *costmodel.Input) *float64 { return &in.ReferralLossPct }},
	{Key: "avg_revenue_per_client", Label: "Average Revenue per Client ($)", Group: groupReputation,
		get: func(in *costmodel.Input) *float64 { return &in.AvgRevenuePerClient }},
	{Key: "marketing_recovery_cost", Label: "Reputation Recovery / Marketing Cost ($)", Group: groupReputation,
		get: func(in *costmodel.Input) *float64 { return &in.MarketingRecoveryCost }},

	{Key: "risk_multiplier", Label: "Risk Multiplier (legal, payer scrutiny)", Group: groupRisk, Min: 1,
		get: func(in *costmodel.Input) *float64 { return &in.RiskMultiplier }},
}

// Step is the HTML number-input step for the field.
func (f Field) Step() string {
	if f.Integer {
		return "1"
	}
	return "any"
}
