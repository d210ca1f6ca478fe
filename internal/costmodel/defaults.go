package costmodel

// Defaults returns the reference scenario shown when the estimator starts.
func Defaults() Input {
	return Input{
		EmployeeCount:           85,
		AvgHourlyRate:           45,
		CensusSize:              120,
		TurnoverCostPerEmployee: 8000,
		ComplianceTurnoverPct:   4,

		PreAuditHours:   120,
		AuditHours:      60,
		PostAuditHours:  90,
		ConsultantRate:  175,
		ConsultantHours: 20,

		ViolationCount: 3,
		ViolationCost:  2500,
		DenialRatePct:  6,
		MonthlyClaims:  1200,
		AvgClaimValue:  350,

		MonthlyReferrals:      100,
		ReferralLossPct:       15,
		AvgRevenuePerClient:   2500,
		MarketingRecoveryCost: 15000,

		RiskMultiplier: 1.1,
	}
}
