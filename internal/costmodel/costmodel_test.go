package costmodel

import (
	"errors"
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCompute_DefaultScenario(t *testing.T) {
	result := Compute(Defaults())

	nearlyEqual(t, "laborCost", result.LaborCost, 12150)
	nearlyEqual(t, "consultantCost", result.ConsultantCost, 3500)
	nearlyEqual(t, "violationTotal", result.ViolationTotal, 7500)
	nearlyEqual(t, "denialCost", result.DenialCost, 25200)
	nearlyEqual(t, "turnoverTotal", result.TurnoverTotal, 27200)
	nearlyEqual(t, "referralLoss", result.ReferralLoss, 37500)
	nearlyEqual(t, "marketingRecoveryCost", result.MarketingRecoveryCost, 15000)
	nearlyEqual(t, "baseTotal", result.BaseTotal, 128050)
	nearlyEqual(t, "riskMultiplier", result.RiskMultiplier, 1.1)
	nearlyEqual(t, "adjustedTotal", result.AdjustedTotal, 140855)
}

func TestCompute_ZeroInputWithUnitRisk(t *testing.T) {
	result := Compute(Input{RiskMultiplier: 1})

	for _, c := range result.Components() {
		if c.Value != 0 {
			t.Fatalf("%s = %v, want 0", c.Name, c.Value)
		}
	}
	if result.BaseTotal != 0 || result.AdjustedTotal != 0 {
		t.Fatalf("totals = %v/%v, want 0/0", result.BaseTotal, result.AdjustedTotal)
	}
}

func TestCompute_DoublingEmployeesOnlyDoublesTurnover(t *testing.T) {
	in := Defaults()
	doubled := in
	doubled.EmployeeCount *= 2

	before := Compute(in)
	after := Compute(doubled)

	nearlyEqual(t, "turnoverTotal", after.TurnoverTotal, 2*before.TurnoverTotal)
	nearlyEqual(t, "laborCost", after.LaborCost, before.LaborCost)
	nearlyEqual(t, "consultantCost", after.ConsultantCost, before.ConsultantCost)
	nearlyEqual(t, "violationTotal", after.ViolationTotal, before.ViolationTotal)
	nearlyEqual(t, "denialCost", after.DenialCost, before.DenialCost)
	nearlyEqual(t, "referralLoss", after.ReferralLoss, before.ReferralLoss)
	nearlyEqual(t, "marketingRecoveryCost", after.MarketingRecoveryCost, before.MarketingRecoveryCost)
}

func TestCompute_CensusSizeDoesNotAffectCosts(t *testing.T) {
	in := Defaults()
	other := in
	other.CensusSize = 9999

	if Compute(in) != Compute(other) {
		t.Fatalf("census size changed the breakdown")
	}
}

func TestCompute_FractionalCounts(t *testing.T) {
	in := Input{
		EmployeeCount:           10.5,
		TurnoverCostPerEmployee: 1000,
		ComplianceTurnoverPct:   10,
		ViolationCount:          1.5,
		ViolationCost:           100,
		RiskMultiplier:          2,
	}

	result := Compute(in)

	nearlyEqual(t, "turnoverTotal", result.TurnoverTotal, 1050)
	nearlyEqual(t, "violationTotal", result.ViolationTotal, 150)
	nearlyEqual(t, "baseTotal", result.BaseTotal, 1200)
	nearlyEqual(t, "adjustedTotal", result.AdjustedTotal, 2400)
}

func TestCompute_NegativeInputsPropagate(t *testing.T) {
	in := Input{
		AuditHours:            -10,
		AvgHourlyRate:         50,
		MarketingRecoveryCost: -100,
		RiskMultiplier:        1.5,
	}

	result := Compute(in)

	nearlyEqual(t, "laborCost", result.LaborCost, -500)
	nearlyEqual(t, "baseTotal", result.BaseTotal, -600)
	nearlyEqual(t, "adjustedTotal", result.AdjustedTotal, -900)
}

func TestCompute_IsDeterministic(t *testing.T) {
	in := Defaults()
	first := Compute(in)
	second := Compute(in)

	if math.Float64bits(first.AdjustedTotal) != math.Float64bits(second.AdjustedTotal) || first != second {
		t.Fatalf("compute not deterministic: %+v vs %+v", first, second)
	}
}

func TestComponents_SumToBaseTotal(t *testing.T) {
	result := Compute(Defaults())

	components := result.Components()
	if len(components) != 7 {
		t.Fatalf("expected 7 components, got %d", len(components))
	}

	sum := 0.0
	for _, c := range components {
		sum += c.Value
	}
	nearlyEqual(t, "sum", sum, result.BaseTotal)
}

func TestValidate_RejectsNonFinite(t *testing.T) {
	in := Defaults()
	in.DenialRatePct = math.NaN()

	err := Validate(in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != "invalid input: denial_rate_pct is not finite" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	in = Defaults()
	in.RiskMultiplier = math.Inf(1)
	if err := Validate(in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for +Inf, got %v", err)
	}
}

func TestValidate_AcceptsNegativeAndDefaults(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}

	in := Defaults()
	in.ViolationCost = -1
	if err := Validate(in); err != nil {
		t.Fatalf("negative value rejected: %v", err)
	}
}

func TestValidateBreakdown_RejectsOverflow(t *testing.T) {
	if err := ValidateBreakdown(Compute(Defaults())); err != nil {
		t.Fatalf("default breakdown rejected: %v", err)
	}

	in := Input{AuditHours: 10, AvgHourlyRate: 1e308, RiskMultiplier: 1}
	if err := Validate(in); err != nil {
		t.Fatalf("finite input rejected: %v", err)
	}

	err := ValidateBreakdown(Compute(in))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != "invalid input: labor_cost overflows" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
