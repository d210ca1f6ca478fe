package render

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/Simplici0/auditcost/internal/costmodel"
)

const (
	// HeadlineLabel is the caption of the risk-adjusted total.
	HeadlineLabel = "Total Estimated Audit Cost"

	// Disclaimer is printed under every report.
	Disclaimer = "This model is directional and intended for executive-level cost justification. Actual results may vary."
)

var componentLabels = map[string]string{
	"labor_cost":              "Labor Cost",
	"consultant_cost":         "Consultant Cost",
	"violation_total":         "Compliance Violations",
	"denial_cost":             "Claim Denials (Monthly)",
	"turnover_total":          "Staff Turnover Cost",
	"referral_loss":           "Lost Referrals Revenue",
	"marketing_recovery_cost": "Reputation / Marketing Recovery",
}

// Line is one formatted row of the cost breakdown.
type Line struct {
	Key    string
	Label  string
	Amount string
	Value  float64
}

// Currency formats v as dollars with two decimals and thousands separators.
// Rounding happens here only; stored values are never rounded.
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return humanize.FormatFloat("", v)
	}
	amount := humanize.FormatFloat("#,###.##", math.Abs(v))
	if v < 0 && amount != "0.00" {
		return "-$" + amount
	}
	return "$" + amount
}

// Lines returns the seven breakdown components, labelled and formatted.
func Lines(b costmodel.Breakdown) []Line {
	components := b.Components()
	lines := make([]Line, 0, len(components))
	for _, c := range components {
		lines = append(lines, Line{
			Key:    c.Name,
			Label:  componentLabels[c.Name],
			Amount: Currency(c.Value),
			Value:  c.Value,
		})
	}
	return lines
}

// Headline returns the risk-adjusted total as the headline row.
func Headline(b costmodel.Breakdown) Line {
	return Line{
		Key:    "adjusted_total",
		Label:  HeadlineLabel,
		Amount: Currency(b.AdjustedTotal),
		Value:  b.AdjustedTotal,
	}
}

// Multiplier formats a risk multiplier such as 1.1 as "1.10x".
func Multiplier(v float64) string {
	return humanize.FormatFloat("#.##", v) + "x"
}
