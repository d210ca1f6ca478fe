package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Simplici0/auditcost/internal/costmodel"
)

// Text renders a plain-text report of an estimate, suitable for pasting
// into an email or printing from the CLI.
func Text(in costmodel.Input, b costmodel.Breakdown) string {
	var sb strings.Builder

	sb.WriteString("Medical Facility Audit Cost Estimate\n")
	sb.WriteString("\n")

	sb.WriteString("Facility:\n")
	fmt.Fprintf(&sb, "- Employees: %s\n", humanize.CommafWithDigits(in.EmployeeCount, 2))
	fmt.Fprintf(&sb, "- Average census size: %s\n", humanize.CommafWithDigits(in.CensusSize, 2))
	sb.WriteString("\n")

	sb.WriteString("Cost breakdown:\n")
	for _, line := range Lines(b) {
		fmt.Fprintf(&sb, "- %s: %s\n", line.Label, line.Amount)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Base total: %s\n", Currency(b.BaseTotal))
	fmt.Fprintf(&sb, "Risk multiplier: %s\n", Multiplier(b.RiskMultiplier))
	headline := Headline(b)
	fmt.Fprintf(&sb, "%s: %s\n", headline.Label, headline.Amount)
	sb.WriteString("\n")
	sb.WriteString(Disclaimer)
	sb.WriteString("\n")

	return sb.String()
}
