package pdfexport

import (
	"strings"
	"testing"
	"time"

	"github.com/Simplici0/auditcost/internal/costmodel"
	"github.com/Simplici0/auditcost/internal/estimator"
)

func TestHTML_ContainsBreakdownAndInputs(t *testing.T) {
	r := NewRenderer(Config{})
	r.now = func() time.Time { return time.Date(2024, 2, 1, 14, 0, 0, 0, time.UTC) }

	in := costmodel.Defaults()
	html, err := r.HTML(estimator.Snapshot{ID: "snap-1", Input: in, Breakdown: costmodel.Compute(in)})
	if err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}

	for _, expected := range []string{
		"Generated 2024-02-01 14:00 UTC",
		"Estimate snap-1",
		"Facility &amp; Staffing",
		"Average Census Size",
		"Claim Denials (Monthly)",
		"$25,200.00",
		"$128,050.00",
		"1.10x",
		"Total Estimated Audit Cost",
		"$140,855.00",
	} {
		if !strings.Contains(html, expected) {
			t.Fatalf("expected html to contain %q", expected)
		}
	}
}

func TestHTML_EscapesSnapshotID(t *testing.T) {
	r := NewRenderer(Config{})

	html, err := r.HTML(estimator.Snapshot{ID: "<script>", Breakdown: costmodel.Compute(costmodel.Input{RiskMultiplier: 1})})
	if err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}
	if strings.Contains(html, "Estimate <script>") {
		t.Fatalf("snapshot id was not escaped")
	}
}
