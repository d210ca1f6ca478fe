package pdfexport

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/Simplici0/auditcost/internal/estimator"
	"github.com/Simplici0/auditcost/internal/form"
	"github.com/Simplici0/auditcost/internal/render"
)

// Filename is the suggested download name of an exported report.
const Filename = "medical-audit-cost-analysis.pdf"

const defaultTimeout = 15 * time.Second

//go:embed report.html
var reportHTML string

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

// Config controls the headless Chromium used for rendering.
type Config struct {
	ChromiumPath string
	Timeout      time.Duration
}

// Renderer renders estimate reports to PDF via headless Chromium.
type Renderer struct {
	cfg Config
	now func() time.Time
}

// NewRenderer returns a Renderer for cfg.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg, now: time.Now}
}

// Render builds the report HTML for s and prints it to PDF. If Chromium is
// unavailable, it returns an error so the caller can report the export as
// unavailable.
func (r *Renderer) Render(ctx context.Context, s estimator.Snapshot) ([]byte, error) {
	html, err := r.HTML(s)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if r.cfg.ChromiumPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.cfg.ChromiumPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	timeout := r.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	runCtx, cancelRun := chromedp.NewContext(allocCtx)
	defer cancelRun()
	runCtx, cancelTimeout := context.WithTimeout(runCtx, timeout)
	defer cancelTimeout()

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, perr := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if perr == nil {
				pdfBuf = buf
			}
			return perr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp run: %w", err)
	}
	return pdfBuf, nil
}

type reportData struct {
	Now        string
	SnapshotID string
	Groups     []form.Group
	Lines      []render.Line
	BaseTotal  string
	Multiplier string
	Headline   render.Line
	Disclaimer string
}

// HTML renders the printable report for s.
func (r *Renderer) HTML(s estimator.Snapshot) (string, error) {
	data := reportData{
		Now:        r.now().UTC().Format("2006-01-02 15:04 MST"),
		SnapshotID: s.ID,
		Groups:     form.Groups(form.Encode(s.Input)),
		Lines:      render.Lines(s.Breakdown),
		BaseTotal:  render.Currency(s.Breakdown.BaseTotal),
		Multiplier: render.Multiplier(s.Breakdown.RiskMultiplier),
		Headline:   render.Headline(s.Breakdown),
		Disclaimer: render.Disclaimer,
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
