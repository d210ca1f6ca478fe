package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/auditcost/internal/costmodel"
	"github.com/Simplici0/auditcost/internal/estimator"
	"github.com/Simplici0/auditcost/internal/form"
	"github.com/Simplici0/auditcost/internal/metrics"
	"github.com/Simplici0/auditcost/internal/pdfexport"
	"github.com/Simplici0/auditcost/internal/render"
	"github.com/Simplici0/auditcost/web"
)

type pdfRenderer interface {
	Render(ctx context.Context, s estimator.Snapshot) ([]byte, error)
}

type server struct {
	est     *estimator.Estimator
	pdf     pdfRenderer
	metrics *metrics.Metrics
	log     *slog.Logger
	pages   map[string]*template.Template
}

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
}

type homeViewData struct {
	baseViewData
	Groups     []form.Group
	Lines      []render.Line
	BaseTotal  string
	Multiplier string
	Headline   render.Line
	Disclaimer string
	SnapshotID string
	UpdatedAt  string
}

func newServer(est *estimator.Estimator, pdf pdfRenderer, m *metrics.Metrics, logger *slog.Logger) (*server, error) {
	pages := make(map[string]*template.Template)
	for _, page := range []string{"home.html"} {
		tmpl, err := template.ParseFS(web.FS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		pages[page] = tmpl
	}

	return &server{est: est, pdf: pdf, metrics: m, log: logger, pages: pages}, nil
}

func (s *server) routes() http.Handler {
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.Get("/", s.handleHome)
	r.Post("/", s.handleEstimateSubmit)
	r.Post("/reset", s.handleReset)
	r.Get("/report.txt", s.handleReportText)
	r.Get("/report.pdf", s.handleReportPDF)
	r.Route("/api", func(r chi.Router) {
		r.Get("/estimate", s.handleAPIGetEstimate)
		r.Post("/estimate", s.handleAPIComputeEstimate)
		r.Put("/estimate", s.handleAPIUpdateEstimate)
	})
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", s.metrics.Handler())

	return r
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	snap := s.est.Current()
	s.renderTemplate(w, http.StatusOK, "home.html", newHomeViewData(snap, form.Encode(snap.Input), baseViewData{}))
}

func (s *server) handleEstimateSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in, err := form.Parse(r.PostForm)
	if err != nil {
		s.renderTemplate(w, http.StatusBadRequest, "home.html", newHomeViewData(s.est.Current(), r.PostForm, baseViewData{ErrorMessage: err.Error()}))
		return
	}

	snap, err := s.est.Update(r.Context(), in)
	if err != nil {
		if isInvalidInput(err) {
			s.renderTemplate(w, http.StatusBadRequest, "home.html", newHomeViewData(s.est.Current(), r.PostForm, baseViewData{ErrorMessage: err.Error()}))
			return
		}
		s.log.Error("update estimate", "error", err)
		http.Error(w, "failed to update estimate", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, http.StatusOK, "home.html", newHomeViewData(snap, form.Encode(snap.Input), baseViewData{SuccessMessage: "Estimate updated."}))
}

func (s *server) handleReset(w http.ResponseWriter, r *http.Request) {
	if _, err := s.est.Reset(r.Context()); err != nil {
		s.log.Error("reset estimate", "error", err)
		http.Error(w, "failed to reset estimate", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleReportText(w http.ResponseWriter, r *http.Request) {
	snap := s.est.Current()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(render.Text(snap.Input, snap.Breakdown)))
}

func (s *server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	pdf, err := s.pdf.Render(r.Context(), s.est.Current())
	s.metrics.ObservePDFExport(err, time.Since(start))
	if err != nil {
		s.log.Warn("pdf export failed", "error", err)
		http.Error(w, "pdf export unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdfexport.Filename+`"`)
	_, _ = w.Write(pdf)
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func newHomeViewData(snap estimator.Snapshot, values url.Values, base baseViewData) homeViewData {
	return homeViewData{
		baseViewData: base,
		Groups:       form.Groups(values),
		Lines:        render.Lines(snap.Breakdown),
		BaseTotal:    render.Currency(snap.Breakdown.BaseTotal),
		Multiplier:   render.Multiplier(snap.Breakdown.RiskMultiplier),
		Headline:     render.Headline(snap.Breakdown),
		Disclaimer:   render.Disclaimer,
		SnapshotID:   snap.ID,
		UpdatedAt:    snap.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *server) renderTemplate(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := s.pages[page]
	if !ok {
		http.Error(w, "unknown template", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.log.Error("render template", "page", page, "error", err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func isInvalidInput(err error) bool {
	var fieldErr *form.FieldError
	return errors.As(err, &fieldErr) || errors.Is(err, costmodel.ErrInvalidInput)
}
