package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Simplici0/auditcost/internal/costmodel"
	"github.com/Simplici0/auditcost/internal/estimator"
	"github.com/Simplici0/auditcost/internal/form"
)

const maxRequestBody = 64 << 10

type estimateResponse struct {
	ID        string              `json:"id,omitempty"`
	UpdatedAt string              `json:"updated_at,omitempty"`
	Input     costmodel.Input     `json:"input"`
	Breakdown costmodel.Breakdown `json:"breakdown"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func snapshotResponse(snap estimator.Snapshot) estimateResponse {
	return estimateResponse{
		ID:        snap.ID,
		UpdatedAt: snap.UpdatedAt.Format(time.RFC3339Nano),
		Input:     snap.Input,
		Breakdown: snap.Breakdown,
	}
}

func (s *server) handleAPIGetEstimate(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, snapshotResponse(s.est.Current()))
}

// handleAPIComputeEstimate computes a breakdown without touching the current state.
func (s *server) handleAPIComputeEstimate(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodeInput(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, estimateResponse{Input: in, Breakdown: costmodel.Compute(in)})
}

func (s *server) handleAPIUpdateEstimate(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodeInput(w, r)
	if !ok {
		return
	}

	snap, err := s.est.Update(r.Context(), in)
	if err != nil {
		if isInvalidInput(err) {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		s.log.Error("update estimate", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to update estimate"})
		return
	}

	s.writeJSON(w, http.StatusOK, snapshotResponse(snap))
}

// decodeInput reads a JSON input and applies the same rules as the HTML form.
// Fields left out of the body are zero. Inputs whose breakdown overflows are
// rejected.
func (s *server) decodeInput(w http.ResponseWriter, r *http.Request) (costmodel.Input, bool) {
	var in costmodel.Input

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json: " + err.Error()})
		return costmodel.Input{}, false
	}

	in, err := form.Parse(form.Encode(in))
	if err == nil {
		err = costmodel.ValidateBreakdown(costmodel.Compute(in))
	}
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return costmodel.Input{}, false
	}
	return in, true
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.log.Error("encode json response", "error", err)
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: "failed to encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
