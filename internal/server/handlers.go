package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/jobshield/internal/analyzer"
	"github.com/jonathan/jobshield/internal/types"
)

// handleAnalyze scores a posting, reusing a recent result for the same
// fingerprint when one exists.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.service.GetOrAnalyze(r.Context(), req.Posting())
	if err != nil {
		log.Printf("Error: analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetAnalysis returns the stored result for a fingerprint if one
// exists within the freshness window.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	fingerprint := r.PathValue("fingerprint")

	since := time.Now().Add(-analyzer.FreshnessWindow)
	result, err := s.index.Find(r.Context(), fingerprint, since)
	if err != nil {
		log.Printf("Error: index lookup failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "no recent analysis for fingerprint")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleCreateReport increments a report counter for a fingerprint.
func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var req types.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	counts, err := s.reports.Increment(r.Context(), req.Fingerprint, req.Kind)
	if err != nil {
		log.Printf("Error: report increment failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "report failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, counts)
}

// handleGetReport returns the report counters for a fingerprint.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	fingerprint := r.PathValue("fingerprint")

	counts, err := s.reports.GetReport(r.Context(), fingerprint)
	if err != nil {
		log.Printf("Error: report lookup failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, counts)
}
