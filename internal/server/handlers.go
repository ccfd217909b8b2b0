package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/loader"
)

// AnalyzeRequest represents the request body for /api/analyze.
// Exactly one job source is required: inline text or a URL.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
	JobText    string `json:"job_text,omitempty" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL     string `json:"job_url,omitempty" validate:"omitempty,url"`
	Detailed   bool   `json:"detailed,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeResponse wraps the analysis result with a request identifier.
type AnalyzeResponse struct {
	RequestID string          `json:"request_id"`
	Result    json.RawMessage `json:"result"`
}

// handleAnalyze scores a resume against a job description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			s.errorResponse(w, &ErrValidation{Field: verrs[0].Field(), Message: verrs[0].Tag()})
		} else {
			s.errorResponse(w, &ErrValidation{Field: "body", Message: err.Error()})
		}
		return
	}

	jobText := req.JobText
	if req.JobURL != "" {
		fetched, err := loader.JobURL(r.Context(), req.JobURL)
		if err != nil {
			s.errorResponse(w, &ErrJobFetch{URL: req.JobURL, Cause: err})
			return
		}
		jobText = fetched
	}

	requestID := uuid.New().String()
	log.Printf("[analyze] request %s: resume=%dB job=%dB", requestID, len(req.ResumeText), len(jobText))

	var (
		payload any
		err     error
	)
	if req.Detailed {
		payload, err = s.analyzer.AnalyzeDetailed(req.ResumeText, jobText)
	} else {
		payload, err = s.analyzer.Analyze(req.ResumeText, jobText)
	}
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RequestID: requestID,
		Result:    raw,
	})
}
