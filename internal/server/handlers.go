// Package server exposes the adaptive prediction engine over REST.
package server

import (
	"net/http"

	"github.com/kennonjarvis-debug/JARVIS-AI/internal/codegen"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/engine"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/intent"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/stats"
	"github.com/kennonjarvis-debug/JARVIS-AI/pkg/models"
)

const serviceVersion = "1.0.0"

// Handler serves the adaptive prediction endpoints.
type Handler struct {
	engine    *engine.Engine
	matcher   *intent.Matcher
	generator *codegen.Generator
	stats     *stats.Aggregator
}

// NewHandler wires the handler to its collaborators.
func NewHandler(e *engine.Engine, m *intent.Matcher, g *codegen.Generator, agg *stats.Aggregator) *Handler {
	return &Handler{engine: e, matcher: m, generator: g, stats: agg}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "adaptive-ai",
		"version": serviceVersion,
	})
}

type predictIntentRequest struct {
	Context       string   `json:"context"`
	UserID        string   `json:"userId"`
	RecentActions []string `json:"recentActions"`
}

type nextAction struct {
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

type predictIntentResponse struct {
	Intent      string      `json:"intent"`
	Confidence  float64     `json:"confidence"`
	Explanation string      `json:"explanation"`
	NextAction  *nextAction `json:"nextAction"`
}

// PredictIntent handles POST /predict-intent. An unmatched text yields the
// unknown intent at zero confidence with status 200; not recognizing a text
// is an answer, not an error.
func (h *Handler) PredictIntent(w http.ResponseWriter, r *http.Request) {
	var req predictIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	label, confidence := h.matcher.Predict(req.Context, req.RecentActions)

	resp := predictIntentResponse{
		Intent:      label,
		Confidence:  confidence,
		Explanation: intent.Explain(label, confidence),
	}

	if len(req.RecentActions) > 0 {
		next := h.engine.PredictNext(req.RecentActions, req.Context)
		resp.NextAction = &nextAction{
			Action:     next.Action,
			Confidence: next.Confidence,
			Reasoning:  next.Explanation,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type learnPatternRequest struct {
	Action  string `json:"action"`
	Context string `json:"context"`
	Success *bool  `json:"success"`
	Hour    *int   `json:"hour"`
	UserID  string `json:"userId"`
}

// LearnPattern handles POST /learn-pattern.
func (h *Handler) LearnPattern(w http.ResponseWriter, r *http.Request) {
	var req learnPatternRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Action == "" {
		writeError(w, http.StatusBadRequest, "action is required")
		return
	}

	success := true
	if req.Success != nil {
		success = *req.Success
	}
	hour := 12
	if req.Hour != nil {
		hour = *req.Hour
	}

	h.engine.ObserveAction(r.Context(), req.UserID, models.Observation{
		Action:  req.Action,
		Context: req.Context,
		Success: success,
		Hour:    hour,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Pattern learned",
	})
}

type learnSequenceRequest struct {
	Actions []string `json:"actions"`
}

// LearnSequence handles POST /learn-sequence. A sequence shorter than two
// actions is accepted and ignored.
func (h *Handler) LearnSequence(w http.ResponseWriter, r *http.Request) {
	var req learnSequenceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.engine.ObserveSequence(req.Actions)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Sequence learned",
	})
}

type predictMemoryRequest struct {
	Context string `json:"context"`
	UserID  string `json:"userId"`
}

// PredictMemory handles POST /predict-memory.
func (h *Handler) PredictMemory(w http.ResponseWriter, r *http.Request) {
	var req predictMemoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	prediction := h.engine.PredictFromMemory(r.Context(), req.UserID, req.Context)
	writeJSON(w, http.StatusOK, prediction)
}

type observeRequest struct {
	Description string `json:"description"`
	Action      string `json:"action"`
	UserID      string `json:"userId"`
	Success     *bool  `json:"success"`
	Context     string `json:"context"`
	Hour        *int   `json:"hour"`
}

// Observe handles POST /observe.
func (h *Handler) Observe(w http.ResponseWriter, r *http.Request) {
	var req observeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Action == "" {
		writeError(w, http.StatusBadRequest, "action is required")
		return
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	success := true
	if req.Success != nil {
		success = *req.Success
	}
	hour := 12
	if req.Hour != nil {
		hour = *req.Hour
	}

	context := req.Context
	if context == "" {
		context = req.Description
	}

	h.engine.ObserveAction(r.Context(), req.UserID, models.Observation{
		Action:  req.Action,
		Context: context,
		Success: success,
		Hour:    hour,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Action observed and stored",
	})
}

type feedbackRequest struct {
	Correct bool `json:"correct"`
}

// Feedback handles POST /feedback. Confirmations feed the accuracy stat.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.engine.Feedback(req.Correct)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Feedback recorded",
	})
}

// GenerateCode handles POST /generate-code.
func (h *Handler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	var req codegen.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	code, err := h.generator.Generate(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"code":     code,
		"language": "python",
		"intent":   req.Intent,
	})
}

type learnStyleRequest struct {
	Code string `json:"code"`
}

// LearnStyle handles POST /style/learn.
func (h *Handler) LearnStyle(w http.ResponseWriter, r *http.Request) {
	var req learnStyleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.generator.LearnStyle(req.Code)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Style learned",
	})
}

// Stats handles GET /stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = "default"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"patternLearner": h.stats.Report(userID),
		"userId":         userID,
	})
}
