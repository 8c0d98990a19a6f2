package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/kennonjarvis-debug/JARVIS-AI/internal/codegen"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/engine"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/intent"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/stats"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(
	e *engine.Engine,
	matcher *intent.Matcher,
	generator *codegen.Generator,
	aggregator *stats.Aggregator,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on ALL routes including /health)
	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	h := NewHandler(e, matcher, generator, aggregator)

	r.Get("/health", h.Health)
	r.Get("/stats", h.Stats)

	r.Post("/predict-intent", h.PredictIntent)
	r.Post("/predict-memory", h.PredictMemory)
	r.Post("/learn-pattern", h.LearnPattern)
	r.Post("/learn-sequence", h.LearnSequence)
	r.Post("/observe", h.Observe)
	r.Post("/feedback", h.Feedback)
	r.Post("/generate-code", h.GenerateCode)
	r.Post("/style/learn", h.LearnStyle)

	return r
}
