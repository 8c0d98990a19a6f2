// Package engine implements the memory-backed adaptive prediction flow:
// check the cache, recall similar past interactions, mine them for action
// patterns, and turn the dominant pattern into a recommendation.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kennonjarvis-debug/JARVIS-AI/internal/intent"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/pattern"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/predict"
	"github.com/kennonjarvis-debug/JARVIS-AI/pkg/models"
)

const (
	// autoExecuteThreshold is the confidence floor for acting without asking.
	autoExecuteThreshold = 0.7
	// suggestThreshold is the confidence floor for offering a suggestion.
	suggestThreshold = 0.4

	// defaultRecallLimit bounds how many memories one prediction consults.
	defaultRecallLimit = 20
	// maxSampleContexts bounds the example contexts attached to a prediction.
	maxSampleContexts = 5
)

// MemoryStore is the collaborator surface the engine needs. *memory.Client
// satisfies it; tests substitute a fake.
type MemoryStore interface {
	Recall(ctx context.Context, query, userID string, limit int) []models.Memory
	Remember(ctx context.Context, content string, metadata models.MemoryMetadata)
}

// ObservationLog persists observed actions and sequences so they survive
// restarts. *store.Store satisfies it.
type ObservationLog interface {
	AppendObservation(userID string, obs models.Observation) error
	AppendSequence(actions []string) error
}

// Options configures an Engine.
type Options struct {
	// RecallLimit caps memories fetched per prediction. Zero means 20.
	RecallLimit int
	// CacheTTL is the prediction cache lifetime. Zero means the cache default.
	CacheTTL time.Duration
	// Logger receives engine events. Nil means slog's default.
	Logger *slog.Logger
	// Log persists observations across restarts. Nil disables persistence.
	Log ObservationLog
}

// Engine coordinates the local learner, the prediction cache, and the memory
// collaborator.
type Engine struct {
	learner *pattern.Learner
	arbiter *predict.Arbiter
	cache   *predict.Cache
	memory  MemoryStore
	logger  *slog.Logger
	log     ObservationLog

	recallLimit int

	mu                 sync.Mutex
	buffers            map[string]*pattern.ActionBuffer
	predictionsMade    int
	predictionsCorrect int
}

// New returns an engine over the given learner and memory collaborator.
func New(learner *pattern.Learner, store MemoryStore, opts Options) *Engine {
	if opts.RecallLimit <= 0 {
		opts.RecallLimit = defaultRecallLimit
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Engine{
		learner:     learner,
		arbiter:     predict.NewArbiter(learner),
		cache:       predict.NewCache(opts.CacheTTL),
		memory:      store,
		logger:      opts.Logger,
		log:         opts.Log,
		recallLimit: opts.RecallLimit,
		buffers:     make(map[string]*pattern.ActionBuffer),
	}
}

// Learner exposes the underlying learner for stats and persistence.
func (e *Engine) Learner() *pattern.Learner { return e.learner }

// Cache exposes the prediction cache for stats and invalidation.
func (e *Engine) Cache() *predict.Cache { return e.cache }

// PredictNext runs the local strategies over the user's recent actions and a
// context string.
func (e *Engine) PredictNext(recentActions []string, context string) models.Prediction {
	p := e.arbiter.Predict(recentActions, context)
	if p.Strategy != models.StrategyNone {
		e.mu.Lock()
		e.predictionsMade++
		e.mu.Unlock()
	}
	return p
}

// PredictFromMemory predicts the user's likely intent in the given context by
// mining recalled past interactions. Results are cached per user and context
// prefix; a cache hit skips the collaborator entirely.
func (e *Engine) PredictFromMemory(ctx context.Context, userID, userContext string) models.MemoryPrediction {
	key := predict.Key(userID, userContext)
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	memories := e.memory.Recall(ctx, userContext, userID, e.recallLimit)
	prediction := analyzeMemories(memories)

	if prediction.Intent != intent.IntentUnknown {
		e.mu.Lock()
		e.predictionsMade++
		e.mu.Unlock()
	}

	e.cache.Put(key, prediction)
	return prediction
}

// ObserveAction records one user action: it extends the user's recent-action
// buffer, feeds the learner, and ships the interaction to the memory
// collaborator in the background.
func (e *Engine) ObserveAction(ctx context.Context, userID string, obs models.Observation) {
	e.buffer(userID).Push(obs.Action)
	e.learner.Observe(obs.Action, obs.Context, obs.Success, obs.Hour)

	if e.log != nil {
		if err := e.log.AppendObservation(userID, obs); err != nil {
			e.logger.Warn("observation not persisted", "error", err)
		}
	}

	meta := models.MemoryMetadata{
		Type:      "task",
		Action:    obs.Action,
		UserID:    userID,
		Success:   obs.Success,
		Context:   obs.Context,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	content := fmt.Sprintf("User did '%s' in context: %s", obs.Action, obs.Context)
	go e.memory.Remember(context.WithoutCancel(ctx), content, meta)
}

// ObserveSequence records an ordered run of actions for sequence learning.
func (e *Engine) ObserveSequence(actions []string) {
	e.learner.ObserveSequence(actions)

	if e.log != nil {
		if err := e.log.AppendSequence(actions); err != nil {
			e.logger.Warn("sequence not persisted", "error", err)
		}
	}
}

// RecentActions returns the user's most recent actions, oldest first.
func (e *Engine) RecentActions(userID string) []string {
	return e.buffer(userID).Recent()
}

// Feedback records whether a delivered prediction turned out to be right.
func (e *Engine) Feedback(correct bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if correct {
		e.predictionsCorrect++
	}
}

// PredictionsMade reports how many non-empty predictions were produced.
func (e *Engine) PredictionsMade() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.predictionsMade
}

// Accuracy reports the share of predictions confirmed correct. With no
// predictions made it reports 0.0.
func (e *Engine) Accuracy() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.predictionsMade == 0 {
		return 0.0
	}
	return float64(e.predictionsCorrect) / float64(e.predictionsMade)
}

func (e *Engine) buffer(userID string) *pattern.ActionBuffer {
	e.mu.Lock()
	defer e.mu.Unlock()
	buf, ok := e.buffers[userID]
	if !ok {
		buf = pattern.NewActionBuffer(0)
		e.buffers[userID] = buf
	}
	return buf
}
