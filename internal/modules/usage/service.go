// README: Best-effort recording of LLM calls; implements trip.UsageRecorder.
package usage

import (
	"context"
	"log"
	"time"

	"roam/internal/modules/trip"
)

// Service records LLM calls without ever failing the caller.
type Service struct {
	store *Store
	model string
}

// NewService creates a Service backed by the given Store. model names the
// upstream model identifier stamped on every record.
func NewService(store *Store, model string) *Service {
	return &Service{store: store, model: model}
}

// RecordCall persists one call record. Insert failures are logged and dropped:
// usage accounting must never turn a successful suggestion into an error.
func (s *Service) RecordCall(ctx context.Context, sessionID, stage string, intent trip.Intent, elapsed time.Duration, callErr error) {
	rec := Call{
		SessionID: sessionID,
		Stage:     stage,
		Intent:    string(intent),
		Model:     s.model,
		LatencyMS: elapsed.Milliseconds(),
		OK:        callErr == nil,
		CreatedAt: time.Now(),
	}
	if callErr != nil {
		rec.Error = callErr.Error()
	}
	// The request context may already be expired when the call itself timed out;
	// the record still has to land.
	if err := s.store.Insert(context.WithoutCancel(ctx), rec); err != nil {
		log.Printf("usage: record call failed: %v", err)
	}
}
