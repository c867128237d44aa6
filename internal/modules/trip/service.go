// README: Trip service orchestrates intent classification, per-intent generation, and session state.
package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"roam/internal/ai"
)

// Geocoder resolves a place name to coordinates. Used as a fallback when the
// model leaves a location at (0,0).
type Geocoder interface {
	Locate(ctx context.Context, name string) (lat, lng float64, err error)
}

// UsageRecorder persists per-call diagnostics. Implementations must be
// best-effort; recording never fails a request.
type UsageRecorder interface {
	RecordCall(ctx context.Context, sessionID, stage string, intent Intent, elapsed time.Duration, callErr error)
}

// Service runs the classify-then-generate pipeline.
type Service struct {
	provider ai.Provider
	store    ItineraryStore
	geocoder Geocoder      // optional
	usage    UsageRecorder // optional
}

func NewService(provider ai.Provider, store ItineraryStore, geocoder Geocoder, usage UsageRecorder) *Service {
	return &Service{provider: provider, store: store, geocoder: geocoder, usage: usage}
}

// Result is the outcome of one request. Exactly one of Description and
// Itinerary is set, matching the intent.
type Result struct {
	Intent      Intent
	Description *DescriptionResponse
	Itinerary   *ItineraryResponse
}

// Classify obtains one label from the closed intent set for the user message.
// A provider failure or a label outside the set is an ErrClassification.
func (s *Service) Classify(ctx context.Context, sessionID, message string) (Intent, error) {
	raw, err := s.generate(ctx, sessionID, "classify", "", []ai.Message{
		{Role: ai.RoleSystem, Content: classifySystemPrompt},
		{Role: ai.RoleUser, Content: classifyUserContent(message)},
	}, classificationSchema)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClassification, err)
	}

	var cls intentClassification
	if err := json.Unmarshal([]byte(raw), &cls); err != nil {
		// Schema mode should return bare JSON; fall back to brace-span recovery.
		span := ExtractJSON(raw)
		if span == nil || json.Unmarshal(span, &cls) != nil {
			return "", fmt.Errorf("%w: unparseable classification %q", ErrClassification, raw)
		}
	}

	intent, ok := ParseIntent(cls.Intent)
	if !ok {
		return "", fmt.Errorf("%w: label %q outside the known set", ErrClassification, cls.Intent)
	}
	log.Printf("trip: session=%s query classified as %s", sessionID, intent)
	return intent, nil
}

// Suggest runs the full pipeline for one user message: classify, generate for
// the resulting intent, and update the session's itinerary slot on success.
// The two model calls are strictly sequential; nothing is retried.
func (s *Service) Suggest(ctx context.Context, sessionID, message string) (*Result, error) {
	intent, err := s.Classify(ctx, sessionID, message)
	if err != nil {
		return nil, err
	}

	switch intent {
	case IntentDescription:
		desc, err := s.describe(ctx, sessionID, message)
		if err != nil {
			return nil, err
		}
		return &Result{Intent: intent, Description: desc}, nil

	case IntentItinerary:
		it, err := s.plan(ctx, sessionID, intent, []ai.Message{
			{Role: ai.RoleSystem, Content: itinerarySystemPrompt},
			{Role: ai.RoleUser, Content: itineraryUserContent(message)},
		})
		if err != nil {
			return nil, err
		}
		return &Result{Intent: intent, Itinerary: it}, nil

	case IntentModifyItinerary:
		// Precondition checked before any generation call is issued.
		previous, err := s.store.Load(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if previous == nil {
			return nil, ErrNoPreviousItinerary
		}
		previousJSON, err := json.Marshal(previous)
		if err != nil {
			return nil, fmt.Errorf("encode previous itinerary: %w", err)
		}
		it, err := s.plan(ctx, sessionID, intent, []ai.Message{
			{Role: ai.RoleSystem, Content: modifySystemPrompt},
			{Role: ai.RoleUser, Content: modifyUserContent(string(previousJSON), message)},
		})
		if err != nil {
			return nil, err
		}
		return &Result{Intent: intent, Itinerary: it}, nil
	}

	// ParseIntent guarantees the switch above is exhaustive.
	return nil, fmt.Errorf("%w: unhandled intent %q", ErrClassification, intent)
}

func (s *Service) describe(ctx context.Context, sessionID, message string) (*DescriptionResponse, error) {
	raw, err := s.generate(ctx, sessionID, "generate", IntentDescription, []ai.Message{
		{Role: ai.RoleSystem, Content: describeSystemPrompt},
		{Role: ai.RoleUser, Content: describeUserContent(message)},
	}, descriptionSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var desc DescriptionResponse
	if err := parsePayload(raw, &desc); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return &desc, nil
}

// plan runs an itinerary-producing generation call and, on success, resolves
// missing coordinates and overwrites the session's stored itinerary.
func (s *Service) plan(ctx context.Context, sessionID string, intent Intent, msgs []ai.Message) (*ItineraryResponse, error) {
	raw, err := s.generate(ctx, sessionID, "generate", intent, msgs, itinerarySchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var it ItineraryResponse
	if err := parsePayload(raw, &it); err != nil {
		return nil, err
	}
	if err := it.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	s.fillCoordinates(ctx, &it)
	for _, d := range it.Suggestions.Days {
		log.Printf("trip: session=%s day %d covers %.1f km over %d stops", sessionID, d.Day, daySpanKm(d), len(d.Locations))
	}

	if err := s.store.Save(ctx, sessionID, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// generate issues one provider call, logging the raw output and recording usage.
func (s *Service) generate(ctx context.Context, sessionID, stage string, intent Intent, msgs []ai.Message, schema *ai.Schema) (string, error) {
	start := time.Now()
	raw, err := s.provider.Generate(ctx, msgs, schema)
	if s.usage != nil {
		s.usage.RecordCall(ctx, sessionID, stage, intent, time.Since(start), err)
	}
	if err != nil {
		return "", err
	}
	log.Printf("trip: session=%s stage=%s raw model output: %s", sessionID, stage, raw)
	return raw, nil
}

// parsePayload unmarshals a model payload, recovering fenced or prose-wrapped
// JSON through the brace-span extractor before giving up.
func parsePayload(raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}
	span := ExtractJSON(raw)
	if span == nil {
		return fmt.Errorf("%w: no JSON object in model output", ErrGeneration)
	}
	if err := json.Unmarshal(span, v); err != nil {
		return fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return nil
}

// fillCoordinates resolves (0,0) locations through the geocoder, best-effort.
func (s *Service) fillCoordinates(ctx context.Context, it *ItineraryResponse) {
	if s.geocoder == nil {
		return
	}
	for di := range it.Suggestions.Days {
		day := &it.Suggestions.Days[di]
		for li := range day.Locations {
			loc := &day.Locations[li]
			if loc.Lat != 0 || loc.Lng != 0 {
				continue
			}
			lat, lng, err := s.geocoder.Locate(ctx, loc.Name)
			if err != nil {
				log.Printf("trip: geocode %q failed: %v", loc.Name, err)
				continue
			}
			loc.Lat, loc.Lng = lat, lng
		}
	}
}
