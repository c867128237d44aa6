// README: Session-keyed previous-itinerary store backed by Redis.
package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const itineraryKeyPrefix = "trip:itinerary:%s"

// DefaultSession is the slot used when the caller supplies no session id.
// Callers that never send one share it, matching the original single-slot behavior.
const DefaultSession = "default"

// ItineraryStore holds the last successfully produced itinerary per session.
type ItineraryStore interface {
	// Load returns the stored itinerary, or (nil, nil) when the session has none.
	Load(ctx context.Context, sessionID string) (*ItineraryResponse, error)
	// Save overwrites the session's itinerary. Full replace, never a merge.
	Save(ctx context.Context, sessionID string, it *ItineraryResponse) error
}

// RedisStore implements ItineraryStore with one JSON value per session key.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(redis *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: redis, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*ItineraryResponse, error) {
	raw, err := s.redis.Get(ctx, itineraryKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load itinerary: %w", err)
	}
	var it ItineraryResponse
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		return nil, fmt.Errorf("decode stored itinerary: %w", err)
	}
	return &it, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, it *ItineraryResponse) error {
	raw, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}
	if err := s.redis.Set(ctx, itineraryKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save itinerary: %w", err)
	}
	return nil
}

func itineraryKey(sessionID string) string {
	return fmt.Sprintf(itineraryKeyPrefix, sessionID)
}
