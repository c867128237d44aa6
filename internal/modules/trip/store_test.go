// README: Redis itinerary store integration test (env-gated).
package trip

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	addr := os.Getenv("ROAM_REDIS_ADDR")
	if addr == "" {
		t.Skip("ROAM_REDIS_ADDR not set; skipping Redis integration test")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, time.Hour)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()
	session := fmt.Sprintf("test_%d", time.Now().UnixNano())

	got, err := store.Load(ctx, session)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if got != nil {
		t.Fatal("fresh session should have no itinerary")
	}

	it := validItinerary()
	if err := store.Save(ctx, session, &it); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = store.Load(ctx, session)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.Text != it.Text || len(got.Suggestions.Days) != len(it.Suggestions.Days) {
		t.Errorf("round trip mismatch: %+v", got)
	}

	// Overwrite is a full replace.
	replacement := validItinerary()
	replacement.Text = "Replacement plan"
	replacement.Suggestions.Days = replacement.Suggestions.Days[:1]
	if err := store.Save(ctx, session, &replacement); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = store.Load(ctx, session)
	if err != nil {
		t.Fatalf("load after overwrite: %v", err)
	}
	if got.Text != "Replacement plan" || len(got.Suggestions.Days) != 1 {
		t.Errorf("overwrite was not a full replace: %+v", got)
	}
}

func TestRedisStore_SessionIsolation(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()
	a := fmt.Sprintf("iso_a_%d", time.Now().UnixNano())
	b := fmt.Sprintf("iso_b_%d", time.Now().UnixNano())

	it := validItinerary()
	if err := store.Save(ctx, a, &it); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, b)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Error("sessions must not share itinerary slots")
	}
}
