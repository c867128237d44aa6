// README: Terminal demo; loops travel queries through the suggestion pipeline.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"roam/internal/ai"
	"roam/internal/modules/trip"
)

// memStore keeps itineraries in memory for the lifetime of the demo process.
type memStore struct {
	mu    sync.Mutex
	slots map[string]*trip.ItineraryResponse
}

func (m *memStore) Load(_ context.Context, sessionID string) (*trip.ItineraryResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[sessionID], nil
}

func (m *memStore) Save(_ context.Context, sessionID string, it *trip.ItineraryResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[sessionID] = it
	return nil
}

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	svc := trip.NewService(provider, &memStore{slots: map[string]*trip.ItineraryResponse{}}, nil, nil)

	fmt.Println("roam-chat: ask about a place, request an itinerary, or modify the last one. Ctrl-D to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		res, err := svc.Suggest(ctx, trip.DefaultSession, message)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		var out []byte
		if res.Itinerary != nil {
			out, _ = json.MarshalIndent(res.Itinerary, "", "  ")
		} else {
			out, _ = json.MarshalIndent(res.Description, "", "  ")
		}
		fmt.Printf("[%s]\n%s\n", res.Intent, out)
	}
}
