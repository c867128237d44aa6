// README: Tests for brace-span JSON recovery.
package trip

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestExtractJSON_Bare(t *testing.T) {
	got := ExtractJSON(`{"text":"hi"}`)
	if got == nil {
		t.Fatal("expected a span, got nil")
	}
	if string(got) != `{"text":"hi"}` {
		t.Errorf("unexpected span %q", got)
	}
}

func TestExtractJSON_ProseWrapped(t *testing.T) {
	got := ExtractJSON("Sure! Here is your plan:\n{\"text\": \"ok\", \"n\": 1}\nEnjoy the trip!")
	if got == nil {
		t.Fatal("expected a span, got nil")
	}
	var m map[string]any
	if err := json.Unmarshal(got, &m); err != nil {
		t.Fatalf("span does not parse: %v", err)
	}
	if m["text"] != "ok" {
		t.Errorf("wrong payload: %v", m)
	}
}

func TestExtractJSON_CodeFenced(t *testing.T) {
	got := ExtractJSON("```json\n{\"intent\": \"itinerary\"}\n```")
	if got == nil {
		t.Fatal("expected a span, got nil")
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	if got := ExtractJSON("no braces here"); got != nil {
		t.Errorf("expected nil, got %q", got)
	}
	if got := ExtractJSON(""); got != nil {
		t.Errorf("expected nil for empty input, got %q", got)
	}
	if got := ExtractJSON("}{"); got != nil {
		t.Errorf("expected nil for reversed braces, got %q", got)
	}
}

func TestExtractJSON_Malformed(t *testing.T) {
	if got := ExtractJSON(`{"text": oops}`); got != nil {
		t.Errorf("expected nil for malformed span, got %q", got)
	}
}

// Two independent objects widen the span to an invalid document; only the
// widest span is ever attempted.
func TestExtractJSON_MultipleObjects(t *testing.T) {
	if got := ExtractJSON(`{"a":1} {"b":2}`); got != nil {
		t.Errorf("expected nil for multiple top-level objects, got %q", got)
	}
}

func TestExtractJSON_Idempotent(t *testing.T) {
	first := ExtractJSON("noise {\"text\": \"hi\", \"suggestions\": {\"days\": []}} noise")
	if first == nil {
		t.Fatal("first extraction failed")
	}
	second := ExtractJSON(string(first))
	if second == nil {
		t.Fatal("second extraction failed")
	}

	var a, b map[string]any
	if err := json.Unmarshal(first, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(second, &b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("extraction is not idempotent: %v vs %v", a, b)
	}
}
