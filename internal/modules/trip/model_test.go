// README: Tests for intent parsing and shape validation.
package trip

import "testing"

func TestParseIntent(t *testing.T) {
	cases := []struct {
		in   string
		want Intent
		ok   bool
	}{
		{"description", IntentDescription, true},
		{"itinerary", IntentItinerary, true},
		{"modify_itinerary", IntentModifyItinerary, true},
		{"Description", "", false}, // exact match only
		{"modify", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseIntent(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseIntent(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func validItinerary() ItineraryResponse {
	return ItineraryResponse{
		Text: "A weekend in Paris",
		Suggestions: Suggestions{Days: []Day{
			{Day: 1, Locations: []Location{
				{Name: "Eiffel Tower", Lat: 48.8584, Lng: 2.2945, Time: "09:00"},
				{Name: "Louvre Museum", Lat: 48.8606, Lng: 2.3376, Time: "14:00"},
			}},
			{Day: 2, Locations: []Location{
				{Name: "Montmartre", Lat: 48.8867, Lng: 2.3431, Time: "10:00"},
			}},
		}},
	}
}

func TestItineraryValidate_OK(t *testing.T) {
	it := validItinerary()
	if err := it.Validate(); err != nil {
		t.Errorf("valid itinerary rejected: %v", err)
	}
}

func TestItineraryValidate_Faults(t *testing.T) {
	noDays := ItineraryResponse{Text: "empty"}
	if err := noDays.Validate(); err == nil {
		t.Error("itinerary without days should be invalid")
	}

	badOrdinal := validItinerary()
	badOrdinal.Suggestions.Days[0].Day = 0
	if err := badOrdinal.Validate(); err == nil {
		t.Error("day ordinal 0 should be invalid")
	}

	noName := validItinerary()
	noName.Suggestions.Days[0].Locations[0].Name = ""
	if err := noName.Validate(); err == nil {
		t.Error("location without name should be invalid")
	}

	noTime := validItinerary()
	noTime.Suggestions.Days[1].Locations[0].Time = ""
	if err := noTime.Validate(); err == nil {
		t.Error("location without time should be invalid")
	}
}

func TestDescriptionValidate(t *testing.T) {
	ok := DescriptionResponse{Text: "The Eiffel Tower sparkles at night ✨🗼🥖"}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid description rejected: %v", err)
	}
	empty := DescriptionResponse{}
	if err := empty.Validate(); err == nil {
		t.Error("empty description should be invalid")
	}
}
