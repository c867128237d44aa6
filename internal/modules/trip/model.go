// README: Trip domain model: intents, itinerary shapes, and sentinel errors.
package trip

import (
	"errors"
	"fmt"
)

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentDescription     Intent = "description"
	IntentItinerary       Intent = "itinerary"
	IntentModifyItinerary Intent = "modify_itinerary"
)

// ParseIntent maps a raw label onto the closed intent set.
// Anything outside the set is a classification failure, never a fall-through.
func ParseIntent(s string) (Intent, bool) {
	switch Intent(s) {
	case IntentDescription, IntentItinerary, IntentModifyItinerary:
		return Intent(s), true
	}
	return "", false
}

var (
	ErrClassification      = errors.New("could not classify user intent")
	ErrGeneration          = errors.New("model output did not match the expected shape")
	ErrNoPreviousItinerary = errors.New("no previous itinerary for session")
)

// Location is one stop of a day. All four fields are required.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Time string  `json:"time"`
}

// Day holds the ordered stops of one trip day. Day is a 1-based ordinal.
type Day struct {
	Day       int        `json:"day"`
	Locations []Location `json:"locations"`
}

// Suggestions is the structured plan, in chronological trip order.
type Suggestions struct {
	Days []Day `json:"days"`
}

// ItineraryResponse pairs a human-readable summary with the structured plan.
type ItineraryResponse struct {
	Text        string      `json:"text"`
	Suggestions Suggestions `json:"suggestions"`
}

// DescriptionResponse is a short flavor description of a place.
type DescriptionResponse struct {
	Text string `json:"text"`
}

// intentClassification is the wire shape of a classification call.
type intentClassification struct {
	Intent string `json:"intent"`
}

// Validate checks the field-level invariants of a generated itinerary.
func (it *ItineraryResponse) Validate() error {
	if len(it.Suggestions.Days) == 0 {
		return fmt.Errorf("itinerary has no days")
	}
	for _, d := range it.Suggestions.Days {
		if d.Day < 1 {
			return fmt.Errorf("day ordinal %d is not 1-based", d.Day)
		}
		for _, loc := range d.Locations {
			if loc.Name == "" {
				return fmt.Errorf("day %d has a location without a name", d.Day)
			}
			if loc.Time == "" {
				return fmt.Errorf("location %q has no visit time", loc.Name)
			}
		}
	}
	return nil
}

// Validate checks a generated description.
func (d *DescriptionResponse) Validate() error {
	if d.Text == "" {
		return fmt.Errorf("description text is empty")
	}
	return nil
}
