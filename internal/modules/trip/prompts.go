// README: System prompts and response schemas for the three generation paths.
package trip

import (
	"fmt"

	"roam/internal/ai"
)

const classifySystemPrompt = `You are a helpful assistant that classifies user travel queries.
Analyze the user's message carefully:
- If they are asking to change, modify, update, or revise an existing itinerary, classify as "modify_itinerary"
- If they are asking for general information about a place, classify as "description"
- If they are asking for a new travel plan or itinerary, classify as "itinerary"

Examples of modification requests:
- "Change day 2 to include the museum"
- "Replace the park with the beach"
- "Can we visit the temple instead of the market?"
- "Update the schedule to start later"`

const describeSystemPrompt = `You are a travel assistant who provides short, punchy, and exciting descriptions of locations. Each description should be no more than 2-3 sentences, vivid, appealing, and include at least three emoji. Deliver the content in text format without markdown.`

const itinerarySystemPrompt = `You are a helpful travel assistant creating itineraries.
For each suggestion:
- Include specific location names
- Provide accurate coordinates
- Suggest appropriate visit times
- Organize by days, grouping nearby locations on the same day to minimize travel`

const modifySystemPrompt = `You are a helpful travel assistant modifying existing itineraries.
Review the existing itinerary and user's modification request carefully.
Make the requested changes while maintaining the same structure and format.
Ensure all locations have proper coordinates and visit times.
If replacing a location, try to maintain similar timing and logical flow.`

func classifyUserContent(message string) string {
	return fmt.Sprintf("Classify this travel query: '%s'", message)
}

func describeUserContent(message string) string {
	return fmt.Sprintf("Please describe %s", message)
}

func itineraryUserContent(message string) string {
	return fmt.Sprintf("Create a day-by-day travel itinerary for %s", message)
}

func modifyUserContent(previousJSON, message string) string {
	return fmt.Sprintf(`Current itinerary:
%s

Modification request: %s

Please provide the modified itinerary while maintaining all required fields (name, lat, lng, time) for each location.`, previousJSON, message)
}

// classificationSchema constrains a classification call to the closed intent set.
var classificationSchema = &ai.Schema{
	Type:     "object",
	Required: []string{"intent"},
	Properties: map[string]*ai.Schema{
		"intent": {
			Type: "string",
			Enum: []string{string(IntentDescription), string(IntentItinerary), string(IntentModifyItinerary)},
		},
	},
}

var descriptionSchema = &ai.Schema{
	Type:     "object",
	Required: []string{"text"},
	Properties: map[string]*ai.Schema{
		"text": {Type: "string", Description: "Short vivid description, no markdown, at least three emoji."},
	},
}

var itinerarySchema = &ai.Schema{
	Type:     "object",
	Required: []string{"text", "suggestions"},
	Properties: map[string]*ai.Schema{
		"text": {Type: "string", Description: "Human-readable summary of the plan."},
		"suggestions": {
			Type:     "object",
			Required: []string{"days"},
			Properties: map[string]*ai.Schema{
				"days": {
					Type: "array",
					Items: &ai.Schema{
						Type:     "object",
						Required: []string{"day", "locations"},
						Properties: map[string]*ai.Schema{
							"day": {Type: "integer", Description: "1-based day ordinal."},
							"locations": {
								Type: "array",
								Items: &ai.Schema{
									Type:     "object",
									Required: []string{"name", "lat", "lng", "time"},
									Properties: map[string]*ai.Schema{
										"name": {Type: "string"},
										"lat":  {Type: "number"},
										"lng":  {Type: "number"},
										"time": {Type: "string", Description: "Suggested visit time, e.g. 09:30."},
									},
								},
							},
						},
					},
				},
			},
		},
	},
}
