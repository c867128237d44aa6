// README: Provider interface for text-generation backends.
package ai

import "context"

// Provider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type Provider interface {
	// Generate sends the role-tagged messages to the model and returns the generated text.
	// When schema is non-nil the provider asks the model for output conforming to it;
	// the returned text is then a JSON document.
	Generate(ctx context.Context, msgs []Message, schema *Schema) (string, error)
}
