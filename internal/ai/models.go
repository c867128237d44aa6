// README: Provider-neutral message and schema types.
package ai

// Role tags a message with its author.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one entry of an ordered prompt.
type Message struct {
	Role    Role
	Content string
}

// Schema declares the shape the model's structured output must conform to.
// It mirrors the subset of JSON Schema the generation backends understand,
// without tying callers to any single SDK's schema type.
type Schema struct {
	// Type is one of "object", "array", "string", "integer", "number", "boolean".
	Type        string
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Enum        []string
	Required    []string
}
