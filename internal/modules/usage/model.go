// README: Call record model for LLM usage persistence.
package usage

import "time"

// Call is one recorded LLM invocation.
type Call struct {
	SessionID string
	// Stage is "classify" or "generate".
	Stage     string
	Intent    string
	Model     string
	LatencyMS int64
	OK        bool
	Error     string
	CreatedAt time.Time
}
