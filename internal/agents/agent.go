// Package agents implements the domain agents and their orchestrator.
//
// Each agent builds a natural-language prompt from an inbound event and
// record-store context, sends it to a completion provider, and maps the
// structured response into a typed decision. Provider failures propagate to
// the caller; there is no retry.
package agents

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eldersense/eldersense/internal/core"
)

// Event is an arbitrary inbound event from a device or the dashboard.
type Event map[string]interface{}

// JSON renders the event for prompt embedding.
func (e Event) JSON() string {
	data, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// DeviceID returns the event's device identifier, if present.
func (e Event) DeviceID() string {
	if v, ok := e["deviceId"].(string); ok {
		return v
	}
	return ""
}

// decodeDecision parses a structured decision from a completion response,
// stripping any markdown fences the model wrapped around the JSON.
func decodeDecision(response string, v interface{}) error {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v (response: %s)", core.ErrBadDecision, err, truncate(cleaned, 200))
	}
	return nil
}

// mustJSON marshals context structures for prompt embedding.
func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
