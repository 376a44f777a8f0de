package gateway

import (
	"encoding/json"
	"time"
)

// RaceEvent is what connected draft-room clients receive. Clients treat
// it as a change signal and re-fetch authoritative state over HTTP; the
// payload is advisory only.
type RaceEvent struct {
	ID        string          `json:"id"`
	RaceID    string          `json:"race_id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}
