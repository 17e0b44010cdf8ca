/*
dto.go - Request/response shapes for the HTTP API

PURPOSE:
  Defines the JSON contract between the game UI and the server. State itself
  serializes directly (core.State carries json tags); these types only wrap
  it with the envelope fields the transport needs.
*/
package api

import (
	"time"

	"github.com/warp/hangar-engine/core"
)

// StateResponse wraps the full game state.
type StateResponse struct {
	State core.State `json:"state"`
}

// ActionRequest is a player action as the UI submits it.
type ActionRequest struct {
	Type    string       `json:"type"`
	Payload core.Payload `json:"payload"`
}

// TickRequest advances game time for headless hosts.
type TickRequest struct {
	ElapsedMs int64 `json:"elapsedMs"`
}

// ContextRequest reports the active UI screen.
type ContextRequest struct {
	Context string `json:"context"`
}

// NotificationsResponse carries drained notifications.
type NotificationsResponse struct {
	Notifications []core.Notification `json:"notifications"`
}

// ContentResponse exposes the static content the UI renders from.
type ContentResponse struct {
	Jobs   []core.JobDef   `json:"jobs"`
	Items  []core.ItemDef  `json:"items"`
	Skills []core.SkillDef `json:"skills"`
}

// SlotDTO describes one save slot.
type SlotDTO struct {
	Name    string    `json:"name"`
	SavedAt time.Time `json:"savedAt"`
}

// SlotResponse wraps a single slot.
type SlotResponse struct {
	Slot SlotDTO `json:"slot"`
}

// SlotsResponse wraps the slot listing.
type SlotsResponse struct {
	Slots []SlotDTO `json:"slots"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
