/*
handlers.go - HTTP handlers for the game API

PURPOSE:
  Implements the host boundary: every handler translates an HTTP request into
  a Session call and the resulting state (or error) back into JSON. The
  handlers never reach into engine internals; the Session is the only door.

ERROR MAPPING:
  core.ErrInvalidSave   -> 422 (payload rejected at the save boundary)
  core.ErrSlotNotFound  -> 404
  malformed request     -> 400
  anything else         -> 500

SEE ALSO:
  - server.go: Route wiring
  - session.go: Serialized access to game state
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/hangar-engine/core"
	"github.com/warp/hangar-engine/save"
	"github.com/warp/hangar-engine/store/sqlite"
)

// Handler carries the dependencies shared by all HTTP handlers.
type Handler struct {
	Session *Session
	Store   *sqlite.Store
	Content *core.Content
}

// NewHandler creates a handler with the given dependencies.
func NewHandler(session *Session, store *sqlite.Store, content *core.Content) *Handler {
	return &Handler{Session: session, Store: store, Content: content}
}

// GetState returns the current game state.
func (h *Handler) GetState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, StateResponse{State: h.Session.State()})
}

// PostAction applies one player action and returns the resulting state.
func (h *Handler) PostAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Type == "" {
		writeError(w, http.StatusBadRequest, "action type is required")
		return
	}

	act := core.ParseAction(req.Type, req.Payload)
	st := h.Session.Action(act, time.Now())
	writeJSON(w, http.StatusOK, StateResponse{State: st})
}

// PostTick advances game time by the given elapsed milliseconds. Headless
// hosts drive the clock themselves; browser hosts rely on the loop instead.
func (h *Handler) PostTick(w http.ResponseWriter, r *http.Request) {
	var req TickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ElapsedMs < 0 {
		writeError(w, http.StatusBadRequest, "elapsedMs must be non-negative")
		return
	}

	st := h.Session.Tick(req.ElapsedMs, time.Now())
	writeJSON(w, http.StatusOK, StateResponse{State: st})
}

// PostContext records which screen the UI currently shows. Discovery rolls
// only fire for the matching context.
func (h *Handler) PostContext(w http.ResponseWriter, r *http.Request) {
	var req ContextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.Session.SetContext(req.Context)
	w.WriteHeader(http.StatusNoContent)
}

// DrainNotifications returns and clears pending notifications. Poll fallback
// for hosts without a websocket.
func (h *Handler) DrainNotifications(w http.ResponseWriter, _ *http.Request) {
	notes := h.Session.DrainNotifications()
	if notes == nil {
		notes = []core.Notification{}
	}
	writeJSON(w, http.StatusOK, NotificationsResponse{Notifications: notes})
}

// GetContent returns the static content shape the UI renders from.
func (h *Handler) GetContent(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ContentResponse{
		Jobs:   h.Content.Jobs,
		Items:  h.Content.Items,
		Skills: h.Content.Skills,
	})
}

// SaveSlot encodes the current state and writes it under the named slot.
func (h *Handler) SaveSlot(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")
	if slot == "" {
		writeError(w, http.StatusBadRequest, "slot name is required")
		return
	}

	payload, err := save.Encode(h.Session.State())
	if err != nil {
		log.Printf("[API] Failed to encode save: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to encode save")
		return
	}

	now := time.Now()
	if err := h.Store.Save(r.Context(), slot, payload, now); err != nil {
		log.Printf("[API] Failed to save slot %q: %v", slot, err)
		writeError(w, http.StatusInternalServerError, "failed to save slot")
		return
	}
	writeJSON(w, http.StatusOK, SlotResponse{Slot: SlotDTO{Name: slot, SavedAt: now}})
}

// LoadSlot validates a stored payload and, only if it passes the save
// boundary whole, swaps it into the session.
func (h *Handler) LoadSlot(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")

	payload, err := h.Store.Load(r.Context(), slot)
	if errors.Is(err, core.ErrSlotNotFound) {
		writeError(w, http.StatusNotFound, "slot not found")
		return
	}
	if err != nil {
		log.Printf("[API] Failed to load slot %q: %v", slot, err)
		writeError(w, http.StatusInternalServerError, "failed to load slot")
		return
	}

	st, err := save.Decode(payload)
	if errors.Is(err, core.ErrInvalidSave) {
		writeError(w, http.StatusUnprocessableEntity, "save payload is invalid")
		return
	}
	if err != nil {
		log.Printf("[API] Failed to decode slot %q: %v", slot, err)
		writeError(w, http.StatusInternalServerError, "failed to decode save")
		return
	}

	h.Session.Replace(st)
	writeJSON(w, http.StatusOK, StateResponse{State: h.Session.State()})
}

// ListSaves returns all save slots, most recent first.
func (h *Handler) ListSaves(w http.ResponseWriter, r *http.Request) {
	slots, err := h.Store.List(r.Context())
	if err != nil {
		log.Printf("[API] Failed to list slots: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list slots")
		return
	}

	dtos := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		dtos = append(dtos, SlotDTO{Name: s.Name, SavedAt: s.SavedAt})
	}
	writeJSON(w, http.StatusOK, SlotsResponse{Slots: dtos})
}

// DeleteSlot removes a slot. Deleting a missing slot succeeds.
func (h *Handler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")
	if err := h.Store.Delete(r.Context(), slot); err != nil {
		log.Printf("[API] Failed to delete slot %q: %v", slot, err)
		writeError(w, http.StatusInternalServerError, "failed to delete slot")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
