package core

import (
	"fmt"
	"time"
)

// =============================================================================
// EFFECTS - Side outputs of a sub-reducer
// =============================================================================

// Effects collects the log lines, notifications and event-trigger requests a
// sub-reducer produces alongside its new slice. The composer merges them
// into the state; sub-reducers never touch the log or notification slices
// directly, and never trigger events themselves (at-most-one-active is the
// composer's invariant to keep).
type Effects struct {
	Logs          []LogEntry
	Notifications []Notification

	// TriggerEvent names an event definition to activate if, and only if,
	// no event is currently active. Silently skipped otherwise.
	TriggerEvent string
}

func (e *Effects) Log(at time.Time, level LogLevel, format string, args ...any) {
	e.Logs = append(e.Logs, LogEntry{At: at, Level: level, Message: fmt.Sprintf(format, args...)})
}

func (e *Effects) Notify(title, message string, variant NotificationVariant) {
	e.Notifications = append(e.Notifications, NewNotification(title, message, variant))
}

// Merge appends another effects bundle. A later TriggerEvent request wins
// only if none was set before; trigger collisions within one tick are
// resolved in pipeline order.
func (e *Effects) Merge(other Effects) {
	e.Logs = append(e.Logs, other.Logs...)
	e.Notifications = append(e.Notifications, other.Notifications...)
	if e.TriggerEvent == "" {
		e.TriggerEvent = other.TriggerEvent
	}
}
