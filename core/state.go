/*
state.go - Top-level game state aggregate

PURPOSE:
  State is the single serializable value the engine consumes and produces.
  It is partitioned into slices, each owned by exactly one sub-reducer; the
  composer copies slice fields in and out, so no sub-reducer ever sees state
  it does not own.

CRITICAL INVARIANTS:
  1. Transforms never mutate the caller's state. The composer calls Clone()
     once on entry and mutates only the copy.
  2. At most one active job, one active event, one active deployment.
  3. Vitals are clamped after every tick and action.
  4. The violation counter only increases.

SEE ALSO:
  - engine/composer.go: the only writer of whole states
  - save/: the serialization boundary
*/
package core

import "time"

// =============================================================================
// DOMAIN SLICES
// =============================================================================

// Job is the one concurrent work slot. Requirements name material counts;
// tools are inventory items checked but not consumed.
type Job struct {
	ID           string         `json:"id"`
	Label        string         `json:"label"`
	Retrofit     bool           `json:"retrofit"`
	Requirements map[string]int `json:"requirements"`
	Tools        []string       `json:"tools"`
	RewardCred   int64          `json:"rewardCredits"`
	RewardExp    int64          `json:"rewardExperience"`
	StartedAt    time.Time      `json:"startedAt"`
	Deadline     time.Time      `json:"deadline"`
}

// Anomaly is a record spawned occasionally by completed non-retrofit jobs.
type Anomaly struct {
	ID      string    `json:"id"`
	JobID   string    `json:"jobId"`
	FoundAt time.Time `json:"foundAt"`
	Note    string    `json:"note"`
}

type JobState struct {
	Active    *Job      `json:"active,omitempty"`
	Offers    []string  `json:"offers"`
	Completed int       `json:"completed"`
	Expired   int       `json:"expired"`
	Anomalies []Anomaly `json:"anomalies"`
}

// Event is the one active narrative interruption. Resolution is by choice
// index, by skill check, or by timeout failure.
type Event struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	TriggeredAt time.Time `json:"triggeredAt"`
	Deadline    time.Time `json:"deadline"`
}

type EventState struct {
	Active   *Event `json:"active,omitempty"`
	Resolved int    `json:"resolved"`
	Failed   int    `json:"failed"`
}

type OrderStatus string

const (
	OrderOrdered   OrderStatus = "ORDERED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Order is a procurement order. Only ORDERED orders live in the active list;
// delivery and cancellation remove them.
type Order struct {
	ID       string      `json:"id"`
	ItemID   string      `json:"itemId"`
	Label    string      `json:"label"`
	Cost     int64       `json:"cost"`
	PlacedAt time.Time   `json:"placedAt"`
	ETA      time.Time   `json:"eta"`
	Status   OrderStatus `json:"status"`
}

type ProcurementState struct {
	Orders    []Order `json:"orders"`
	Placed    int     `json:"placed"`
	Delivered int     `json:"delivered"`
}

// DeploymentState tracks the single AOG (aircraft-on-ground) field
// deployment slot.
type DeploymentState struct {
	Active     bool      `json:"active"`
	StationID  string    `json:"stationId,omitempty"`
	ScenarioID string    `json:"scenarioId,omitempty"`
	StartedAt  time.Time `json:"startedAt,omitempty"`
	StepsDone  int       `json:"stepsDone"`
	Completed  int       `json:"completed"`
}

type ToolroomStatus string

const (
	ToolroomOpen   ToolroomStatus = "OPEN"
	ToolroomLunch  ToolroomStatus = "LUNCH"
	ToolroomAudit  ToolroomStatus = "AUDIT"
	ToolroomClosed ToolroomStatus = "CLOSED"
)

// MascotState is the wandering hangar cat. Feeding and petting are the pet
// sub-reducer's actions; movement happens on tick.
type MascotState struct {
	Location string    `json:"location"`
	FedAt    time.Time `json:"fedAt,omitempty"`
	Moves    int       `json:"moves"`
}

// FacilityState owns the ambient, tick-driven slices: toolroom status, the
// monotonic shift clock, the bulletin board and the mascot.
type FacilityState struct {
	Toolroom           ToolroomStatus `json:"toolroom"`
	ToolroomNextChange time.Time      `json:"toolroomNextChange"`
	ShiftMs            int64          `json:"shiftMs"`
	Shift              int            `json:"shift"`
	Board              []string       `json:"board"`
	Mascot             MascotState    `json:"mascot"`
}

// ViolationState backs the escalation ladder. The counter only increases.
type ViolationState struct {
	AccessViolations int `json:"accessViolations"`
}

// =============================================================================
// STATE - The whole game
// =============================================================================

type State struct {
	Ledger        ResourceLedger   `json:"ledger"`
	Inventory     Inventory        `json:"inventory"`
	Flags         map[string]bool  `json:"flags"`
	Jobs          JobState         `json:"jobs"`
	Events        EventState       `json:"events"`
	Procurement   ProcurementState `json:"procurement"`
	Deployment    DeploymentState  `json:"deployment"`
	Facility      FacilityState    `json:"facility"`
	Proficiency   map[string]int   `json:"proficiency"`
	Violations    ViolationState   `json:"violations"`
	Logs          []LogEntry       `json:"logs"`
	Notifications []Notification   `json:"notifications"`
}

// NewState returns a fresh game at shift zero. The toolroom opens
// immediately; content-dependent fields (board, mascot location) are filled
// in by the first tick.
func NewState(now time.Time) State {
	return State{
		Ledger:      NewLedger(),
		Inventory:   Inventory{},
		Flags:       map[string]bool{},
		Proficiency: map[string]int{},
		Facility: FacilityState{
			Toolroom:           ToolroomOpen,
			ToolroomNextChange: now,
		},
	}
}

// Clone deep-copies the state. Maps and slices are copied element-wise so
// the result shares no mutable structure with the receiver.
func (s State) Clone() State {
	out := s

	out.Ledger.Materials = copyIntMap(s.Ledger.Materials)
	out.Inventory = Inventory(copyIntMap(map[string]int(s.Inventory)))
	out.Flags = copyBoolMap(s.Flags)
	out.Proficiency = copyIntMap(s.Proficiency)

	if s.Jobs.Active != nil {
		j := *s.Jobs.Active
		j.Requirements = copyIntMap(s.Jobs.Active.Requirements)
		j.Tools = append([]string(nil), s.Jobs.Active.Tools...)
		out.Jobs.Active = &j
	}
	out.Jobs.Offers = append([]string(nil), s.Jobs.Offers...)
	out.Jobs.Anomalies = append([]Anomaly(nil), s.Jobs.Anomalies...)

	if s.Events.Active != nil {
		e := *s.Events.Active
		out.Events.Active = &e
	}

	out.Procurement.Orders = append([]Order(nil), s.Procurement.Orders...)
	out.Facility.Board = append([]string(nil), s.Facility.Board...)
	out.Logs = append([]LogEntry(nil), s.Logs...)
	out.Notifications = append([]Notification(nil), s.Notifications...)

	return out
}

func copyIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// =============================================================================
// STATE HELPERS
// =============================================================================

// AppendLog adds a log entry, dropping the oldest entries past MaxLogEntries.
func (s *State) AppendLog(at time.Time, level LogLevel, message string) {
	s.Logs = append(s.Logs, LogEntry{At: at, Level: level, Message: message})
	if len(s.Logs) > MaxLogEntries {
		s.Logs = s.Logs[len(s.Logs)-MaxLogEntries:]
	}
}

// PushNotification queues a toast for the host UI.
func (s *State) PushNotification(n Notification) {
	s.Notifications = append(s.Notifications, n)
}

// DrainNotifications returns queued notifications and clears the queue.
// Called by the host boundary, never by the engine itself.
func (s *State) DrainNotifications() []Notification {
	out := s.Notifications
	s.Notifications = nil
	return out
}

// ApplyDelta applies a resource delta to the ledger, inventory and flags.
// Vitals are adjusted without clamping; the composer clamps once at the end
// of each transform.
func (s *State) ApplyDelta(d ResourceDelta) {
	ApplyDeltaTo(&s.Ledger, s.Inventory, s.Flags, d)
}

// ApplyDeltaTo is the slice-level form of ApplyDelta, for sub-reducers that
// hold the ledger, inventory and flags individually.
func ApplyDeltaTo(l *ResourceLedger, inv Inventory, flags map[string]bool, d ResourceDelta) {
	l.AddCredits(d.Credits)
	l.GainExperience(d.Experience)
	l.Sanity += d.Sanity
	l.Focus += d.Focus
	l.Suspicion += d.Suspicion
	for id, n := range d.Materials {
		l.AddMaterial(id, n)
	}
	for _, id := range d.Items {
		inv.Add(id, 1)
	}
	for _, f := range d.SetFlags {
		flags[f] = true
	}
}
