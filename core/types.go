/*
Package core provides the data model and leaf mechanisms of the hangar engine.

PURPOSE:
  This package contains the shared state types and the small pure mechanisms
  (resource ledger, capability gate, violation ladder, effects buffer) that
  the domain sub-reducers and the composer are built from. It knows nothing
  about any particular sub-reducer; it only defines the slices they operate
  on.

KEY CONCEPTS IN THIS FILE (types.go):
  - ResourceLedger: flat numeric counters plus three clamped vitals
  - Inventory: item id -> owned count (booleans are count >= 1)
  - LogEntry / Notification: the only outputs of a rejected operation
  - ResourceDelta: a bundle of ledger/inventory changes applied atomically

DESIGN PRINCIPLES:
  1. Value semantics: transforms take a state value and return a new one;
     the caller's previous reference is never mutated (see State.Clone).
  2. No wall clock: every transform takes the current time as an input.
  3. No ambient randomness: anything probabilistic takes a Rand.
  4. Rejections are data: a denied or unaffordable operation changes only
     logs and notifications, never the substantive state.

SEE ALSO:
  - state.go: the top-level State aggregate and deep copy
  - gate.go: capability gating
  - violations.go: escalation ladder for denied actions
*/
package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// RESOURCE LEDGER - Flat numeric counters with three clamped vitals
// =============================================================================

// Vital bounds. Sanity, focus and suspicion are clamped to this range after
// every tick and every action.
const (
	VitalMin = 0.0
	VitalMax = 100.0
)

// ResourceLedger holds every numeric counter the engine tracks. Credits,
// experience and material counts floor at zero; the three vitals are clamped
// to [VitalMin, VitalMax]. Level never decreases.
type ResourceLedger struct {
	Credits    int64 `json:"credits"`
	Experience int64 `json:"experience"`
	Level      int   `json:"level"`

	// Vitals
	Sanity    float64 `json:"sanity"`
	Focus     float64 `json:"focus"`
	Suspicion float64 `json:"suspicion"`

	// Consumables and raw stock (alclad, rivets, sealant, safety_wire, ...)
	Materials map[string]int `json:"materials"`

	// IncomeCarry holds the sub-credit remainder of prorated passive income
	// between ticks, so short ticks still accrue over time.
	IncomeCarry decimal.Decimal `json:"incomeCarry"`
}

// NewLedger returns a ledger with the standard starting balances.
func NewLedger() ResourceLedger {
	return ResourceLedger{
		Credits:    1000,
		Experience: 0,
		Level:      1,
		Sanity:     100,
		Focus:      100,
		Suspicion:  0,
		Materials:  map[string]int{},
	}
}

// ClampVitals forces the three vitals back into [VitalMin, VitalMax].
// Called by the composer after every tick and action.
func (l *ResourceLedger) ClampVitals() {
	l.Sanity = clamp(l.Sanity)
	l.Focus = clamp(l.Focus)
	l.Suspicion = clamp(l.Suspicion)
}

func clamp(v float64) float64 {
	if v < VitalMin {
		return VitalMin
	}
	if v > VitalMax {
		return VitalMax
	}
	return v
}

// Material returns the current count for a material, zero when absent.
func (l *ResourceLedger) Material(id string) int { return l.Materials[id] }

// AddMaterial adjusts a material count, flooring at zero.
func (l *ResourceLedger) AddMaterial(id string, n int) {
	if l.Materials == nil {
		l.Materials = map[string]int{}
	}
	v := l.Materials[id] + n
	if v < 0 {
		v = 0
	}
	l.Materials[id] = v
}

// AddCredits adjusts credits, flooring at zero.
func (l *ResourceLedger) AddCredits(n int64) {
	l.Credits += n
	if l.Credits < 0 {
		l.Credits = 0
	}
}

// NextLevelAt returns the experience total required to reach level+1.
func NextLevelAt(level int) int64 {
	n := int64(level + 1)
	return n * n * 100
}

// GainExperience adds experience and raises Level across any thresholds
// crossed. Experience never decreases here; Level never decreases anywhere.
func (l *ResourceLedger) GainExperience(n int64) (levelsGained int) {
	if n <= 0 {
		return 0
	}
	l.Experience += n
	for l.Experience >= NextLevelAt(l.Level) {
		l.Level++
		levelsGained++
	}
	return levelsGained
}

// =============================================================================
// INVENTORY - Item id -> count. Owned means count >= 1.
// =============================================================================

type Inventory map[string]int

func (inv Inventory) Has(id string) bool { return inv[id] > 0 }

func (inv Inventory) Add(id string, n int) {
	v := inv[id] + n
	if v < 0 {
		v = 0
	}
	inv[id] = v
}

// =============================================================================
// LOGS AND NOTIFICATIONS
// =============================================================================

type LogLevel string

const (
	LogInfo    LogLevel = "info"
	LogWarning LogLevel = "warning"
	LogError   LogLevel = "error"
)

// LogEntry is a line in the in-game terminal log. It is game data, not
// process logging.
type LogEntry struct {
	At      time.Time `json:"at"`
	Level   LogLevel  `json:"level"`
	Message string    `json:"message"`
}

// MaxLogEntries bounds the in-state log; older entries fall off the front.
const MaxLogEntries = 200

type NotificationVariant string

const (
	NoteInfo    NotificationVariant = "info"
	NoteSuccess NotificationVariant = "success"
	NoteWarning NotificationVariant = "warning"
	NoteDanger  NotificationVariant = "danger"
)

// Notification is a transient toast pushed onto the outgoing queue for the
// host UI to drain. The engine never blocks on delivery.
type Notification struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Message  string              `json:"message"`
	Variant  NotificationVariant `json:"variant"`
	Duration time.Duration       `json:"duration"`
}

// NewNotification builds a notification with a fresh id and the default
// display duration.
func NewNotification(title, message string, variant NotificationVariant) Notification {
	return Notification{
		ID:       uuid.NewString(),
		Title:    title,
		Message:  message,
		Variant:  variant,
		Duration: 4 * time.Second,
	}
}

// =============================================================================
// RESOURCE DELTA - Atomic bundle of changes
// =============================================================================

// ResourceDelta is a bundle of ledger, inventory and flag changes applied as
// one unit. Event outcomes, job rewards and scenario step costs are all
// expressed as deltas.
type ResourceDelta struct {
	Credits    int64          `yaml:"credits" json:"credits,omitempty"`
	Experience int64          `yaml:"experience" json:"experience,omitempty"`
	Sanity     float64        `yaml:"sanity" json:"sanity,omitempty"`
	Focus      float64        `yaml:"focus" json:"focus,omitempty"`
	Suspicion  float64        `yaml:"suspicion" json:"suspicion,omitempty"`
	Materials  map[string]int `yaml:"materials" json:"materials,omitempty"`
	Items      []string       `yaml:"items" json:"items,omitempty"`
	SetFlags   []string       `yaml:"set_flags" json:"set_flags,omitempty"`
}

// IsZero reports whether the delta changes nothing.
func (d ResourceDelta) IsZero() bool {
	return d.Credits == 0 && d.Experience == 0 &&
		d.Sanity == 0 && d.Focus == 0 && d.Suspicion == 0 &&
		len(d.Materials) == 0 && len(d.Items) == 0 && len(d.SetFlags) == 0
}

// Affordable reports whether every negative component of the delta is
// covered by the ledger. Vitals are clamped rather than checked.
func (d ResourceDelta) Affordable(l ResourceLedger) bool {
	if d.Credits < 0 && l.Credits < -d.Credits {
		return false
	}
	for id, n := range d.Materials {
		if n < 0 && l.Material(id) < -n {
			return false
		}
	}
	return true
}
