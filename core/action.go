/*
action.go - Closed action vocabulary

PURPOSE:
  Actions arrive at the host boundary as {type: string, payload: object}.
  Internally the engine works on a closed, enumerated ActionKind so the
  routing switch in the composer is exhaustive. Unknown type strings map to
  KindUnknown, which the composer passes through unchanged - that is the
  designed behavior for action types handled entirely by presentation code,
  not an error.

DESIGN:
  - Every kind belongs to exactly one domain (see engine/composer.go).
  - A short list of system kinds is tick-internal and bypasses the
    capability gate entirely.
  - The raw Type string doubles as the capability id checked by the gate.
*/
package core

// ActionKind enumerates every action the engine itself handles.
type ActionKind int

const (
	KindUnknown ActionKind = iota

	// Jobs
	KindRequestJob
	KindStartJob
	KindCompleteJob
	KindAbandonJob

	// Events
	KindResolveEvent
	KindTriggerEvent // system

	// Procurement
	KindPlaceOrder
	KindCancelOrder
	KindDeliverOrder
	KindCheckDeliveries // system

	// Deployment
	KindAcceptDeployment
	KindScenarioStep
	KindCompleteDeployment

	// Proficiency
	KindTrainSkill

	// Facility / pet
	KindCheckoutTool
	KindFeedMascot
	KindPetMascot
)

// System reports whether the kind is a tick-internal pseudo-action that has
// already been validated and therefore bypasses the capability gate.
func (k ActionKind) System() bool {
	return k == KindTriggerEvent || k == KindCheckDeliveries
}

// kindForType maps wire type strings to kinds. Absence means KindUnknown.
var kindForType = map[string]ActionKind{
	"jobs/request":         KindRequestJob,
	"jobs/start":           KindStartJob,
	"jobs/complete":        KindCompleteJob,
	"jobs/abandon":         KindAbandonJob,
	"events/resolve":       KindResolveEvent,
	"events/trigger":       KindTriggerEvent,
	"procurement/place":    KindPlaceOrder,
	"procurement/cancel":   KindCancelOrder,
	"procurement/deliver":  KindDeliverOrder,
	"procurement/sweep":    KindCheckDeliveries,
	"deployment/accept":    KindAcceptDeployment,
	"deployment/step":      KindScenarioStep,
	"deployment/complete":  KindCompleteDeployment,
	"proficiency/train":    KindTrainSkill,
	"toolroom/checkout":    KindCheckoutTool,
	"mascot/feed":          KindFeedMascot,
	"mascot/pet":           KindPetMascot,
}

// Payload carries the optional parameters of an action. Fields irrelevant to
// a kind are simply ignored by its reducer.
type Payload struct {
	JobID    string `json:"jobId,omitempty"`
	EventID  string `json:"eventId,omitempty"`
	Choice   int    `json:"choice,omitempty"`
	OrderID  string `json:"orderId,omitempty"`
	ItemID   string `json:"itemId,omitempty"`
	SkillID  string `json:"skillId,omitempty"`
	ToolID   string `json:"toolId,omitempty"`
}

// Action is a discrete player (or system) stimulus.
type Action struct {
	Type    string // wire type string; also the capability id
	Kind    ActionKind
	Payload Payload
}

// ParseAction resolves a wire type string into an Action. Unknown strings
// produce a KindUnknown action; the composer still gate-checks those and
// treats the allowed ones as inert.
func ParseAction(typ string, p Payload) Action {
	return Action{Type: typ, Kind: kindForType[typ], Payload: p}
}
