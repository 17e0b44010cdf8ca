package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/hangar-engine/core"
	"github.com/warp/hangar-engine/engine"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type scriptRand struct {
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 1
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func testNow() time.Time {
	return time.Date(2026, time.March, 14, 6, 30, 0, 0, time.UTC)
}

func testContent() *core.Content {
	return &core.Content{
		Capabilities: core.CapabilityRegistry{
			"procurement/place": {MinLevel: 2},
			"procurement/sweep": {MinLevel: 99}, // system kind must bypass this
			"tab/records":       {MinLevel: 3},  // registered but never routed
		},
		CategoryTones: map[string]core.ToneBucket{"inspection": core.ToneBureaucratic},
		Events: []core.EventDef{
			{
				ID: core.EventSecurityAudit, Title: "Security audit", Category: "inspection",
				Choices: []core.EventChoice{{Label: "Cooperate", Effect: core.ResourceDelta{Suspicion: -10}}},
			},
		},
		Items: []core.ItemDef{
			{ID: "rivet-gun", Label: "Pneumatic rivet gun", Cost: 500, LeadTimeMs: 0},
		},
		Flavor: []core.FlavorTemplate{
			{Tone: core.ToneMundane, Text: "The matter is closed."},
		},
		Tick: core.TickTuning{
			SanityDriftPerMin:    -0.2,
			FocusDriftPerMin:     1.0,
			SuspicionDecayPerMin: -0.5,
			Income: []core.IncomeStream{
				{Flag: "vending-route", CreditsPerMin: 1.5},
			},
		},
	}
}

func newComposer() *engine.Composer {
	return engine.New(testContent())
}

func action(typ string, p core.Payload) core.Action {
	return core.ParseAction(typ, p)
}

// =============================================================================
// PURITY
// =============================================================================

func TestApplyAction_InputStateNeverMutated(t *testing.T) {
	// GIVEN: A state with nested mutable structure
	// WHEN: Running an action that changes credits, orders and logs
	// THEN: The caller's value is bit-for-bit what it was

	comp := newComposer()
	st := core.NewState(testNow())
	st.Ledger.Level = 2
	st.Ledger.Materials["alclad"] = 60
	before := st.Clone()

	out := comp.ApplyAction(st, action("procurement/place", core.Payload{ItemID: "rivet-gun"}), testNow(), &scriptRand{})

	assert.Equal(t, before, st)
	assert.NotEqual(t, st.Ledger.Credits, out.Ledger.Credits)
}

func TestApplyTick_InputStateNeverMutated(t *testing.T) {
	comp := newComposer()
	st := core.NewState(testNow())
	st.Flags["vending-route"] = true
	before := st.Clone()

	comp.ApplyTick(st, 600_000, "", testNow(), &scriptRand{})

	assert.Equal(t, before, st)
}

func TestApplyAction_UnknownKindInert(t *testing.T) {
	// Unregistered action types belong to presentation code; the gate fails
	// open and the engine passes them through without logs, notifications or
	// counter changes.

	comp := newComposer()
	st := core.NewState(testNow())

	out := comp.ApplyAction(st, action("ui/open-drawer", core.Payload{}), testNow(), &scriptRand{})

	assert.Equal(t, st, out)
}

// =============================================================================
// GATE AND LADDER
// =============================================================================

func TestApplyAction_DeniedTouchesOnlyLadderOutputs(t *testing.T) {
	// GIVEN: A level-1 state and a level-2 action
	// WHEN: Applying it
	// THEN: Counter +1, one notification, log lines; the substantive slices
	//       are untouched

	comp := newComposer()
	st := core.NewState(testNow())

	out := comp.ApplyAction(st, action("procurement/place", core.Payload{ItemID: "rivet-gun"}), testNow(), &scriptRand{})

	assert.Equal(t, 1, out.Violations.AccessViolations)
	require.Len(t, out.Notifications, 1)
	assert.Equal(t, "ACCESS DENIED", out.Notifications[0].Title)
	assert.Equal(t, st.Ledger, out.Ledger)
	assert.Empty(t, out.Procurement.Orders)
}

func TestApplyAction_TenthDenialTriggersAudit(t *testing.T) {
	// GIVEN: Nine violations on the counter
	// WHEN: The tenth denial lands
	// THEN: The security-audit event activates through the composer

	comp := newComposer()
	st := core.NewState(testNow())
	st.Violations.AccessViolations = 9

	out := comp.ApplyAction(st, action("procurement/place", core.Payload{ItemID: "rivet-gun"}), testNow(), &scriptRand{})

	assert.Equal(t, 10, out.Violations.AccessViolations)
	require.NotNil(t, out.Events.Active)
	assert.Equal(t, core.EventSecurityAudit, out.Events.Active.ID)
}

func TestApplyAction_TenthDenialRespectsActiveEvent(t *testing.T) {
	comp := newComposer()
	st := core.NewState(testNow())
	st.Violations.AccessViolations = 9
	st.Events.Active = &core.Event{ID: "something-else"}

	out := comp.ApplyAction(st, action("procurement/place", core.Payload{ItemID: "rivet-gun"}), testNow(), &scriptRand{})

	assert.Equal(t, "something-else", out.Events.Active.ID, "at most one active event")
}

func TestApplyAction_GatedTabWithoutRouteStillDenied(t *testing.T) {
	// GIVEN: A tab id in the registry that no sub-reducer handles
	// WHEN: A level-1 player pokes at it
	// THEN: The ladder fires exactly as it does for routed actions

	comp := newComposer()
	st := core.NewState(testNow())

	out := comp.ApplyAction(st, action("tab/records", core.Payload{}), testNow(), &scriptRand{})

	assert.Equal(t, 1, out.Violations.AccessViolations)
	require.Len(t, out.Notifications, 1)
	assert.Equal(t, "ACCESS DENIED", out.Notifications[0].Title)
	assert.Equal(t, "Requires level 3 (current: 1)", out.Notifications[0].Message)
}

func TestApplyAction_SystemKindBypassesGate(t *testing.T) {
	// procurement/sweep is registered at level 99 but is a system kind.

	comp := newComposer()
	st := core.NewState(testNow())

	out := comp.ApplyAction(st, action("procurement/sweep", core.Payload{}), testNow(), &scriptRand{})

	assert.Equal(t, 0, out.Violations.AccessViolations)
}

// =============================================================================
// ROUTING
// =============================================================================

func TestApplyAction_RoutesToProcurement(t *testing.T) {
	comp := newComposer()
	st := core.NewState(testNow())
	st.Ledger.Level = 2

	out := comp.ApplyAction(st, action("procurement/place", core.Payload{ItemID: "rivet-gun"}), testNow(), &scriptRand{})

	assert.Equal(t, int64(500), out.Ledger.Credits)
	require.Len(t, out.Procurement.Orders, 1)
}

func TestApplyAction_EventResolutionThroughComposer(t *testing.T) {
	comp := newComposer()
	st := core.NewState(testNow())
	st.Ledger.Suspicion = 40

	st = comp.ApplyAction(st, action("events/trigger", core.Payload{EventID: core.EventSecurityAudit}), testNow(), &scriptRand{})
	require.NotNil(t, st.Events.Active)

	out := comp.ApplyAction(st, action("events/resolve", core.Payload{Choice: 0}), testNow(), &scriptRand{ints: []int{0}})

	assert.Nil(t, out.Events.Active)
	assert.Equal(t, 1, out.Events.Resolved)
	assert.Equal(t, 30.0, out.Ledger.Suspicion)
}

// =============================================================================
// TICK
// =============================================================================

func TestApplyTick_VitalDrift(t *testing.T) {
	comp := newComposer()
	st := core.NewState(testNow())
	st.Ledger.Sanity = 50
	st.Ledger.Focus = 50
	st.Ledger.Suspicion = 50

	out := comp.ApplyTick(st, 600_000, "", testNow(), &scriptRand{}) // 10 minutes

	assert.InDelta(t, 48.0, out.Ledger.Sanity, 1e-9)
	assert.InDelta(t, 60.0, out.Ledger.Focus, 1e-9)
	assert.InDelta(t, 45.0, out.Ledger.Suspicion, 1e-9)
}

func TestApplyTick_VitalsAlwaysClamped(t *testing.T) {
	// GIVEN: Focus near the ceiling and a long elapsed time
	// WHEN: Ticking
	// THEN: Every vital ends inside [0, 100]

	comp := newComposer()
	st := core.NewState(testNow())
	st.Ledger.Sanity = 0.5
	st.Ledger.Focus = 99

	out := comp.ApplyTick(st, 3_600_000, "", testNow(), &scriptRand{}) // one hour

	assert.Equal(t, 0.0, out.Ledger.Sanity)
	assert.Equal(t, 100.0, out.Ledger.Focus)
	assert.GreaterOrEqual(t, out.Ledger.Suspicion, 0.0)
}

func TestApplyTick_PassiveIncomeProratedWithCarry(t *testing.T) {
	// GIVEN: A 1.5 credits/min stream behind an owned flag
	// WHEN: Ticking 30 seconds twice
	// THEN: First tick pays 0 (carry 0.75), second pays 1 (carry 0.5);
	//       credits stay whole

	comp := newComposer()
	st := core.NewState(testNow())
	st.Flags["vending-route"] = true

	out := comp.ApplyTick(st, 30_000, "", testNow(), &scriptRand{})
	assert.Equal(t, int64(1000), out.Ledger.Credits)

	out = comp.ApplyTick(out, 30_000, "", testNow(), &scriptRand{})
	assert.Equal(t, int64(1001), out.Ledger.Credits)
}

func TestApplyTick_NoIncomeWithoutFlag(t *testing.T) {
	comp := newComposer()
	st := core.NewState(testNow())

	out := comp.ApplyTick(st, 6_000_000, "", testNow(), &scriptRand{})

	assert.Equal(t, int64(1000), out.Ledger.Credits)
}

func TestApplyTick_DeterministicForSeed(t *testing.T) {
	// Same state, same seed, same elapsed time: identical results.

	comp := newComposer()
	st := core.NewState(testNow())

	a := comp.ApplyTick(st, 60_000, "hangar", testNow(), core.NewRand(7))
	b := comp.ApplyTick(st, 60_000, "hangar", testNow(), core.NewRand(7))

	assert.Equal(t, a, b)
}
