package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/hangar-engine/core"
	"github.com/warp/hangar-engine/events"
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
		CategoryTones: map[string]core.ToneBucket{
			"paperwork": core.ToneBureaucratic,
			"anomalous": core.ToneEldritch,
		},
		Events: []core.EventDef{
			{
				ID: "parts-recount", Title: "Stores demands a recount", Category: "paperwork",
				TimeoutMs: 180_000,
				Choices: []core.EventChoice{
					{Label: "Count everything", Effect: core.ResourceDelta{Focus: -10, Suspicion: -5}},
					{
						Label:  "Pay the counter",
						Cost:   core.ResourceDelta{Credits: -50},
						Effect: core.ResourceDelta{Suspicion: -20},
					},
				},
				Failure: core.ResourceDelta{Suspicion: 8},
			},
			{
				ID: "humming-panel", Title: "Panel 4L is humming", Category: "anomalous",
				Check: &core.SkillCheck{
					SkillID: "structures", Tier: 2,
					Success: core.ResourceDelta{Experience: 60},
					Failure: core.ResourceDelta{Sanity: -8},
				},
				Failure: core.ResourceDelta{Sanity: -12},
			},
		},
		Flavor: []core.FlavorTemplate{
			{Tone: core.ToneMundane, Text: "The matter is closed."},
			{Tone: core.ToneBureaucratic, Text: "Three copies filed."},
			{Tone: core.ToneEldritch, Text: "It is settled, for a given value of settled."},
		},
		Tick: core.TickTuning{EventChance: 0.01},
	}
}

func env(rnd core.Rand) core.Env {
	return core.Env{Now: testNow(), Rand: rnd, Content: testContent()}
}

func newSlice() events.Slice {
	return events.Slice{
		Ledger:      core.NewLedger(),
		Inventory:   core.Inventory{},
		Flags:       map[string]bool{},
		Proficiency: map[string]int{},
	}
}

func resolveAction(choice int) core.Action {
	return core.Action{Kind: core.KindResolveEvent, Payload: core.Payload{Choice: choice}}
}

// =============================================================================
// TRIGGER
// =============================================================================

func TestTrigger_ActivatesWithDeadline(t *testing.T) {
	out, fx := events.Trigger(newSlice(), "parts-recount", env(&scriptRand{}))

	require.NotNil(t, out.Events.Active)
	assert.Equal(t, "parts-recount", out.Events.Active.ID)
	assert.Equal(t, testNow().Add(3*time.Minute), out.Events.Active.Deadline)
	require.Len(t, fx.Logs, 1)
	require.Len(t, fx.Notifications, 1)
}

func TestTrigger_SkippedWhenEventActive(t *testing.T) {
	// GIVEN: An active event
	// WHEN: Another trigger arrives
	// THEN: Silently skipped; at most one event is ever active

	sl, _ := events.Trigger(newSlice(), "parts-recount", env(&scriptRand{}))

	out, fx := events.Trigger(sl, "humming-panel", env(&scriptRand{}))

	assert.Equal(t, "parts-recount", out.Events.Active.ID)
	assert.Empty(t, fx.Logs)
	assert.Empty(t, fx.Notifications)
}

func TestTrigger_UnknownIDSkipped(t *testing.T) {
	out, fx := events.Trigger(newSlice(), "no-such-event", env(&scriptRand{}))

	assert.Nil(t, out.Events.Active)
	assert.Empty(t, fx.Logs)
}

// =============================================================================
// CHOICE RESOLUTION
// =============================================================================

func TestResolve_Choice_AppliesOutcomeOnce(t *testing.T) {
	// GIVEN: An active choice event
	// WHEN: Resolving with a valid choice
	// THEN: Exactly one outcome applied, counter bumped, slot cleared,
	//       exactly one flavor line logged

	sl, _ := events.Trigger(newSlice(), "parts-recount", env(&scriptRand{}))

	out, fx := events.Apply(sl, resolveAction(0), env(&scriptRand{ints: []int{0}}))

	assert.Nil(t, out.Events.Active)
	assert.Equal(t, 1, out.Events.Resolved)
	assert.Equal(t, 90.0, out.Ledger.Focus)
	require.Len(t, fx.Logs, 1, "exactly one flavor line per resolution")
}

func TestResolve_Choice_CostDeductedWithEffect(t *testing.T) {
	sl, _ := events.Trigger(newSlice(), "parts-recount", env(&scriptRand{}))
	sl.Ledger.Suspicion = 30

	out, _ := events.Apply(sl, resolveAction(1), env(&scriptRand{ints: []int{0}}))

	assert.Equal(t, int64(950), out.Ledger.Credits)
	assert.Equal(t, 10.0, out.Ledger.Suspicion)
	assert.Equal(t, 1, out.Events.Resolved)
}

func TestResolve_Choice_UnaffordableRejected(t *testing.T) {
	// GIVEN: The paid choice and an empty wallet
	// WHEN: Resolving
	// THEN: Event stays active, nothing changes beyond one warning log

	sl, _ := events.Trigger(newSlice(), "parts-recount", env(&scriptRand{}))
	sl.Ledger.Credits = 10

	out, fx := events.Apply(sl, resolveAction(1), env(&scriptRand{}))

	assert.NotNil(t, out.Events.Active)
	assert.Equal(t, int64(10), out.Ledger.Credits)
	assert.Equal(t, 0, out.Events.Resolved)
	require.Len(t, fx.Logs, 1)
	assert.Equal(t, core.LogWarning, fx.Logs[0].Level)
}

func TestResolve_Choice_IndexOutOfRange(t *testing.T) {
	sl, _ := events.Trigger(newSlice(), "parts-recount", env(&scriptRand{}))

	out, fx := events.Apply(sl, resolveAction(7), env(&scriptRand{}))

	assert.NotNil(t, out.Events.Active)
	require.Len(t, fx.Logs, 1)
	assert.Equal(t, core.LogWarning, fx.Logs[0].Level)
}

func TestResolve_NoActiveEvent(t *testing.T) {
	out, fx := events.Apply(newSlice(), resolveAction(0), env(&scriptRand{}))

	assert.Equal(t, 0, out.Events.Resolved)
	require.Len(t, fx.Logs, 1)
}

// =============================================================================
// SKILL CHECK RESOLUTION
// =============================================================================

func TestResolve_SkillCheck_BranchesOnTier(t *testing.T) {
	// GIVEN: A check requiring structures tier 2
	// WHEN: Resolving below and at the threshold
	// THEN: Failure and success outcomes apply respectively

	base := newSlice()
	base.Proficiency["structures"] = 1
	sl, _ := events.Trigger(base, "humming-panel", env(&scriptRand{}))

	out, _ := events.Apply(sl, resolveAction(0), env(&scriptRand{ints: []int{0}}))
	assert.Equal(t, 92.0, out.Ledger.Sanity, "tier 1 fails a tier-2 check")

	base = newSlice()
	base.Proficiency["structures"] = 2
	sl, _ = events.Trigger(base, "humming-panel", env(&scriptRand{}))

	out, _ = events.Apply(sl, resolveAction(0), env(&scriptRand{ints: []int{0}}))
	assert.Equal(t, int64(60), out.Ledger.Experience)
	assert.Equal(t, 1, out.Events.Resolved)
}

// =============================================================================
// TICK: TIMEOUT AND DISCOVERY
// =============================================================================

func TestTick_TimeoutAppliesFailureOutcome(t *testing.T) {
	sl, _ := events.Trigger(newSlice(), "parts-recount", env(&scriptRand{}))
	e := env(&scriptRand{ints: []int{0}})
	e.Now = testNow().Add(4 * time.Minute)

	out, fx := events.Tick(sl, e)

	assert.Nil(t, out.Events.Active)
	assert.Equal(t, 1, out.Events.Failed)
	assert.Equal(t, 1, out.Events.Resolved, "failure is still a resolution")
	assert.Equal(t, 8.0, out.Ledger.Suspicion)
	require.Len(t, fx.Logs, 2, "one unanswered line, one flavor line")
}

func TestTick_NoDeadlineNeverTimesOut(t *testing.T) {
	sl, _ := events.Trigger(newSlice(), "humming-panel", env(&scriptRand{}))
	e := env(&scriptRand{})
	e.Now = testNow().Add(24 * time.Hour)

	out, _ := events.Tick(sl, e)

	assert.NotNil(t, out.Events.Active)
	assert.Equal(t, 0, out.Events.Failed)
}

func TestTick_RandomDiscoveryOnlyWhenIdle(t *testing.T) {
	// GIVEN: A roll that would always trigger
	// WHEN: Ticking with and without an active event
	// THEN: Discovery fires only in the idle case

	out, _ := events.Tick(newSlice(), env(&scriptRand{floats: []float64{0.0}, ints: []int{0}}))
	assert.NotNil(t, out.Events.Active)

	busy, _ := events.Trigger(newSlice(), "parts-recount", env(&scriptRand{}))
	out, _ = events.Tick(busy, env(&scriptRand{floats: []float64{0.0}, ints: []int{1}}))
	assert.Equal(t, "parts-recount", out.Events.Active.ID)
}

func TestTick_DiscoverySkipsGatedCategories(t *testing.T) {
	// GIVEN: The anomalous category registered at level 5 and a level-1 state
	// WHEN: A discovery roll lands on the slot the anomalous event would hold
	//       in the unfiltered pool
	// THEN: Only the reachable event can come up

	c := testContent()
	c.Capabilities = core.CapabilityRegistry{"category/anomalous": {MinLevel: 5}}
	e := core.Env{Now: testNow(), Rand: &scriptRand{floats: []float64{0.0}, ints: []int{1}}, Content: c}

	out, _ := events.Tick(newSlice(), e)

	require.NotNil(t, out.Events.Active)
	assert.Equal(t, "parts-recount", out.Events.Active.ID)
}

func TestTick_DiscoveryWithNoReachableCategoryTriggersNothing(t *testing.T) {
	c := testContent()
	c.Capabilities = core.CapabilityRegistry{
		"category/paperwork": {MinLevel: 5},
		"category/anomalous": {MinLevel: 5},
	}
	e := core.Env{Now: testNow(), Rand: &scriptRand{floats: []float64{0.0}}, Content: c}

	out, fx := events.Tick(newSlice(), e)

	assert.Nil(t, out.Events.Active)
	assert.Empty(t, fx.Logs)
	assert.Empty(t, fx.Notifications)
}
