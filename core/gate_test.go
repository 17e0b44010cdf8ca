package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/hangar-engine/core"
)

func testGate() core.Gate {
	return core.NewGate(core.CapabilityRegistry{
		"tab/procurement":   {MinLevel: 2},
		"deployment/accept": {MinLevel: 5, Flags: []string{"aog_certified"}},
		"toolroom/checkout": {Items: []string{"toolroom-badge"}},
	})
}

func TestGate_UnregisteredID_Allowed(t *testing.T) {
	// GIVEN: A capability id with no registration
	// WHEN: Checking access on a fresh level-1 state
	// THEN: Allowed (fail-open), with no locked message

	g := testGate()
	s := core.NewState(testNow())

	assert.True(t, g.IsAllowed("tab/brand-new", s))
	assert.Empty(t, g.LockedMessage("tab/brand-new", s))
}

func TestGate_LevelRequirement(t *testing.T) {
	g := testGate()
	s := core.NewState(testNow())

	assert.False(t, g.IsAllowed("tab/procurement", s))

	s.Ledger.Level = 2
	assert.True(t, g.IsAllowed("tab/procurement", s))
}

func TestGate_AllConditionsRequired(t *testing.T) {
	// GIVEN: A capability gated on level AND a flag
	// WHEN: Satisfying the conditions one at a time
	// THEN: Access opens only when every condition holds

	g := testGate()
	s := core.NewState(testNow())

	s.Ledger.Level = 5
	assert.False(t, g.IsAllowed("deployment/accept", s), "flag still missing")

	s.Flags["aog_certified"] = true
	assert.True(t, g.IsAllowed("deployment/accept", s))
}

func TestGate_ItemRequirement(t *testing.T) {
	g := testGate()
	s := core.NewState(testNow())

	assert.False(t, g.IsAllowed("toolroom/checkout", s))

	s.Inventory.Add("toolroom-badge", 1)
	assert.True(t, g.IsAllowed("toolroom/checkout", s))
}

func TestGate_LockedMessage_LevelGapNamed(t *testing.T) {
	// Level shortfalls are diagnosable; everything else gets the generic line.

	g := testGate()
	s := core.NewState(testNow())

	assert.Equal(t, "Requires level 2 (current: 1)", g.LockedMessage("tab/procurement", s))

	s.Ledger.Level = 5
	assert.Equal(t, "Additional requirements not met", g.LockedMessage("deployment/accept", s))
	assert.Equal(t, "Additional requirements not met", g.LockedMessage("toolroom/checkout", s))
}
