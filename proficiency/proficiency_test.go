package proficiency_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/hangar-engine/core"
	"github.com/warp/hangar-engine/proficiency"
)

func env() core.Env {
	return core.Env{
		Now:  time.Date(2026, time.March, 14, 6, 30, 0, 0, time.UTC),
		Rand: core.NewRand(1),
		Content: &core.Content{
			Skills: []core.SkillDef{
				{ID: "structures", Name: "Structures", MaxTier: 2, FocusCost: 20},
			},
		},
	}
}

func newSlice() proficiency.Slice {
	return proficiency.Slice{Ledger: core.NewLedger(), Proficiency: map[string]int{}}
}

func train(skillID string) core.Action {
	return core.Action{Kind: core.KindTrainSkill, Payload: core.Payload{SkillID: skillID}}
}

func TestTrain_RaisesTierAndSpendsFocus(t *testing.T) {
	out, fx := proficiency.Apply(newSlice(), train("structures"), env())

	assert.Equal(t, 1, out.Proficiency["structures"])
	assert.Equal(t, 80.0, out.Ledger.Focus)
	require.Len(t, fx.Logs, 1)
}

func TestTrain_CappedAtMaxTier(t *testing.T) {
	sl := newSlice()
	sl.Proficiency["structures"] = 2

	out, fx := proficiency.Apply(sl, train("structures"), env())

	assert.Equal(t, 2, out.Proficiency["structures"])
	assert.Equal(t, 100.0, out.Ledger.Focus, "no focus spent at the cap")
	require.Len(t, fx.Logs, 1)
}

func TestTrain_InsufficientFocus(t *testing.T) {
	sl := newSlice()
	sl.Ledger.Focus = 19

	out, fx := proficiency.Apply(sl, train("structures"), env())

	assert.Equal(t, 0, out.Proficiency["structures"])
	assert.Equal(t, 19.0, out.Ledger.Focus)
	require.Len(t, fx.Logs, 1)
	assert.Equal(t, core.LogWarning, fx.Logs[0].Level)
}

func TestTrain_UnknownSkill(t *testing.T) {
	out, fx := proficiency.Apply(newSlice(), train("interpretive-dance"), env())

	assert.Empty(t, out.Proficiency)
	require.Len(t, fx.Logs, 1)
}
