/*
Package proficiency implements skill training. Tiers are funded with focus
and capped per skill; event skill checks read the resulting tiers.
*/
package proficiency

import "github.com/warp/hangar-engine/core"

// Slice is the state this package may read and mutate.
type Slice struct {
	Ledger      core.ResourceLedger
	Proficiency map[string]int
}

// Apply handles skill training.
func Apply(sl Slice, act core.Action, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	if act.Kind != core.KindTrainSkill {
		return sl, fx
	}

	def := env.Content.SkillDef(act.Payload.SkillID)
	if def == nil {
		fx.Log(env.Now, core.LogWarning, "No curriculum exists for %s.", act.Payload.SkillID)
		return sl, fx
	}
	tier := sl.Proficiency[def.ID]
	if tier >= def.MaxTier {
		fx.Log(env.Now, core.LogInfo, "%s is already at the top of its ladder.", def.Name)
		return sl, fx
	}
	if sl.Ledger.Focus < def.FocusCost {
		fx.Log(env.Now, core.LogWarning, "Too tired to study %s right now.", def.Name)
		return sl, fx
	}

	sl.Ledger.Focus -= def.FocusCost
	sl.Proficiency[def.ID] = tier + 1
	fx.Log(env.Now, core.LogInfo, "%s raised to tier %d.", def.Name, tier+1)
	return sl, fx
}
