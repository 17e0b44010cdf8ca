/*
Package deployment implements the AOG (aircraft-on-ground) state machine.

LIFECYCLE:
  idle -> deployed -> idle

  At most one deployment is active. Accepting while deployed is rejected
  with a warning log and no state change. Accepting rolls a random station
  and scenario. Scenario steps deduct a step-defined resource cost (rejected
  if unaffordable) and log their narrative consequence. Completion resets to
  idle and grants the fixed deployment reward.
*/
package deployment

import "github.com/warp/hangar-engine/core"

// Slice is the state this package may read and mutate.
type Slice struct {
	Ledger     core.ResourceLedger
	Inventory  core.Inventory
	Flags      map[string]bool
	Deployment core.DeploymentState
}

// Apply handles deployment actions. Unrelated kinds return the slice
// unchanged.
func Apply(sl Slice, act core.Action, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	switch act.Kind {
	case core.KindAcceptDeployment:
		return accept(sl, env)
	case core.KindScenarioStep:
		return step(sl, act.Payload, env)
	case core.KindCompleteDeployment:
		return complete(sl, env)
	}
	return sl, fx
}

// Tick drains focus slightly while in the field. Runs only when active.
func Tick(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	if !sl.Deployment.Active {
		return sl, fx
	}
	sl.Ledger.Focus -= 0.5 * float64(env.ElapsedMs) / 60000.0
	return sl, fx
}

func accept(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	if sl.Deployment.Active {
		fx.Log(env.Now, core.LogWarning, "Already deployed. One grounded aircraft at a time.")
		return sl, fx
	}
	if len(env.Content.Stations) == 0 || len(env.Content.Scenarios) == 0 {
		return sl, fx
	}

	station := env.Content.Stations[env.Rand.Intn(len(env.Content.Stations))]
	scenario := env.Content.Scenarios[env.Rand.Intn(len(env.Content.Scenarios))]

	sl.Deployment.Active = true
	sl.Deployment.StationID = station.ID
	sl.Deployment.ScenarioID = scenario.ID
	sl.Deployment.StartedAt = env.Now
	sl.Deployment.StepsDone = 0

	fx.Log(env.Now, core.LogInfo, "AOG call accepted. Van to %s.", station.Name)
	fx.Log(env.Now, core.LogInfo, "Situation on arrival: %s.", scenario.Name)
	return sl, fx
}

func step(sl Slice, p core.Payload, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	if !sl.Deployment.Active {
		fx.Log(env.Now, core.LogInfo, "Not in the field.")
		return sl, fx
	}
	scenario := env.Content.ScenarioDef(sl.Deployment.ScenarioID)
	if scenario == nil || sl.Deployment.StepsDone >= len(scenario.Steps) {
		fx.Log(env.Now, core.LogInfo, "Nothing left to do here but the paperwork.")
		return sl, fx
	}

	st := scenario.Steps[sl.Deployment.StepsDone]
	if !st.Cost.Affordable(sl.Ledger) {
		fx.Log(env.Now, core.LogWarning, "Cannot proceed: short on supplies for %s.", st.ID)
		return sl, fx
	}
	core.ApplyDeltaTo(&sl.Ledger, sl.Inventory, sl.Flags, st.Cost)
	sl.Deployment.StepsDone++
	if st.Narrative != "" {
		fx.Log(env.Now, core.LogInfo, "%s", st.Narrative)
	}
	return sl, fx
}

func complete(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	if !sl.Deployment.Active {
		return sl, fx
	}

	sl.Deployment.Active = false
	sl.Deployment.StationID = ""
	sl.Deployment.ScenarioID = ""
	sl.Deployment.StepsDone = 0
	sl.Deployment.Completed++

	core.ApplyDeltaTo(&sl.Ledger, sl.Inventory, sl.Flags, env.Content.DeploymentReward)
	fx.Log(env.Now, core.LogInfo, "Aircraft released to service. The van smells like victory and skydrol.")
	fx.Notify("Deployment complete", "Fixed reward credited.", core.NoteSuccess)
	return sl, fx
}
