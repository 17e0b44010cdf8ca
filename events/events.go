/*
Package events implements the narrative-event lifecycle.

LIFECYCLE:
  triggered -> active (at most one) -> resolved (choice, skill check, or
  failure timeout) -> cleared

  Triggers come from the violation ladder, from random discovery on tick,
  and from domain logic; all of them route through Trigger, which refuses
  silently when an event is already active.

RESOLUTION CONTRACT:
  Resolving an event - by any path - applies exactly one outcome delta,
  increments the resolved counter, clears the active slot, and appends
  exactly one flavor log line chosen from the template pool (see flavor.go).
*/
package events

import (
	"github.com/warp/hangar-engine/core"
)

// Slice is the state this package may read and mutate. Ledger, inventory,
// flags and proficiency are here because outcome deltas and skill checks
// touch them.
type Slice struct {
	Ledger      core.ResourceLedger
	Inventory   core.Inventory
	Flags       map[string]bool
	Proficiency map[string]int
	Events      core.EventState
}

// Trigger activates the named event if none is active. Skipped silently
// when one is - the at-most-one invariant wins over the trigger request.
func Trigger(sl Slice, eventID string, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	if sl.Events.Active != nil {
		return sl, fx
	}
	def := env.Content.EventDef(eventID)
	if def == nil {
		return sl, fx
	}

	ev := &core.Event{
		ID:          def.ID,
		Category:    def.Category,
		TriggeredAt: env.Now,
	}
	if def.TimeoutMs > 0 {
		ev.Deadline = env.Now.Add(core.Ms(def.TimeoutMs))
	}
	sl.Events.Active = ev
	fx.Log(env.Now, core.LogWarning, "%s", def.Title)
	fx.Notify(def.Title, "Something requires your attention.", core.NoteWarning)
	return sl, fx
}

// Apply handles player resolution of the active event.
func Apply(sl Slice, act core.Action, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	if act.Kind != core.KindResolveEvent {
		return sl, fx
	}

	ev := sl.Events.Active
	if ev == nil {
		fx.Log(env.Now, core.LogInfo, "Nothing is happening. Officially.")
		return sl, fx
	}
	def := env.Content.EventDef(ev.ID)
	if def == nil {
		// Content rotated out from under a live save. Clear without outcome.
		sl.Events.Active = nil
		return sl, fx
	}

	if def.Check != nil {
		tier := sl.Proficiency[def.Check.SkillID]
		outcome := def.Check.Failure
		verdict := "It does not go well."
		if tier >= def.Check.Tier {
			outcome = def.Check.Success
			verdict = "Training holds."
		}
		fx.Log(env.Now, core.LogInfo, "%s", verdict)
		return resolve(sl, def, outcome, env, &fx)
	}

	idx := act.Payload.Choice
	if idx < 0 || idx >= len(def.Choices) {
		fx.Log(env.Now, core.LogWarning, "That is not one of the options.")
		return sl, fx
	}
	choice := def.Choices[idx]
	if !choice.Cost.Affordable(sl.Ledger) {
		fx.Log(env.Now, core.LogWarning, "Cannot afford to %s.", choice.Label)
		return sl, fx
	}
	core.ApplyDeltaTo(&sl.Ledger, sl.Inventory, sl.Flags, choice.Cost)
	return resolve(sl, def, choice.Effect, env, &fx)
}

// Tick applies the failure outcome when the active event's deadline passes.
func Tick(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	ev := sl.Events.Active
	if ev != nil && !ev.Deadline.IsZero() && !env.Now.Before(ev.Deadline) {
		def := env.Content.EventDef(ev.ID)
		if def == nil {
			sl.Events.Active = nil
			return sl, fx
		}
		sl.Events.Failed++
		fx.Log(env.Now, core.LogError, "%s went unanswered.", def.Title)
		return resolve(sl, def, def.Failure, env, &fx)
	}

	// Random discovery. Only rolls when nothing is active, and only events
	// whose category capability is reachable can come up; explicit triggers
	// (the ladder, domain logic) are not category-gated.
	if ev == nil && len(env.Content.Events) > 0 &&
		env.Rand.Float64() < env.Content.Tick.EventChance {
		pool := discoverable(sl, env)
		if len(pool) > 0 {
			def := pool[env.Rand.Intn(len(pool))]
			var tfx core.Effects
			sl, tfx = Trigger(sl, def.ID, env)
			fx.Merge(tfx)
		}
	}

	return sl, fx
}

// discoverable filters the event pool down to categories the player can
// currently reach.
func discoverable(sl Slice, env core.Env) []core.EventDef {
	out := make([]core.EventDef, 0, len(env.Content.Events))
	for _, def := range env.Content.Events {
		if env.Content.Capabilities.Allows("category/"+def.Category, sl.Ledger.Level, sl.Flags, sl.Inventory) {
			out = append(out, def)
		}
	}
	return out
}

// resolve applies the outcome, bumps the counter, clears the slot and emits
// the single flavor line. Every resolution path funnels through here.
func resolve(sl Slice, def *core.EventDef, outcome core.ResourceDelta, env core.Env, fx *core.Effects) (Slice, core.Effects) {
	core.ApplyDeltaTo(&sl.Ledger, sl.Inventory, sl.Flags, outcome)
	sl.Events.Resolved++
	sl.Events.Active = nil
	fx.Log(env.Now, core.LogInfo, "%s", resolutionFlavor(def, sl.Ledger, sl.Inventory, env))
	return sl, *fx
}
