/*
Package engine provides the Composer, the top-level orchestrator that turns
the two external stimuli - a periodic tick and a discrete player action -
into a new, consistent game state.

PURPOSE:
  ApplyTick fans out, in a fixed order, to every slice with time-based
  behavior and merges the results. ApplyAction first consults the capability
  gate (system pseudo-actions bypass it), runs the violation ladder on
  denial, and otherwise routes the action to exactly one domain sub-reducer
  by its closed ActionKind.

DATA FLOW:
  caller -> Composer -> gate (actions only) -> sub-reducer(s) -> merged
  state -> caller. Sub-reducers never call each other; cross-slice effects
  exist only as the Composer copying fields between the slices it passes in
  and the slices it gets back.

PURITY:
  Both entry points clone the input state once and mutate only the clone;
  the caller's reference stays valid and unmodified. Time and randomness are
  inputs - the Composer never reads a wall clock or an ambient generator.

SEE ALSO:
  - core/gate.go, core/violations.go
  - jobs/, events/, procurement/, deployment/, facility/, proficiency/
*/
package engine

import (
	"time"

	"github.com/warp/hangar-engine/core"
	"github.com/warp/hangar-engine/deployment"
	"github.com/warp/hangar-engine/events"
	"github.com/warp/hangar-engine/facility"
	"github.com/warp/hangar-engine/jobs"
	"github.com/warp/hangar-engine/procurement"
	"github.com/warp/hangar-engine/proficiency"
)

// Composer orchestrates ticks and actions over an immutable content bundle.
// It holds no mutable state of its own and is safe to share across sessions.
type Composer struct {
	content *core.Content
	gate    core.Gate
}

func New(content *core.Content) *Composer {
	return &Composer{
		content: content,
		gate:    core.NewGate(content.Capabilities),
	}
}

// Gate exposes the capability gate for host-side UI checks (tab locking).
func (c *Composer) Gate() core.Gate { return c.gate }

// =============================================================================
// TICK
// =============================================================================

// ApplyTick advances time-based behavior by elapsedMs of real time. The
// pipeline order is fixed; the stages are independent, so several may fire
// in the same tick, and order affects only log ordering.
func (c *Composer) ApplyTick(st core.State, elapsedMs int64, activeContext string, now time.Time, rnd core.Rand) core.State {
	out := st.Clone()
	env := core.Env{Now: now, ElapsedMs: elapsedMs, Context: activeContext, Rand: rnd, Content: c.content}
	var fx core.Effects

	ledgerTick(&out, env)

	dsl, dfx := deployment.Tick(deploymentSlice(&out), env)
	writeDeployment(&out, dsl)
	fx.Merge(dfx)

	psl, pfx := procurement.Sweep(procurementSlice(&out), env)
	writeProcurement(&out, psl)
	fx.Merge(pfx)

	fsl, ffx := facility.Tick(facilitySlice(&out), env)
	writeFacility(&out, fsl)
	fx.Merge(ffx)

	esl, efx := events.Tick(eventsSlice(&out), env)
	writeEvents(&out, esl)
	fx.Merge(efx)

	jsl, jfx := jobs.Tick(jobsSlice(&out), env)
	writeJobs(&out, jsl)
	fx.Merge(jfx)

	c.applyEffects(&out, fx, env)
	out.Ledger.ClampVitals()
	return out
}

// =============================================================================
// ACTION
// =============================================================================

// ApplyAction runs one discrete action. Every non-system action passes the
// gate first, including types with no routing entry (tab ids live in the
// registry without a sub-reducer). Denied actions mutate the state only
// through the violation ladder; allowed-but-unrouted actions return the
// state unchanged (they belong to presentation code, and that is not an
// error).
func (c *Composer) ApplyAction(st core.State, act core.Action, now time.Time, rnd core.Rand) core.State {
	out := st.Clone()
	env := core.Env{Now: now, Rand: rnd, Content: c.content}

	if !act.Kind.System() {
		if !c.gate.IsAllowed(act.Type, out) {
			fx := core.Escalate(&out, c.gate.LockedMessage(act.Type, out), env)
			c.applyEffects(&out, fx, env)
			out.Ledger.ClampVitals()
			return out
		}
	}

	var fx core.Effects
	switch act.Kind {
	case core.KindRequestJob, core.KindStartJob, core.KindCompleteJob, core.KindAbandonJob:
		sl, sfx := jobs.Apply(jobsSlice(&out), act, env)
		writeJobs(&out, sl)
		fx = sfx

	case core.KindResolveEvent:
		sl, sfx := events.Apply(eventsSlice(&out), act, env)
		writeEvents(&out, sl)
		fx = sfx

	case core.KindTriggerEvent:
		sl, sfx := events.Trigger(eventsSlice(&out), act.Payload.EventID, env)
		writeEvents(&out, sl)
		fx = sfx

	case core.KindPlaceOrder, core.KindCancelOrder, core.KindDeliverOrder, core.KindCheckDeliveries:
		sl, sfx := procurement.Apply(procurementSlice(&out), act, env)
		writeProcurement(&out, sl)
		fx = sfx

	case core.KindAcceptDeployment, core.KindScenarioStep, core.KindCompleteDeployment:
		sl, sfx := deployment.Apply(deploymentSlice(&out), act, env)
		writeDeployment(&out, sl)
		fx = sfx

	case core.KindTrainSkill:
		sl, sfx := proficiency.Apply(proficiencySlice(&out), act, env)
		writeProficiency(&out, sl)
		fx = sfx

	case core.KindCheckoutTool, core.KindFeedMascot, core.KindPetMascot:
		sl, sfx := facility.Apply(facilitySlice(&out), act, env)
		writeFacility(&out, sl)
		fx = sfx

	default:
		// Unrouted: pass through unchanged. Presentation-only action types
		// land here after clearing the gate above.
		return out
	}

	c.applyEffects(&out, fx, env)
	out.Ledger.ClampVitals()
	return out
}

// =============================================================================
// EFFECTS MERGE
// =============================================================================

// applyEffects folds a sub-reducer's side outputs into the state. Event
// triggers are honored here, under the at-most-one-active rule, so that no
// sub-reducer ever writes another's slice.
func (c *Composer) applyEffects(s *core.State, fx core.Effects, env core.Env) {
	for _, entry := range fx.Logs {
		s.AppendLog(entry.At, entry.Level, entry.Message)
	}
	for _, n := range fx.Notifications {
		s.PushNotification(n)
	}
	if fx.TriggerEvent != "" {
		sl, tfx := events.Trigger(eventsSlice(s), fx.TriggerEvent, env)
		writeEvents(s, sl)
		for _, entry := range tfx.Logs {
			s.AppendLog(entry.At, entry.Level, entry.Message)
		}
		for _, n := range tfx.Notifications {
			s.PushNotification(n)
		}
	}
}
