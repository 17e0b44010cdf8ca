/*
Package jobs implements the work-order state machine.

LIFECYCLE:
  none -> active -> (completed | abandoned | expired)

  Jobs appear on the offers board either by explicit request to dispatch or
  by random discovery on tick. There is exactly one concurrent job slot:
  starting a job while one is active is a no-op with a log. Completion
  checks every material and tool requirement atomically - if anything is
  unmet, nothing is consumed and a single "insufficient" log is produced.

ANOMALIES:
  Completing a non-retrofit job has a small fixed chance of spawning an
  anomaly record. Retrofit jobs never do; whatever was sealed into those
  airframes stays sealed.
*/
package jobs

import (
	"strings"

	"github.com/google/uuid"

	"github.com/warp/hangar-engine/core"
)

// AnomalyChance is the per-completion probability of an anomaly on
// non-retrofit jobs.
const AnomalyChance = 0.05

// MaxOffers bounds the offers board.
const MaxOffers = 3

var anomalyNotes = []string{
	"rivet pattern repeats a sequence that is not in the drawing",
	"panel interior warm to the touch; no adjacent system runs hot",
	"fastener count off by one in both directions",
}

// Slice is the state this package may read and mutate.
type Slice struct {
	Ledger    core.ResourceLedger
	Inventory core.Inventory
	Jobs      core.JobState
}

// Apply handles job actions. Unrelated kinds return the slice unchanged.
func Apply(sl Slice, act core.Action, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	switch act.Kind {
	case core.KindRequestJob:
		return requestJob(sl, env)
	case core.KindStartJob:
		return startJob(sl, act.Payload.JobID, env)
	case core.KindCompleteJob:
		return completeJob(sl, env)
	case core.KindAbandonJob:
		return abandonJob(sl, env)
	}
	return sl, fx
}

// Tick expires an overdue job and rolls for board discovery.
func Tick(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	if j := sl.Jobs.Active; j != nil && !env.Now.Before(j.Deadline) {
		fx.Log(env.Now, core.LogWarning, "Work order %s lapsed before completion.", j.Label)
		sl.Jobs.Active = nil
		sl.Jobs.Expired++
	}

	t := env.Content.Tick
	if env.Context == t.JobDiscoveryContext &&
		len(sl.Jobs.Offers) < MaxOffers &&
		len(env.Content.Jobs) > 0 &&
		env.Rand.Float64() < t.JobDiscoveryChance {
		def := env.Content.Jobs[env.Rand.Intn(len(env.Content.Jobs))]
		if !offered(sl.Jobs.Offers, def.ID) {
			sl.Jobs.Offers = append(sl.Jobs.Offers, def.ID)
			fx.Log(env.Now, core.LogInfo, "New work order pinned to the board: %s.", def.Label)
		}
	}

	return sl, fx
}

func requestJob(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	if len(env.Content.Jobs) == 0 {
		return sl, fx
	}
	if len(sl.Jobs.Offers) >= MaxOffers {
		fx.Log(env.Now, core.LogInfo, "Dispatch shrugs. The board is full.")
		return sl, fx
	}
	def := env.Content.Jobs[env.Rand.Intn(len(env.Content.Jobs))]
	if offered(sl.Jobs.Offers, def.ID) {
		fx.Log(env.Now, core.LogInfo, "Dispatch points at the board. %s is already posted.", def.Label)
		return sl, fx
	}
	sl.Jobs.Offers = append(sl.Jobs.Offers, def.ID)
	fx.Log(env.Now, core.LogInfo, "Dispatch posts a work order: %s.", def.Label)
	return sl, fx
}

func startJob(sl Slice, jobID string, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	if sl.Jobs.Active != nil {
		fx.Log(env.Now, core.LogWarning, "Already working %s. One job at a time.", sl.Jobs.Active.Label)
		return sl, fx
	}
	def := env.Content.JobDef(jobID)
	if def == nil {
		fx.Log(env.Now, core.LogWarning, "No such work order: %s.", jobID)
		return sl, fx
	}

	sl.Jobs.Offers = removeOffer(sl.Jobs.Offers, jobID)
	reqs := make(map[string]int, len(def.Requirements))
	for k, v := range def.Requirements {
		reqs[k] = v
	}
	sl.Jobs.Active = &core.Job{
		ID:           def.ID,
		Label:        def.Label,
		Retrofit:     def.Retrofit,
		Requirements: reqs,
		Tools:        append([]string(nil), def.Tools...),
		RewardCred:   def.RewardCred,
		RewardExp:    def.RewardExp,
		StartedAt:    env.Now,
		Deadline:     env.Now.Add(core.Ms(def.DurationMs)),
	}
	fx.Log(env.Now, core.LogInfo, "Clocked onto %s.", def.Label)
	return sl, fx
}

// completeJob checks every requirement before consuming anything. All-or-
// nothing: an unmet requirement leaves the slice untouched apart from one
// log line.
func completeJob(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	j := sl.Jobs.Active
	if j == nil {
		fx.Log(env.Now, core.LogInfo, "Nothing on the clock.")
		return sl, fx
	}

	var missing []string
	for mat, need := range j.Requirements {
		if sl.Ledger.Material(mat) < need {
			missing = append(missing, mat)
		}
	}
	for _, tool := range j.Tools {
		if !sl.Inventory.Has(tool) {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		fx.Log(env.Now, core.LogWarning, "Cannot sign off %s: insufficient %s.", j.Label, strings.Join(missing, ", "))
		return sl, fx
	}

	for mat, need := range j.Requirements {
		sl.Ledger.AddMaterial(mat, -need)
	}
	sl.Ledger.AddCredits(j.RewardCred)
	gained := sl.Ledger.GainExperience(j.RewardExp)
	sl.Jobs.Completed++

	fx.Log(env.Now, core.LogInfo, "Signed off %s. +%d credits, +%d xp.", j.Label, j.RewardCred, j.RewardExp)
	if gained > 0 {
		fx.Notify("Promotion", "Dispatch trusts you a little more now.", core.NoteSuccess)
	}

	if !j.Retrofit && env.Rand.Float64() < AnomalyChance {
		note := anomalyNotes[env.Rand.Intn(len(anomalyNotes))]
		sl.Jobs.Anomalies = append(sl.Jobs.Anomalies, core.Anomaly{
			ID:      uuid.NewString(),
			JobID:   j.ID,
			FoundAt: env.Now,
			Note:    note,
		})
		fx.Log(env.Now, core.LogWarning, "Anomaly filed against %s: %s.", j.Label, note)
	}

	sl.Jobs.Active = nil
	return sl, fx
}

func abandonJob(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	if sl.Jobs.Active == nil {
		return sl, fx
	}
	fx.Log(env.Now, core.LogInfo, "Walked away from %s. Dispatch pretends not to notice.", sl.Jobs.Active.Label)
	sl.Jobs.Active = nil
	return sl, fx
}

func offered(offers []string, id string) bool {
	for _, o := range offers {
		if o == id {
			return true
		}
	}
	return false
}

func removeOffer(offers []string, id string) []string {
	out := offers[:0]
	for _, o := range offers {
		if o != id {
			out = append(out, o)
		}
	}
	return out
}
