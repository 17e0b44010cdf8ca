/*
Package facility implements the ambient, tick-driven slices of the hangar:
the toolroom status machine, the monotonic shift clock with its bulletin
board, and the mascot (who is also the pet sub-reducer).

TOOLROOM:
  OPEN -> {LUNCH | AUDIT | CLOSED} probabilistically, at the stored
  next-change time. Any non-OPEN status deterministically returns to OPEN at
  its deadline. Durations are pseudo-random within tuned bounds. Checking
  out a tool requires the window to be OPEN.

SHIFT CLOCK:
  Elapsed milliseconds accumulate monotonically; each rollover increments
  the shift counter and re-randomizes the bulletin board from the content
  pool.

MASCOT:
  Wanders to a random spot with a low per-tick probability. Feeding and
  petting nudge sanity and are the only player inputs here.
*/
package facility

import "github.com/warp/hangar-engine/core"

// Toolroom roll bands when leaving OPEN. The first band is load-bearing.
const (
	lunchBand = 0.3
	auditBand = 0.6
)

// Mascot care effects.
const (
	feedSanity = 2.0
	petSanity  = 1.0
)

// Slice is the state this package may read and mutate.
type Slice struct {
	Ledger    core.ResourceLedger
	Inventory core.Inventory
	Facility  core.FacilityState
}

// Apply handles facility and mascot actions.
func Apply(sl Slice, act core.Action, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	switch act.Kind {
	case core.KindCheckoutTool:
		return checkoutTool(sl, act.Payload.ToolID, env)
	case core.KindFeedMascot:
		return feedMascot(sl, env)
	case core.KindPetMascot:
		return petMascot(sl, env)
	}
	return sl, fx
}

// Tick runs the toolroom check, the shift accumulator and the mascot roll.
// Each piece is independent; all may fire in the same tick.
func Tick(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	sl, tfx := toolroomTick(sl, env)
	fx.Merge(tfx)

	sl, sfx := shiftTick(sl, env)
	fx.Merge(sfx)

	sl, mfx := mascotTick(sl, env)
	fx.Merge(mfx)

	return sl, fx
}

// =============================================================================
// TOOLROOM
// =============================================================================

func toolroomTick(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	if env.Now.Before(sl.Facility.ToolroomNextChange) {
		return sl, fx
	}
	tun := env.Content.Toolroom

	if sl.Facility.Toolroom == core.ToolroomOpen {
		roll := env.Rand.Float64()
		next := core.ToolroomClosed
		switch {
		case roll < lunchBand:
			next = core.ToolroomLunch
		case roll < auditBand:
			next = core.ToolroomAudit
		}
		sl.Facility.Toolroom = next
		sl.Facility.ToolroomNextChange = env.Now.Add(core.Ms(randBetween(env.Rand, tun.AwayMinMs, tun.AwayMaxMs)))
		fx.Log(env.Now, core.LogInfo, "Toolroom window: %s.", next)
	} else {
		sl.Facility.Toolroom = core.ToolroomOpen
		sl.Facility.ToolroomNextChange = env.Now.Add(core.Ms(randBetween(env.Rand, tun.OpenMinMs, tun.OpenMaxMs)))
		fx.Log(env.Now, core.LogInfo, "Toolroom window: OPEN.")
	}
	return sl, fx
}

func checkoutTool(sl Slice, toolID string, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	if toolID == "" {
		return sl, fx
	}
	if sl.Facility.Toolroom != core.ToolroomOpen {
		fx.Log(env.Now, core.LogWarning, "Toolroom is %s. The shutter does not negotiate.", sl.Facility.Toolroom)
		return sl, fx
	}
	sl.Inventory.Add(toolID, 1)
	fx.Log(env.Now, core.LogInfo, "Checked out %s. Sign here, here, and here.", toolID)
	return sl, fx
}

// =============================================================================
// SHIFT CLOCK AND BULLETIN BOARD
// =============================================================================

func shiftTick(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	t := env.Content.Tick
	if t.ShiftLengthMs <= 0 {
		return sl, fx
	}
	sl.Facility.ShiftMs += env.ElapsedMs
	for sl.Facility.ShiftMs >= t.ShiftLengthMs {
		sl.Facility.ShiftMs -= t.ShiftLengthMs
		sl.Facility.Shift++
		sl.Facility.Board = pickBoard(t, env.Rand)
		fx.Log(env.Now, core.LogInfo, "Shift change. The bulletin board has been rearranged by unseen hands.")
	}
	return sl, fx
}

func pickBoard(t core.TickTuning, rnd core.Rand) []string {
	n := t.BoardSize
	if n <= 0 || len(t.BoardPool) == 0 {
		return nil
	}
	if n > len(t.BoardPool) {
		n = len(t.BoardPool)
	}
	// Partial Fisher-Yates over a copy of the pool.
	pool := append([]string(nil), t.BoardPool...)
	for i := 0; i < n; i++ {
		j := i + rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// =============================================================================
// MASCOT
// =============================================================================

func mascotTick(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	t := env.Content.Tick
	if len(t.MascotSpots) == 0 || env.Rand.Float64() >= t.MascotMoveChance {
		return sl, fx
	}
	spot := t.MascotSpots[env.Rand.Intn(len(t.MascotSpots))]
	if spot == sl.Facility.Mascot.Location {
		return sl, fx
	}
	sl.Facility.Mascot.Location = spot
	sl.Facility.Mascot.Moves++
	fx.Log(env.Now, core.LogInfo, "The hangar cat relocates to %s.", spot)
	return sl, fx
}

func feedMascot(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	sl.Facility.Mascot.FedAt = env.Now
	sl.Ledger.Sanity += feedSanity
	fx.Log(env.Now, core.LogInfo, "The hangar cat accepts your offering without gratitude.")
	return sl, fx
}

func petMascot(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	sl.Ledger.Sanity += petSanity
	fx.Log(env.Now, core.LogInfo, "The hangar cat permits exactly four seconds of contact.")
	return sl, fx
}

func randBetween(rnd core.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + int64(rnd.Intn(int(hi-lo)))
}
