/*
flavor.go - Resolution flavor selection

PURPOSE:
  Every event resolution produces exactly one flavor log line, picked from a
  static weighted template pool. Filtering happens in three stages:

    1. Tone: the event's category maps to a tone bucket (MUNDANE,
       BUREAUCRATIC, ELDRITCH). Sanity below the low threshold forces
       ELDRITCH regardless of category.
    2. Vital bounds: templates may carry min/max sanity and suspicion.
    3. Inventory: templates may require an owned item.

  An empty filtered pool falls back to the unconditioned MUNDANE subset,
  which content validation guarantees is non-empty.
*/
package events

import "github.com/warp/hangar-engine/core"

func resolutionFlavor(def *core.EventDef, led core.ResourceLedger, inv core.Inventory, env core.Env) string {
	tone := env.Content.ToneFor(def.Category)
	if led.Sanity < core.LowSanityThreshold {
		tone = core.ToneEldritch
	}

	pool := filterPool(env.Content.Flavor, tone, led, inv)
	if len(pool) == 0 {
		pool = fallbackPool(env.Content.Flavor)
	}
	if len(pool) == 0 {
		// Content validation should make this unreachable.
		return "The shift continues."
	}
	return weightedPick(pool, env.Rand).Text
}

func filterPool(all []core.FlavorTemplate, tone core.ToneBucket, led core.ResourceLedger, inv core.Inventory) []core.FlavorTemplate {
	var pool []core.FlavorTemplate
	for _, t := range all {
		if t.Tone != tone {
			continue
		}
		if t.MinSanity != nil && led.Sanity < *t.MinSanity {
			continue
		}
		if t.MaxSanity != nil && led.Sanity > *t.MaxSanity {
			continue
		}
		if t.MinSuspicion != nil && led.Suspicion < *t.MinSuspicion {
			continue
		}
		if t.MaxSuspicion != nil && led.Suspicion > *t.MaxSuspicion {
			continue
		}
		if t.RequiresItem != "" && !inv.Has(t.RequiresItem) {
			continue
		}
		pool = append(pool, t)
	}
	return pool
}

// fallbackPool is the unconditioned MUNDANE subset.
func fallbackPool(all []core.FlavorTemplate) []core.FlavorTemplate {
	var pool []core.FlavorTemplate
	for _, t := range all {
		if t.Tone == core.ToneMundane && t.Unconditioned() {
			pool = append(pool, t)
		}
	}
	return pool
}

func weightedPick(pool []core.FlavorTemplate, rnd core.Rand) core.FlavorTemplate {
	total := 0
	for _, t := range pool {
		total += weight(t)
	}
	r := rnd.Intn(total)
	for _, t := range pool {
		r -= weight(t)
		if r < 0 {
			return t
		}
	}
	return pool[len(pool)-1]
}

func weight(t core.FlavorTemplate) int {
	if t.Weight <= 0 {
		return 1
	}
	return t.Weight
}
