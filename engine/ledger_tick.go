/*
ledger_tick.go - Resource ledger tick

PURPOSE:
  The first stage of the tick pipeline: vital drift and flag-gated passive
  income. Drift rates are signed per-real-time-minute values from tuning;
  income streams pay whole credits, with the fractional remainder carried in
  the ledger as an exact decimal so short ticks still accrue.
*/
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/warp/hangar-engine/core"
)

var msPerMinute = decimal.NewFromInt(60000)

func ledgerTick(s *core.State, env core.Env) {
	t := env.Content.Tick
	minutes := float64(env.ElapsedMs) / 60000.0

	s.Ledger.Sanity += t.SanityDriftPerMin * minutes
	s.Ledger.Focus += t.FocusDriftPerMin * minutes
	s.Ledger.Suspicion += t.SuspicionDecayPerMin * minutes

	var rate decimal.Decimal
	for _, stream := range t.Income {
		if s.Flags[stream.Flag] {
			rate = rate.Add(decimal.NewFromFloat(stream.CreditsPerMin))
		}
	}
	if rate.IsZero() {
		return
	}

	earned := rate.Mul(decimal.NewFromInt(env.ElapsedMs)).Div(msPerMinute)
	total := s.Ledger.IncomeCarry.Add(earned)
	whole := total.Floor()
	s.Ledger.IncomeCarry = total.Sub(whole)
	if whole.IsPositive() {
		s.Ledger.AddCredits(whole.IntPart())
	}
}
