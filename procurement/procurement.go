/*
Package procurement implements the purchase-order lifecycle.

LIFECYCLE:
  ORDERED -> DELIVERED (ETA passed, exactly once)
  ORDERED -> CANCELLED (80% refund, floored)

  Only ORDERED orders live in the active list. The delivery sweep runs on
  every tick and must hand over every ripe order in a single pass; a second
  sweep at the same time delivers nothing more.

MONEY:
  Costs are integer credits. The cancellation refund is floor(0.8 * cost),
  computed in decimal so the fraction is exact.
*/
package procurement

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warp/hangar-engine/core"
)

// RefundFraction is the cancelled-order refund rate. Load-bearing; the
// floor(0.8*cost) arithmetic is part of the engine contract.
var RefundFraction = decimal.NewFromFloat(0.8)

// Slice is the state this package may read and mutate.
type Slice struct {
	Ledger      core.ResourceLedger
	Inventory   core.Inventory
	Procurement core.ProcurementState
}

// Apply handles procurement actions. Unrelated kinds return the slice
// unchanged.
func Apply(sl Slice, act core.Action, env core.Env) (Slice, core.Effects) {
	var fx core.Effects
	switch act.Kind {
	case core.KindPlaceOrder:
		return placeOrder(sl, act.Payload.ItemID, env)
	case core.KindCancelOrder:
		return cancelOrder(sl, act.Payload.OrderID, env)
	case core.KindDeliverOrder:
		return deliverOrder(sl, act.Payload.OrderID, env)
	case core.KindCheckDeliveries:
		return Sweep(sl, env)
	}
	return sl, fx
}

func placeOrder(sl Slice, itemID string, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	def := env.Content.ItemDef(itemID)
	if def == nil {
		fx.Log(env.Now, core.LogWarning, "The catalog has no entry for %s.", itemID)
		return sl, fx
	}
	if sl.Ledger.Credits < def.Cost {
		fx.Log(env.Now, core.LogWarning, "Cannot order %s: need %d credits, have %d.", def.Label, def.Cost, sl.Ledger.Credits)
		return sl, fx
	}

	sl.Ledger.AddCredits(-def.Cost)
	order := core.Order{
		ID:       uuid.NewString(),
		ItemID:   def.ID,
		Label:    def.Label,
		Cost:     def.Cost,
		PlacedAt: env.Now,
		ETA:      env.Now.Add(core.Ms(def.LeadTimeMs)),
		Status:   core.OrderOrdered,
	}
	sl.Procurement.Orders = append(sl.Procurement.Orders, order)
	sl.Procurement.Placed++
	fx.Log(env.Now, core.LogInfo, "Ordered %s for %d credits.", def.Label, def.Cost)
	fx.Notify("Order placed", def.Label, core.NoteSuccess)
	return sl, fx
}

// cancelOrder removes an ORDERED order and refunds floor(0.8 * cost).
// Unknown ids are a no-op.
func cancelOrder(sl Slice, orderID string, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	idx := findOrder(sl.Procurement.Orders, orderID)
	if idx < 0 {
		return sl, fx
	}
	order := sl.Procurement.Orders[idx]
	refund := decimal.NewFromInt(order.Cost).Mul(RefundFraction).Floor().IntPart()

	sl.Procurement.Orders = append(sl.Procurement.Orders[:idx], sl.Procurement.Orders[idx+1:]...)
	sl.Ledger.AddCredits(refund)
	fx.Log(env.Now, core.LogInfo, "Cancelled %s. %d credits refunded.", order.Label, refund)
	return sl, fx
}

// deliverOrder hands over one named order, under the same ETA rule as the
// sweep: an order still in transit stays on the books.
func deliverOrder(sl Slice, orderID string, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	idx := findOrder(sl.Procurement.Orders, orderID)
	if idx < 0 {
		return sl, fx
	}
	if env.Now.Before(sl.Procurement.Orders[idx].ETA) {
		fx.Log(env.Now, core.LogWarning, "%s has not arrived yet.", sl.Procurement.Orders[idx].Label)
		return sl, fx
	}
	return deliverAt(sl, idx, env)
}

// Sweep delivers every ripe order in a single pass. Idempotent for a given
// time: delivered orders leave the active list, so a second sweep at the
// same instant finds nothing.
func Sweep(sl Slice, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	for i := 0; i < len(sl.Procurement.Orders); {
		o := sl.Procurement.Orders[i]
		if o.Status == core.OrderOrdered && !env.Now.Before(o.ETA) {
			var dfx core.Effects
			sl, dfx = deliverAt(sl, i, env)
			fx.Merge(dfx)
			continue // slice shrank; same index is the next order
		}
		i++
	}
	return sl, fx
}

func deliverAt(sl Slice, idx int, env core.Env) (Slice, core.Effects) {
	var fx core.Effects

	o := sl.Procurement.Orders[idx]
	sl.Procurement.Orders = append(sl.Procurement.Orders[:idx], sl.Procurement.Orders[idx+1:]...)
	sl.Inventory.Add(o.ItemID, 1)
	sl.Procurement.Delivered++
	fx.Log(env.Now, core.LogInfo, "Delivery: %s is on the receiving dock.", o.Label)
	fx.Notify("Delivery", o.Label, core.NoteInfo)
	return sl, fx
}

func findOrder(orders []core.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}
