/*
gate.go - Capability gate

PURPOSE:
  Decides whether a named capability (a UI tab id, an action type string, or
  an event category) is currently reachable given the player's level, flags
  and inventory.

DESIGN:
  - Fail-open: an id with no registration is allowed. This is preserved
    deliberately from the original engine; new action strings bypass gating
    until someone registers them. See CapabilityRegistry in defs.go.
  - Checks are side-effect free, so short-circuiting is safe.
  - LockedMessage is asymmetric on purpose: level gaps are diagnosable to
    the player, flag/item gaps are not.
*/
package core

import "fmt"

// Gate evaluates capability requirements against a state. The registry is
// immutable after construction.
type Gate struct {
	registry CapabilityRegistry
}

func NewGate(registry CapabilityRegistry) Gate {
	return Gate{registry: registry}
}

// IsAllowed reports whether the capability is reachable in the given state.
func (g Gate) IsAllowed(capabilityID string, s State) bool {
	return g.registry.Allows(capabilityID, s.Ledger.Level, s.Flags, s.Inventory)
}

// Allows is the slice-level form of the gate check, for sub-reducers that
// hold the ledger, flags and inventory individually. Unregistered ids are
// allowed.
func (r CapabilityRegistry) Allows(capabilityID string, level int, flags map[string]bool, inv Inventory) bool {
	req, ok := r[capabilityID]
	if !ok {
		return true
	}
	if level < req.MinLevel {
		return false
	}
	for _, f := range req.Flags {
		if !flags[f] {
			return false
		}
	}
	for _, item := range req.Items {
		if !inv.Has(item) {
			return false
		}
	}
	return true
}

// LockedMessage explains a denial. Level shortfalls name both levels;
// anything else gets the generic line.
func (g Gate) LockedMessage(capabilityID string, s State) string {
	req, ok := g.registry[capabilityID]
	if !ok {
		return ""
	}
	if s.Ledger.Level < req.MinLevel {
		return fmt.Sprintf("Requires level %d (current: %d)", req.MinLevel, s.Ledger.Level)
	}
	return "Additional requirements not met"
}
