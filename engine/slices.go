/*
slices.go - Slice extraction and write-back

PURPOSE:
  Each sub-reducer declares the slice of state it needs; the composer copies
  exactly those fields in, and writes back exactly the fields that reducer
  is allowed to mutate. Keeping the mapping in one file makes the ownership
  table auditable at a glance.

OWNERSHIP:
  jobs         ledger, inventory (read), jobs
  events       ledger, inventory, flags, proficiency (read), events
  procurement  ledger, inventory, procurement
  deployment   ledger, inventory, flags, deployment
  facility     ledger, inventory, facility
  proficiency  ledger, proficiency
*/
package engine

import (
	"github.com/warp/hangar-engine/core"
	"github.com/warp/hangar-engine/deployment"
	"github.com/warp/hangar-engine/events"
	"github.com/warp/hangar-engine/facility"
	"github.com/warp/hangar-engine/jobs"
	"github.com/warp/hangar-engine/procurement"
	"github.com/warp/hangar-engine/proficiency"
)

func jobsSlice(s *core.State) jobs.Slice {
	return jobs.Slice{Ledger: s.Ledger, Inventory: s.Inventory, Jobs: s.Jobs}
}

func writeJobs(s *core.State, sl jobs.Slice) {
	s.Ledger = sl.Ledger
	s.Inventory = sl.Inventory
	s.Jobs = sl.Jobs
}

func eventsSlice(s *core.State) events.Slice {
	return events.Slice{
		Ledger:      s.Ledger,
		Inventory:   s.Inventory,
		Flags:       s.Flags,
		Proficiency: s.Proficiency,
		Events:      s.Events,
	}
}

func writeEvents(s *core.State, sl events.Slice) {
	s.Ledger = sl.Ledger
	s.Inventory = sl.Inventory
	s.Flags = sl.Flags
	s.Events = sl.Events
}

func procurementSlice(s *core.State) procurement.Slice {
	return procurement.Slice{Ledger: s.Ledger, Inventory: s.Inventory, Procurement: s.Procurement}
}

func writeProcurement(s *core.State, sl procurement.Slice) {
	s.Ledger = sl.Ledger
	s.Inventory = sl.Inventory
	s.Procurement = sl.Procurement
}

func deploymentSlice(s *core.State) deployment.Slice {
	return deployment.Slice{Ledger: s.Ledger, Inventory: s.Inventory, Flags: s.Flags, Deployment: s.Deployment}
}

func writeDeployment(s *core.State, sl deployment.Slice) {
	s.Ledger = sl.Ledger
	s.Inventory = sl.Inventory
	s.Flags = sl.Flags
	s.Deployment = sl.Deployment
}

func facilitySlice(s *core.State) facility.Slice {
	return facility.Slice{Ledger: s.Ledger, Inventory: s.Inventory, Facility: s.Facility}
}

func writeFacility(s *core.State, sl facility.Slice) {
	s.Ledger = sl.Ledger
	s.Inventory = sl.Inventory
	s.Facility = sl.Facility
}

func proficiencySlice(s *core.State) proficiency.Slice {
	return proficiency.Slice{Ledger: s.Ledger, Proficiency: s.Proficiency}
}

func writeProficiency(s *core.State, sl proficiency.Slice) {
	s.Ledger = sl.Ledger
	s.Proficiency = sl.Proficiency
}
