/*
violations.go - Violation escalation ladder

PURPOSE:
  Every denied action increments the access-violation counter by exactly one
  and emits an ACCESS DENIED notification plus a generic log line. Passing
  through certain exact counter values adds escalating consequences; each
  threshold fires exactly once, on the pass through that precise integer,
  never on ">=".

THRESHOLDS (load-bearing, do not retune):
   3 - warning log
   5 - error log (in addition to, not replacing, the level-3 one)
   8 - log + suspicion +10
  10 - trigger the security-audit event if none is active
  15 - log + suspicion +15, sanity -10
  20 - log + sanity -15, trigger the night-inspection event if none active

  Past 20 the counter keeps climbing and the generic denial keeps firing,
  but no further special effect exists.
*/
package core

// Event definition ids triggered by the ladder. Present in the default
// content bundle; triggering is skipped when an event is already active.
const (
	EventSecurityAudit   = "security-audit"
	EventNightInspection = "night-inspection"
)

// Escalate applies the ladder to a denied action. The state is mutated in
// place (the composer owns the clone); the returned Effects carry the
// notification, logs, and any event-trigger request.
func Escalate(s *State, lockedMsg string, env Env) Effects {
	var fx Effects

	s.Violations.AccessViolations++
	n := s.Violations.AccessViolations

	msg := lockedMsg
	if msg == "" {
		msg = "Additional requirements not met"
	}
	fx.Notify("ACCESS DENIED", msg, NoteDanger)
	fx.Log(env.Now, LogWarning, "Access denied: %s", msg)

	switch n {
	case 3:
		fx.Log(env.Now, LogWarning, "Repeated access attempts have been noted in your file.")
	case 5:
		fx.Log(env.Now, LogError, "Your badge emits a brief, disappointed tone.")
	case 8:
		fx.Log(env.Now, LogError, "A clipboard appears at the end of the corridor. It is pointed at you.")
		s.Ledger.Suspicion += 10
	case 10:
		fx.TriggerEvent = EventSecurityAudit
	case 15:
		fx.Log(env.Now, LogError, "The intercom reads your employee number aloud. Twice.")
		s.Ledger.Suspicion += 15
		s.Ledger.Sanity -= 10
	case 20:
		fx.Log(env.Now, LogError, "Somewhere above the mezzanine, a filing cabinet opens on its own.")
		s.Ledger.Sanity -= 15
		fx.TriggerEvent = EventNightInspection
	}

	return fx
}
