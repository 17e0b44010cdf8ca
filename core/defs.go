/*
defs.go - Content definition types and the immutable Content bundle

PURPOSE:
  The engine never reads prose; it reads the SHAPE of the game's static
  content: identifiers, costs, thresholds, durations. These definition types
  are that shape. The content package builds a Content bundle (from compiled
  defaults or YAML) once at startup and the composer receives it explicitly -
  there is no ambient registry anywhere.

SEE ALSO:
  - content/: defaults and YAML loading
  - gate.go: consumes CapabilityRegistry
  - events/: consumes EventDef, FlavorTemplate, CategoryTones
*/
package core

import "time"

// =============================================================================
// CAPABILITIES
// =============================================================================

// CapabilityRequirement gates a tab, action or event category. All present
// conditions are ANDed.
type CapabilityRequirement struct {
	MinLevel int      `yaml:"min_level"`
	Flags    []string `yaml:"flags"`
	Items    []string `yaml:"items"`
}

// CapabilityRegistry maps capability id -> requirement. Lookup of an
// unregistered id is allowed (fail-open): absence of a registration means
// "allowed", not "denied". Exploitable for brand-new action strings, but the
// original behaves this way and callers depend on it.
type CapabilityRegistry map[string]CapabilityRequirement

// =============================================================================
// JOBS
// =============================================================================

type JobDef struct {
	ID           string         `yaml:"id"`
	Label        string         `yaml:"label"`
	Retrofit     bool           `yaml:"retrofit"`
	Requirements map[string]int `yaml:"requirements"`
	Tools        []string       `yaml:"tools"`
	RewardCred   int64          `yaml:"reward_credits"`
	RewardExp    int64          `yaml:"reward_experience"`
	DurationMs   int64          `yaml:"duration_ms"`
}

// =============================================================================
// EVENTS
// =============================================================================

type EventChoice struct {
	Label  string        `yaml:"label"`
	Cost   ResourceDelta `yaml:"cost"`
	Effect ResourceDelta `yaml:"effect"`
}

// SkillCheck is the "single required action" event form: resolution compares
// a trained proficiency tier against a threshold and branches.
type SkillCheck struct {
	SkillID string        `yaml:"skill"`
	Tier    int           `yaml:"tier"`
	Success ResourceDelta `yaml:"success"`
	Failure ResourceDelta `yaml:"failure"`
}

type EventDef struct {
	ID        string        `yaml:"id"`
	Title     string        `yaml:"title"`
	Category  string        `yaml:"category"`
	Choices   []EventChoice `yaml:"choices"`
	Check     *SkillCheck   `yaml:"check"`
	TimeoutMs int64         `yaml:"timeout_ms"`
	Failure   ResourceDelta `yaml:"failure"`
}

// =============================================================================
// TONE BUCKETS AND FLAVOR TEMPLATES
// =============================================================================

type ToneBucket string

const (
	ToneMundane      ToneBucket = "MUNDANE"
	ToneBureaucratic ToneBucket = "BUREAUCRATIC"
	ToneEldritch     ToneBucket = "ELDRITCH"
)

// LowSanityThreshold forces resolution flavor to ELDRITCH regardless of the
// event's category.
const LowSanityThreshold = 30.0

// FlavorTemplate is one candidate resolution log line. Nil bounds mean
// unconditioned. A template with no bounds and no required item is part of
// the fallback pool for its tone.
type FlavorTemplate struct {
	Tone         ToneBucket `yaml:"tone"`
	Text         string     `yaml:"text"`
	Weight       int        `yaml:"weight"`
	MinSanity    *float64   `yaml:"min_sanity"`
	MaxSanity    *float64   `yaml:"max_sanity"`
	MinSuspicion *float64   `yaml:"min_suspicion"`
	MaxSuspicion *float64   `yaml:"max_suspicion"`
	RequiresItem string     `yaml:"requires_item"`
}

// Unconditioned reports whether the template applies to any vitals and any
// inventory.
func (t FlavorTemplate) Unconditioned() bool {
	return t.MinSanity == nil && t.MaxSanity == nil &&
		t.MinSuspicion == nil && t.MaxSuspicion == nil && t.RequiresItem == ""
}

// =============================================================================
// PROCUREMENT / DEPLOYMENT / SKILLS
// =============================================================================

type ItemDef struct {
	ID         string `yaml:"id"`
	Label      string `yaml:"label"`
	Cost       int64  `yaml:"cost"`
	LeadTimeMs int64  `yaml:"lead_time_ms"`
}

type StationDef struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type ScenarioStep struct {
	ID        string        `yaml:"id"`
	Narrative string        `yaml:"narrative"`
	Cost      ResourceDelta `yaml:"cost"`
}

type ScenarioDef struct {
	ID    string         `yaml:"id"`
	Name  string         `yaml:"name"`
	Steps []ScenarioStep `yaml:"steps"`
}

type SkillDef struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	MaxTier   int     `yaml:"max_tier"`
	FocusCost float64 `yaml:"focus_cost"`
}

// =============================================================================
// TUNING
// =============================================================================

// IncomeStream is a passive credit stream gated by a boolean flag. Rates are
// per real-time minute and prorated by elapsed milliseconds.
type IncomeStream struct {
	Flag          string  `yaml:"flag"`
	CreditsPerMin float64 `yaml:"credits_per_min"`
}

type TickTuning struct {
	SanityDriftPerMin    float64        `yaml:"sanity_drift_per_min"`
	FocusDriftPerMin     float64        `yaml:"focus_drift_per_min"`
	SuspicionDecayPerMin float64        `yaml:"suspicion_decay_per_min"`
	Income               []IncomeStream `yaml:"income"`

	JobDiscoveryChance  float64 `yaml:"job_discovery_chance"`
	JobDiscoveryContext string  `yaml:"job_discovery_context"`
	EventChance         float64 `yaml:"event_chance"`

	MascotMoveChance float64  `yaml:"mascot_move_chance"`
	MascotSpots      []string `yaml:"mascot_spots"`

	ShiftLengthMs int64    `yaml:"shift_length_ms"`
	BoardSize     int      `yaml:"board_size"`
	BoardPool     []string `yaml:"board_pool"`
}

type ToolroomTuning struct {
	OpenMinMs int64 `yaml:"open_min_ms"`
	OpenMaxMs int64 `yaml:"open_max_ms"`
	AwayMinMs int64 `yaml:"away_min_ms"`
	AwayMaxMs int64 `yaml:"away_max_ms"`
}

// =============================================================================
// CONTENT BUNDLE
// =============================================================================

// Content is the full static registry set. Built once at startup, then
// treated as immutable; every transform receives it through Env.
type Content struct {
	Capabilities  CapabilityRegistry    `yaml:"capabilities"`
	CategoryTones map[string]ToneBucket `yaml:"category_tones"`

	Jobs      []JobDef         `yaml:"jobs"`
	Events    []EventDef       `yaml:"events"`
	Items     []ItemDef        `yaml:"items"`
	Stations  []StationDef     `yaml:"stations"`
	Scenarios []ScenarioDef    `yaml:"scenarios"`
	Skills    []SkillDef       `yaml:"skills"`
	Flavor    []FlavorTemplate `yaml:"flavor"`

	Tick             TickTuning     `yaml:"tick"`
	Toolroom         ToolroomTuning `yaml:"toolroom"`
	DeploymentReward ResourceDelta  `yaml:"deployment_reward"`
}

func (c *Content) JobDef(id string) *JobDef {
	for i := range c.Jobs {
		if c.Jobs[i].ID == id {
			return &c.Jobs[i]
		}
	}
	return nil
}

func (c *Content) EventDef(id string) *EventDef {
	for i := range c.Events {
		if c.Events[i].ID == id {
			return &c.Events[i]
		}
	}
	return nil
}

func (c *Content) ItemDef(id string) *ItemDef {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

func (c *Content) ScenarioDef(id string) *ScenarioDef {
	for i := range c.Scenarios {
		if c.Scenarios[i].ID == id {
			return &c.Scenarios[i]
		}
	}
	return nil
}

func (c *Content) SkillDef(id string) *SkillDef {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return &c.Skills[i]
		}
	}
	return nil
}

// ToneFor maps an event category to its flavor tone bucket, defaulting to
// MUNDANE for unmapped categories.
func (c *Content) ToneFor(category string) ToneBucket {
	if t, ok := c.CategoryTones[category]; ok {
		return t
	}
	return ToneMundane
}

// =============================================================================
// ENV - Per-call transform inputs
// =============================================================================

// Env carries everything a transform needs besides the state itself: the
// caller-supplied clock, the elapsed real time (ticks only), the active UI
// context, the injected randomness and the content bundle.
type Env struct {
	Now       time.Time
	ElapsedMs int64
	Context   string
	Rand      Rand
	Content   *Content
}
