/*
defaults.go - Compiled-in standard game content

The numbers here are the standard game's balance. Tests build their own
smaller bundles; this one exists so the server runs without any files on
disk. Flavor text is intentionally short - the host UI carries the real
prose, the engine only logs one line per resolution.
*/
package content

import "github.com/warp/hangar-engine/core"

func f(v float64) *float64 { return &v }

// Default returns the standard content bundle. The result is fresh on every
// call; callers treat it as immutable after handing it to the engine.
func Default() *core.Content {
	c := &core.Content{
		Capabilities: core.CapabilityRegistry{
			// Tabs
			"tab/procurement": {MinLevel: 2},
			"tab/deployment":  {MinLevel: 5},
			"tab/records":     {MinLevel: 3},

			// Actions
			"procurement/place":   {MinLevel: 2},
			"deployment/accept":   {MinLevel: 5, Flags: []string{"aog_certified"}},
			"deployment/step":     {MinLevel: 5},
			"deployment/complete": {MinLevel: 5},
			"toolroom/checkout":   {Items: []string{"toolroom-badge"}},
			"proficiency/train":   {MinLevel: 2},

			// Event categories
			"category/inspection": {MinLevel: 3},
		},

		CategoryTones: map[string]core.ToneBucket{
			"maintenance": core.ToneMundane,
			"paperwork":   core.ToneBureaucratic,
			"inspection":  core.ToneBureaucratic,
			"anomalous":   core.ToneEldritch,
		},

		Jobs: []core.JobDef{
			{
				ID: "skin-patch", Label: "Skin patch, aft fuselage",
				Requirements: map[string]int{"alclad": 60, "rivets": 40},
				Tools:        []string{"rivet-gun"},
				RewardCred:   350, RewardExp: 120, DurationMs: 600_000,
			},
			{
				ID: "seal-reseal", Label: "Fuel tank reseal",
				Requirements: map[string]int{"sealant": 25},
				RewardCred:   220, RewardExp: 80, DurationMs: 420_000,
			},
			{
				ID: "lockwire-pass", Label: "Safety-wire inspection pass",
				Requirements: map[string]int{"safety_wire": 10},
				RewardCred:   120, RewardExp: 40, DurationMs: 240_000,
			},
			{
				ID: "retrofit-kit-7", Label: "Retrofit kit 7 installation",
				Retrofit:     true,
				Requirements: map[string]int{"rivets": 80, "sealant": 15},
				Tools:        []string{"rivet-gun", "torque-driver"},
				RewardCred:   700, RewardExp: 260, DurationMs: 900_000,
			},
		},

		Events: []core.EventDef{
			{
				ID: core.EventSecurityAudit, Title: "Security audit", Category: "inspection",
				TimeoutMs: 120_000,
				Choices: []core.EventChoice{
					{
						Label:  "Cooperate fully",
						Effect: core.ResourceDelta{Suspicion: -10, Focus: -5},
					},
					{
						Label:  "Produce the older, friendlier badge",
						Cost:   core.ResourceDelta{Credits: -50},
						Effect: core.ResourceDelta{Suspicion: -20},
					},
				},
				Failure: core.ResourceDelta{Suspicion: 15},
			},
			{
				ID: core.EventNightInspection, Title: "Night inspection", Category: "anomalous",
				TimeoutMs: 90_000,
				Check: &core.SkillCheck{
					SkillID: "composure", Tier: 2,
					Success: core.ResourceDelta{Sanity: 5, Suspicion: -5},
					Failure: core.ResourceDelta{Sanity: -10, Suspicion: 10},
				},
				Failure: core.ResourceDelta{Sanity: -15, Suspicion: 10},
			},
			{
				ID: "parts-recount", Title: "Stores demands a recount", Category: "paperwork",
				TimeoutMs: 180_000,
				Choices: []core.EventChoice{
					{Label: "Count everything twice", Effect: core.ResourceDelta{Focus: -10, Suspicion: -5}},
					{Label: "Sign the sheet unread", Effect: core.ResourceDelta{Suspicion: 5, Focus: 2}},
				},
				Failure: core.ResourceDelta{Suspicion: 8},
			},
			{
				ID: "humming-panel", Title: "Panel 4L is humming again", Category: "anomalous",
				TimeoutMs: 150_000,
				Check: &core.SkillCheck{
					SkillID: "structures", Tier: 1,
					Success: core.ResourceDelta{Experience: 60, Sanity: -2},
					Failure: core.ResourceDelta{Sanity: -8},
				},
				Failure: core.ResourceDelta{Sanity: -12},
			},
		},

		Items: []core.ItemDef{
			{ID: "rivet-gun", Label: "Pneumatic rivet gun", Cost: 500, LeadTimeMs: 300_000},
			{ID: "torque-driver", Label: "Calibrated torque driver", Cost: 800, LeadTimeMs: 600_000},
			{ID: "toolroom-badge", Label: "Toolroom access badge", Cost: 250, LeadTimeMs: 120_000},
			{ID: "ear-defenders", Label: "Ear defenders", Cost: 90, LeadTimeMs: 60_000},
		},

		Stations: []core.StationDef{
			{ID: "outfield-north", Name: "North outfield stand"},
			{ID: "remote-strip", Name: "The unlit remote strip"},
			{ID: "cargo-apron", Name: "Cargo apron, gate 9"},
		},

		Scenarios: []core.ScenarioDef{
			{
				ID: "flat-strut", Name: "Collapsed nose strut",
				Steps: []core.ScenarioStep{
					{ID: "jack", Narrative: "Aircraft on jacks. It creaks in a language you almost know.", Cost: core.ResourceDelta{Focus: -5}},
					{ID: "swap-seal", Narrative: "Strut seal replaced.", Cost: core.ResourceDelta{Materials: map[string]int{"sealant": -5}}},
					{ID: "service", Narrative: "Strut serviced and signed for.", Cost: core.ResourceDelta{Focus: -5}},
				},
			},
			{
				ID: "bird-ingest", Name: "Bird strike, number two engine",
				Steps: []core.ScenarioStep{
					{ID: "borescope", Narrative: "Borescope shows nothing. The blades show claw marks anyway.", Cost: core.ResourceDelta{Focus: -8, Sanity: -2}},
					{ID: "blend", Narrative: "Blade blended within limits.", Cost: core.ResourceDelta{Materials: map[string]int{"safety_wire": -4}}},
				},
			},
		},

		Skills: []core.SkillDef{
			{ID: "structures", Name: "Structures", MaxTier: 5, FocusCost: 20},
			{ID: "avionics", Name: "Avionics", MaxTier: 5, FocusCost: 20},
			{ID: "composure", Name: "Composure", MaxTier: 3, FocusCost: 30},
		},

		Flavor: []core.FlavorTemplate{
			// Unconditioned MUNDANE - the mandatory fallback pool.
			{Tone: core.ToneMundane, Text: "The matter is closed. The coffee is still terrible.", Weight: 3},
			{Tone: core.ToneMundane, Text: "Back to work. The aircraft does not care either way.", Weight: 2},
			{Tone: core.ToneMundane, Text: "Someone updates the whiteboard. Life goes on.", Weight: 2},
			{Tone: core.ToneMundane, Text: "High spirits carry you back to the bench.", MinSanity: f(70)},

			{Tone: core.ToneBureaucratic, Text: "Three copies filed. A fourth materializes in your locker.", Weight: 2},
			{Tone: core.ToneBureaucratic, Text: "The form is stamped. The stamp needed a form.", Weight: 2},
			{Tone: core.ToneBureaucratic, Text: "Quality assurance nods very slowly.", MaxSuspicion: f(40)},
			{Tone: core.ToneBureaucratic, Text: "Your ear defenders muffle the audit's closing remarks.", RequiresItem: "ear-defenders"},

			{Tone: core.ToneEldritch, Text: "It is settled, for a given value of settled.", Weight: 2},
			{Tone: core.ToneEldritch, Text: "The hangar exhales. You pretend it is the door seals.", Weight: 2},
			{Tone: core.ToneEldritch, Text: "You write the outcome down before it changes its mind.", MaxSanity: f(50)},
		},

		Tick: core.TickTuning{
			SanityDriftPerMin:    -0.2,
			FocusDriftPerMin:     1.0,
			SuspicionDecayPerMin: -0.5,
			Income: []core.IncomeStream{
				{Flag: "vending-route", CreditsPerMin: 1.5},
				{Flag: "scrap-contract", CreditsPerMin: 4.0},
			},
			JobDiscoveryChance:  0.05,
			JobDiscoveryContext: "hangar",
			EventChance:         0.01,
			MascotMoveChance:    0.02,
			MascotSpots: []string{
				"the wing jig", "the parts crib", "the warm avionics rack",
				"the foreman's chair", "an unmarked crate",
			},
			ShiftLengthMs: 28_800_000, // 8 hours
			BoardSize:     3,
			BoardPool: []string{
				"memo-ppe", "memo-parking", "memo-potluck",
				"memo-audit-week", "memo-lost-cat", "memo-do-not-look",
			},
		},

		Toolroom: core.ToolroomTuning{
			OpenMinMs: 1_200_000, OpenMaxMs: 2_400_000,
			AwayMinMs: 300_000, AwayMaxMs: 900_000,
		},

		DeploymentReward: core.ResourceDelta{Credits: 1200, Experience: 400},
	}
	return c
}
