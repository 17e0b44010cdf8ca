package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/hangar-engine/content"
	"github.com/warp/hangar-engine/core"
)

func TestDefault_PassesValidation(t *testing.T) {
	c := content.Default()

	assert.NoError(t, content.Validate(c))
}

func TestDefault_LadderEventsPresent(t *testing.T) {
	c := content.Default()

	assert.NotNil(t, c.EventDef(core.EventSecurityAudit))
	assert.NotNil(t, c.EventDef(core.EventNightInspection))
}

func TestDefault_ScenarioCostsConsume(t *testing.T) {
	// Material costs on scenario steps must be negative or they would grant
	// stock instead of spending it.

	for _, sc := range content.Default().Scenarios {
		for _, st := range sc.Steps {
			for mat, n := range st.Cost.Materials {
				assert.Negative(t, n, "%s/%s consumes %s", sc.ID, st.ID, mat)
			}
		}
	}
}

func TestValidate_RequiresFallbackFlavor(t *testing.T) {
	// GIVEN: A bundle whose only MUNDANE template carries a condition
	// WHEN: Validating
	// THEN: Rejected; resolution could otherwise produce no log line

	c := content.Default()
	min := 70.0
	c.Flavor = []core.FlavorTemplate{
		{Tone: core.ToneMundane, Text: "conditioned", MinSanity: &min},
		{Tone: core.ToneEldritch, Text: "unconditioned elsewhere"},
	}

	err := content.Validate(c)

	assert.ErrorIs(t, err, core.ErrInvalidContent)
}

func TestValidate_RequiresLadderEvents(t *testing.T) {
	c := content.Default()
	var kept []core.EventDef
	for _, ev := range c.Events {
		if ev.ID != core.EventNightInspection {
			kept = append(kept, ev)
		}
	}
	c.Events = kept

	err := content.Validate(c)

	assert.ErrorIs(t, err, core.ErrInvalidContent)
}

func TestValidate_EventNeedsResolutionPath(t *testing.T) {
	c := content.Default()
	c.Events = append(c.Events, core.EventDef{ID: "dead-end", Title: "Unresolvable"})

	err := content.Validate(c)

	assert.ErrorIs(t, err, core.ErrInvalidContent)
}

func TestValidate_ScenarioNeedsSteps(t *testing.T) {
	c := content.Default()
	c.Scenarios = append(c.Scenarios, core.ScenarioDef{ID: "empty", Name: "Nothing happens"})

	err := content.Validate(c)

	assert.ErrorIs(t, err, core.ErrInvalidContent)
}

func TestLoad_YAMLBundle(t *testing.T) {
	// GIVEN: A minimal YAML bundle on disk
	// WHEN: Loading
	// THEN: Values land in the typed bundle and validation passes

	doc := `
capabilities:
  tab/procurement:
    min_level: 2
events:
  - id: security-audit
    title: Security audit
    category: inspection
    choices:
      - label: Cooperate
        effect:
          suspicion: -10
  - id: night-inspection
    title: Night inspection
    category: anomalous
    check:
      skill: composure
      tier: 2
      success:
        sanity: 5
      failure:
        sanity: -10
flavor:
  - tone: MUNDANE
    text: The matter is closed.
tick:
  sanity_drift_per_min: -0.2
  event_chance: 0.01
`
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := content.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Capabilities["tab/procurement"].MinLevel)
	require.NotNil(t, c.EventDef("night-inspection"))
	assert.Equal(t, "composure", c.EventDef("night-inspection").Check.SkillID)
	assert.InDelta(t, -0.2, c.Tick.SanityDriftPerMin, 1e-9)
}

func TestLoad_InvalidBundleRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flavor: []\n"), 0o644))

	_, err := content.Load(path)

	assert.ErrorIs(t, err, core.ErrInvalidContent)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := content.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}
