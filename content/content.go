/*
Package content builds the immutable registry bundle the engine runs on.

PURPOSE:
  The engine only needs the SHAPE of the game's static content - ids, costs,
  thresholds, durations - never its prose. This package owns that shape:
  compiled-in defaults for a standard game, YAML loading for alternate
  bundles, and validation of the handful of structural contracts the engine
  depends on (the flavor fallback pool, the ladder's event ids).

USAGE:
  bundle := content.Default()
  // or
  bundle, err := content.Load("content.yaml")

SEE ALSO:
  - core/defs.go: the definition types
  - engine/: consumes the bundle via core.Env
*/
package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/warp/hangar-engine/core"
)

// Load reads a content bundle from a YAML file and validates it.
func Load(path string) (*core.Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c core.Content
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the structural contracts the engine cannot survive
// without. Balancing is not validated; numbers are the designers' problem.
func Validate(c *core.Content) error {
	fallback := 0
	for _, t := range c.Flavor {
		if t.Tone == core.ToneMundane && t.Unconditioned() {
			fallback++
		}
	}
	if fallback == 0 {
		return fmt.Errorf("%w: no unconditioned MUNDANE flavor template; event resolution could produce no log", core.ErrInvalidContent)
	}

	for _, id := range []string{core.EventSecurityAudit, core.EventNightInspection} {
		if c.EventDef(id) == nil {
			return fmt.Errorf("%w: missing ladder event %q", core.ErrInvalidContent, id)
		}
	}

	for _, ev := range c.Events {
		if len(ev.Choices) == 0 && ev.Check == nil {
			return fmt.Errorf("%w: event %q has neither choices nor a skill check", core.ErrInvalidContent, ev.ID)
		}
	}

	for _, sc := range c.Scenarios {
		if len(sc.Steps) == 0 {
			return fmt.Errorf("%w: scenario %q has no steps", core.ErrInvalidContent, sc.ID)
		}
	}

	return nil
}
