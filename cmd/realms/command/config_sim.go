package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-realms/internal/agent"
	"github.com/pixil98/go-realms/internal/combat"
)

type SimulationConfig struct {
	// RunDuration is how long the simulation runs before the final summary.
	RunDuration string `json:"run_duration,omitempty"`

	// MinActionDelay and MaxActionDelay bound each agent's random pause
	// between actions.
	MinActionDelay string `json:"min_action_delay,omitempty"`
	MaxActionDelay string `json:"max_action_delay,omitempty"`

	// Seed makes a run reproducible when set; 0 seeds from the clock.
	Seed uint64 `json:"seed,omitempty"`

	// SpecialChance is the percent chance a combat strike attempts the
	// class special ability.
	SpecialChance *int `json:"special_chance,omitempty"`

	// Players is the roster registered at startup.
	Players []PlayerConfig `json:"players"`
}

type PlayerConfig struct {
	Name  string `json:"name"`
	Class string `json:"class"`
}

func (c *SimulationConfig) validate() error {
	el := errors.NewErrorList()

	for name, field := range map[string]string{
		"run_duration":     c.RunDuration,
		"min_action_delay": c.MinActionDelay,
		"max_action_delay": c.MaxActionDelay,
	} {
		if field == "" {
			continue
		}
		d, err := time.ParseDuration(field)
		if err != nil {
			el.Add(fmt.Errorf("parsing %s: %w", name, err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("%s must be positive", name))
		}
	}

	if c.SpecialChance != nil && (*c.SpecialChance < 0 || *c.SpecialChance > 100) {
		el.Add(fmt.Errorf("special_chance must be between 0 and 100"))
	}

	if len(c.Players) == 0 {
		el.Add(fmt.Errorf("at least one player is required"))
	}

	seen := map[string]bool{}
	for i, p := range c.Players {
		if p.Name == "" {
			el.Add(fmt.Errorf("player %d: name is required", i))
		}
		if p.Class == "" {
			el.Add(fmt.Errorf("player %d: class is required", i))
		}
		if seen[p.Name] {
			el.Add(fmt.Errorf("player %d: duplicate name %q", i, p.Name))
		}
		seen[p.Name] = true
	}

	return el.Err()
}

func (c *SimulationConfig) runDuration() time.Duration {
	return c.duration(c.RunDuration, agent.DefaultRunDuration)
}

func (c *SimulationConfig) minDelay() time.Duration {
	return c.duration(c.MinActionDelay, agent.DefaultMinDelay)
}

func (c *SimulationConfig) maxDelay() time.Duration {
	return c.duration(c.MaxActionDelay, agent.DefaultMaxDelay)
}

func (c *SimulationConfig) duration(field string, def time.Duration) time.Duration {
	if field == "" {
		return def
	}
	// Validated already; a parse failure here falls back to the default.
	d, err := time.ParseDuration(field)
	if err != nil {
		return def
	}
	return d
}

func (c *SimulationConfig) seed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

func (c *SimulationConfig) specialChance() int {
	if c.SpecialChance == nil {
		return combat.DefaultSpecialChance
	}
	return *c.SpecialChance
}
