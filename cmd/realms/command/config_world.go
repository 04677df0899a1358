package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-realms/internal/driver"
	"github.com/pixil98/go-realms/internal/world"
)

type WorldConfig struct {
	// Size is the grid dimension; the world spans [0,size) on both axes.
	Size int `json:"size"`

	// RegenInterval is the regeneration tick length.
	RegenInterval string `json:"regen_interval,omitempty"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.Size < 0 {
		el.Add(fmt.Errorf("size must not be negative"))
	} else if c.Size == 1 {
		el.Add(fmt.Errorf("size must be at least 2"))
	}

	if c.RegenInterval != "" {
		d, err := time.ParseDuration(c.RegenInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing regen_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("regen_interval must be at least 1 second"))
		}
	}

	return el.Err()
}

func (c *WorldConfig) size() int {
	if c.Size == 0 {
		return world.DefaultSize
	}
	return c.Size
}

func (c *WorldConfig) tickLength() (time.Duration, error) {
	if c.RegenInterval == "" {
		return driver.DefaultTickLength, nil
	}
	return time.ParseDuration(c.RegenInterval)
}
