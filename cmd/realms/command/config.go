package command

import (
	"github.com/pixil98/go-errors"
)

type Config struct {
	World      WorldConfig      `json:"world"`
	Nats       NatsConfig       `json:"nats"`
	Storage    StorageConfig    `json:"storage"`
	Simulation SimulationConfig `json:"simulation"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.World.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Storage.validate())
	el.Add(c.Simulation.validate())

	return el.Err()
}
