package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// NPC defines a non-player character loaded from asset files. NPCs are
// static dialogue responders; they hand out quest flavor but take no turns.
type NPC struct {
	// Name is the NPC's display name
	Name string `json:"name"`

	// Dialogue is the line spoken when a player interacts
	Dialogue string `json:"dialogue"`
}

func (n *NPC) Validate() error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if n.Dialogue == "" {
		el.Add(fmt.Errorf("dialogue is required"))
	}

	return el.Err()
}

// Interact returns the NPC's dialogue line.
func (n *NPC) Interact() string {
	return n.Dialogue
}
