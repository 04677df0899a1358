package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Class defines a playable class loaded from asset files. Damage ranges and
// mana costs are data, not code, so the class roster can grow without
// touching the combat model.
type Class struct {
	// Name is the class's display name
	Name string `json:"name"`

	// Health and Mana are the starting (and regeneration ceiling) values
	Health int `json:"health"`
	Mana   int `json:"mana"`

	// BasicDamage is the damage range of an ordinary attack
	BasicDamage DamageRange `json:"basic_damage"`

	// AttackMessage is the template rendered for each ordinary attack
	AttackMessage string `json:"attack_message"`

	// Special is the class's mana-gated ability
	Special Special `json:"special"`
}

// Special is a class ability that consumes mana for a larger damage range.
type Special struct {
	Name    string      `json:"name"`
	Cost    int         `json:"cost"`
	Damage  DamageRange `json:"damage"`
	Message string      `json:"message"`
}

// DamageRange is an inclusive damage interval.
type DamageRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Roll returns a uniform damage value within the range.
func (r DamageRange) Roll(d *Dice) int {
	return d.Range(r.Min, r.Max)
}

func (r DamageRange) validate(name string) error {
	el := errors.NewErrorList()

	if r.Min < 1 {
		el.Add(fmt.Errorf("%s: min must be at least 1", name))
	}
	if r.Max < r.Min {
		el.Add(fmt.Errorf("%s: max must be at least min", name))
	}

	return el.Err()
}

func (c *Class) Validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if c.Health < 1 {
		el.Add(fmt.Errorf("health must be positive"))
	}
	if c.Mana < 0 {
		el.Add(fmt.Errorf("mana must not be negative"))
	}

	el.Add(c.BasicDamage.validate("basic_damage"))

	if err := checkTemplate(c.AttackMessage); err != nil {
		el.Add(fmt.Errorf("attack_message: %w", err))
	}

	if c.Special.Name == "" {
		el.Add(fmt.Errorf("special: name is required"))
	}
	if c.Special.Cost < 1 {
		el.Add(fmt.Errorf("special: cost must be positive"))
	}
	el.Add(c.Special.Damage.validate("special damage"))
	if err := checkTemplate(c.Special.Message); err != nil {
		el.Add(fmt.Errorf("special message: %w", err))
	}

	return el.Err()
}
