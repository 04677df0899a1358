package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Item defines an inventory item loaded from asset files. Items are value
// objects; picking one up copies the definition reference into an inventory.
type Item struct {
	// Name is the item's display name
	Name string `json:"name"`

	// Effect is the human-readable effect description
	Effect string `json:"effect"`

	// Heal is the health restored when the item is consumed, if any
	Heal int `json:"heal,omitempty"`
}

func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if i.Effect == "" {
		el.Add(fmt.Errorf("effect is required"))
	}
	if i.Heal < 0 {
		el.Add(fmt.Errorf("heal must not be negative"))
	}

	return el.Err()
}

// Inventory is an unordered multiset of items keyed by name. It carries no
// lock of its own; the owning player's lock guards all access.
type Inventory struct {
	counts map[string]int
	items  map[string]*Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		counts: make(map[string]int),
		items:  make(map[string]*Item),
	}
}

// Add adds one of the given item to the inventory.
func (inv *Inventory) Add(item *Item) {
	inv.counts[item.Name]++
	inv.items[item.Name] = item
}

// Use consumes one of the named item and returns its definition.
func (inv *Inventory) Use(name string) (*Item, error) {
	if inv.counts[name] <= 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrItemNotFound)
	}
	inv.counts[name]--
	return inv.items[name], nil
}

// Count returns how many of the named item the inventory holds.
func (inv *Inventory) Count(name string) int {
	return inv.counts[name]
}

// Size returns the total number of items across all names.
func (inv *Inventory) Size() int {
	total := 0
	for _, n := range inv.counts {
		total += n
	}
	return total
}
