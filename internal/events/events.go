package events

import "fmt"

// Kind identifies the type of a game event.
type Kind string

const (
	KindJoin     Kind = "join"
	KindMove     Kind = "move"
	KindBlocked  Kind = "blocked"
	KindAttack   Kind = "attack"
	KindSpecial  Kind = "special"
	KindDefeat   Kind = "defeat"
	KindLevelUp  Kind = "levelup"
	KindQuest    Kind = "quest"
	KindDialogue Kind = "dialogue"
	KindItem     Kind = "item"
)

// SubjectAll matches every game event subject.
const SubjectAll = "event.>"

// Subject returns the bus subject events of this kind are published on.
func (k Kind) Subject() string {
	return fmt.Sprintf("event.%s", k)
}

// Event is a single state-changing game occurrence. Message is the rendered
// human-readable log line; the remaining fields carry the structured data it
// was built from.
type Event struct {
	Kind      Kind   `json:"kind"`
	Actor     string `json:"actor"`
	Target    string `json:"target,omitempty"`
	Ability   string `json:"ability,omitempty"`
	Damage    int    `json:"damage,omitempty"`
	Remaining int    `json:"remaining,omitempty"`
	Level     int    `json:"level,omitempty"`
	Amount    int    `json:"amount,omitempty"`
	Message   string `json:"message"`
}

// Publisher delivers game events to the event bus.
type Publisher interface {
	Publish(Event) error
}

// Join records a player entering the world.
func Join(actor string, x, y int) Event {
	return Event{
		Kind:    KindJoin,
		Actor:   actor,
		Message: fmt.Sprintf("%s has joined the world at (%d,%d).", actor, x, y),
	}
}

// Move records a successful move.
func Move(actor string, fromX, fromY, toX, toY int) Event {
	return Event{
		Kind:    KindMove,
		Actor:   actor,
		Message: fmt.Sprintf("%s moves from (%d,%d) to (%d,%d).", actor, fromX, fromY, toX, toY),
	}
}

// Blocked records a move rejected at the world boundary.
func Blocked(actor string) Event {
	return Event{
		Kind:    KindBlocked,
		Actor:   actor,
		Message: fmt.Sprintf("%s tried to move out of bounds!", actor),
	}
}

// Strike records one attack. The message is the class flavor line rendered
// by the attacker; ability is empty for a basic attack.
func Strike(actor, target, ability string, damage, remaining int, message string) Event {
	kind := KindAttack
	if ability != "" {
		kind = KindSpecial
	}
	return Event{
		Kind:      kind,
		Actor:     actor,
		Target:    target,
		Ability:   ability,
		Damage:    damage,
		Remaining: remaining,
		Message:   message,
	}
}

// Defeat records a player being defeated by another.
func Defeat(victim, victor string) Event {
	return Event{
		Kind:    KindDefeat,
		Actor:   victim,
		Target:  victor,
		Message: fmt.Sprintf("%s has been defeated by %s!", victim, victor),
	}
}

// LevelUp records a level-up with the resulting stats.
func LevelUp(actor string, level, health, mana int) Event {
	return Event{
		Kind:    KindLevelUp,
		Actor:   actor,
		Level:   level,
		Message: fmt.Sprintf("%s has leveled up! Now at level %d with %d health and %d mana.", actor, level, health, mana),
	}
}

// QuestComplete records a quest completion and its experience reward.
func QuestComplete(actor, title string, reward int) Event {
	return Event{
		Kind:    KindQuest,
		Actor:   actor,
		Amount:  reward,
		Message: fmt.Sprintf("Quest '%s' completed! %s gains %d experience.", title, actor, reward),
	}
}

// Dialogue records an NPC speaking to a player.
func Dialogue(npc, actor, line string) Event {
	return Event{
		Kind:    KindDialogue,
		Actor:   npc,
		Target:  actor,
		Message: fmt.Sprintf("%s says to %s: %q", npc, actor, line),
	}
}

// ItemPickup records an item entering a player's inventory.
func ItemPickup(actor, item string) Event {
	return Event{
		Kind:    KindItem,
		Actor:   actor,
		Message: fmt.Sprintf("%s found a %s!", actor, item),
	}
}

// ItemUse records an item being consumed.
func ItemUse(actor, item string, heal int) Event {
	return Event{
		Kind:    KindItem,
		Actor:   actor,
		Amount:  heal,
		Message: fmt.Sprintf("%s uses a %s, restoring %d health.", actor, item, heal),
	}
}
