package game

import (
	"fmt"
	"sync"
)

// Player is a player character. All mutable state is guarded by mu. Methods
// that touch two players (Attack, SpecialAbility) acquire both locks in
// lexicographic name order, so concurrent combat involving the same pair can
// only interleave at strike granularity, never corrupt state.
type Player struct {
	name  string
	class *Class
	dice  *Dice

	mu         sync.Mutex
	health     int
	mana       int
	maxHealth  int
	maxMana    int
	x, y       int
	level      int
	experience int
	inventory  *Inventory
	inCombat   int
}

// NewPlayer creates a level-1 player of the given class at (0,0).
func NewPlayer(name string, class *Class, dice *Dice) *Player {
	return &Player{
		name:      name,
		class:     class,
		dice:      dice,
		health:    class.Health,
		mana:      class.Mana,
		maxHealth: class.Health,
		maxMana:   class.Mana,
		level:     1,
		inventory: NewInventory(),
	}
}

// StrikeResult reports one attack's outcome.
type StrikeResult struct {
	// Ability is the special ability used, or empty for a basic attack
	Ability string

	// Message is the rendered class flavor line
	Message string

	Damage       int
	TargetHealth int
	Defeated     bool
}

// Attack rolls basic damage and applies it to target. It always succeeds.
func (p *Player) Attack(target *Player) StrikeResult {
	lockPair(p, target)
	defer unlockPair(p, target)

	dmg := p.class.BasicDamage.Roll(p.dice)
	return p.strike(target, "", p.class.AttackMessage, dmg)
}

// SpecialAbility spends the class's mana cost for a larger damage roll. If
// mana is insufficient it returns ErrInsufficientMana and changes nothing.
func (p *Player) SpecialAbility(target *Player) (StrikeResult, error) {
	lockPair(p, target)
	defer unlockPair(p, target)

	cost := p.class.Special.Cost
	if p.mana < cost {
		return StrikeResult{}, fmt.Errorf("%s using %s: %w", p.name, p.class.Special.Name, ErrInsufficientMana)
	}
	p.mana -= cost

	dmg := p.class.Special.Damage.Roll(p.dice)
	return p.strike(target, p.class.Special.Name, p.class.Special.Message, dmg), nil
}

// strike applies damage to target and renders the flavor message. Both
// players' locks must be held.
func (p *Player) strike(target *Player, ability, tmpl string, dmg int) StrikeResult {
	target.health -= dmg

	msg, err := ExpandTemplate(tmpl, StrikeData{
		Actor:   p.name,
		Target:  target.name,
		Ability: ability,
		Damage:  dmg,
	})
	if err != nil {
		// Templates are validated at load; fall back rather than drop the event.
		msg = fmt.Sprintf("%s hits %s for %d damage!", p.name, target.name, dmg)
	}

	return StrikeResult{
		Ability:      ability,
		Message:      msg,
		Damage:       dmg,
		TargetHealth: target.health,
		Defeated:     target.health <= 0,
	}
}

// TakeDamage subtracts from health. Health at or below zero means defeated.
func (p *Player) TakeDamage(amount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.health -= amount
}

// Heal adds to health. There is no maximum-health cap on direct healing.
func (p *Player) Heal(amount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.health += amount
}

// Move applies a location delta. Bounds are validated by the world before
// this is invoked; the lock serializes the mutation against concurrent reads.
func (p *Player) Move(dx, dy int) (x, y int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.x += dx
	p.y += dy
	return p.x, p.y
}

// GainExperience adds experience and handles the level-up threshold. The
// threshold check, reset, and stat bonuses happen atomically under the lock.
func (p *Player) GainExperience(exp int) ExperienceGain {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.experience += exp

	gain := ExperienceGain{Amount: exp}
	if p.experience >= p.level*ExpPerLevel {
		p.level++
		p.health += LevelHealthBonus
		p.maxHealth += LevelHealthBonus
		p.mana += LevelManaBonus
		p.maxMana += LevelManaBonus
		p.experience = 0
		gain.LeveledUp = true
	}

	gain.Experience = p.experience
	gain.Level = p.level
	gain.Health = p.health
	gain.Mana = p.mana
	return gain
}

// AddItem adds an item to the player's inventory.
func (p *Player) AddItem(item *Item) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inventory.Add(item)
}

// UseItem consumes one of the named item and applies its heal effect.
func (p *Player) UseItem(name string) (*Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	item, err := p.inventory.Use(name)
	if err != nil {
		return nil, err
	}
	p.health += item.Heal
	return item, nil
}

// Regenerate restores health and mana toward their ceilings for a living,
// out-of-combat player. Defeated players do not recover.
func (p *Player) Regenerate(health, mana int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.health <= 0 || p.inCombat > 0 {
		return
	}
	if p.health < p.maxHealth {
		p.health = min(p.health+health, p.maxHealth)
	}
	if p.mana < p.maxMana {
		p.mana = min(p.mana+mana, p.maxMana)
	}
}

// EnterCombat suspends regeneration for the duration of a duel. Duels may
// overlap on one player, so combat participation is a count; regeneration
// resumes only when the last duel exits.
func (p *Player) EnterCombat() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inCombat++
}

// ExitCombat releases one duel's hold on regeneration.
func (p *Player) ExitCombat() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inCombat > 0 {
		p.inCombat--
	}
}

func (p *Player) Name() string  { return p.name }
func (p *Player) Class() *Class { return p.class }

func (p *Player) Health() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.health
}

func (p *Player) Mana() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mana
}

func (p *Player) MaxHealth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxHealth
}

func (p *Player) Location() (x, y int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.x, p.y
}

func (p *Player) Level() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *Player) Experience() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.experience
}

// Defeated reports whether the player's health has reached zero. There is no
// transition back; a defeated player's agent loop terminates.
func (p *Player) Defeated() bool {
	return p.Health() <= 0
}

// ItemCount returns how many of the named item the player carries.
func (p *Player) ItemCount(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inventory.Count(name)
}

// Stats is a point-in-time snapshot of a player's mutable state.
type Stats struct {
	Name       string
	Class      string
	Health     int
	Mana       int
	X, Y       int
	Level      int
	Experience int
	Items      int
}

// Stats returns a consistent snapshot for the final summary.
func (p *Player) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Name:       p.name,
		Class:      p.class.Name,
		Health:     p.health,
		Mana:       p.mana,
		X:          p.x,
		Y:          p.y,
		Level:      p.level,
		Experience: p.experience,
		Items:      p.inventory.Size(),
	}
}

// lockPair locks both players in lexicographic name order so every
// cross-player mutation agrees on acquisition order.
func lockPair(a, b *Player) {
	if a == b {
		a.mu.Lock()
		return
	}
	if a.name < b.name {
		a.mu.Lock()
		b.mu.Lock()
	} else {
		b.mu.Lock()
		a.mu.Lock()
	}
}

func unlockPair(a, b *Player) {
	if a == b {
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()
	b.mu.Unlock()
}
