package world

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/pixil98/go-realms/internal/combat"
	"github.com/pixil98/go-realms/internal/events"
	"github.com/pixil98/go-realms/internal/game"
)

const (
	// DefaultSize is the grid dimension when none is configured.
	DefaultSize = 10

	// Per-tick out-of-combat recovery.
	RegenHealth = 1
	RegenMana   = 5
)

// World mediates all cross-player interaction: movement bounds, combat,
// quests, and item pickups. The roster is guarded by mu; per-player state is
// guarded by each player's own lock. The grid spans [0,size) on both axes.
type World struct {
	size   int
	pub    events.Publisher
	dice   *game.Dice
	engine *combat.Engine

	npcs   []*game.NPC
	quests []*game.Quest
	items  []*game.Item

	mu      sync.RWMutex
	players map[string]*game.Player
}

type WorldOpt func(*World)

func WithNPCs(npcs []*game.NPC) WorldOpt {
	return func(w *World) {
		w.npcs = npcs
	}
}

func WithQuests(quests []*game.Quest) WorldOpt {
	return func(w *World) {
		w.quests = quests
	}
}

func WithItems(items []*game.Item) WorldOpt {
	return func(w *World) {
		w.items = items
	}
}

// NewWorld creates an empty world of the given grid size.
func NewWorld(size int, pub events.Publisher, dice *game.Dice, engine *combat.Engine, opts ...WorldOpt) *World {
	if size <= 0 {
		size = DefaultSize
	}

	w := &World{
		size:    size,
		pub:     pub,
		dice:    dice,
		engine:  engine,
		players: make(map[string]*game.Player),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Size returns the grid dimension.
func (w *World) Size() int {
	return w.size
}

// AddPlayer registers a player at the default location. Registration is
// roster-lock guarded so concurrent joins cannot collide.
func (w *World) AddPlayer(p *game.Player) error {
	w.mu.Lock()
	if _, exists := w.players[p.Name()]; exists {
		w.mu.Unlock()
		return fmt.Errorf("%s: %w", p.Name(), game.ErrPlayerExists)
	}
	w.players[p.Name()] = p
	w.mu.Unlock()

	x, y := p.Location()
	w.publish(events.Join(p.Name(), x, y))
	return nil
}

// Players returns a name-ordered snapshot of the roster.
func (w *World) Players() []*game.Player {
	w.mu.RLock()
	defer w.mu.RUnlock()

	players := make([]*game.Player, 0, len(w.players))
	for _, p := range w.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name() < players[j].Name() })
	return players
}

// Opponent returns a random player other than the named one, live or dead.
// Returns nil if no other player is registered.
func (w *World) Opponent(name string) *game.Player {
	w.mu.RLock()
	defer w.mu.RUnlock()

	others := make([]*game.Player, 0, len(w.players))
	for n, p := range w.players {
		if n != name {
			others = append(others, p)
		}
	}
	if len(others) == 0 {
		return nil
	}
	return others[w.dice.IntN(len(others))]
}

// MovePlayer applies a movement delta if the target cell is inside the grid.
// An out-of-bounds target returns ErrOutOfBounds and mutates nothing. Only a
// player's own agent moves it, so the bounds check cannot go stale between
// validation and the locked mutation.
func (w *World) MovePlayer(p *game.Player, dx, dy int) error {
	x, y := p.Location()
	nx, ny := x+dx, y+dy

	if nx < 0 || nx >= w.size || ny < 0 || ny >= w.size {
		w.publish(events.Blocked(p.Name()))
		return fmt.Errorf("%s moving to (%d,%d): %w", p.Name(), nx, ny, game.ErrOutOfBounds)
	}

	nx, ny = p.Move(dx, dy)
	w.publish(events.Move(p.Name(), x, y, nx, ny))
	return nil
}

// StartCombat runs a blocking duel between two players and returns the
// winner, or nil if the fight ended without one.
func (w *World) StartCombat(a, b *game.Player) *game.Player {
	return w.engine.Duel(a, b)
}

// AcceptQuest hands the player a random quest and immediately grants its
// reward; there is no completion gating in this minimal model. A random NPC
// delivers the quest flavor line.
func (w *World) AcceptQuest(p *game.Player) {
	if len(w.quests) == 0 {
		return
	}
	quest := w.quests[w.dice.IntN(len(w.quests))]

	if len(w.npcs) > 0 {
		npc := w.npcs[w.dice.IntN(len(w.npcs))]
		w.publish(events.Dialogue(npc.Name, p.Name(), npc.Interact()))
	}

	qi := game.NewQuestInstance(quest)
	reward := qi.Complete()
	w.publish(events.QuestComplete(p.Name(), quest.Title, reward))

	gain := p.GainExperience(reward)
	if gain.LeveledUp {
		w.publish(events.LevelUp(p.Name(), gain.Level, gain.Health, gain.Mana))
	}
}

// PickupItem adds a random item to the player's inventory. A wounded player
// drinks a healing item on the spot.
func (w *World) PickupItem(p *game.Player) {
	if len(w.items) == 0 {
		return
	}
	item := w.items[w.dice.IntN(len(w.items))]

	p.AddItem(item)
	w.publish(events.ItemPickup(p.Name(), item.Name))

	if item.Heal > 0 && p.Health() < p.MaxHealth()/2 {
		used, err := p.UseItem(item.Name)
		if err != nil {
			return
		}
		w.publish(events.ItemUse(p.Name(), used.Name, used.Heal))
	}
}

// Tick regenerates living, out-of-combat players. Called by the driver.
func (w *World) Tick(ctx context.Context) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, p := range w.players {
		p.Regenerate(RegenHealth, RegenMana)
	}
	return nil
}

func (w *World) publish(ev events.Event) {
	if err := w.pub.Publish(ev); err != nil {
		slog.Warn("publishing world event", "kind", ev.Kind, "error", err)
	}
}
