package agent

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pixil98/go-realms/internal/game"
)

const (
	DefaultMinDelay = time.Second
	DefaultMaxDelay = 3 * time.Second
)

// Action is one of the agent's possible behaviors.
type Action int

const (
	ActionMove Action = iota
	ActionCombat
	ActionQuest
	ActionItem

	actionCount
)

// Mediator is the subset of world operations an agent invokes. All
// cross-player state changes go through it.
type Mediator interface {
	MovePlayer(p *game.Player, dx, dy int) error
	StartCombat(a, b *game.Player) *game.Player
	AcceptQuest(p *game.Player)
	PickupItem(p *game.Player)
	Opponent(name string) *game.Player
}

// Agent drives one player's autonomous behavior loop on its own goroutine:
// sleep a random interval, perform a random action, repeat until the player
// is defeated or the run context ends.
type Agent struct {
	player   *game.Player
	world    Mediator
	dice     *game.Dice
	minDelay time.Duration
	maxDelay time.Duration
}

func New(player *game.Player, world Mediator, dice *game.Dice, minDelay, maxDelay time.Duration) *Agent {
	if minDelay <= 0 {
		minDelay = DefaultMinDelay
	}
	if maxDelay < minDelay {
		maxDelay = DefaultMaxDelay
	}
	return &Agent{
		player:   player,
		world:    world,
		dice:     dice,
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

// Run loops until the player is defeated or ctx ends. Action failures are
// logged and the loop continues; defeat is the only terminal condition.
func (a *Agent) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "agent started", "player", a.player.Name())

	for !a.player.Defeated() {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(a.dice.Duration(a.minDelay, a.maxDelay)):
		}

		if err := a.act(); err != nil {
			slog.WarnContext(ctx, "agent action", "player", a.player.Name(), "error", err)
		}
	}

	slog.InfoContext(ctx, "agent finished", "player", a.player.Name())
	return nil
}

// act picks one action uniformly at random and performs it.
func (a *Agent) act() error {
	switch Action(a.dice.IntN(int(actionCount))) {
	case ActionMove:
		err := a.world.MovePlayer(a.player, a.dice.Delta(), a.dice.Delta())
		if errors.Is(err, game.ErrOutOfBounds) {
			// The world already logged the blocked move; self-recovering.
			return nil
		}
		return err

	case ActionCombat:
		opponent := a.world.Opponent(a.player.Name())
		if opponent == nil {
			return nil
		}
		// Blocks this agent until the duel resolves.
		a.world.StartCombat(a.player, opponent)
		return nil

	case ActionQuest:
		a.world.AcceptQuest(a.player)
		return nil

	case ActionItem:
		a.world.PickupItem(a.player)
		return nil

	default:
		return game.ErrInvalidAction
	}
}
