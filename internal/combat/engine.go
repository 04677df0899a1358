package combat

import (
	"log/slog"

	"github.com/pixil98/go-realms/internal/events"
	"github.com/pixil98/go-realms/internal/game"
)

// DefaultSpecialChance is the percent chance a strike attempts the class
// special ability instead of a basic attack.
const DefaultSpecialChance = 25

// Engine runs blocking duels between two players. A duel holds the calling
// agent's goroutine for the full fight; strikes acquire both players' locks
// in name order, so concurrent duels over the same pair interleave safely.
type Engine struct {
	pub           events.Publisher
	dice          *game.Dice
	specialChance int
}

type EngineOpt func(*Engine)

// WithSpecialChance sets the percent chance of attempting a special ability.
func WithSpecialChance(pct int) EngineOpt {
	return func(e *Engine) {
		e.specialChance = pct
	}
}

func NewEngine(pub events.Publisher, dice *game.Dice, opts ...EngineOpt) *Engine {
	e := &Engine{
		pub:           pub,
		dice:          dice,
		specialChance: DefaultSpecialChance,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Duel alternates strikes between a and b until one is defeated, then awards
// the winner CombatExpReward experience and returns the winner. If either
// player is already defeated when a round begins (including at entry, or by
// a concurrent duel), the fight ends with no winner and nil is returned.
//
// Every class damage range has a positive floor, so a duel is bounded by
// (a.health + b.health) / minDamage rounds.
func (e *Engine) Duel(a, b *game.Player) *game.Player {
	a.EnterCombat()
	b.EnterCombat()
	defer a.ExitCombat()
	defer b.ExitCombat()

	for {
		if a.Defeated() || b.Defeated() {
			return nil
		}

		// a strikes first, so b is always checked first. Both reaching zero
		// in the same round is impossible.
		if e.strike(a, b) {
			e.win(a, b)
			return a
		}
		if e.strike(b, a) {
			e.win(b, a)
			return b
		}
	}
}

// strike performs one attack, preferring the special ability when the dice
// and mana allow. Reports whether the target was defeated.
func (e *Engine) strike(attacker, target *game.Player) bool {
	var res game.StrikeResult

	if e.specialChance > 0 && e.dice.IntN(100) < e.specialChance {
		r, err := attacker.SpecialAbility(target)
		if err != nil {
			// Not enough mana, fall back to a basic attack.
			res = attacker.Attack(target)
		} else {
			res = r
		}
	} else {
		res = attacker.Attack(target)
	}

	e.publish(events.Strike(attacker.Name(), target.Name(), res.Ability, res.Damage, res.TargetHealth, res.Message))
	return res.Defeated
}

func (e *Engine) win(winner, loser *game.Player) {
	e.publish(events.Defeat(loser.Name(), winner.Name()))

	gain := winner.GainExperience(game.CombatExpReward)
	if gain.LeveledUp {
		e.publish(events.LevelUp(winner.Name(), gain.Level, gain.Health, gain.Mana))
	}
}

func (e *Engine) publish(ev events.Event) {
	if err := e.pub.Publish(ev); err != nil {
		slog.Warn("publishing combat event", "kind", ev.Kind, "error", err)
	}
}
