package agent

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-realms/internal/game"
)

type stubRoster struct {
	players []*game.Player
	addErr  error
}

func (r *stubRoster) AddPlayer(p *game.Player) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.players = append(r.players, p)
	return nil
}

func (r *stubRoster) Players() []*game.Player { return r.players }

type stubSupBus struct {
	flushed bool
}

func (b *stubSupBus) Flush() error { b.flushed = true; return nil }

type stubGate struct {
	readyErr error
	waited   bool
}

func (g *stubGate) WaitReady(ctx context.Context) error {
	g.waited = true
	return g.readyErr
}

func TestSupervisorRunsToSummary(t *testing.T) {
	dice := game.NewDice(17)
	world := &stubMediator{}
	roster := &stubRoster{}
	bus := &stubSupBus{}
	gate := &stubGate{}
	var out bytes.Buffer

	thor := game.NewPlayer("Thor", testWarrior(), dice)
	merlin := game.NewPlayer("Merlin", testWarrior(), dice)
	agents := []*Agent{
		New(thor, world, dice, time.Millisecond, 2*time.Millisecond),
		New(merlin, world, dice, time.Millisecond, 2*time.Millisecond),
	}

	s := NewSupervisor(roster, bus, gate, agents, 100*time.Millisecond, &out)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "waited for log", gate.waited, true)
	testutil.AssertEqual(t, "registered", len(roster.players), 2)
	testutil.AssertEqual(t, "flushed", bus.flushed, true)

	summary := out.String()
	if !strings.Contains(summary, "Game over. Final stats:") {
		t.Errorf("summary missing header: %q", summary)
	}
	if !strings.Contains(summary, "Thor the Warrior: level 1") {
		t.Errorf("summary missing Thor: %q", summary)
	}
	if !strings.Contains(summary, "Merlin the Warrior: level 1") {
		t.Errorf("summary missing Merlin: %q", summary)
	}
}

func TestSupervisorAddPlayerError(t *testing.T) {
	dice := game.NewDice(17)
	world := &stubMediator{}
	roster := &stubRoster{addErr: game.ErrPlayerExists}
	var out bytes.Buffer

	agents := []*Agent{
		New(game.NewPlayer("Thor", testWarrior(), dice), world, dice, time.Millisecond, 2*time.Millisecond),
	}

	s := NewSupervisor(roster, &stubSupBus{}, &stubGate{}, agents, 100*time.Millisecond, &out)
	err := s.Start(context.Background())
	if !errors.Is(err, game.ErrPlayerExists) {
		t.Fatalf("expected ErrPlayerExists, got %v", err)
	}
	testutil.AssertEqual(t, "no summary", out.Len(), 0)
}

// Nothing may register (and so publish a join) before the event log is
// observing; a gate failure aborts the run before any player exists.
func TestSupervisorLogNotReady(t *testing.T) {
	roster := &stubRoster{}
	gate := &stubGate{readyErr: context.DeadlineExceeded}
	var out bytes.Buffer

	s := NewSupervisor(roster, &stubSupBus{}, gate, nil, 100*time.Millisecond, &out)
	err := s.Start(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	testutil.AssertEqual(t, "no registration", len(roster.players), 0)
}
