package agent

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pixil98/go-realms/internal/game"
)

const DefaultRunDuration = 20 * time.Second

// Roster is the world-side registration surface the supervisor needs.
type Roster interface {
	AddPlayer(p *game.Player) error
	Players() []*game.Player
}

// Bus drains the event stream before the final summary.
type Bus interface {
	Flush() error
}

// Gate blocks until the event log is observing. Nothing may publish before
// it opens or the bus would drop the event unseen.
type Gate interface {
	WaitReady(ctx context.Context) error
}

// Supervisor owns the agent lifecycle: it registers the roster, spawns one
// agent goroutine per player, joins them once the run duration elapses, then
// writes the final stats summary.
type Supervisor struct {
	world  Roster
	bus    Bus
	log    Gate
	agents []*Agent
	runFor time.Duration
	out    io.Writer
}

func NewSupervisor(world Roster, bus Bus, log Gate, agents []*Agent, runFor time.Duration, out io.Writer) *Supervisor {
	if runFor <= 0 {
		runFor = DefaultRunDuration
	}
	return &Supervisor{
		world:  world,
		bus:    bus,
		log:    log,
		agents: agents,
		runFor: runFor,
		out:    out,
	}
}

// Start runs the simulation and returns once it completes, which ends the
// application. Registration waits for the event log subscription so the
// join events open the log instead of vanishing.
func (s *Supervisor) Start(ctx context.Context) error {
	if err := s.log.WaitReady(ctx); err != nil {
		return fmt.Errorf("waiting for event log: %w", err)
	}

	for _, a := range s.agents {
		if err := s.world.AddPlayer(a.player); err != nil {
			return fmt.Errorf("adding player %q: %w", a.player.Name(), err)
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, s.runFor)
	defer cancel()

	slog.InfoContext(ctx, "simulation started", "agents", len(s.agents), "duration", s.runFor)

	g, gctx := errgroup.WithContext(runCtx)
	for _, a := range s.agents {
		g.Go(func() error { return a.Run(gctx) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("running agents: %w", err)
	}

	// Let the event log drain before the summary.
	if err := s.bus.Flush(); err != nil {
		slog.WarnContext(ctx, "flushing event bus", "error", err)
	}

	s.summarize()
	return nil
}

// summarize writes the final stats dump for every registered player.
func (s *Supervisor) summarize() {
	fmt.Fprintf(s.out, "\nGame over. Final stats:\n")
	for _, p := range s.world.Players() {
		st := p.Stats()
		fmt.Fprintf(s.out, "%s the %s: level %d, %d hp, %d mp, location (%d,%d), %d items\n",
			st.Name, st.Class, st.Level, st.Health, st.Mana, st.X, st.Y, st.Items)
	}
}
