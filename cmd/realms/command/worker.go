package command

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/pixil98/go-realms/internal/agent"
	"github.com/pixil98/go-realms/internal/combat"
	"github.com/pixil98/go-realms/internal/driver"
	"github.com/pixil98/go-realms/internal/events"
	"github.com/pixil98/go-realms/internal/game"
	"github.com/pixil98/go-realms/internal/messaging"
	"github.com/pixil98/go-realms/internal/world"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Asset stores
	classes, err := cfg.Storage.Classes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating class store: %w", err)
	}
	items, err := cfg.Storage.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	quests, err := cfg.Storage.Quests.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating quest store: %w", err)
	}
	npcs, err := cfg.Storage.Npcs.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating npc store: %w", err)
	}

	// Event bus and its stdout log sink
	bus, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating event bus: %w", err)
	}
	pub := messaging.NewEventPublisher(bus)
	sink := events.NewLogSink(bus, os.Stdout)

	dice := game.NewDice(cfg.Simulation.seed())
	engine := combat.NewEngine(pub, dice,
		combat.WithSpecialChance(cfg.Simulation.specialChance()))

	w := world.NewWorld(cfg.World.size(), pub, dice, engine,
		world.WithNPCs(slices.Collect(maps.Values(npcs.GetAll()))),
		world.WithQuests(slices.Collect(maps.Values(quests.GetAll()))),
		world.WithItems(slices.Collect(maps.Values(items.GetAll()))),
	)

	// Roster
	agents := make([]*agent.Agent, 0, len(cfg.Simulation.Players))
	for i, pc := range cfg.Simulation.Players {
		class := classes.Get(pc.Class)
		if class == nil {
			return nil, fmt.Errorf("player %d: unknown class %q", i, pc.Class)
		}
		p := game.NewPlayer(pc.Name, class, dice)
		agents = append(agents, agent.New(p, w, dice,
			cfg.Simulation.minDelay(), cfg.Simulation.maxDelay()))
	}

	supervisor := agent.NewSupervisor(w, bus, sink, agents, cfg.Simulation.runDuration(), os.Stdout)

	tickLength, err := cfg.World.tickLength()
	if err != nil {
		return nil, fmt.Errorf("parsing regen_interval: %w", err)
	}
	regen := driver.NewDriver([]driver.Manager{w}, driver.WithTickLength(tickLength))

	return service.WorkerList{
		"nats":       bus,
		"event-log":  sink,
		"regen":      regen,
		"simulation": supervisor,
	}, nil
}
