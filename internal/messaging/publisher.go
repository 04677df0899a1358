package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-realms/internal/events"
)

// EventPublisher publishes game events to per-kind bus subjects.
type EventPublisher struct {
	server *NatsServer
}

// NewEventPublisher wraps a NatsServer for game event delivery.
func NewEventPublisher(server *NatsServer) *EventPublisher {
	return &EventPublisher{server: server}
}

func (p *EventPublisher) Publish(ev events.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}
	return p.server.Publish(ev.Kind.Subject(), data)
}
