package service

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Egor213/LogStream/internal/domain"
)

// EventPublisher is what the dispatcher needs from the broker.
type EventPublisher interface {
	SendMessage(ctx context.Context, key, value []byte) error
}

// Dispatcher decouples aggregates from delivery: services enqueue domain
// events only after their transaction commits, and the dispatcher drains the
// channel in its own goroutine. Delivery is best-effort.
type Dispatcher struct {
	publisher EventPublisher
	ch        chan domain.Event
}

const defaultEventBuffer = 1024

func NewDispatcher(publisher EventPublisher) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		ch:        make(chan domain.Event, defaultEventBuffer),
	}
}

// Enqueue never blocks a committing request: when the buffer is full the
// event is dropped and logged.
func (d *Dispatcher) Enqueue(events ...domain.Event) {
	for _, event := range events {
		select {
		case d.ch <- event:
		default:
			log.WithField("event", event.Name()).Warn("Event buffer full, dropping event")
		}
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.ch:
			d.deliver(ctx, event)
		}
	}
}

type eventEnvelope struct {
	Name       string       `json:"name"`
	OccurredAt time.Time    `json:"occurred_at"`
	Event      domain.Event `json:"event"`
}

func (d *Dispatcher) deliver(ctx context.Context, event domain.Event) {
	payload, err := json.Marshal(eventEnvelope{
		Name:       event.Name(),
		OccurredAt: event.OccurredAt(),
		Event:      event,
	})
	if err != nil {
		log.WithField("event", event.Name()).Errorf("Failed to marshal event: %v", err)
		return
	}

	if err := d.publisher.SendMessage(ctx, []byte(event.Key()), payload); err != nil {
		log.WithField("event", event.Name()).Errorf("Failed to publish event: %v", err)
	}
}
