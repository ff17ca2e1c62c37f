package publisher

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/primus/go/internal/selection/events"
)

const (
	defaultQueueSize      = 64
	defaultPublishTimeout = 5 * time.Second
)

// Dispatcher decouples the coordinator from slow publishers. Notify never
// blocks; events are dropped with a warning when the queue is full.
type Dispatcher struct {
	publisher EventPublisher
	queue     chan events.Event
	timeout   time.Duration

	mu      sync.Mutex
	dropped int
}

func NewDispatcher(p EventPublisher, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Dispatcher{
		publisher: p,
		queue:     make(chan events.Event, queueSize),
		timeout:   defaultPublishTimeout,
	}
}

func (d *Dispatcher) Notify(evt events.Event) {
	select {
	case d.queue <- evt:
	default:
		d.mu.Lock()
		d.dropped++
		d.mu.Unlock()
		log.Warn().
			Str("event_id", evt.ID.String()).
			Str("event_type", string(evt.Type)).
			Msg("event queue full, dropping event")
	}
}

// Dropped is the number of events discarded because the queue was full.
func (d *Dispatcher) Dropped() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

// Start publishes queued events until ctx is cancelled, then drains what is
// already queued.
func (d *Dispatcher) Start(ctx context.Context) {
	log.Info().Msg("event dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.drain()
			log.Info().Msg("event dispatcher shutting down")
			return
		case evt := <-d.queue:
			d.publish(context.Background(), evt)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case evt := <-d.queue:
			d.publish(context.Background(), evt)
		default:
			return
		}
	}
}

func (d *Dispatcher) publish(parent context.Context, evt events.Event) {
	ctx, cancel := context.WithTimeout(parent, d.timeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, evt); err != nil {
		log.Error().
			Err(err).
			Str("event_id", evt.ID.String()).
			Str("event_type", string(evt.Type)).
			Msg("failed to publish event")
	}
}
