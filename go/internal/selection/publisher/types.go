package publisher

import (
	"context"

	"github.com/mcdev12/primus/go/internal/selection/events"
)

// EventPublisher delivers a selection event to an external sink.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
