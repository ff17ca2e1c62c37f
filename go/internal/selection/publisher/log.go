package publisher

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/primus/go/internal/selection/events"
)

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, event events.Event) error {
	log.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", string(event.Type)).
		Str("session_id", event.SessionID.String()).
		RawJSON("payload", event.Payload).
		Msg("selection event")
	return nil
}
