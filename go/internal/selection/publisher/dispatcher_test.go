package publisher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/primus/go/internal/selection/events"
)

type fakePublisher struct {
	mu   sync.Mutex
	got  []events.Event
	fail bool
}

func (f *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, event)
	if f.fail {
		return errors.New("broker unavailable")
	}
	return nil
}

func (f *fakePublisher) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.got)
}

func testEvent(t *testing.T, eventType events.EventType) events.Event {
	t.Helper()
	evt, err := events.New(eventType, uuid.New(), time.Now(), events.SessionResetPayload{Reason: "test"})
	require.NoError(t, err)
	return evt
}

func TestDispatcherPublishesInOrder(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	d := NewDispatcher(pub, 8)

	want := []events.EventType{
		events.EventTypeRoundStarted,
		events.EventTypeWinnerSelected,
		events.EventTypeSessionReset,
	}
	for _, et := range want {
		d.Notify(testEvent(t, et))
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return pub.len() == len(want) }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	for i, et := range want {
		require.Equal(t, et, pub.got[i].Type)
	}
	require.Zero(t, d.Dropped())
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(&fakePublisher{}, 1)
	for i := 0; i < 3; i++ {
		d.Notify(testEvent(t, events.EventTypeRoundStarted))
	}
	require.Equal(t, 2, d.Dropped())
}

func TestDispatcherDrainsOnShutdown(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{fail: true}
	d := NewDispatcher(pub, 4)
	d.Notify(testEvent(t, events.EventTypeRoundCancelled))
	d.Notify(testEvent(t, events.EventTypeRoundCancelled))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)

	require.Equal(t, 2, pub.len())
}

func TestSubjectFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "primus.events.winner_selected", subjectFor("primus.events", events.EventTypeWinnerSelected))
}

func TestLogPublisher(t *testing.T) {
	t.Parallel()

	require.NoError(t, LogPublisher{}.Publish(context.Background(), testEvent(t, events.EventTypeSessionReset)))
}
