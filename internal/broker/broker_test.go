package broker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SPXcz/meesign-server/internal/task"
)

type staticSource struct {
	tasks []*task.Task
}

func (s *staticSource) List(device []byte) []*task.Task {
	var out []*task.Task
	for _, t := range s.tasks {
		if t.IsParticipant(device) {
			out = append(out, t)
		}
	}
	return out
}

func testTask(id string, version uint64, participants ...[]byte) *task.Task {
	return &task.Task{
		ID:           []byte(id),
		Version:      version,
		Participants: participants,
	}
}

func receiveOne(t *testing.T, ch <-chan *task.Task) *task.Task {
	t.Helper()
	select {
	case got, ok := <-ch:
		require.True(t, ok, "channel closed early")
		return got
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for an update")
		return nil
	}
}

func TestSubscribeDeliversSnapshotThenLive(t *testing.T) {
	device := []byte("d1")
	src := &staticSource{tasks: []*task.Task{
		testTask("t1", 3, device),
		testTask("other", 1, []byte("d2")),
	}}
	b := NewBroker(src)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := b.Subscribe(ctx, device)

	got := receiveOne(t, ch)
	assert.Equal(t, []byte("t1"), got.ID, "snapshot excludes other devices' tasks")

	b.Publish(testTask("t1", 4, device))
	got = receiveOne(t, ch)
	assert.Equal(t, uint64(4), got.Version)
}

func TestPublishFiltersByParticipation(t *testing.T) {
	b := NewBroker(&staticSource{})
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := b.Subscribe(ctx, []byte("d1"))

	b.Publish(testTask("t1", 1, []byte("d2")))
	b.Publish(testTask("t2", 1, []byte("d1")))

	got := receiveOne(t, ch)
	assert.Equal(t, []byte("t2"), got.ID)
}

func TestDeliveryIsPerTaskMonotonic(t *testing.T) {
	device := []byte("d1")
	b := NewBroker(&staticSource{})
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := b.Subscribe(ctx, device)

	b.Publish(testTask("t1", 2, device))
	b.Publish(testTask("t1", 2, device)) // repeat version, dropped
	b.Publish(testTask("t1", 1, device)) // regression, dropped
	b.Publish(testTask("t1", 3, device))

	first := receiveOne(t, ch)
	second := receiveOne(t, ch)
	assert.Equal(t, uint64(2), first.Version)
	assert.Equal(t, uint64(3), second.Version)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra delivery: version %d", extra.Version)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSlowSubscriberLosesOldest(t *testing.T) {
	device := []byte("d1")
	b := NewBroker(&staticSource{})
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := b.Subscribe(ctx, device)

	// Overfill the buffer by one without draining.
	for i := 0; i <= subscriberBufferCap; i++ {
		b.Publish(testTask(fmt.Sprintf("t%04d", i), 1, device))
	}

	first := receiveOne(t, ch)
	assert.Equal(t, []byte("t0001"), first.ID, "oldest update should have been dropped")
	assert.Len(t, ch, subscriberBufferCap-1)
}

func TestContextCancelClosesChannel(t *testing.T) {
	b := NewBroker(&staticSource{})
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx, []byte("d1"))
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	// Publishing after detach must not panic on the closed channel.
	b.Publish(testTask("t1", 1, []byte("d1")))
}

func TestCloseDropsSubscribers(t *testing.T) {
	b := NewBroker(&staticSource{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := b.Subscribe(ctx, []byte("d1"))

	b.Close()
	_, ok := <-ch
	assert.False(t, ok)

	// Subscriptions after shutdown come back already closed.
	late := b.Subscribe(ctx, []byte("d2"))
	_, ok = <-late
	assert.False(t, ok)
	b.Publish(testTask("t1", 1, []byte("d1")))
}
