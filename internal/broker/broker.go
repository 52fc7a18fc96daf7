package broker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/SPXcz/meesign-server/internal/task"
)

const subscriberBufferCap = 128

// Source supplies the catch-up snapshot for a new subscriber: every task the
// device participates in that it has not acknowledged yet.
type Source interface {
	List(device []byte) []*task.Task
}

// Broker fans committed task transitions out to device subscribers. Delivery
// is per-task monotonic: a subscriber never receives an older version of a
// task after a newer one. Slow subscribers lose their oldest undelivered
// snapshots rather than blocking the engine.
type Broker struct {
	source Source
	log    *slog.Logger

	mu     sync.Mutex
	subs   map[string]*subscriber
	closed bool
}

type subscriber struct {
	id     string
	device []byte
	ch     chan *task.Task

	// latest maps raw task id to the highest version handed to the channel.
	latest map[string]uint64
}

func NewBroker(source Source) *Broker {
	return &Broker{
		source: source,
		log:    slog.With("component", "broker"),
		subs:   make(map[string]*subscriber),
	}
}

// Subscribe registers the device for task updates. The returned channel first
// carries a snapshot of the device's pending tasks, then live transitions; it
// is closed when ctx ends or the broker shuts down.
func (b *Broker) Subscribe(ctx context.Context, device []byte) <-chan *task.Task {
	sub := &subscriber{
		id:     uuid.NewString(),
		device: append([]byte(nil), device...),
		ch:     make(chan *task.Task, subscriberBufferCap),
		latest: make(map[string]uint64),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch
	}
	b.subs[sub.id] = sub
	b.mu.Unlock()

	// The snapshot is assembled outside the lock so a concurrent Publish is
	// never blocked on the task engine. Live events that slip in before the
	// snapshot is queued win on version, and the stale snapshot entries are
	// dropped below.
	snapshot := b.source.List(device)

	b.mu.Lock()
	if _, ok := b.subs[sub.id]; ok {
		for _, t := range snapshot {
			b.deliver(sub, t)
		}
	}
	b.mu.Unlock()

	b.log.Debug("subscriber attached", "subscription", sub.id, "pending", len(snapshot))
	go func() {
		<-ctx.Done()
		b.unsubscribe(sub.id)
	}()
	return sub.ch
}

// Publish fans a committed transition out to matching subscribers. It never
// blocks.
func (b *Broker) Publish(t *task.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, sub := range b.subs {
		if !t.IsParticipant(sub.device) {
			continue
		}
		b.deliver(sub, t)
	}
}

// Close drops every subscriber and closes their channels. Subsequent
// publishes are ignored.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// deliver hands the task to one subscriber, dropping the oldest buffered
// update when the channel is full. Caller holds b.mu.
func (b *Broker) deliver(sub *subscriber, t *task.Task) {
	key := string(t.ID)
	if t.Version <= sub.latest[key] {
		return
	}
	sub.latest[key] = t.Version

	select {
	case sub.ch <- t:
		return
	default:
	}
	select {
	case <-sub.ch:
	default:
	}
	select {
	case sub.ch <- t:
	default:
		b.log.Warn("subscriber buffer full, update dropped",
			"subscription", sub.id, "task", key)
	}
}

func (b *Broker) unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.subs[id]
	if !ok {
		return
	}
	delete(b.subs, id)
	close(sub.ch)
	b.log.Debug("subscriber detached", "subscription", id)
}
