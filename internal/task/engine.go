package task

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unicode"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/SPXcz/meesign-server/internal/group"
	"github.com/SPXcz/meesign-server/internal/identity"
)

// ErrVersionConflict is returned by a Store when a task row was modified
// outside the expected version. With the per-task lock held this indicates a
// bug or an external writer, so it is never retried.
var ErrVersionConflict = errors.New("task version conflict")

// DeviceIndex is the slice of the identity registry the engine needs.
type DeviceIndex interface {
	Exists(id []byte) bool
}

// GroupDirectory is the slice of the group registry the engine needs: lookup
// for signing/decryption tasks and creation for finished group tasks.
type GroupDirectory interface {
	Get(id []byte) (*group.Group, error)
	Create(id []byte, name string, members [][]byte, threshold uint32, protocol group.Protocol, keyType group.KeyType, note string) (*group.Group, error)
}

// Store is the persistence contract for tasks. SaveTask must apply the write
// only when the stored version equals expectedVersion (0 for inserts) and
// return ErrVersionConflict otherwise.
type Store interface {
	SaveTask(t *Task, expectedVersion uint64) error
	ListTasks() ([]*Task, error)
}

// Publisher receives a snapshot of every committed task transition. It must
// not block.
type Publisher interface {
	Publish(t *Task)
}

const (
	maxSignDataSize    = 8 * 1024 * 1024
	maxRequestNameSize = 256
	persistMaxElapsed  = 5 * time.Second
)

// Engine owns every task and serializes mutations per task id: one lazily
// created lock per task, operations on distinct tasks fully parallel. Each
// mutation is applied to a copy, persisted, then committed and published, so
// a storage failure never corrupts in-memory state.
type Engine struct {
	cfg     Config
	devices DeviceIndex
	groups  GroupDirectory
	store   Store
	pub     Publisher
	log     *slog.Logger
	tracer  trace.Tracer

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu    sync.Mutex
	task  *Task
	timer *time.Timer
}

// errNoChange signals that a mutation turned out to be a no-op; the task is
// not persisted, bumped, or published.
var errNoChange = errors.New("no change")

func NewEngine(cfg Config, devices DeviceIndex, groups GroupDirectory, store Store, pub Publisher) (*Engine, error) {
	e := &Engine{
		cfg:     cfg,
		devices: devices,
		groups:  groups,
		store:   store,
		pub:     pub,
		log:     slog.With("component", "task-engine"),
		tracer:  otel.Tracer("meesign/task"),
		entries: make(map[string]*entry),
	}

	tasks, err := store.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("hydrate tasks: %w", err)
	}
	for _, t := range tasks {
		en := &entry{task: t}
		e.entries[string(t.ID)] = en
		if t.State == Running {
			e.armTimer(en, t)
		}
	}
	return e, nil
}

// Close stops all pending round timers. In-flight mutations finish normally.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, en := range e.entries {
		en.mu.Lock()
		if en.timer != nil {
			en.timer.Stop()
			en.timer = nil
		}
		en.mu.Unlock()
	}
}

// CreateGroupTask opens a group-formation task. Every listed device must
// decide; the full membership is the quorum.
func (e *Engine) CreateGroupTask(name string, members [][]byte, threshold uint32, protocol group.Protocol, keyType group.KeyType, note string, request []byte) (*Task, error) {
	if err := group.ValidateSpec(name, members, threshold, protocol, keyType); err != nil {
		return nil, err
	}
	for _, m := range members {
		if !e.devices.Exists(m) {
			return nil, fmt.Errorf("member %s: %w", hex.EncodeToString(m), identity.ErrUnknownDevice)
		}
	}

	t := e.newTask(TypeGroup, name, request)
	t.Protocol = protocol
	t.KeyType = keyType
	t.Threshold = threshold
	t.Note = note
	t.Participants = cloneIDs(members)
	t.LastRound = e.cfg.lastRound(protocol, TypeGroup)
	return e.insert(t)
}

// CreateSignTask opens a signing task on an established group.
func (e *Engine) CreateSignTask(name string, groupID, data, request []byte) (*Task, error) {
	if err := validRequestName(name); err != nil {
		return nil, err
	}
	if len(data) > maxSignDataSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds limit", ErrInvalidSubmission, len(data))
	}
	g, err := e.groups.Get(groupID)
	if err != nil {
		return nil, err
	}

	var taskType Type
	switch g.KeyType {
	case group.SignPDF:
		taskType = TypeSignPDF
	case group.SignChallenge:
		taskType = TypeSignChallenge
	default:
		return nil, fmt.Errorf("%w: group %s cannot sign", group.ErrInvalidGroupSpec, hex.EncodeToString(groupID))
	}

	t := e.newTask(taskType, name, request)
	e.bindGroup(t, g)
	return e.insert(t)
}

// CreateDecryptTask opens a decryption task on an established group.
func (e *Engine) CreateDecryptTask(name string, groupID, data, request []byte) (*Task, error) {
	if err := validRequestName(name); err != nil {
		return nil, err
	}
	if len(data) > maxSignDataSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds limit", ErrInvalidSubmission, len(data))
	}
	g, err := e.groups.Get(groupID)
	if err != nil {
		return nil, err
	}
	if g.KeyType != group.Decrypt {
		return nil, fmt.Errorf("%w: group %s cannot decrypt", group.ErrInvalidGroupSpec, hex.EncodeToString(groupID))
	}

	t := e.newTask(TypeDecrypt, name, request)
	e.bindGroup(t, g)
	return e.insert(t)
}

func (e *Engine) newTask(taskType Type, name string, request []byte) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:          Fingerprint(request),
		Type:        taskType,
		State:       Created,
		Attempt:     1,
		Name:        name,
		MaxAttempts: e.cfg.maxAttempts(),
		Decisions:   make(map[string]bool),
		Request:     append([]byte(nil), request...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (e *Engine) bindGroup(t *Task, g *group.Group) {
	t.Protocol = g.Protocol
	t.KeyType = g.KeyType
	t.GroupID = append([]byte(nil), g.ID...)
	t.Threshold = g.Threshold
	t.Participants = cloneIDs(g.Members)
	t.LastRound = e.cfg.lastRound(g.Protocol, t.Type)
}

// insert persists and registers a freshly created task. Creation is
// idempotent: re-submitting an identical request returns the existing task.
func (e *Engine) insert(t *Task) (*Task, error) {
	en, created := e.claim(t.ID)
	if !created {
		snap := en.task.Clone()
		en.mu.Unlock()
		return snap, nil
	}
	defer en.mu.Unlock()

	t.Version = 1
	if err := e.persist(t, 0); err != nil {
		e.mu.Lock()
		delete(e.entries, string(t.ID))
		e.mu.Unlock()
		return nil, err
	}
	en.task = t
	e.log.Info("task created",
		"id", hex.EncodeToString(t.ID),
		"type", t.Type.String(),
		"participants", len(t.Participants))
	e.publish(t)
	return t.Clone(), nil
}

// claim returns the entry for the id with its lock held. When the id is
// unknown it registers an empty entry the caller must fill or remove; an
// existing entry whose task was never committed (a racing creator failed to
// persist and dropped it) is retried as a fresh claim.
func (e *Engine) claim(id []byte) (en *entry, created bool) {
	for {
		e.mu.Lock()
		existing, ok := e.entries[string(id)]
		if !ok {
			en = &entry{}
			en.mu.Lock()
			e.entries[string(id)] = en
			e.mu.Unlock()
			return en, true
		}
		e.mu.Unlock()

		existing.mu.Lock()
		if existing.task != nil {
			return existing, false
		}
		existing.mu.Unlock()
	}
}

// Decide records a participant's accept or reject. Reaching the accept
// quorum opens round 1; enough rejects to make quorum unreachable fail the
// task immediately.
func (e *Engine) Decide(id, device []byte, accept bool) (*Task, error) {
	return e.withTask(id, true, func(t *Task) error {
		if t.State.Terminal() {
			return ErrTerminalState
		}
		if !t.IsParticipant(device) {
			return ErrNotAParticipant
		}
		key := DeviceKey(device)
		if _, decided := t.Decisions[key]; decided {
			return ErrAlreadyDecided
		}
		t.Decisions[key] = accept

		if t.State != Created {
			// Late decisions on a running task are recorded but change
			// nothing.
			return nil
		}
		if accept && t.AcceptCount() >= t.Quorum() {
			e.startRunning(t)
			return nil
		}
		if !accept && uint32(len(t.Participants))-t.RejectCount() < t.Quorum() {
			t.State = Failed
			e.log.Info("task failed, quorum unreachable",
				"id", hex.EncodeToString(t.ID),
				"rejects", t.RejectCount())
		}
		return nil
	})
}

// startRunning fixes the round roster and opens round 1. For group formation
// the roster is the full membership; otherwise the first threshold accepting
// devices in share-index order.
func (e *Engine) startRunning(t *Task) {
	t.State = Running
	t.Round = 1
	t.Attempt = 1
	t.Inbox = make(map[string][][]byte)
	t.Relay = nil

	if t.Type == TypeGroup {
		t.Active = cloneIDs(t.Participants)
		return
	}
	var active [][]byte
	for _, p := range t.Participants {
		if uint32(len(active)) == t.Threshold {
			break
		}
		if t.Decisions[DeviceKey(p)] {
			active = append(active, append([]byte(nil), p...))
		}
	}
	t.Active = active
}

// SubmitRound accepts one participant's round data for the given attempt.
// Completing the inbox advances the round, or finishes the task on the final
// budgeted round.
func (e *Engine) SubmitRound(id, device []byte, data [][]byte, attempt uint32) (*Task, error) {
	return e.withTask(id, true, func(t *Task) error {
		if t.State.Terminal() {
			return ErrTerminalState
		}
		if t.State != Running {
			return fmt.Errorf("%w: task has not started", ErrInvalidSubmission)
		}
		if !t.IsParticipant(device) || !t.isActive(device) {
			return ErrNotAParticipant
		}
		if attempt != t.Attempt {
			return fmt.Errorf("%w: attempt %d, current %d", ErrStaleSubmission, attempt, t.Attempt)
		}
		if len(data) != t.ActiveShares(device) {
			return fmt.Errorf("%w: %d entries for %d shares", ErrInvalidSubmission, len(data), t.ActiveShares(device))
		}
		key := DeviceKey(device)
		if _, submitted := t.Inbox[key]; submitted {
			return ErrDuplicateSubmission
		}
		t.Inbox[key] = cloneIDs(data)

		if len(t.Inbox) < t.activeDeviceCount() {
			return nil
		}
		if t.Round == t.LastRound {
			return e.finish(t)
		}
		t.Round++
		t.Relay = t.Inbox
		t.Inbox = make(map[string][][]byte)
		return nil
	})
}

// finish completes the final round. The result is the datum submitted at the
// lowest active share index; a finished group-formation task also registers
// the established group under that identifier.
func (e *Engine) finish(t *Task) error {
	final := t.Inbox[DeviceKey(t.Active[0])]
	if len(final) == 0 {
		return fmt.Errorf("%w: final round carried no data", ErrInvalidSubmission)
	}
	result := append([]byte(nil), final[0]...)

	if t.Type == TypeGroup {
		if _, err := e.groups.Get(result); err != nil {
			if _, err := e.groups.Create(result, t.Name, t.Participants, t.Threshold, t.Protocol, t.KeyType, t.Note); err != nil {
				return fmt.Errorf("register established group: %w", err)
			}
		}
		t.GroupID = result
	}

	t.State = Finished
	t.Result = result
	t.Relay = t.Inbox
	e.log.Info("task finished",
		"id", hex.EncodeToString(t.ID),
		"type", t.Type.String(),
		"rounds", t.Round)
	return nil
}

// Acknowledge marks the device as having observed the task's terminal or
// round state. It never changes logical task state and is not fanned out;
// once every participant has acknowledged a finished task its relay buffers
// are released.
func (e *Engine) Acknowledge(id, device []byte) error {
	_, err := e.withTask(id, false, func(t *Task) error {
		if !t.IsParticipant(device) {
			return ErrNotAParticipant
		}
		key := DeviceKey(device)
		if t.Acknowledged[key] {
			return errNoChange
		}
		if t.Acknowledged == nil {
			t.Acknowledged = make(map[string]bool)
		}
		t.Acknowledged[key] = true

		if t.State == Finished && len(t.Acknowledged) == len(t.Participants) {
			t.Relay = nil
			t.Inbox = nil
		}
		return nil
	})
	return err
}

// Abort fails a non-terminal task on behalf of a participant, either an
// administrative cancellation or a protocol-reported failure. Devices outside
// the task's participant set cannot abort it.
func (e *Engine) Abort(id, device []byte) (*Task, error) {
	ctx, span := e.tracer.Start(context.Background(), "task.abort",
		trace.WithAttributes(attribute.String("task.id", hex.EncodeToString(id))))
	defer span.End()
	_ = ctx

	return e.withTask(id, true, func(t *Task) error {
		if !t.IsParticipant(device) {
			return ErrNotAParticipant
		}
		if t.State.Terminal() {
			return ErrTerminalState
		}
		t.State = Failed
		e.log.Warn("task aborted",
			"id", hex.EncodeToString(t.ID),
			"device", hex.EncodeToString(device))
		return nil
	})
}

// Restart reopens the current round of a stalled running task on a fresh
// attempt at a participant's request, discarding buffered submissions. It
// draws from the same attempt budget as the round timer and fails the task
// once that budget is spent. Tasks still gathering decisions are left alone.
func (e *Engine) Restart(id, device []byte) (*Task, error) {
	return e.withTask(id, true, func(t *Task) error {
		if !t.IsParticipant(device) {
			return ErrNotAParticipant
		}
		if t.State.Terminal() {
			return ErrTerminalState
		}
		if t.State != Running {
			return errNoChange
		}
		if t.Attempt < t.MaxAttempts {
			t.Attempt++
			t.Inbox = make(map[string][][]byte)
			e.log.Info("task restarted",
				"id", hex.EncodeToString(t.ID),
				"round", t.Round,
				"attempt", t.Attempt)
			return nil
		}
		t.State = Failed
		e.log.Warn("task restart refused, attempts exhausted",
			"id", hex.EncodeToString(t.ID),
			"round", t.Round)
		return nil
	})
}

// Get returns a snapshot of the task.
func (e *Engine) Get(id []byte) (*Task, error) {
	en, err := e.lookup(id)
	if err != nil {
		return nil, err
	}
	en.mu.Lock()
	defer en.mu.Unlock()
	if en.task == nil {
		return nil, fmt.Errorf("task %s: %w", hex.EncodeToString(id), ErrTaskNotFound)
	}
	return en.task.Clone(), nil
}

// List returns task snapshots. With a device filter, only tasks the device
// participates in, hiding terminal tasks it has already acknowledged.
func (e *Engine) List(device []byte) []*Task {
	e.mu.Lock()
	entries := make([]*entry, 0, len(e.entries))
	for _, en := range e.entries {
		entries = append(entries, en)
	}
	e.mu.Unlock()

	var out []*Task
	for _, en := range entries {
		en.mu.Lock()
		t := en.task
		if t == nil {
			en.mu.Unlock()
			continue
		}
		if len(device) > 0 {
			if !t.IsParticipant(device) {
				en.mu.Unlock()
				continue
			}
			if t.State.Terminal() && t.Acknowledged[DeviceKey(device)] {
				en.mu.Unlock()
				continue
			}
		}
		out = append(out, t.Clone())
		en.mu.Unlock()
	}
	return out
}

func (e *Engine) lookup(id []byte) (*entry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.entries[string(id)]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", hex.EncodeToString(id), ErrTaskNotFound)
	}
	return en, nil
}

// withTask runs one serialized mutation: clone, apply, persist with the
// expected version, commit, then adjust timers and publish. A failed persist
// leaves the in-memory task untouched.
func (e *Engine) withTask(id []byte, fanout bool, fn func(t *Task) error) (*Task, error) {
	en, err := e.lookup(id)
	if err != nil {
		return nil, err
	}

	en.mu.Lock()
	defer en.mu.Unlock()

	prev := en.task
	if prev == nil {
		return nil, fmt.Errorf("task %s: %w", hex.EncodeToString(id), ErrTaskNotFound)
	}
	working := prev.Clone()
	if err := fn(working); err != nil {
		if errors.Is(err, errNoChange) {
			return prev.Clone(), nil
		}
		return nil, err
	}

	working.Version = prev.Version + 1
	working.UpdatedAt = time.Now().UTC()
	if err := e.persist(working, prev.Version); err != nil {
		return nil, err
	}
	en.task = working

	e.adjustTimer(en, prev, working)
	if fanout {
		e.publish(working)
	}
	return working.Clone(), nil
}

// adjustTimer rearms or stops the round timer after a committed transition.
// Caller holds the entry lock.
func (e *Engine) adjustTimer(en *entry, prev, next *Task) {
	if next.State.Terminal() {
		if en.timer != nil {
			en.timer.Stop()
			en.timer = nil
		}
		return
	}
	if next.State != Running {
		return
	}
	if prev.State != Running || prev.Round != next.Round || prev.Attempt != next.Attempt {
		e.armTimer(en, next)
	}
}

// armTimer starts the round timer for the task's current attempt. Caller
// holds the entry lock.
func (e *Engine) armTimer(en *entry, t *Task) {
	if en.timer != nil {
		en.timer.Stop()
	}
	id := append([]byte(nil), t.ID...)
	round, attempt := t.Round, t.Attempt
	en.timer = time.AfterFunc(e.cfg.roundTimeout(t.Protocol), func() {
		e.fireTimeout(id, round, attempt)
	})
}

// fireTimeout is the time-driven transition: retry the round on a fresh
// attempt, or fail the task once attempts are exhausted. A timer whose
// round/attempt has already advanced is a no-op.
func (e *Engine) fireTimeout(id []byte, round, attempt uint32) {
	ctx, span := e.tracer.Start(context.Background(), "task.round_timeout",
		trace.WithAttributes(
			attribute.String("task.id", hex.EncodeToString(id)),
			attribute.Int("task.round", int(round)),
			attribute.Int("task.attempt", int(attempt)),
		))
	defer span.End()
	_ = ctx

	_, err := e.withTask(id, true, func(t *Task) error {
		if t.State != Running || t.Round != round || t.Attempt != attempt {
			return errNoChange
		}
		if t.Attempt < t.MaxAttempts {
			t.Attempt++
			t.Inbox = make(map[string][][]byte)
			e.log.Warn("round timed out, retrying",
				"id", hex.EncodeToString(t.ID),
				"round", t.Round,
				"attempt", t.Attempt)
			return nil
		}
		t.State = Failed
		e.log.Warn("round timed out, attempts exhausted",
			"id", hex.EncodeToString(t.ID),
			"round", t.Round)
		return nil
	})
	if err != nil {
		// A failed commit leaves the timer spent; schedule another firing.
		e.log.Error("apply round timeout", "id", hex.EncodeToString(id), "err", err)
		e.rearmExpired(id, round, attempt)
	}
}

// rearmExpired reschedules a timeout whose commit failed, as long as the task
// still sits on the same round and attempt.
func (e *Engine) rearmExpired(id []byte, round, attempt uint32) {
	en, err := e.lookup(id)
	if err != nil {
		return
	}
	en.mu.Lock()
	defer en.mu.Unlock()
	t := en.task
	if t == nil || t.State != Running || t.Round != round || t.Attempt != attempt {
		return
	}
	e.armTimer(en, t)
}

// persist writes the task with bounded backoff. Version conflicts are never
// retried; anything else is treated as transient until the budget runs out.
func (e *Engine) persist(t *Task, expectedVersion uint64) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = persistMaxElapsed
	op := func() error {
		err := e.store.SaveTask(t, expectedVersion)
		if errors.Is(err, ErrVersionConflict) {
			return backoff.Permanent(err)
		}
		return err
	}
	if err := backoff.Retry(op, bo); err != nil {
		return fmt.Errorf("persist task %s: %w", hex.EncodeToString(t.ID), err)
	}
	return nil
}

func (e *Engine) publish(t *Task) {
	if e.pub == nil {
		return
	}
	e.pub.Publish(t.Clone())
}

func validRequestName(name string) error {
	if len(name) == 0 || len(name) > maxRequestNameSize {
		return fmt.Errorf("%w: invalid request name length %d", ErrInvalidSubmission, len(name))
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: request name contains control characters", ErrInvalidSubmission)
		}
	}
	return nil
}
