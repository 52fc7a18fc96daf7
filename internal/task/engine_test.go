package task

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SPXcz/meesign-server/internal/group"
	"github.com/SPXcz/meesign-server/internal/identity"
)

type memStore struct {
	mu       sync.Mutex
	rows     map[string]*Task
	saveErrs int   // fail the next N saves
	failWith error // error for injected failures; transient when nil
	saves    int
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]*Task)}
}

func (s *memStore) SaveTask(t *Task, expectedVersion uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErrs > 0 {
		s.saveErrs--
		if s.failWith != nil {
			return s.failWith
		}
		return errors.New("disk on fire")
	}
	cur, ok := s.rows[string(t.ID)]
	if expectedVersion == 0 {
		if ok {
			return ErrVersionConflict
		}
	} else if !ok || cur.Version != expectedVersion {
		return ErrVersionConflict
	}
	s.rows[string(t.ID)] = t.Clone()
	return nil
}

func (s *memStore) ListTasks() ([]*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Task, 0, len(s.rows))
	for _, t := range s.rows {
		out = append(out, t.Clone())
	}
	return out, nil
}

type memPublisher struct {
	mu     sync.Mutex
	events []*Task
}

func (p *memPublisher) Publish(t *Task) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, t)
}

func (p *memPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

type memDevices struct {
	known map[string]bool
}

func (d *memDevices) Exists(id []byte) bool { return d.known[string(id)] }

type memGroups struct {
	mu      sync.Mutex
	groups  map[string]*group.Group
	created []*group.Group
}

func newMemGroups() *memGroups {
	return &memGroups{groups: make(map[string]*group.Group)}
}

func (g *memGroups) Get(id []byte) (*group.Group, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if grp, ok := g.groups[string(id)]; ok {
		return grp, nil
	}
	return nil, group.ErrGroupNotFound
}

func (g *memGroups) Create(id []byte, name string, members [][]byte, threshold uint32, protocol group.Protocol, keyType group.KeyType, note string) (*group.Group, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	grp := &group.Group{
		ID:        id,
		Name:      name,
		Threshold: threshold,
		Protocol:  protocol,
		KeyType:   keyType,
		Members:   members,
		Note:      note,
	}
	g.groups[string(id)] = grp
	g.created = append(g.created, grp)
	return grp, nil
}

type harness struct {
	engine  *Engine
	store   *memStore
	pub     *memPublisher
	devices *memDevices
	groups  *memGroups
}

func device(name string) []byte {
	return []byte(fmt.Sprintf("device-%s-0123456789abcdef", name))
}

func newHarness(t *testing.T, cfg Config, deviceNames ...string) *harness {
	t.Helper()
	known := make(map[string]bool)
	for _, n := range deviceNames {
		known[string(device(n))] = true
	}
	h := &harness{
		store:   newMemStore(),
		pub:     &memPublisher{},
		devices: &memDevices{known: known},
		groups:  newMemGroups(),
	}
	engine, err := NewEngine(cfg, h.devices, h.groups, h.store, h.pub)
	require.NoError(t, err)
	t.Cleanup(engine.Close)
	h.engine = engine
	return h
}

func (h *harness) createGroupTask(t *testing.T, members ...[]byte) *Task {
	t.Helper()
	created, err := h.engine.CreateGroupTask("vault", members, uint32(len(members)), group.Musig2, group.SignChallenge, "", []byte("group-request"))
	require.NoError(t, err)
	return created
}

func (h *harness) establishedGroup(members [][]byte, threshold uint32) *group.Group {
	g := &group.Group{
		ID:        []byte("established-group-key"),
		Name:      "vault",
		Threshold: threshold,
		Protocol:  group.Musig2,
		KeyType:   group.SignChallenge,
		Members:   members,
	}
	h.groups.mu.Lock()
	h.groups.groups[string(g.ID)] = g
	h.groups.mu.Unlock()
	return g
}

func TestCreateGroupTaskIdempotent(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")
	members := [][]byte{device("a"), device("b")}

	first, err := h.engine.CreateGroupTask("vault", members, 2, group.Musig2, group.SignChallenge, "", []byte("req"))
	require.NoError(t, err)
	second, err := h.engine.CreateGroupTask("vault", members, 2, group.Musig2, group.SignChallenge, "", []byte("req"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Version, second.Version)
	assert.Len(t, h.store.rows, 1)
}

func TestCreateGroupTaskValidation(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")

	_, err := h.engine.CreateGroupTask("vault", [][]byte{device("a"), device("ghost")}, 2, group.Musig2, group.SignChallenge, "", []byte("r1"))
	assert.ErrorIs(t, err, identity.ErrUnknownDevice)

	_, err = h.engine.CreateGroupTask("vault", [][]byte{device("a"), device("b")}, 3, group.Musig2, group.SignChallenge, "", []byte("r2"))
	assert.ErrorIs(t, err, group.ErrInvalidGroupSpec)

	_, err = h.engine.CreateGroupTask("vault", [][]byte{device("a"), device("b")}, 2, group.Musig2, group.Decrypt, "", []byte("r3"))
	assert.ErrorIs(t, err, group.ErrInvalidGroupSpec)
}

func TestCreateSignTaskRequiresGroup(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a")
	_, err := h.engine.CreateSignTask("doc", []byte("no-such-group"), []byte("payload"), []byte("req"))
	assert.ErrorIs(t, err, group.ErrGroupNotFound)
}

func TestGroupFormationLifecycle(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b", "c")
	members := [][]byte{device("a"), device("b"), device("c")}
	created := h.createGroupTask(t, members...)
	require.Equal(t, Created, created.State)

	// Group formation needs every member; two accepts keep it waiting.
	for _, d := range members[:2] {
		updated, err := h.engine.Decide(created.ID, d, true)
		require.NoError(t, err)
		assert.Equal(t, Created, updated.State)
	}
	running, err := h.engine.Decide(created.ID, members[2], true)
	require.NoError(t, err)
	require.Equal(t, Running, running.State)
	assert.Equal(t, uint32(1), running.Round)
	assert.Len(t, running.Active, 3)

	// Round 1: inbox completes on the final submission.
	for i, d := range members {
		updated, err := h.engine.SubmitRound(created.ID, d, [][]byte{[]byte(fmt.Sprintf("r1-%d", i))}, 1)
		require.NoError(t, err)
		if i < len(members)-1 {
			assert.Equal(t, uint32(1), updated.Round)
		} else {
			assert.Equal(t, uint32(2), updated.Round)
		}
	}

	// Round 2 work excludes the device's own submission.
	snapshot, err := h.engine.Get(created.ID)
	require.NoError(t, err)
	work := snapshot.WorkFor(members[0])
	require.Len(t, work, 2)
	for _, w := range work {
		assert.NotEqual(t, []byte("r1-0"), w)
	}

	// Final round finishes the task and registers the group.
	var finished *Task
	for i, d := range members {
		finished, err = h.engine.SubmitRound(created.ID, d, [][]byte{[]byte(fmt.Sprintf("key-%d", i))}, 1)
		require.NoError(t, err)
	}
	require.Equal(t, Finished, finished.State)
	assert.Equal(t, []byte("key-0"), finished.Result)
	assert.Equal(t, finished.Result, finished.GroupID)

	require.Len(t, h.groups.created, 1)
	registered := h.groups.created[0]
	assert.Equal(t, finished.Result, registered.ID)
	assert.Equal(t, uint32(3), registered.Threshold)
	assert.Len(t, registered.Members, 3)
}

func TestSignTaskQuorumAndRoster(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b", "c")
	members := [][]byte{device("a"), device("b"), device("c")}
	g := h.establishedGroup(members, 2)

	created, err := h.engine.CreateSignTask("doc", g.ID, []byte("payload"), []byte("sign-req"))
	require.NoError(t, err)
	require.Equal(t, Created, created.State)
	assert.Equal(t, TypeSignChallenge, created.Type)

	// One accept is below the threshold-2 quorum; one reject still leaves it
	// reachable.
	_, err = h.engine.Decide(created.ID, members[2], false)
	require.NoError(t, err)
	waiting, err := h.engine.Decide(created.ID, members[0], true)
	require.NoError(t, err)
	require.Equal(t, Created, waiting.State)

	running, err := h.engine.Decide(created.ID, members[1], true)
	require.NoError(t, err)
	require.Equal(t, Running, running.State)

	// Roster is the accepting devices in share-index order.
	require.Len(t, running.Active, 2)
	assert.True(t, bytes.Equal(running.Active[0], members[0]))
	assert.True(t, bytes.Equal(running.Active[1], members[1]))

	// The rejecting device is a participant but not on the roster.
	_, err = h.engine.SubmitRound(created.ID, members[2], [][]byte{[]byte("x")}, 1)
	assert.ErrorIs(t, err, ErrNotAParticipant)

	// Musig2 signing takes three rounds.
	var final *Task
	for round := 1; round <= 3; round++ {
		for i, d := range members[:2] {
			final, err = h.engine.SubmitRound(created.ID, d, [][]byte{[]byte(fmt.Sprintf("sig-%d-%d", round, i))}, 1)
			require.NoError(t, err)
		}
	}
	require.Equal(t, Finished, final.State)
	assert.Equal(t, []byte("sig-3-0"), final.Result)
	assert.Empty(t, h.groups.created, "signing must not register groups")
}

func TestLateDecisionOnRunningTask(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b", "c")
	members := [][]byte{device("a"), device("b"), device("c")}
	g := h.establishedGroup(members, 2)

	created, err := h.engine.CreateSignTask("doc", g.ID, []byte("payload"), []byte("sign-req"))
	require.NoError(t, err)
	for _, d := range members[:2] {
		_, err := h.engine.Decide(created.ID, d, true)
		require.NoError(t, err)
	}

	// The straggler's reject lands after the task started; it is recorded but
	// neither the state nor the roster moves.
	updated, err := h.engine.Decide(created.ID, members[2], false)
	require.NoError(t, err)
	assert.Equal(t, Running, updated.State)
	assert.Equal(t, uint32(1), updated.RejectCount())
	assert.Len(t, updated.Active, 2)
}

func TestDecideRejectionMakesQuorumUnreachable(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b", "c")
	members := [][]byte{device("a"), device("b"), device("c")}
	g := h.establishedGroup(members, 3)

	created, err := h.engine.CreateSignTask("doc", g.ID, []byte("payload"), []byte("sign-req"))
	require.NoError(t, err)

	failed, err := h.engine.Decide(created.ID, members[1], false)
	require.NoError(t, err)
	assert.Equal(t, Failed, failed.State)

	_, err = h.engine.Decide(created.ID, members[0], true)
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestDecideErrors(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)

	_, err := h.engine.Decide(created.ID, device("outsider"), true)
	assert.ErrorIs(t, err, ErrNotAParticipant)

	_, err = h.engine.Decide(created.ID, members[0], true)
	require.NoError(t, err)
	_, err = h.engine.Decide(created.ID, members[0], false)
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	_, err = h.engine.Decide([]byte("missing"), members[0], true)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestSubmitRoundGuards(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)

	// Submissions before the task runs are invalid.
	_, err := h.engine.SubmitRound(created.ID, members[0], [][]byte{[]byte("x")}, 1)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	for _, d := range members {
		_, err := h.engine.Decide(created.ID, d, true)
		require.NoError(t, err)
	}

	_, err = h.engine.SubmitRound(created.ID, members[0], [][]byte{[]byte("x")}, 2)
	assert.ErrorIs(t, err, ErrStaleSubmission)

	_, err = h.engine.SubmitRound(created.ID, members[0], [][]byte{[]byte("x"), []byte("y")}, 1)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	_, err = h.engine.SubmitRound(created.ID, members[0], [][]byte{[]byte("x")}, 1)
	require.NoError(t, err)
	_, err = h.engine.SubmitRound(created.ID, members[0], [][]byte{[]byte("x")}, 1)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)
}

func TestAbort(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")
	created := h.createGroupTask(t, device("a"), device("b"))

	_, err := h.engine.Abort(created.ID, device("outsider"))
	assert.ErrorIs(t, err, ErrNotAParticipant)
	snap, err := h.engine.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, Created, snap.State)

	aborted, err := h.engine.Abort(created.ID, device("a"))
	require.NoError(t, err)
	assert.Equal(t, Failed, aborted.State)

	_, err = h.engine.Abort(created.ID, device("b"))
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestRestartOpensFreshAttempt(t *testing.T) {
	cfg := Config{MaxAttempts: 2, RoundTimeout: time.Minute}
	h := newHarness(t, cfg, "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)

	// A task still gathering decisions has nothing to restart.
	snap, err := h.engine.Restart(created.ID, members[0])
	require.NoError(t, err)
	assert.Equal(t, Created, snap.State)
	assert.Equal(t, uint32(1), snap.Attempt)

	for _, d := range members {
		_, err := h.engine.Decide(created.ID, d, true)
		require.NoError(t, err)
	}
	_, err = h.engine.SubmitRound(created.ID, members[0], [][]byte{[]byte("x")}, 1)
	require.NoError(t, err)

	_, err = h.engine.Restart(created.ID, device("outsider"))
	assert.ErrorIs(t, err, ErrNotAParticipant)

	restarted, err := h.engine.Restart(created.ID, members[1])
	require.NoError(t, err)
	assert.Equal(t, Running, restarted.State)
	assert.Equal(t, uint32(2), restarted.Attempt)
	assert.Empty(t, restarted.Inbox)

	// The buffered submission belongs to the abandoned attempt now.
	_, err = h.engine.SubmitRound(created.ID, members[0], [][]byte{[]byte("x")}, 1)
	assert.ErrorIs(t, err, ErrStaleSubmission)

	// Restarting past the attempt budget fails the task.
	failed, err := h.engine.Restart(created.ID, members[0])
	require.NoError(t, err)
	assert.Equal(t, Failed, failed.State)

	_, err = h.engine.Restart(created.ID, members[0])
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestAcknowledgeHidesTerminalTasks(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)
	_, err := h.engine.Abort(created.ID, members[0])
	require.NoError(t, err)

	require.Len(t, h.engine.List(members[0]), 1)
	require.NoError(t, h.engine.Acknowledge(created.ID, members[0]))
	assert.Empty(t, h.engine.List(members[0]))
	assert.Len(t, h.engine.List(members[1]), 1, "acknowledgement is per device")
	assert.Len(t, h.engine.List(nil), 1, "unfiltered listing keeps terminal tasks")

	err = h.engine.Acknowledge(created.ID, device("outsider"))
	assert.ErrorIs(t, err, ErrNotAParticipant)
}

func TestAcknowledgeReleasesBuffersWhenFinished(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)

	for _, d := range members {
		_, err := h.engine.Decide(created.ID, d, true)
		require.NoError(t, err)
	}
	for round := 1; round <= 2; round++ {
		for _, d := range members {
			_, err := h.engine.SubmitRound(created.ID, d, [][]byte{[]byte("k")}, 1)
			require.NoError(t, err)
		}
	}
	finished, err := h.engine.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, Finished, finished.State)
	require.NotEmpty(t, finished.Relay)

	for _, d := range members {
		require.NoError(t, h.engine.Acknowledge(created.ID, d))
	}
	released, err := h.engine.Get(created.ID)
	require.NoError(t, err)
	assert.Empty(t, released.Relay)
	assert.Equal(t, []byte("k"), released.Result, "result survives buffer release")
}

func TestRoundTimeoutRetriesThenFails(t *testing.T) {
	cfg := Config{MaxAttempts: 2, RoundTimeout: 30 * time.Millisecond}
	h := newHarness(t, cfg, "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)

	for _, d := range members {
		_, err := h.engine.Decide(created.ID, d, true)
		require.NoError(t, err)
	}
	_, err := h.engine.SubmitRound(created.ID, members[0], [][]byte{[]byte("x")}, 1)
	require.NoError(t, err)

	// First expiry opens attempt 2 with an empty inbox.
	require.Eventually(t, func() bool {
		snap, err := h.engine.Get(created.ID)
		return err == nil && snap.Attempt == 2
	}, time.Second, 5*time.Millisecond)

	snap, err := h.engine.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, Running, snap.State)
	assert.Empty(t, snap.Inbox)

	// A submission against the expired attempt is stale.
	_, err = h.engine.SubmitRound(created.ID, members[0], [][]byte{[]byte("x")}, 1)
	assert.ErrorIs(t, err, ErrStaleSubmission)

	// Second expiry exhausts the attempts.
	require.Eventually(t, func() bool {
		snap, err := h.engine.Get(created.ID)
		return err == nil && snap.State == Failed
	}, time.Second, 5*time.Millisecond)
}

func TestCompletedRoundDefusesTimer(t *testing.T) {
	cfg := Config{MaxAttempts: 1, RoundTimeout: 40 * time.Millisecond}
	h := newHarness(t, cfg, "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)

	for _, d := range members {
		_, err := h.engine.Decide(created.ID, d, true)
		require.NoError(t, err)
	}
	for round := 1; round <= 2; round++ {
		for _, d := range members {
			_, err := h.engine.SubmitRound(created.ID, d, [][]byte{[]byte("k")}, 1)
			require.NoError(t, err)
		}
	}

	time.Sleep(80 * time.Millisecond)
	snap, err := h.engine.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, Finished, snap.State, "finished task must not be failed by a stale timer")
}

func TestPersistRetriesTransientErrors(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)

	h.store.mu.Lock()
	h.store.saveErrs = 2
	h.store.mu.Unlock()

	updated, err := h.engine.Decide(created.ID, members[0], true)
	require.NoError(t, err)
	assert.True(t, updated.Decisions[DeviceKey(members[0])])
}

func TestPublishOnEveryTransition(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)
	require.Equal(t, 1, h.pub.count())

	_, err := h.engine.Decide(created.ID, members[0], true)
	require.NoError(t, err)
	require.Equal(t, 2, h.pub.count())

	// Acknowledgement is not fanned out.
	_, err = h.engine.Abort(created.ID, members[0])
	require.NoError(t, err)
	require.NoError(t, h.engine.Acknowledge(created.ID, members[0]))
	assert.Equal(t, 3, h.pub.count())
}

func TestHydrationRestoresTasks(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)
	_, err := h.engine.Decide(created.ID, members[0], true)
	require.NoError(t, err)
	h.engine.Close()

	restarted, err := NewEngine(DefaultConfig(), h.devices, h.groups, h.store, h.pub)
	require.NoError(t, err)
	defer restarted.Close()

	snap, err := restarted.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, Created, snap.State)
	assert.True(t, snap.Decisions[DeviceKey(members[0])])

	// The restored task keeps accepting mutations.
	running, err := restarted.Decide(created.ID, members[1], true)
	require.NoError(t, err)
	assert.Equal(t, Running, running.State)
}

func TestConcurrentDecidesStartOnce(t *testing.T) {
	const devices = 8
	names := make([]string, devices)
	members := make([][]byte, devices)
	for i := range names {
		names[i] = fmt.Sprintf("d%d", i)
		members[i] = device(names[i])
	}
	h := newHarness(t, DefaultConfig(), names...)
	created := h.createGroupTask(t, members...)

	var wg sync.WaitGroup
	for _, d := range members {
		wg.Add(1)
		go func(d []byte) {
			defer wg.Done()
			_, err := h.engine.Decide(created.ID, d, true)
			assert.NoError(t, err)
		}(d)
	}
	wg.Wait()

	snap, err := h.engine.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, Running, snap.State)
	assert.Equal(t, uint32(1), snap.Round)
	assert.Len(t, snap.Active, devices)

	// Version counts one create plus one commit per decide.
	assert.Equal(t, uint64(devices+1), snap.Version)
}

func TestConcurrentDuplicateSubmission(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b", "c")
	members := [][]byte{device("a"), device("b"), device("c")}
	created := h.createGroupTask(t, members...)
	for _, d := range members {
		_, err := h.engine.Decide(created.ID, d, true)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = h.engine.SubmitRound(created.ID, members[0], [][]byte{[]byte("x")}, 1)
		}(i)
	}
	wg.Wait()

	var accepted, rejected int
	for _, err := range errs {
		if err == nil {
			accepted++
		} else if errors.Is(err, ErrDuplicateSubmission) {
			rejected++
		}
	}
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, rejected)
}

func TestConcurrentCreateWithFailingStore(t *testing.T) {
	h := newHarness(t, DefaultConfig(), "a", "b")
	members := [][]byte{device("a"), device("b")}

	// One caller consumes the failing save and drops its half-registered
	// task; the identical racing request must end up with the committed
	// task, never a snapshot of the empty slot.
	for i := 0; i < 25; i++ {
		request := []byte(fmt.Sprintf("req-%d", i))
		h.store.mu.Lock()
		h.store.saveErrs = 1
		h.store.failWith = ErrVersionConflict
		h.store.mu.Unlock()

		results := make([]error, 2)
		var wg sync.WaitGroup
		for j := range results {
			wg.Add(1)
			go func(j int) {
				defer wg.Done()
				_, results[j] = h.engine.CreateGroupTask("vault", members, 2, group.Musig2, group.SignChallenge, "", request)
			}(j)
		}
		wg.Wait()

		var failed, created int
		for _, err := range results {
			if err != nil {
				failed++
			} else {
				created++
			}
		}
		require.Equal(t, 1, failed)
		require.Equal(t, 1, created)

		snap, err := h.engine.Get(Fingerprint(request))
		require.NoError(t, err)
		assert.Equal(t, Created, snap.State)
	}
}

func TestRoundTimeoutSurvivesPersistFailure(t *testing.T) {
	cfg := Config{MaxAttempts: 2, RoundTimeout: 25 * time.Millisecond}
	h := newHarness(t, cfg, "a", "b")
	members := [][]byte{device("a"), device("b")}
	created := h.createGroupTask(t, members...)

	for _, d := range members {
		_, err := h.engine.Decide(created.ID, d, true)
		require.NoError(t, err)
	}

	// The first expiry fails to commit; the rescheduled one must still
	// move the task once storage works again.
	h.store.mu.Lock()
	h.store.saveErrs = 1
	h.store.failWith = ErrVersionConflict
	h.store.mu.Unlock()

	require.Eventually(t, func() bool {
		snap, err := h.engine.Get(created.ID)
		return err == nil && snap.Attempt == 2
	}, 2*time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		snap, err := h.engine.Get(created.ID)
		return err == nil && snap.State == Failed
	}, 2*time.Second, 5*time.Millisecond)
}
