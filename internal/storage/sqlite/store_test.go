package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SPXcz/meesign-server/internal/group"
	"github.com/SPXcz/meesign-server/internal/identity"
	"github.com/SPXcz/meesign-server/internal/task"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "meesign.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDeviceRoundTrip(t *testing.T) {
	s := openStore(t)

	d := &identity.Identity{
		ID:          []byte("device-1"),
		Name:        "workstation",
		Kind:        identity.KindUser,
		Certificate: []byte("cert-der"),
		LastActive:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveDevice(d))

	// Upsert replaces the document in place.
	d.Name = "workstation-renamed"
	require.NoError(t, s.SaveDevice(d))

	devices, err := s.ListDevices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, d.ID, devices[0].ID)
	assert.Equal(t, "workstation-renamed", devices[0].Name)
	assert.Equal(t, identity.KindUser, devices[0].Kind)
	assert.Equal(t, d.Certificate, devices[0].Certificate)
	assert.True(t, d.LastActive.Equal(devices[0].LastActive))
}

func TestGroupRoundTrip(t *testing.T) {
	s := openStore(t)

	g := &group.Group{
		ID:        []byte("group-key"),
		Name:      "vault",
		Threshold: 2,
		Protocol:  group.Frost,
		KeyType:   group.SignChallenge,
		Members:   [][]byte{[]byte("d1"), []byte("d2"), []byte("d3")},
		Note:      "quarterly rotation",
	}
	require.NoError(t, s.SaveGroup(g))

	groups, err := s.ListGroups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, g.ID, groups[0].ID)
	assert.Equal(t, g.Threshold, groups[0].Threshold)
	assert.Equal(t, g.Protocol, groups[0].Protocol)
	assert.Equal(t, g.Members, groups[0].Members)
	assert.Equal(t, g.Note, groups[0].Note)
}

func TestSaveTaskVersionGuard(t *testing.T) {
	s := openStore(t)

	tk := &task.Task{
		ID:           task.Fingerprint([]byte("req")),
		Type:         task.TypeSignChallenge,
		State:        task.Created,
		Version:      1,
		Participants: [][]byte{[]byte("d1"), []byte("d2")},
		Decisions:    map[string]bool{},
		Request:      []byte("req"),
	}
	require.NoError(t, s.SaveTask(tk, 0))

	// A second insert of the same id conflicts.
	err := s.SaveTask(tk, 0)
	assert.ErrorIs(t, err, task.ErrVersionConflict)

	// An update against the stored version succeeds.
	tk.State = task.Running
	tk.Version = 2
	require.NoError(t, s.SaveTask(tk, 1))

	// An update against the superseded version is rejected.
	tk.Version = 3
	err = s.SaveTask(tk, 1)
	assert.ErrorIs(t, err, task.ErrVersionConflict)

	stored, err := s.GetTask(tk.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stored.Version)
	assert.Equal(t, task.Running, stored.State)
}

func TestTaskDocumentRoundTrip(t *testing.T) {
	s := openStore(t)

	tk := &task.Task{
		ID:           task.Fingerprint([]byte("round-trip")),
		Type:         task.TypeGroup,
		State:        task.Running,
		Round:        2,
		Attempt:      1,
		Protocol:     group.Musig2,
		KeyType:      group.SignChallenge,
		Name:         "vault",
		Threshold:    2,
		LastRound:    2,
		MaxAttempts:  3,
		Participants: [][]byte{[]byte("d1"), []byte("d2")},
		Active:       [][]byte{[]byte("d1"), []byte("d2")},
		Decisions:    map[string]bool{task.DeviceKey([]byte("d1")): true},
		Inbox:        map[string][][]byte{task.DeviceKey([]byte("d1")): {[]byte("x")}},
		Relay:        map[string][][]byte{task.DeviceKey([]byte("d2")): {[]byte("y")}},
		Request:      []byte("round-trip"),
		Version:      4,
	}
	require.NoError(t, s.SaveTask(tk, 0))

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	got := tasks[0]
	assert.Equal(t, tk.ID, got.ID)
	assert.Equal(t, tk.Round, got.Round)
	assert.Equal(t, tk.Participants, got.Participants)
	assert.Equal(t, tk.Decisions, got.Decisions)
	assert.Equal(t, tk.Inbox, got.Inbox)
	assert.Equal(t, tk.Relay, got.Relay)
}

func TestGetTaskNotFound(t *testing.T) {
	s := openStore(t)
	_, err := s.GetTask([]byte("missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendClientLog(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.AppendClientLog([]byte("d1"), "protocol driver crashed"))
	require.NoError(t, s.AppendClientLog(nil, "anonymous report"))

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM client_logs`).Scan(&count))
	assert.Equal(t, 2, count)

	var device any
	require.NoError(t, s.db.QueryRow(
		`SELECT device FROM client_logs WHERE message = ?`, "anonymous report",
	).Scan(&device))
	assert.Nil(t, device)
}
