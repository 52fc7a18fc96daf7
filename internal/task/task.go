// Package task implements the orchestration engine driving threshold
// protocol instances through decision gathering, round-by-round data
// exchange, and retry, without ever interpreting the protocol payloads it
// carries.
package task

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/SPXcz/meesign-server/internal/group"
)

// Type discriminates the task union; participants and quorum are derived
// differently per variant.
type Type int

const (
	TypeGroup Type = iota
	TypeSignPDF
	TypeSignChallenge
	TypeDecrypt
)

func (t Type) String() string {
	switch t {
	case TypeGroup:
		return "group"
	case TypeSignPDF:
		return "sign_pdf"
	case TypeSignChallenge:
		return "sign_challenge"
	case TypeDecrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// State is the task lifecycle state. Transitions are monotonic; Finished and
// Failed are terminal.
type State int

const (
	Created State = iota
	Running
	Finished
	Failed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == Finished || s == Failed
}

var (
	// ErrTaskNotFound is returned when a task id is unknown.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNotAParticipant is returned when a device outside the task's
	// participant set submits a decision or round data.
	ErrNotAParticipant = errors.New("device is not a task participant")

	// ErrAlreadyDecided is returned on a repeat decision; the stored
	// decision and the counters are unchanged.
	ErrAlreadyDecided = errors.New("device already decided")

	// ErrStaleSubmission is returned for round data carrying an attempt
	// number other than the current one. Straggler responses from a
	// superseded attempt land here and are dropped.
	ErrStaleSubmission = errors.New("stale round submission")

	// ErrDuplicateSubmission is returned when a device submits round data
	// twice within the same round and attempt.
	ErrDuplicateSubmission = errors.New("duplicate round submission")

	// ErrInvalidSubmission is returned when submitted round data does not
	// match the device's share count.
	ErrInvalidSubmission = errors.New("invalid round submission")

	// ErrTerminalState is returned for mutations of a finished or failed
	// task.
	ErrTerminalState = errors.New("task is in a terminal state")
)

// Task is the orchestration snapshot of one protocol instance. All byte-slice
// maps are keyed by hex-encoded device id so the struct round-trips through
// JSON persistence.
type Task struct {
	ID       []byte         `json:"id"`
	Type     Type           `json:"type"`
	State    State          `json:"state"`
	Round    uint32         `json:"round"`
	Attempt  uint32         `json:"attempt"`
	Protocol group.Protocol `json:"protocol"`
	KeyType  group.KeyType  `json:"key_type"`
	Name     string         `json:"name"`

	// GroupID is set for signing/decryption tasks, and backfilled on a
	// finished group-formation task with the established group's id.
	GroupID []byte `json:"group_id,omitempty"`

	// Note carries the optional operator note for group formation, applied
	// to the registered group on completion.
	Note string `json:"note,omitempty"`

	// Threshold is the accept quorum: the group threshold for signing and
	// decryption tasks, the full participant count for group formation.
	Threshold uint32 `json:"threshold"`

	// LastRound is the fixed per-protocol round budget declared at creation;
	// completing this round finishes the task.
	LastRound uint32 `json:"last_round"`

	MaxAttempts uint32 `json:"max_attempts"`

	// Participants is the quorum-relevant device set; order defines share
	// index.
	Participants [][]byte `json:"participants"`

	// Active is the round roster fixed on the transition to Running.
	Active [][]byte `json:"active,omitempty"`

	// Decisions maps hex device id to accept (true) or reject (false).
	Decisions map[string]bool `json:"decisions,omitempty"`

	// Inbox holds the current round's submissions: hex device id to one
	// datum per controlled share, in share-index order. Cleared on round
	// advance and on attempt retry; retained in terminal states for
	// post-mortem queries.
	Inbox map[string][][]byte `json:"inbox,omitempty"`

	// Relay holds the previous completed round's submissions, routed to
	// participants as their work for the current round.
	Relay map[string][][]byte `json:"relay,omitempty"`

	// Acknowledged marks devices that have observed a terminal state.
	Acknowledged map[string]bool `json:"acknowledged,omitempty"`

	// Request is the original request payload, retained for re-query.
	Request []byte `json:"request"`

	// Result is the final protocol output, set only on Finished.
	Result []byte `json:"result,omitempty"`

	// Version increases by one on every committed mutation.
	Version uint64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeviceKey is the map key form of a device id.
func DeviceKey(id []byte) string {
	return hex.EncodeToString(id)
}

// Fingerprint derives a task id from the original request payload. Identical
// requests map to the same task, making creation idempotent.
func Fingerprint(request []byte) []byte {
	sum := sha256.Sum256(request)
	return sum[:]
}

// IsParticipant reports whether the device belongs to the quorum-relevant
// set.
func (t *Task) IsParticipant(device []byte) bool {
	for _, p := range t.Participants {
		if bytes.Equal(p, device) {
			return true
		}
	}
	return false
}

func (t *Task) isActive(device []byte) bool {
	for _, p := range t.Active {
		if bytes.Equal(p, device) {
			return true
		}
	}
	return false
}

// ActiveShares is the number of round-roster slots the device controls. A
// device listed twice in a group holds two shares and submits two data per
// round.
func (t *Task) ActiveShares(device []byte) int {
	n := 0
	for _, p := range t.Active {
		if bytes.Equal(p, device) {
			n++
		}
	}
	return n
}

// activeDeviceCount is the number of distinct devices in the round roster,
// which is the number of inbox entries that complete a round.
func (t *Task) activeDeviceCount() int {
	seen := make(map[string]struct{}, len(t.Active))
	for _, p := range t.Active {
		seen[DeviceKey(p)] = struct{}{}
	}
	return len(seen)
}

// ShareCount returns the number of shares the device controls in this task.
func (t *Task) ShareCount(device []byte) int {
	n := 0
	for _, p := range t.Participants {
		if bytes.Equal(p, device) {
			n++
		}
	}
	return n
}

// AcceptCount is the number of recorded accept decisions.
func (t *Task) AcceptCount() uint32 {
	var n uint32
	for _, accept := range t.Decisions {
		if accept {
			n++
		}
	}
	return n
}

// RejectCount is the number of recorded reject decisions.
func (t *Task) RejectCount() uint32 {
	var n uint32
	for _, accept := range t.Decisions {
		if !accept {
			n++
		}
	}
	return n
}

// Quorum is the accept count required to start running: every participant
// for group formation, the threshold otherwise.
func (t *Task) Quorum() uint32 {
	if t.Type == TypeGroup {
		return uint32(len(t.Participants))
	}
	return t.Threshold
}

// WorkFor assembles the device's inbound payloads for the current round: the
// previous round's submissions from all other active participants, in share
// order.
func (t *Task) WorkFor(device []byte) [][]byte {
	if t.State != Running || len(t.Relay) == 0 {
		return nil
	}
	key := DeviceKey(device)
	seen := make(map[string]struct{}, len(t.Active))
	var work [][]byte
	for _, p := range t.Active {
		pk := DeviceKey(p)
		if pk == key {
			continue
		}
		if _, dup := seen[pk]; dup {
			continue
		}
		seen[pk] = struct{}{}
		work = append(work, t.Relay[pk]...)
	}
	return work
}

// Clone returns a deep copy safe to hand outside the engine's lock.
func (t *Task) Clone() *Task {
	copied := *t
	copied.ID = append([]byte(nil), t.ID...)
	copied.GroupID = append([]byte(nil), t.GroupID...)
	copied.Participants = cloneIDs(t.Participants)
	copied.Active = cloneIDs(t.Active)
	copied.Decisions = cloneBoolMap(t.Decisions)
	copied.Acknowledged = cloneBoolMap(t.Acknowledged)
	copied.Inbox = cloneDataMap(t.Inbox)
	copied.Relay = cloneDataMap(t.Relay)
	copied.Request = append([]byte(nil), t.Request...)
	copied.Result = append([]byte(nil), t.Result...)
	return &copied
}

func cloneIDs(ids [][]byte) [][]byte {
	if ids == nil {
		return nil
	}
	out := make([][]byte, len(ids))
	for i, id := range ids {
		out[i] = append([]byte(nil), id...)
	}
	return out
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneDataMap(m map[string][][]byte) map[string][][]byte {
	if m == nil {
		return nil
	}
	out := make(map[string][][]byte, len(m))
	for k, entries := range m {
		copied := make([][]byte, len(entries))
		for i, e := range entries {
			copied[i] = append([]byte(nil), e...)
		}
		out[k] = copied
	}
	return out
}
