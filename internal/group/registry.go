package group

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SPXcz/meesign-server/internal/identity"
)

// DeviceIndex is the slice of the identity registry the group registry needs
// for membership validation.
type DeviceIndex interface {
	Exists(id []byte) bool
}

// Store is the persistence contract for established groups.
type Store interface {
	SaveGroup(g *Group) error
	ListGroups() ([]*Group, error)
}

// Registry holds every established group. Creation is append-only; there is
// no update path.
type Registry struct {
	devices DeviceIndex
	store   Store
	log     *slog.Logger

	mu     sync.RWMutex
	groups map[string]*Group
}

func NewRegistry(devices DeviceIndex, store Store) (*Registry, error) {
	groups, err := store.ListGroups()
	if err != nil {
		return nil, fmt.Errorf("hydrate groups: %w", err)
	}
	byID := make(map[string]*Group, len(groups))
	for _, g := range groups {
		byID[string(g.ID)] = g
	}
	return &Registry{
		devices: devices,
		store:   store,
		log:     slog.With("component", "group-registry"),
		groups:  byID,
	}, nil
}

// Create validates and persists a new group. The id is the protocol-produced
// group key identifier handed over by the orchestration engine.
func (r *Registry) Create(id []byte, name string, members [][]byte, threshold uint32, protocol Protocol, keyType KeyType, note string) (*Group, error) {
	if err := ValidateSpec(name, members, threshold, protocol, keyType); err != nil {
		return nil, err
	}
	if len(id) == 0 {
		return nil, fmt.Errorf("%w: empty group id", ErrInvalidGroupSpec)
	}
	for _, m := range members {
		if !r.devices.Exists(m) {
			return nil, fmt.Errorf("member %s: %w", hex.EncodeToString(m), identity.ErrUnknownDevice)
		}
	}

	g := &Group{
		ID:        append([]byte(nil), id...),
		Name:      name,
		Threshold: threshold,
		Protocol:  protocol,
		KeyType:   keyType,
		Members:   copyMembers(members),
		Note:      note,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.groups[string(g.ID)]; exists {
		return nil, fmt.Errorf("group %s: %w", hex.EncodeToString(g.ID), ErrInvalidGroupSpec)
	}
	if err := r.store.SaveGroup(g); err != nil {
		return nil, fmt.Errorf("persist group: %w", err)
	}
	r.groups[string(g.ID)] = g
	r.log.Info("group established",
		"id", hex.EncodeToString(g.ID),
		"name", name,
		"threshold", threshold,
		"members", len(members),
		"protocol", protocol.String())
	return g, nil
}

// ValidateSpec checks the group invariants without touching the registry:
// a valid name, 1 ≤ threshold ≤ |members|, no duplicate members, and a
// protocol/key-type pairing the protocol supports.
func ValidateSpec(name string, members [][]byte, threshold uint32, protocol Protocol, keyType KeyType) error {
	if !identity.ValidName(name) {
		return fmt.Errorf("%w: invalid name %q", ErrInvalidGroupSpec, name)
	}
	if len(members) == 0 {
		return fmt.Errorf("%w: no members", ErrInvalidGroupSpec)
	}
	if threshold < 1 || threshold > uint32(len(members)) {
		return fmt.Errorf("%w: threshold %d outside [1,%d]", ErrInvalidGroupSpec, threshold, len(members))
	}
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if len(m) == 0 {
			return fmt.Errorf("%w: empty member id", ErrInvalidGroupSpec)
		}
		if _, dup := seen[string(m)]; dup {
			return fmt.Errorf("%w: duplicate member %s", ErrInvalidGroupSpec, hex.EncodeToString(m))
		}
		seen[string(m)] = struct{}{}
	}
	if !protocol.SupportsKeyType(keyType) {
		return fmt.Errorf("%w: protocol %s does not support key type %s", ErrInvalidGroupSpec, protocol, keyType)
	}
	return nil
}

// Get returns the group with the given id.
func (r *Registry) Get(id []byte) (*Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.groups[string(id)]
	if !ok {
		return nil, fmt.Errorf("group %s: %w", hex.EncodeToString(id), ErrGroupNotFound)
	}
	return g.clone(), nil
}

// List returns all groups; with a non-empty device filter, only groups the
// device is a member of.
func (r *Registry) List(device []byte) []*Group {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Group, 0, len(r.groups))
	for _, g := range r.groups {
		if len(device) > 0 && !g.Contains(device) {
			continue
		}
		out = append(out, g.clone())
	}
	return out
}

func (g *Group) clone() *Group {
	copied := *g
	copied.ID = append([]byte(nil), g.ID...)
	copied.Members = copyMembers(g.Members)
	return &copied
}

func copyMembers(members [][]byte) [][]byte {
	out := make([][]byte, len(members))
	for i, m := range members {
		out[i] = append([]byte(nil), m...)
	}
	return out
}
