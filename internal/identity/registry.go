package identity

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Store is the persistence contract for enrolled devices.
type Store interface {
	SaveDevice(d *Identity) error
	ListDevices() ([]*Identity, error)
}

// Registry holds every enrolled device, hydrated from the store at startup.
// Reads vastly outnumber writes; a RWMutex over an id-keyed map is enough.
type Registry struct {
	ca    CA
	store Store
	log   *slog.Logger

	mu      sync.RWMutex
	devices map[string]*Identity
}

func NewRegistry(ca CA, store Store) (*Registry, error) {
	devices, err := store.ListDevices()
	if err != nil {
		return nil, fmt.Errorf("hydrate devices: %w", err)
	}
	byID := make(map[string]*Identity, len(devices))
	for _, d := range devices {
		byID[string(d.ID)] = d
	}
	return &Registry{
		ca:      ca,
		store:   store,
		log:     slog.With("component", "identity-registry"),
		devices: byID,
	}, nil
}

// Register issues a certificate for the CSR and enrolls the device. The
// derived id must be new; re-registration fails with ErrIdentityConflict.
func (r *Registry) Register(name string, kind Kind, csr []byte) (*Identity, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("device name %q: %w", name, ErrInvalidName)
	}

	cert, err := r.ca.SignCSR(csr, name)
	if err != nil {
		return nil, fmt.Errorf("sign CSR: %w", err)
	}
	id, err := Fingerprint(cert)
	if err != nil {
		return nil, fmt.Errorf("derive device id: %w", err)
	}

	device := &Identity{
		ID:          id,
		Name:        name,
		Kind:        kind,
		Certificate: cert,
		LastActive:  time.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.devices[string(id)]; exists {
		return nil, fmt.Errorf("device %s: %w", hex.EncodeToString(id), ErrIdentityConflict)
	}
	if err := r.store.SaveDevice(device); err != nil {
		return nil, fmt.Errorf("persist device: %w", err)
	}
	r.devices[string(id)] = device
	r.log.Info("device registered", "id", hex.EncodeToString(id), "name", name, "kind", kind.String())
	return device, nil
}

// Authenticate resolves a presented DER certificate to a device id,
// refreshing its liveness timestamp.
func (r *Registry) Authenticate(cert []byte) ([]byte, error) {
	if err := r.ca.Verify(cert); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	id, err := Fingerprint(cert)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	r.mu.RLock()
	_, known := r.devices[string(id)]
	r.mu.RUnlock()
	if !known {
		return nil, fmt.Errorf("device %s: %w", hex.EncodeToString(id), ErrUnauthorized)
	}

	r.Touch(id)
	return id, nil
}

// Touch refreshes a device's last-active timestamp. Unknown ids are logged
// and ignored; liveness is best effort.
func (r *Registry) Touch(id []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	device, ok := r.devices[string(id)]
	if !ok {
		r.log.Warn("touch of unknown device", "id", hex.EncodeToString(id))
		return
	}
	device.LastActive = time.Now().UTC()
	if err := r.store.SaveDevice(device); err != nil {
		r.log.Warn("persist liveness", "id", hex.EncodeToString(id), "err", err)
	}
}

// Get returns the device with the given id.
func (r *Registry) Get(id []byte) (*Identity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.devices[string(id)]
	if !ok {
		return nil, false
	}
	copied := *d
	return &copied, true
}

// Exists reports whether the id belongs to an enrolled device.
func (r *Registry) Exists(id []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.devices[string(id)]
	return ok
}

// List returns all enrolled devices sorted by name.
func (r *Registry) List() []*Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Identity, 0, len(r.devices))
	for _, d := range r.devices {
		copied := *d
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
