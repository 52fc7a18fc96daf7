// Package identity maintains the registry of enrolled devices. A device is
// identified by the SHA-256 fingerprint of its certificate public key; the
// certificate itself is issued by the coordinator CA from a device-submitted
// CSR.
package identity

import (
	"errors"
	"time"
	"unicode"
)

// Kind distinguishes interactive user devices from unattended bots.
type Kind int

const (
	KindUser Kind = iota
	KindBot
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindBot:
		return "bot"
	default:
		return "unknown"
	}
}

var (
	// ErrIdentityConflict is returned when registering a device whose derived
	// id already exists.
	ErrIdentityConflict = errors.New("identity already registered")

	// ErrUnauthorized is returned when a presented certificate is unknown,
	// expired, or not issued by the coordinator CA.
	ErrUnauthorized = errors.New("unauthorized device")

	// ErrUnknownDevice is returned when an operation references a device id
	// that is not in the registry.
	ErrUnknownDevice = errors.New("unknown device")

	// ErrInvalidName is returned for device names that are empty, too long,
	// or contain punctuation/control characters.
	ErrInvalidName = errors.New("invalid device name")
)

// Identity is a validated, enrolled device.
type Identity struct {
	ID          []byte    `json:"id"`
	Name        string    `json:"name"`
	Kind        Kind      `json:"kind"`
	Certificate []byte    `json:"certificate"`
	LastActive  time.Time `json:"last_active"`
}

const maxNameLength = 64

// ValidName rejects names longer than 64 characters or containing
// punctuation/control characters.
func ValidName(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 || len(runes) > maxNameLength {
		return false
	}
	for _, r := range runes {
		if unicode.IsControl(r) || asciiPunct(r) {
			return false
		}
	}
	return true
}

func asciiPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}
