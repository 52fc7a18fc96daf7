// Package group maintains the registry of established threshold groups.
// Groups are created exclusively by a finished group-formation task and are
// immutable afterwards; member order is fixed at creation and defines each
// device's share index.
package group

import (
	"bytes"
	"errors"
)

// Protocol is the threshold protocol a group runs.
type Protocol int

const (
	GG18 Protocol = iota
	ElGamal
	Frost
	Musig2
)

func (p Protocol) String() string {
	switch p {
	case GG18:
		return "gg18"
	case ElGamal:
		return "elgamal"
	case Frost:
		return "frost"
	case Musig2:
		return "musig2"
	default:
		return "unknown"
	}
}

// KeyType declares what an established group key is used for.
type KeyType int

const (
	SignPDF KeyType = iota
	SignChallenge
	Decrypt
)

func (k KeyType) String() string {
	switch k {
	case SignPDF:
		return "sign_pdf"
	case SignChallenge:
		return "sign_challenge"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// SupportsKeyType reports whether the protocol can serve the key type.
func (p Protocol) SupportsKeyType(k KeyType) bool {
	switch p {
	case GG18:
		return k == SignPDF || k == SignChallenge
	case ElGamal:
		return k == Decrypt
	case Frost, Musig2:
		return k == SignChallenge
	default:
		return false
	}
}

var (
	// ErrInvalidGroupSpec is returned when a requested group violates the
	// threshold or membership invariants.
	ErrInvalidGroupSpec = errors.New("invalid group spec")

	// ErrGroupNotFound is returned when a group id is unknown.
	ErrGroupNotFound = errors.New("group not found")
)

// Group is an established set of devices sharing a threshold key. The ID is
// the protocol-produced group key identifier and is opaque here.
type Group struct {
	ID        []byte   `json:"id"`
	Name      string   `json:"name"`
	Threshold uint32   `json:"threshold"`
	Protocol  Protocol `json:"protocol"`
	KeyType   KeyType  `json:"key_type"`
	Members   [][]byte `json:"members"`
	Note      string   `json:"note,omitempty"`
}

// Contains reports whether the device is a member.
func (g *Group) Contains(device []byte) bool {
	return g.ShareIndex(device) >= 0
}

// ShareIndex returns the device's position in the member ordering, or -1.
// Per-round protocol data is aligned by this index.
func (g *Group) ShareIndex(device []byte) int {
	for i, m := range g.Members {
		if bytes.Equal(m, device) {
			return i
		}
	}
	return -1
}
