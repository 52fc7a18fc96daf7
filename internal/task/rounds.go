package task

import (
	"time"

	"github.com/SPXcz/meesign-server/internal/group"
)

// RoundBudget is the fixed number of exchange rounds a protocol needs for
// each task variant. The engine never parses payloads; completing the final
// budgeted round is what finishes a task.
type RoundBudget struct {
	Group   uint32 `yaml:"group"`
	Sign    uint32 `yaml:"sign"`
	Decrypt uint32 `yaml:"decrypt"`
}

// Config carries the engine's orchestration parameters. Zero values fall
// back to defaults, so a partially filled config from file is usable as-is.
type Config struct {
	// MaxAttempts bounds timeout-triggered retries of a round.
	MaxAttempts uint32

	// RoundTimeout is how long an attempt may wait for a complete inbox.
	RoundTimeout time.Duration

	// ProtocolTimeouts overrides RoundTimeout per protocol.
	ProtocolTimeouts map[group.Protocol]time.Duration

	// RoundBudgets overrides the built-in per-protocol round counts.
	RoundBudgets map[group.Protocol]RoundBudget
}

const (
	defaultMaxAttempts  = 3
	defaultRoundTimeout = 2 * time.Minute
)

// defaultBudgets: MuSig2 counts match the reference protocol driver; the
// remaining protocols use their published round structure.
var defaultBudgets = map[group.Protocol]RoundBudget{
	group.GG18:    {Group: 6, Sign: 9},
	group.ElGamal: {Group: 4, Decrypt: 2},
	group.Frost:   {Group: 3, Sign: 3},
	group.Musig2:  {Group: 2, Sign: 3},
}

// DefaultConfig returns the engine defaults used when no configuration file
// is present.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  defaultMaxAttempts,
		RoundTimeout: defaultRoundTimeout,
	}
}

func (c Config) maxAttempts() uint32 {
	if c.MaxAttempts == 0 {
		return defaultMaxAttempts
	}
	return c.MaxAttempts
}

func (c Config) roundTimeout(p group.Protocol) time.Duration {
	if d, ok := c.ProtocolTimeouts[p]; ok && d > 0 {
		return d
	}
	if c.RoundTimeout > 0 {
		return c.RoundTimeout
	}
	return defaultRoundTimeout
}

func (c Config) lastRound(p group.Protocol, t Type) uint32 {
	budget, ok := c.RoundBudgets[p]
	if !ok {
		budget = defaultBudgets[p]
	}
	var rounds uint32
	switch t {
	case TypeGroup:
		rounds = budget.Group
	case TypeSignPDF, TypeSignChallenge:
		rounds = budget.Sign
	case TypeDecrypt:
		rounds = budget.Decrypt
	}
	if rounds == 0 {
		if fallback, ok := defaultBudgets[p]; ok {
			switch t {
			case TypeGroup:
				rounds = fallback.Group
			case TypeSignPDF, TypeSignChallenge:
				rounds = fallback.Sign
			case TypeDecrypt:
				rounds = fallback.Decrypt
			}
		}
	}
	if rounds == 0 {
		rounds = 1
	}
	return rounds
}
