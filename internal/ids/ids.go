// Package ids generates the short random identifiers the registries hand
// out. Member and contract ids are 6 characters of uppercase letters and
// digits; item ids are 8 decimal digits. Uniqueness is the caller's problem:
// registries probe with a fresh id until it misses their table.
package ids

import (
	"math/rand"
	"strings"
	"time"
)

const (
	alnumChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digitChars = "0123456789"

	memberIDLen   = 6
	contractIDLen = 6
	itemIDLen     = 8
)

// Generator produces random ids from a single source. It is not safe for
// concurrent use; the ledger service serializes access behind its lock.
type Generator struct {
	rnd *rand.Rand
}

// New returns a generator seeded from the wall clock.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a generator with a fixed seed so tests can reproduce the
// exact id sequence.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// MemberID returns a 6-character uppercase alphanumeric id.
func (g *Generator) MemberID() string {
	return g.pick(alnumChars, memberIDLen)
}

// ContractID returns a 6-character uppercase alphanumeric id.
func (g *Generator) ContractID() string {
	return g.pick(alnumChars, contractIDLen)
}

// ItemID returns an 8-digit id.
func (g *Generator) ItemID() string {
	return g.pick(digitChars, itemIDLen)
}

func (g *Generator) pick(chars string, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(chars[g.rnd.Intn(len(chars))])
	}
	return sb.String()
}
