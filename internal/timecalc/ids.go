package timecalc

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// IDGenerator hands out activity identifiers.
type IDGenerator interface {
	NewID() string
}

// GenerateID creates a unique id based on timestamp and random suffix.
func GenerateID(t time.Time) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffix := make([]byte, 5)
	for i := range suffix {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		suffix[i] = chars[n.Int64()]
	}
	return fmt.Sprintf("%s-%s", t.Format("20060102-150405"), string(suffix))
}

// TimestampIDs generates GenerateID-style ids from a Calendar.
type TimestampIDs struct {
	Calendar Calendar
}

// NewID implements IDGenerator.
func (g TimestampIDs) NewID() string {
	return GenerateID(g.Calendar.Now())
}

// SequenceIDs produces "<prefix>1", "<prefix>2", ... Safe for concurrent use.
type SequenceIDs struct {
	Prefix string
	n      atomic.Int64
}

// NewID implements IDGenerator.
func (g *SequenceIDs) NewID() string {
	return fmt.Sprintf("%s%d", g.Prefix, g.n.Add(1))
}

// UUIDs generates random RFC 4122 ids.
type UUIDs struct{}

// NewID implements IDGenerator.
func (UUIDs) NewID() string {
	return uuid.NewString()
}
