package usecase

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

type IDGenerator interface {
	Next() string
}

// CounterIDs hands out prefix-N ids from a monotonically increasing counter.
// Each canvas owns its own counters, so two canvases may produce the same
// ids; they are unique only within one canvas session.
type CounterIDs struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewCounterIDs(prefix string, start int) *CounterIDs {
	return &CounterIDs{
		prefix: prefix,
		next:   start,
	}
}

func (c *CounterIDs) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.prefix + strconv.Itoa(c.next)
	c.next++
	return id
}

type UUIDIDs struct {
	prefix string
}

func NewUUIDIDs(prefix string) *UUIDIDs {
	return &UUIDIDs{prefix: prefix}
}

func (u *UUIDIDs) Next() string {
	return u.prefix + uuid.NewString()
}

type IDStrategy string

const (
	IDCounter IDStrategy = "counter"
	IDUUID    IDStrategy = "uuid"
)

// NewIDGenerator builds a generator for the strategy. start is only used
// by the counter strategy.
func NewIDGenerator(strategy IDStrategy, prefix string, start int) (IDGenerator, error) {
	switch strategy {
	case IDCounter, "":
		return NewCounterIDs(prefix, start), nil
	case IDUUID:
		return NewUUIDIDs(prefix), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
