package driver

import (
	"fmt"
	"sort"
	"sync"

	"gitlab.com/d21d3q/gobookoo/internal/frame"
	"gitlab.com/d21d3q/gobookoo/internal/record"
)

// FailurePolicy tells the dispatcher what to do with a decoder error.
type FailurePolicy int

const (
	// FailHard surfaces decoder errors to the caller.
	FailHard FailurePolicy = iota
	// FailSoft downgrades decoder errors to an undecoded passthrough.
	FailSoft
)

// Priorities of the built-in formats. Lower values are matched first.
const (
	PriorityUltra = 10
	PriorityMini  = 20
)

// Driver decodes frames of one wire format.
type Driver interface {
	Name() string
	Format() frame.Format
	Match(raw []byte) bool
	Decode(raw []byte) (*record.Message, error)
}

// Entry is a registered driver along with its dispatch rules.
type Entry struct {
	Priority int
	Failure  FailurePolicy
	Driver   Driver
}

var (
	regMu    sync.RWMutex
	registry []Entry
)

// Register stores a driver entry in memory.
func Register(e Entry) {
	regMu.Lock()
	defer regMu.Unlock()
	registry = append(registry, e)
	sort.SliceStable(registry, func(i, j int) bool {
		return registry[i].Priority < registry[j].Priority
	})
}

// Registered returns a snapshot of the registry in match order.
func Registered() []Entry {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the first entry, in priority order, whose driver matches raw.
func Lookup(entries []Entry, raw []byte) (Entry, error) {
	for _, e := range entries {
		if e.Driver.Match(raw) {
			return e, nil
		}
	}
	if len(raw) >= 2 {
		return Entry{}, fmt.Errorf("driver not found for markers 0x%02X 0x%02X", raw[0], raw[1])
	}
	return Entry{}, fmt.Errorf("driver not found for %d-byte frame", len(raw))
}
