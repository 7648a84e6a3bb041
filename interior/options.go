package interior

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/pipeloop/pipe"
)

// EdgeClass selects which loop tiles count as vertical edges during a row scan.
type EdgeClass uint8

const (
	// EdgesDown treats '|', 'F' and '7' as vertical edges.
	EdgesDown EdgeClass = iota
	// EdgesUp treats '|', 'L' and 'J' as vertical edges.
	EdgesUp
)

// ParseEdgeClass maps "down" or "up" (case-insensitive) to an EdgeClass.
func ParseEdgeClass(s string) (EdgeClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "down":
		return EdgesDown, nil
	case "up":
		return EdgesUp, nil
	}
	return EdgesDown, fmt.Errorf("interior: unknown edge class %q (want \"down\" or \"up\")", s)
}

// direction is the direction every member of the class offers.
func (c EdgeClass) direction() pipe.Direction {
	if c == EdgesUp {
		return pipe.Up
	}
	return pipe.Down
}

// Symbols returns the catalog connectors that belong to the class.
func (c EdgeClass) Symbols() []rune {
	var out []rune
	for _, r := range pipe.Symbols() {
		s, _ := pipe.Lookup(r)
		if s.Len() == 2 && s.Has(c.direction()) {
			out = append(out, r)
		}
	}
	return out
}

func (c EdgeClass) String() string {
	if c == EdgesUp {
		return "up"
	}
	return "down"
}

// Option configures Count.
type Option func(*Options)

// Options holds the tunable parameters of Count.
type Options struct {
	// Ctx allows cancelling a concurrent scan; defaults to context.Background().
	Ctx context.Context

	// Edges chooses the vertical-edge class. Default EdgesDown.
	Edges EdgeClass

	// Workers is the number of rows scanned concurrently. Values below 2
	// scan sequentially. Default 1.
	Workers int
}

// DefaultOptions returns Options with a background context, EdgesDown and a
// sequential scan.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Edges:   EdgesDown,
		Workers: 1,
	}
}

// WithContext sets the context checked between rows.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEdgeClass selects the vertical-edge class.
func WithEdgeClass(c EdgeClass) Option {
	return func(o *Options) {
		o.Edges = c
	}
}

// WithWorkers scans up to n rows concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}
