// Package idgen derives the next integer identifier for a collection by
// scanning for the current maximum. This is the only identity-generation
// strategy available without a central sequence service: the scan does not
// reserve the returned value, so two concurrent callers against the same
// collection can allocate the same id. Known gap, carried deliberately.
package idgen

import (
	"context"

	"github.com/meridianmobile/careline/internal/store"
	"go.uber.org/fx"
)

// Module provides the sequential allocator.
var Module = fx.Module("idgen",
	fx.Provide(func(c *store.Client) MaxScanner { return c }),
	fx.Provide(New),
)

// MaxScanner reports the current maximum of a numeric field in a
// collection, or false when the collection is empty.
type MaxScanner interface {
	MaxValue(ctx context.Context, container, field string) (int64, bool, error)
}

// Sequence allocates the next identifier for a collection.
type Sequence interface {
	NextID(ctx context.Context, container, field string) (int64, error)
}

type Allocator struct {
	scanner MaxScanner
}

// New returns a scan-based Sequence.
func New(scanner MaxScanner) Sequence {
	return &Allocator{scanner: scanner}
}

// NextID returns current_maximum(field)+1, or 1 when the collection is
// empty. Read-only: the caller persists the record under the returned id.
func (a *Allocator) NextID(ctx context.Context, container, field string) (int64, error) {
	max, ok, err := a.scanner.MaxValue(ctx, container, field)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	return max + 1, nil
}
