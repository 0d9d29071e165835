package order

import (
	"context"
	"slices"
)

// NameFunc returns the unique name of an item.
type NameFunc[T any] func(T) string

// RefsFunc returns the names an item depends on, in declaration order.
type RefsFunc[T any] func(T) []string

// Sort returns items rearranged so that every item comes after all items it
// references, directly or transitively. Items already placed after their
// dependencies are not moved, so an input that is already in dependency order
// is returned unchanged.
//
// Sort returns [*UnknownReferenceError] if an item references a name that is
// not in items, [*DuplicateNameError] if two items share a name, and
// [*CycleError] listing every distinct cycle if no order exists. It never
// returns a partial order.
//
// The returned slice is newly allocated; items is not modified.
func Sort[T any](items []T, name NameFunc[T], refs RefsFunc[T]) ([]T, error) {
	return SortContext(context.Background(), items, name, refs)
}

// SortContext is like [Sort] but stops enumerating cycles once ctx is done,
// returning ctx's error. The number of distinct cycles can grow
// exponentially with densely cross-referenced input, so callers serving
// untrusted input should pass a context with a deadline.
func SortContext[T any](ctx context.Context, items []T, name NameFunc[T], refs RefsFunc[T]) ([]T, error) {
	switch {
	case len(items) == 0:
		return []T{}, nil
	case len(items) == 1 && len(refs(items[0])) == 0:
		return slices.Clone(items), nil
	}

	g, err := build(items, name, refs)
	if err != nil {
		return nil, err
	}
	if !g.closeOver() {
		cycles, err := g.findCycles(ctx)
		if err != nil {
			return nil, err
		}
		return nil, &CycleError{Cycles: cycles}
	}
	return g.order(), nil
}

// Names projects items to their names, preserving order.
func Names[T any](items []T, name NameFunc[T]) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = name(it)
	}
	return names
}

// Strings sorts bare names using a reference map: refs[name] lists the names
// that name depends on. Names missing from refs have no references.
func Strings(names []string, refs map[string][]string) ([]string, error) {
	return Sort(names,
		func(s string) string { return s },
		func(s string) []string { return refs[s] },
	)
}
