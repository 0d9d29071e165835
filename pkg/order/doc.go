// Package order sorts named, cross-referencing items into dependency order.
//
// # Overview
//
// Release metadata is a list of records (changes, modules, issues) where each
// record has a unique name and may reference other records by name. [Sort]
// returns the records rearranged so that every record appears after
// everything it references, while moving as little as possible: records that
// are already placed after their dependencies keep their input position
// relative to each other.
//
//	sorted, err := order.Sort(items,
//	    func(it Item) string { return it.Name },
//	    func(it Item) []string { return it.Requires },
//	)
//
// The projections decouple the algorithm from any item shape; the payload is
// never inspected.
//
// # Outcomes
//
// Sort has exactly three outcomes:
//
//   - success: a freshly allocated slice in dependency order
//   - [*UnknownReferenceError]: an item references a name missing from the input
//   - [*CycleError]: the references form one or more cycles; every distinct
//     cycle is reported, deterministically ordered
//
// A cycle is an expected result that callers present to a human, not a fatal
// condition. Sort never breaks an edge to produce a partial order.
//
// # Algorithm
//
// Sort builds an index arena of nodes, computes the transitive closure of
// every node with an iterative depth-first walk (aborting as soon as a node
// reaches itself), then seeds a circular doubly linked list in input order
// and, for every node A and every B in A's closure, relocates A directly after
// B unless A already follows B. Enforcing the full closure rather than direct
// edges makes the result independent of the order constraints are applied in.
//
// When the closure walk finds a cycle, Johnson's circuit search enumerates
// every elementary cycle, starting each one from its earliest input member
// and blocking nodes that cannot lead back to the start. [SortContext] bounds
// that search with a context. Cycles are identified by
// their sorted member names, so rotations of the same chain are reported
// once, and are ordered by size and then by member names.
//
// # Concurrency
//
// Sort holds no shared state. Concurrent calls are safe as long as the
// callers do not mutate the input slices while sorting.
package order
