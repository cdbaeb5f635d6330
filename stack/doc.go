// Package stack implements a generic last-in-first-out container backed by
// a singly-linked chain of owned nodes.
//
// What:
//
//   - Stack[T]: push, pop, peek, clear, size and emptiness queries.
//   - Clone: deep copy with an independent node chain, so that mutating the
//     copy never affects the original and vice versa.
//   - Values / Equal: ordered snapshots and sequence comparison.
//
// Why:
//
//   - Depth-first frontiers (see package maze) where the top is the most
//     recently entered, still-open cell.
//   - Handing out a solution to callers without exposing internal state.
//
// Complexity:
//
//   - Push, Pop, Peek, Len, IsEmpty, Clear: O(1).
//   - Clone, Values, Equal:                 O(n), Memory O(n).
//
// Errors:
//
//   - ErrEmpty: Pop or Peek on a stack with no elements.
//
// The zero value is an empty stack ready for use. A Stack is not safe for
// concurrent use without external synchronization.
package stack
