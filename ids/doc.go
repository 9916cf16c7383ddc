// Package ids implements iterative-deepening depth-first tree search (IDTS)
// over a search.Problem.
//
// The engine runs a depth-limited DFS for each ceiling 0, 1, …, MaxDepth.
// Each iteration uses an explicit LIFO stack of frames instead of recursion,
// so deep ceilings never grow the goroutine stack and the ceiling is checked
// per frame. Children are pushed in reverse so they are popped in the order
// the problem produced them.
//
// Counters accumulate across iterations: a state is counted every time it is
// popped, in every iteration. The first expansions are recorded once, from the
// first iteration onwards, and never overwritten.
//
// Depth is not cost. When step costs differ, the first goal found is the
// shallowest one, not necessarily the cheapest; IDTS trades optimality for
// memory linear in the depth ceiling. Use ucs.GraphSearch when cost matters.
//
// Options:
//
//   - search.WithMaxDepth(n)         largest ceiling tried (default search.DefaultMaxDepth).
//   - search.WithMaxExpansions(n)    expansion ceiling across all iterations.
//   - search.WithTimeLimit(d)        wall-clock ceiling across all iterations.
//
// A cutoff in any iteration aborts the whole search and is reported as a
// cutoff, never as exhaustion of MaxDepth.
package ids
