// Package search holds the pieces every uninformed search engine in unisearch
// shares: the Problem contract, immutable search nodes, the uniform Result
// record, resource budgets, tie-break sequencing and path reconstruction.
//
// Overview:
//
//   - Problem[S, A] is the only thing a caller implements. S must be comparable
//     so that states can key the best-cost map of graph search; A is any action label.
//   - Successors are produced as an iter.Seq, a finite stream that engines consume
//     exactly once per expansion and never re-iterate.
//   - Node[S, A] is an immutable record linked to its parent; chains are acyclic
//     because nodes are never re-parented.
//   - Run[S, A] owns all per-invocation state (counters, first expansions, the
//     tie-break sequencer and the start time) and packages the final Result.
//
// Engines:
//
//	ucs.GraphSearch  – uniform-cost search with best-known-cost dominance pruning.
//	ucs.TreeSearch   – uniform-cost search without pruning (baseline).
//	ids.Search       – iterative-deepening depth-first tree search.
//
// Outcomes:
//
//   - Solved:    Result.Found == true, Solution holds start→goal actions (empty when
//     the start state is already a goal) and Cost equals the goal node's own cost.
//   - Exhausted: Result.Found == false, Cutoff == false. No goal is reachable
//     (or, for iterative deepening, none within the maximum depth).
//   - Cutoff:    Result.Cutoff == true. A resource ceiling was reached before the
//     engine could decide; nothing is claimed about solvability.
//
// Budgets are checked once per node pop, immediately before the pop. Work inside
// a single expansion is never preempted.
//
// Contract violations (negative or NaN step costs, reconstructing a nil node)
// panic with a wrapped sentinel error; they are programming errors, not outcomes.
//
// Thread safety:
//
//   - Every engine call builds its own Run, frontier and maps, so concurrent calls
//     need no coordination as long as the Problem value itself is safe to read
//     concurrently.
package search
