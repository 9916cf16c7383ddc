// Package ucs implements uniform-cost search over a search.Problem in two
// flavours that share one frontier discipline.
//
// Overview:
//
//   - The frontier is a min-heap keyed on (Cost, TieID). Cost is the path cost
//     g(n); TieID is issued by the run's sequencer, so equal-cost nodes leave
//     the frontier in creation order and states never need to be ordered.
//   - GraphSearch keeps a best-cost map from state to the cheapest g seen so far.
//     A successor is pushed only if it strictly improves that map (dominance
//     pruning). Popped nodes whose cost exceeds the map entry are stale: a cheaper
//     path was queued after them. They are discarded and not counted as expansions.
//   - TreeSearch pushes every successor unconditionally and may expand a state
//     many times. It is the baseline against which pruning is measured.
//
// Correctness:
//
//   - With non-negative step costs pop order is non-decreasing in cost, so the
//     first goal popped is cost-optimal in both flavours.
//   - An empty frontier means no goal is reachable. Reaching a ceiling yields
//     a cutoff and claims nothing.
//
// Complexity (b = branching factor, C* = optimal cost, ε = smallest step cost):
//
//   - GraphSearch: O((V + E) log V) time, O(V + E) memory over the reachable graph,
//     using the lazy decrease-key strategy (stale entries stay in the heap).
//   - TreeSearch:  O(b^(1+⌊C*/ε⌋)) time and memory; unbounded on cyclic graphs
//     without a budget.
//
// Example:
//
//	res, err := ucs.GraphSearch[State, Action](world, start, search.WithMaxExpansions(1e6))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Println(res.Solution, res.Cost)
//	}
package ucs
