// Package unisearch is a small toolkit for uninformed state-space search:
// cost-ordered and depth-ordered exploration of any problem that can name its
// goal states and enumerate successors.
//
// 🚀 What is inside?
//
//   - search/   Problem contract, Node/Result types, budgets, options, path reconstruction
//   - ucs/      uniform-cost tree search (UCTS) and graph search (UCGS)
//   - ids/      iterative-deepening depth-first tree search (IDTS)
//   - vacuum/   the grid vacuum world, a ready-made benchmark problem
//   - cmd/unisearch  CLI that runs every engine on configured instances
//
// ✨ Guarantees
//
//   - Deterministic: equal-cost ties break by push order, successors are
//     consumed in problem order.
//   - Bounded: every run stops at an expansion ceiling or a wall-clock ceiling
//     and reports the cutoff instead of failing.
//   - Generic: states are any comparable type, actions any type.
//
// Quick example:
//
//	w, _ := vacuum.NewWorld(4, 5, vacuum.DefaultCosts())
//	start, _ := w.State(2, 2, vacuum.Cell{Row: 1, Col: 2})
//	res, _ := ucs.GraphSearch[vacuum.State, vacuum.Action](w, start)
//	fmt.Println(res.Solution, res.Cost)
//
//	go install github.com/katalvlaran/unisearch/cmd/unisearch@latest
package unisearch
