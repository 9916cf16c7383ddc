package search

import "fmt"

// Reconstruct walks goal's parent chain back to the root and returns the
// actions and states in start→goal order, plus the total cost.
//
// The root contributes a state but no action, so len(states) == len(actions)+1.
// cost is goal.Cost itself; step costs are never re-summed.
//
// Panics with ErrNilNode if goal is nil.
// Complexity: O(d) time and memory, d = depth of goal.
func Reconstruct[S comparable, A any](goal *Node[S, A]) (actions []A, states []S, cost float64) {
	if goal == nil {
		panic(fmt.Errorf("%w", ErrNilNode))
	}

	// 1) Size the outputs from the chain length so we can fill back to front.
	depth := goal.Depth()
	actions = make([]A, depth)
	states = make([]S, depth+1)

	// 2) Walk towards the root. Index i is the position of n in start→goal order.
	i := depth
	for n := goal; n != nil; n = n.Parent {
		states[i] = n.State
		if n.Parent != nil {
			actions[i-1] = n.Action
		}
		i--
	}

	return actions, states, goal.Cost
}
