package mcts

import "math"

// UctScore rates a child with 'visits' and 'wins' under a parent with
// 'parentVisits', using exploration constant c:
//
//	wins/visits + c * sqrt(ln(parentVisits)/visits)
//
// An unvisited child scores +Inf, which forces every child to be tried
// once before any sibling is revisited (the textbook formula would divide
// by zero there).
func UctScore(visits, wins, parentVisits int, c float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}

	exploitation := float64(wins) / float64(visits)
	exploration := c * math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
	return exploitation + exploration
}

// UctSelect performs one descent step from 'h'. If the node has no children
// the descent is finished, otherwise it returns the child with the highest
// UCT score and the action leading to it. Ties break to the earliest
// inserted child, so the choice is deterministic.
func (t *Tree[T, S]) UctSelect(h NodeHandle, c float64) Selection[T] {
	node := t.Node(h)
	if node.NumChildren() == 0 {
		return Selection[T]{Node: h, Finished: true}
	}

	var (
		bestAction T
		bestChild  NodeHandle
		bestScore  = math.Inf(-1)
	)

	for _, action := range node.ChildActions() {
		childHandle, _ := node.Child(action)
		child := t.Node(childHandle)

		score := UctScore(child.Visits, child.Wins, node.Visits, c)
		if score > bestScore {
			bestScore = score
			bestChild = childHandle
			bestAction = action
		}
	}

	return Selection[T]{Node: bestChild, Action: bestAction}
}
