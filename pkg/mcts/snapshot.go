package mcts

import "slices"

// NodeSnapshot is a serializable copy of a subtree, used by debugging
// sinks (pretty printers, JSON dumps). Taking a snapshot never mutates
// the tree.
type NodeSnapshot[T MoveLike] struct {
	// Action that led to this node, nil for the root
	Action   *T                `json:"action,omitempty"`
	Visits   int               `json:"visits"`
	Wins     int               `json:"wins"`
	Children []NodeSnapshot[T] `json:"children,omitempty"`
}

// Snapshot copies the whole tree into a nested structure, children sorted
// by visits descending (ties keep insertion order)
func (t *Tree[T, S]) Snapshot() NodeSnapshot[T] {
	return t.snapshot(t.root, nil)
}

func (t *Tree[T, S]) snapshot(h NodeHandle, action *T) NodeSnapshot[T] {
	node := t.Node(h)
	snap := NodeSnapshot[T]{
		Action: action,
		Visits: node.Visits,
		Wins:   node.Wins,
	}

	if node.NumChildren() == 0 {
		return snap
	}

	snap.Children = make([]NodeSnapshot[T], 0, node.NumChildren())
	for _, a := range node.ChildActions() {
		child, _ := node.Child(a)
		snap.Children = append(snap.Children, t.snapshot(child, &a))
	}

	slices.SortStableFunc(snap.Children, func(a, b NodeSnapshot[T]) int {
		return b.Visits - a.Visits
	})

	return snap
}
