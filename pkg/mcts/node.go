package mcts

// NodeHandle is an opaque, stable reference to a node inside a Tree's arena.
// Handles stay valid for the whole life of the tree, nodes are never removed
// during a search.
type NodeHandle int32

// NoNode marks the absence of a parent (only the root has it)
const NoNode NodeHandle = -1

// Single node of the search tree. Wins counts playouts won by the searching
// player, so 0 <= Wins <= Visits always holds.
type Node[T MoveLike] struct {
	Parent NodeHandle
	Visits int
	Wins   int

	// children is keyed by action, actions keeps the insertion order so
	// every iteration over children is deterministic (map order is not)
	children map[T]NodeHandle
	actions  []T
}

// Handle of the child reached by 'action'
func (n *Node[T]) Child(action T) (NodeHandle, bool) {
	h, ok := n.children[action]
	return h, ok
}

// Actions with materialized children, in insertion order.
// Empty until the node is expanded, a terminal node stays empty for life.
func (n *Node[T]) ChildActions() []T {
	return n.actions
}

func (n *Node[T]) NumChildren() int {
	return len(n.actions)
}

// Tree is an arena of nodes plus the root handle and the root state.
// The arena keeps the inner loop allocation-dense and lets nodes refer to
// each other with handles instead of pointers.
type Tree[T MoveLike, S any] struct {
	nodes     []Node[T]
	root      NodeHandle
	rootState S
}

// Create a tree with a single unvisited root node holding 'rootState'
func NewTree[T MoveLike, S any](rootState S) *Tree[T, S] {
	t := &Tree[T, S]{
		nodes:     make([]Node[T], 0, 64),
		rootState: rootState,
	}
	t.root = t.insert(Node[T]{Parent: NoNode})
	return t
}

func (t *Tree[T, S]) insert(node Node[T]) NodeHandle {
	t.nodes = append(t.nodes, node)
	return NodeHandle(len(t.nodes) - 1)
}

// Get the node behind a handle, the pointer is valid until the next AddChild
func (t *Tree[T, S]) Node(h NodeHandle) *Node[T] {
	return &t.nodes[h]
}

func (t *Tree[T, S]) Root() NodeHandle {
	return t.root
}

func (t *Tree[T, S]) RootState() S {
	return t.rootState
}

// Number of nodes in the arena
func (t *Tree[T, S]) Size() int {
	return len(t.nodes)
}

// Insert a fresh node under 'parent', registered as the child for 'action'
func (t *Tree[T, S]) AddChild(parent NodeHandle, action T) NodeHandle {
	child := t.insert(Node[T]{Parent: parent})
	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[T]NodeHandle)
	}
	p.children[action] = child
	p.actions = append(p.actions, action)
	return child
}
