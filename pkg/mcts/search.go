package mcts

// This function only resets the counters and the stop flag,
// doesn't actually run the search
func (m *MCTS[T, S]) setupSearch() {
	m.Limiter.Reset()
	m.cps = 0
	m.cycles = 0
	m.maxdepth = 0
}

// Search runs the four-phase loop until the budget is exhausted:
//
// 1. selection - descend by UCT to a node without children
//
// 2. expansion - materialize one child per legal action, unless terminal
//
// 3. simulation - run the playouts from the chosen leaf's position
//
// 4. backpropagation - add the playout outcomes to every ancestor
//
// Iterations are indivisible, the wall clock is read between them only.
func (m *MCTS[T, S]) Search() {
	m.setupSearch()

	for m.Limiter.Ok(m.cycles) {
		leaf, state := m.selectLeaf()
		leaf, state = m.expand(leaf, state)
		results := state.Simulate(m.playouts, m.maxDepth, m.rng)
		m.backpropagate(leaf, results)

		// Increment cycle count and store the cps
		m.cycles++
		m.cps = m.cycles * 1000 / m.Limiter.Elapsed()
		// Invoke the 'onCycle' listener
		if m.listener.onCycle != nil && m.cycles%uint32(max(1, m.listener.nCycles)) == 0 {
			m.listener.onCycle(toListenerStats(m))
		}
	}

	m.Limiter.EvaluateStopReason(m.cycles)
	m.invokeListener(m.listener.onStop)
}

func (m *MCTS[T, S]) invokeListener(f ListenerFunc[T]) {
	if f != nil {
		f(toListenerStats(m))
	}
}

// Descend from the root by UCT until a node with no children is reached
// (an unexpanded leaf or a terminal). The position is rebuilt on the way
// down by replaying the chosen actions, only the root keeps its state.
func (m *MCTS[T, S]) selectLeaf() (NodeHandle, S) {
	h := m.tree.Root()
	state := m.tree.RootState()
	depth := 0

	for {
		sel := m.tree.UctSelect(h, m.explorationParam)
		if sel.Finished {
			break
		}
		h = sel.Node
		state = state.Successor(sel.Action)
		depth++
	}

	if depth > m.maxdepth {
		m.maxdepth = depth
	}

	return h, state
}

// Materialize one child per legal action under 'h', then step into one of
// them at random. A terminal leaf is returned unchanged, its simulation is
// immediate and it stays childless for life.
func (m *MCTS[T, S]) expand(h NodeHandle, state S) (NodeHandle, S) {
	if state.IsTerminal() {
		return h, state
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		return h, state
	}

	for _, action := range actions {
		m.tree.AddChild(h, action)
	}

	pick := actions[m.rng.IntN(len(actions))]
	child, _ := m.tree.Node(h).Child(pick)
	return child, state.Successor(pick)
}

// Walk from 'h' up to the root (inclusive), adding every playout to the
// visit counters and the wins to the win counters
func (m *MCTS[T, S]) backpropagate(h NodeHandle, results []PlayoutResult) {
	wins := 0
	for _, r := range results {
		if r == PlayoutWin {
			wins++
		}
	}

	for h != NoNode {
		node := m.tree.Node(h)
		node.Visits += len(results)
		node.Wins += wins
		h = node.Parent
	}
}
