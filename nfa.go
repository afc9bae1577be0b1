package automata // import "github.com/orkestr8/automata"

// NFA is a nondeterministic finite automaton over states S and input
// symbols I.  The transition table maps an Arc to the set of destination
// states; multiple destinations model the nondeterminism.  An NFA is an
// immutable value once constructed and is safe for concurrent reads.
type NFA[S, I comparable] struct {
	start       S
	accept      Set[S]
	transitions map[Arc[S, I]]Set[S]
}

// NewNFA returns an NFA with the given start state, accept states and
// transition table.  The inputs are not validated: unreachable accept
// states or a malformed table degrade to negative results, never panics.
func NewNFA[S, I comparable](start S, accept Set[S], transitions map[Arc[S, I]]Set[S]) *NFA[S, I] {
	return &NFA[S, I]{start: start, accept: accept, transitions: transitions}
}

// Start returns the start state.
func (n *NFA[S, I]) Start() S {
	return n.start
}

// AcceptStates returns the accept states.
func (n *NFA[S, I]) AcceptStates() Set[S] {
	return n.accept
}

// Transitions returns the transition table.
func (n *NFA[S, I]) Transitions() map[Arc[S, I]]Set[S] {
	return n.transitions
}

// visit is one frontier entry of the breadth-first simulation: a state
// paired with the input position reached on the way to it.
type visit[S comparable] struct {
	state S
	pos   int
}

// Run simulates the NFA on input.  It explores (state, position) pairs
// breadth first from (start, 0): epsilon successors stay at the same
// position, wildcard and exact-symbol successors advance by one while
// input remains.  The first dequeued pair that sits on an accept state
// with the input exhausted wins, and the consumed prefix (the whole
// input) is returned with true.  If the frontier drains first, the result
// is nil and false.  Acceptance before the final position does not count.
//
// Run does not deduplicate visited pairs.  An epsilon cycle reachable
// from the start state makes the frontier grow forever; keeping such
// cycles out of the table is a caller obligation.
func (n *NFA[S, I]) Run(input []I) ([]I, bool) {
	queue := []visit[S]{{state: n.start, pos: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.pos == len(input) && n.accept.Contains(cur.state) {
			return input[:cur.pos], true
		}

		queue = n.expand(queue, cur, input)
	}
	return nil, false
}

// expand appends cur's successors to the frontier: epsilon moves always,
// consuming moves only while input remains.
func (n *NFA[S, I]) expand(queue []visit[S], cur visit[S], input []I) []visit[S] {
	for next := range n.transitions[Arc[S, I]{From: cur.state, Label: Epsilon[I]()}] {
		queue = append(queue, visit[S]{state: next, pos: cur.pos})
	}
	if cur.pos < len(input) {
		for next := range n.transitions[Arc[S, I]{From: cur.state, Label: Anything[I]()}] {
			queue = append(queue, visit[S]{state: next, pos: cur.pos + 1})
		}
		for next := range n.transitions[Arc[S, I]{From: cur.state, Label: Input(input[cur.pos])}] {
			queue = append(queue, visit[S]{state: next, pos: cur.pos + 1})
		}
	}
	return queue
}

// Walk returns a single-pass traversal of the states the breadth-first
// simulation visits on input, for callers that want to observe the path
// rather than the verdict.  Each Next yields one dequeued state after
// enqueueing its successors by the same rules as Run; the traversal ends
// when the frontier drains.  It is not restartable and yields no verdict.
//
// Like Run, the walk keeps no visited set, so an epsilon cycle reachable
// from the start state never terminates.  Callers must either avoid such
// cycles or stop pulling.
func (n *NFA[S, I]) Walk(input []I) *NFAWalk[S, I] {
	return &NFAWalk[S, I]{
		nfa:   n,
		input: input,
		queue: []visit[S]{{state: n.start, pos: 0}},
	}
}

// NFAWalk is the cursor of an NFA traversal.  It borrows the automaton's
// transition table and owns the frontier.
type NFAWalk[S, I comparable] struct {
	nfa   *NFA[S, I]
	input []I
	queue []visit[S]
}

// Next yields the next visited state.  After the traversal ends it keeps
// returning false; that is exhaustion, not an error.
func (w *NFAWalk[S, I]) Next() (S, bool) {
	if len(w.queue) == 0 {
		var zero S
		return zero, false
	}

	cur := w.queue[0]
	w.queue = w.queue[1:]
	w.queue = w.nfa.expand(w.queue, cur, w.input)
	return cur.state, true
}

// reachable returns the union of destinations reachable from any state in
// from via label.
func (n *NFA[S, I]) reachable(from Set[S], label Label[I]) Set[S] {
	out := Set[S]{}
	for s := range from {
		for next := range n.transitions[Arc[S, I]{From: s, Label: label}] {
			out.Add(next)
		}
	}
	return out
}

// epsilonClosure grows states in place with epsilon destinations until a
// fixpoint is reached.
func (n *NFA[S, I]) epsilonClosure(states Set[S]) {
	for {
		before := len(states)
		for s := range n.reachable(states, Epsilon[I]()) {
			states.Add(s)
		}
		if len(states) == before {
			return
		}
	}
}

// anyAccepting returns true if states shares at least one element with
// the accept set.  One witness is enough; the smaller set is scanned.
func (n *NFA[S, I]) anyAccepting(states Set[S]) bool {
	small, large := states, n.accept
	if len(large) < len(small) {
		small, large = large, small
	}
	for s := range small {
		if large.Contains(s) {
			return true
		}
	}
	return false
}
