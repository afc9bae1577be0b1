package automata // import "github.com/orkestr8/automata"

// DFA is a deterministic finite automaton over states S and input symbols
// I.  The transition table maps an Arc to a single destination; a missing
// entry means no move.  A DFA is an immutable value once constructed and
// is safe for concurrent reads.
type DFA[S, I comparable] struct {
	start       S
	accept      Set[S]
	transitions map[Arc[S, I]]S
}

// NewDFA returns a DFA with the given start state, accept states and
// transition table.  The inputs are not validated.
func NewDFA[S, I comparable](start S, accept Set[S], transitions map[Arc[S, I]]S) *DFA[S, I] {
	return &DFA[S, I]{start: start, accept: accept, transitions: transitions}
}

// Start returns the start state.
func (d *DFA[S, I]) Start() S {
	return d.start
}

// AcceptStates returns the accept states.
func (d *DFA[S, I]) AcceptStates() Set[S] {
	return d.accept
}

// Transitions returns the transition table.
func (d *DFA[S, I]) Transitions() map[Arc[S, I]]S {
	return d.transitions
}

// step returns the destination for one symbol: the exact transition if
// present, otherwise the wildcard one.
func (d *DFA[S, I]) step(from S, c I) (S, bool) {
	if next, has := d.transitions[Arc[S, I]{From: from, Label: Input(c)}]; has {
		return next, true
	}
	next, has := d.transitions[Arc[S, I]{From: from, Label: Anything[I]()}]
	return next, has
}

// Run simulates the DFA on input.  Every symbol must move: the exact
// transition is preferred, the wildcard one is the fallback, and the
// first symbol with neither aborts with nil and false no matter how much
// already matched.  When the whole input is consumed and the final state
// is accepting, the consumed input is returned with true.
func (d *DFA[S, I]) Run(input []I) ([]I, bool) {
	cur := d.start
	for _, c := range input {
		next, has := d.step(cur, c)
		if !has {
			return nil, false
		}
		cur = next
	}
	if d.accept.Contains(cur) {
		return input, true
	}
	return nil, false
}

// Walk returns a single-pass traversal of the states visited on input.
// Unlike Run it never signals failure: a stuck position yields the state
// it is stuck in and ends, and the final state is yielded whether or not
// it is accepting.  It always yields at least the start state and at most
// len(input)+1 states, and is not a substitute for acceptance testing.
func (d *DFA[S, I]) Walk(input []I) *DFAWalk[S, I] {
	return &DFAWalk[S, I]{dfa: d, input: input, cur: d.start}
}

// DFAWalk is the cursor of a DFA traversal: the current state and input
// position, advanced on each Next.
type DFAWalk[S, I comparable] struct {
	dfa   *DFA[S, I]
	input []I
	cur   S
	pos   int
}

// Next yields the next visited state.  After the traversal ends it keeps
// returning false; that is exhaustion, not an error.
func (w *DFAWalk[S, I]) Next() (S, bool) {
	switch {
	case w.pos > len(w.input):
		var zero S
		return zero, false

	case w.pos == len(w.input):
		// Input exhausted: yield the final state once, then end.
		w.pos++
		return w.cur, true
	}

	next, has := w.dfa.step(w.cur, w.input[w.pos])
	if !has {
		// Stuck: skip the rest of the input and yield where we stopped.
		w.pos = len(w.input) + 1
		return w.cur, true
	}

	prev := w.cur
	w.cur = next
	w.pos++
	return prev, true
}
