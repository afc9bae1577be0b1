package automata // import "github.com/orkestr8/automata"

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ToDFA converts the NFA into an equivalent DFA by subset construction.
// The DFA's states are the canonical subsets of NFA states discovered
// from the epsilon closure of the start state, renamed to dense integer
// ids in discovery order with the seed as 0.  States must be ordered so
// that subsets can be given a canonical identity.
//
// Wildcard transitions follow a widening rule rather than the textbook
// construction: when the wildcard label is processed, the reached subset
// is additionally widened by one hop through every other alphabet label.
// The widening is a single round, never a fixpoint, so the converted DFA
// can accept inputs the NFA rejects when wildcards are present.  Without
// wildcards the conversion is acceptance-equivalent.
func ToDFA[S constraints.Ordered, I comparable](n *NFA[S, I]) *DFA[int, I] {
	d, _ := Compile(n, DefaultOptions()) // cannot fail without a state limit
	return d
}

// Compile is ToDFA with options: Options.MaxStates bounds the number of
// discovered DFA states (subset construction is the one operation here
// whose work is not bounded by the input length), and Options.Logger
// traces the discovery.
func Compile[S constraints.Ordered, I comparable](n *NFA[S, I], options Options) (*DFA[int, I], error) {
	log := options.Logger
	if log == nil {
		log = &nilLogger{}
	}

	// The working alphabet is every non-epsilon label present in the
	// table.  Epsilon contributes no symbol.
	seen := Set[Label[I]]{}
	alphabet := []Label[I]{}
	for arc := range n.transitions {
		if arc.Label.kind == labelEpsilon || seen.Contains(arc.Label) {
			continue
		}
		seen.Add(arc.Label)
		alphabet = append(alphabet, arc.Label)
	}

	ids := map[string]int{}
	accept := Set[int]{}
	transitions := map[Arc[int, I]]int{}

	seed := SetOf(n.start)
	n.epsilonClosure(seed)
	ids[canonical(seed)] = 0
	if n.anyAccepting(seed) {
		accept.Add(0)
	}

	queue := []subset[S]{{id: 0, states: seed}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, a := range alphabet {
			reach := n.reachable(cur.states, a)

			if a.kind == labelAnything {
				// Widen by one hop through every other label.  The
				// wildcard itself is not re-applied.
				for _, b := range alphabet {
					if b.kind == labelAnything {
						continue
					}
					for s := range n.reachable(reach, b) {
						reach.Add(s)
					}
				}
			}

			n.epsilonClosure(reach)
			if len(reach) == 0 {
				continue // no move on this label
			}

			key := canonical(reach)
			id, has := ids[key]
			if !has {
				if options.MaxStates > 0 && len(ids) >= options.MaxStates {
					return nil, ErrStateLimit(options.MaxStates)
				}
				id = len(ids)
				ids[key] = id
				if n.anyAccepting(reach) {
					accept.Add(id)
				}
				queue = append(queue, subset[S]{id: id, states: reach})
				log.Debug("discovered dfa state", "id", id, "subset", len(reach))
			}
			transitions[Arc[int, I]{From: cur.id, Label: a}] = id
		}
	}

	log.Info("subset construction done", "states", len(ids), "accepting", len(accept))
	return NewDFA(0, accept, transitions), nil
}

// subset is one discovery-worklist entry: a set of NFA states and the
// DFA id assigned to it.
type subset[S comparable] struct {
	id     int
	states Set[S]
}

// canonical renders a state set into an order-independent key.  The
// unordered Set stays the working representation for union and closure
// arithmetic; only the identity of a discovered subset is canonicalized.
// Each element is length-prefixed so that renderings cannot run into one
// another, whatever characters a string state contains.
func canonical[S constraints.Ordered](states Set[S]) string {
	elems := make([]S, 0, len(states))
	for s := range states {
		elems = append(elems, s)
	}
	slices.Sort(elems)

	var b strings.Builder
	for _, s := range elems {
		r := fmt.Sprint(s)
		fmt.Fprintf(&b, "%d:%s", len(r), r)
	}
	return b.String()
}
