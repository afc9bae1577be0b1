package automata_test

import (
	"fmt"

	"github.com/orkestr8/automata"
)

// Build the nondeterministic machine accepting strings over {a, b} that
// end in "bb", compile it to a DFA, and run both.
func Example() {
	nfa := automata.NewNFA(0, automata.SetOf(2), map[automata.Arc[int, rune]]automata.Set[int]{
		{From: 0, Label: automata.Input('a')}: automata.SetOf(0, 1),
		{From: 0, Label: automata.Input('b')}: automata.SetOf(1),
		{From: 1, Label: automata.Input('a')}: automata.SetOf(0, 1),
		{From: 1, Label: automata.Input('b')}: automata.SetOf(2),
	})

	_, ok := nfa.Run([]rune("aababb"))
	fmt.Println("nfa accepts aababb:", ok)

	dfa := automata.ToDFA(nfa)
	_, ok = dfa.Run([]rune("aababb"))
	fmt.Println("dfa accepts aababb:", ok)
	_, ok = dfa.Run([]rune("aaaaa"))
	fmt.Println("dfa accepts aaaaa:", ok)

	// Observe the path, not the verdict.
	walk := dfa.Walk([]rune("abb"))
	visited := 0
	for _, ok := walk.Next(); ok; _, ok = walk.Next() {
		visited++
	}
	fmt.Println("walk visited", visited, "states")

	// Output:
	// nfa accepts aababb: true
	// dfa accepts aababb: true
	// dfa accepts aaaaa: false
	// walk visited 4 states
}
