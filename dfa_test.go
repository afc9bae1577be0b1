package automata // import "github.com/orkestr8/automata"

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// denseDFA accepts strings over {a, b} ending in "bb".  It is the
// deterministic counterpart of denseNFA.
func denseDFA() *DFA[int, rune] {
	return NewDFA(0, SetOf(2), map[Arc[int, rune]]int{
		{From: 0, Label: Input('a')}: 0,
		{From: 0, Label: Input('b')}: 1,
		{From: 1, Label: Input('a')}: 0,
		{From: 1, Label: Input('b')}: 2,
	})
}

func TestDFARun(t *testing.T) {
	dfa := denseDFA()

	prefix, ok := dfa.Run([]rune("aababb"))
	require.True(t, ok)
	require.Equal(t, []rune("aababb"), prefix)

	_, ok = dfa.Run([]rune("aabb"))
	require.True(t, ok)

	for _, s := range []string{"aaaaa", "aabaa", "aababbb", ""} {
		_, ok := dfa.Run([]rune(s))
		require.False(t, ok, "should reject %q", s)
	}

	// A symbol with no applicable transition aborts immediately, however
	// much already matched.
	_, ok = dfa.Run([]rune("aababbx"))
	require.False(t, ok)
}

func TestDFARunEmptyInput(t *testing.T) {
	dfa := NewDFA(0, SetOf(0), map[Arc[int, rune]]int{})
	prefix, ok := dfa.Run(nil)
	require.True(t, ok)
	require.Len(t, prefix, 0)
}

func TestDFARunAnythingFallback(t *testing.T) {
	// Exact transitions win over the wildcard; the wildcard catches the
	// rest.
	dfa := NewDFA(0, SetOf(2), map[Arc[int, rune]]int{
		{From: 0, Label: Input('a')}:       1,
		{From: 0, Label: Anything[rune]()}: 2,
	})

	_, ok := dfa.Run([]rune("a"))
	require.False(t, ok, "exact transition leads to a non-accepting state")

	_, ok = dfa.Run([]rune("z"))
	require.True(t, ok)
}

func TestDFADeterminism(t *testing.T) {
	dfa := denseDFA()
	for _, s := range []string{"aababb", "aaaaa", ""} {
		p1, ok1 := dfa.Run([]rune(s))
		p2, ok2 := dfa.Run([]rune(s))
		require.Equal(t, ok1, ok2)
		require.Equal(t, p1, p2)
	}
}

func TestDFAWalk(t *testing.T) {
	// The last symbol has no transition out of state 2: the walk yields
	// the stuck state and ends, it does not fail.
	dfa := denseDFA()
	walk := dfa.Walk([]rune("aababbb"))

	for _, want := range []int{0, 0, 0, 1, 0, 1, 2} {
		state, ok := walk.Next()
		require.True(t, ok)
		require.Equal(t, want, state)
	}
	for i := 0; i < 3; i++ {
		_, ok := walk.Next()
		require.False(t, ok)
	}
}

func TestDFAWalkFullInput(t *testing.T) {
	// Full consumption yields every visited state plus the final one.
	dfa := denseDFA()
	walk := dfa.Walk([]rune("aabb"))

	for _, want := range []int{0, 0, 0, 1, 2} {
		state, ok := walk.Next()
		require.True(t, ok)
		require.Equal(t, want, state)
	}
	_, ok := walk.Next()
	require.False(t, ok)
}

func TestDFAWalkTotality(t *testing.T) {
	dfa := denseDFA()
	for _, s := range []string{"", "a", "x", "aababbb", "bbbbbbbb"} {
		input := []rune(s)
		walk := dfa.Walk(input)

		yields := 0
		for {
			_, ok := walk.Next()
			if !ok {
				break
			}
			yields++
			require.True(t, yields <= len(input)+1)
		}
		require.True(t, yields >= 1, "walk on %q must yield at least the start state", s)
	}
}
