package automata // import "github.com/orkestr8/automata"

import (
	"fmt"
)

// Label is one edge label in a transition table.  It is a closed variant:
// an exact input symbol, a wildcard matching any one symbol, or epsilon,
// the free move that consumes no input.  Labels are comparable values and
// are used as part of transition-table keys.
type Label[I comparable] struct {
	kind  labelKind
	input I
}

type labelKind uint8

const (
	labelInput labelKind = iota
	labelEpsilon
	labelAnything
)

// Input returns the label matching exactly the symbol v.
func Input[I comparable](v I) Label[I] {
	return Label[I]{kind: labelInput, input: v}
}

// Epsilon returns the free-move label.  It never consumes an input symbol
// and never matches one; it only moves between states at the same position.
func Epsilon[I comparable]() Label[I] {
	return Label[I]{kind: labelEpsilon}
}

// Anything returns the wildcard label.  It matches every concrete input
// symbol, consuming one position, but never substitutes for Epsilon.
func Anything[I comparable]() Label[I] {
	return Label[I]{kind: labelAnything}
}

// Symbol returns the symbol of an exact-input label, and whether the label
// is one.
func (l Label[I]) Symbol() (I, bool) {
	return l.input, l.kind == labelInput
}

func (l Label[I]) String() string {
	switch l.kind {
	case labelEpsilon:
		return "epsilon"
	case labelAnything:
		return "anything"
	default:
		return fmt.Sprintf("input(%v)", l.input)
	}
}

// Arc is a transition-table key: the source state together with the label
// read on the way out of it.
type Arc[S, I comparable] struct {
	From  S
	Label Label[I]
}

// Set is an unordered collection of comparable values.
type Set[T comparable] map[T]struct{}

// SetOf builds a Set from its arguments.
func SetOf[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, v := range items {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Contains returns true if v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, has := s[v]
	return has
}

// Automaton is the interface shared by NFA and DFA: a start state, a set
// of accept states, and a simulation over a finite input.
type Automaton[S, I comparable] interface {

	// Start returns the start state.
	Start() S

	// AcceptStates returns the accept states.  The engine does not check
	// that they are reachable; that is the caller's responsibility.
	AcceptStates() Set[S]

	// Run simulates the automaton on input.  It returns the consumed
	// prefix and true when some execution reaches an accept state exactly
	// as the input is exhausted, otherwise nil and false.
	Run(input []I) ([]I, bool)
}

// DefaultOptions returns default values: no state limit, no logging.
func DefaultOptions() Options {
	return Options{}
}

// Options contains options for subset construction.
type Options struct {

	// MaxStates bounds the number of DFA states Compile may discover
	// before failing with ErrStateLimit.  Zero means unbounded.
	MaxStates int

	// Logger is a logger that implements the logging interface
	Logger Logger
}

// Logger is the interface used by the module to log information
type Logger interface {
	Debug(string, ...interface{})
	Error(string, ...interface{})
	Info(string, ...interface{})
}
