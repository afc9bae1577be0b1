package automata // import "github.com/orkestr8/automata"

import (
	"fmt"
)

// ErrStateLimit is raised when subset construction discovers more DFA
// states than Options.MaxStates allows.  The value is the limit that was
// exceeded.
type ErrStateLimit int

func (e ErrStateLimit) Error() string {
	return fmt.Sprintf("dfa state limit exceeded: max=%d", int(e))
}
