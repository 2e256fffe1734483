package circuit

import (
	"fmt"

	"github.com/katalvlaran/qkron/gate"
	"github.com/katalvlaran/qkron/register"
)

// Connect returns an Operator that applies ops in order, each consuming the
// previous output. The first error aborts the run and is returned with the
// step index attached. Connect() is the identity.
func Connect(ops ...gate.Operator) gate.Operator {
	return func(r *register.Register) (*register.Register, error) {
		for i, op := range ops {
			next, err := op(r)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			r = next
		}

		return r, nil
	}
}
