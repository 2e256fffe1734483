package register

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/qkron/cnum"
	"github.com/katalvlaran/qkron/qubit"
)

// snapshot is the msgpack wire form of a Register. Options are not part of
// it; a decoded register keeps the receiver's configuration.
type snapshot struct {
	N     int            `msgpack:"n"`
	Terms []termSnapshot `msgpack:"terms"`
	Names map[string]int `msgpack:"names,omitempty"`
}

type termSnapshot struct {
	Coeff cnum.Complex    `msgpack:"c"`
	Basis []qubitSnapshot `msgpack:"k"`
}

type qubitSnapshot struct {
	Zero cnum.Complex `msgpack:"0"`
	One  cnum.Complex `msgpack:"1"`
}

// MarshalBinary encodes the terms and name table with msgpack.
func (r *Register) MarshalBinary() ([]byte, error) {
	s := snapshot{N: r.n, Terms: make([]termSnapshot, len(r.terms)), Names: r.names}
	for i, t := range r.terms {
		ts := termSnapshot{Coeff: t.Coeff, Basis: make([]qubitSnapshot, len(t.Basis))}
		for k, q := range t.Basis {
			ts.Basis[k] = qubitSnapshot{Zero: q.Zero, One: q.One}
		}
		s.Terms[i] = ts
	}

	return msgpack.Marshal(&s)
}

// UnmarshalBinary replaces r with the decoded register. Coefficients are
// restored as stored, so an unnormalized Project result round-trips.
// Returns ErrCorruptSnapshot for ragged terms, non-finite values or names
// out of range; r is left unchanged on error.
func (r *Register) UnmarshalBinary(data []byte) error {
	var s snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if s.N < 0 {
		return fmt.Errorf("qubit count %d: %w", s.N, ErrCorruptSnapshot)
	}

	terms := make([]Term, len(s.Terms))
	for i, ts := range s.Terms {
		if len(ts.Basis) != s.N {
			return fmt.Errorf("term %d has %d qubits, want %d: %w", i, len(ts.Basis), s.N, ErrCorruptSnapshot)
		}
		if !ts.Coeff.IsFinite() {
			return fmt.Errorf("term %d coefficient: %w", i, ErrCorruptSnapshot)
		}
		basis := make([]qubit.Qubit, s.N)
		for k, qs := range ts.Basis {
			q := qubit.New(qs.Zero, qs.One)
			if !q.Zero.IsFinite() || !q.One.IsFinite() {
				return fmt.Errorf("term %d qubit %d: %w", i, k, ErrCorruptSnapshot)
			}
			basis[k] = q
		}
		terms[i] = Term{Coeff: ts.Coeff, Basis: basis}
	}
	for name, ix := range s.Names {
		if ix < 0 || ix >= s.N {
			return fmt.Errorf("name %q -> %d: %w", name, ix, ErrCorruptSnapshot)
		}
	}

	r.n = s.N
	r.terms = terms
	r.names = make(map[string]int, len(s.Names))
	r.copyNames(s.Names)

	return nil
}
