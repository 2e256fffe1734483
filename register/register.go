package register

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qkron/cnum"
	"github.com/katalvlaran/qkron/qubit"
)

// Term is one weighted basis product: Coeff · (Basis[0] ⊗ … ⊗ Basis[n-1]).
type Term struct {
	Coeff cnum.Complex
	Basis []qubit.Qubit
}

// Clone returns a copy of t that shares no storage with it.
func (t Term) Clone() Term {
	basis := make([]qubit.Qubit, len(t.Basis))
	copy(basis, t.Basis)

	return Term{Coeff: t.Coeff, Basis: basis}
}

// Assignment binds a name to the eigenstate of one qubit; see FromAssignments.
type Assignment struct {
	Name  string
	Qubit qubit.Qubit
}

// Assign is shorthand for Assignment{Name: name, Qubit: q}.
func Assign(name string, q qubit.Qubit) Assignment {
	return Assignment{Name: name, Qubit: q}
}

// Register is a symbolic superposition Σ coeff_i · ⊗_k basis_i[k] over n
// qubits, plus a table mapping symbolic names to qubit positions.
//
// Operations come in two categories:
//   - Mutating: Separate, Measure, Simplify, Normalize, Coalesce and the
//     naming methods change the receiver and return it for chaining.
//   - Compositional: Kron, Superpose, Project, Clone and Derive allocate a
//     fresh Register and leave their operands untouched.
//
// A Register is not safe for concurrent use.
type Register struct {
	n     int
	terms []Term
	names map[string]int
	opts  *Options
}

// New builds a normalized register from literal weighted terms.
// Returns ErrEmpty, ErrRaggedTerms or ErrZeroState for invalid input.
func New(terms []Term, opts ...Option) (*Register, error) {
	r, err := build(terms, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	return r.Normalize()
}

// Eigen builds the single-term product state qs[0] ⊗ … ⊗ qs[n-1] with no
// names bound.
func Eigen(qs []qubit.Qubit, opts ...Option) *Register {
	basis := make([]qubit.Qubit, len(qs))
	copy(basis, qs)

	return &Register{
		n:     len(qs),
		terms: []Term{{Coeff: cnum.One, Basis: basis}},
		names: map[string]int{},
		opts:  gatherOptions(opts...),
	}
}

// FromAssignments builds a product state from named eigenstates; the i-th
// assignment becomes qubit i and its name is bound to i.
// Returns ErrNameClash when a name repeats.
func FromAssignments(assigns []Assignment, opts ...Option) (*Register, error) {
	qs := make([]qubit.Qubit, len(assigns))
	for i, a := range assigns {
		qs[i] = a.Qubit
	}
	r := Eigen(qs, opts...)
	for i, a := range assigns {
		if _, dup := r.names[a.Name]; dup {
			return nil, fmt.Errorf("FromAssignments %q: %w", a.Name, ErrNameClash)
		}
		r.names[a.Name] = i
	}

	return r, nil
}

// build validates terms and copies them into an unnormalized register.
func build(terms []Term, o *Options) (*Register, error) {
	if len(terms) == 0 {
		return nil, ErrEmpty
	}
	n := len(terms[0].Basis)
	r := &Register{n: n, terms: make([]Term, len(terms)), names: map[string]int{}, opts: o}
	for i, t := range terms {
		if len(t.Basis) != n {
			return nil, fmt.Errorf("term %d has %d qubits, want %d: %w", i, len(t.Basis), n, ErrRaggedTerms)
		}
		r.terms[i] = t.Clone()
	}

	return r, nil
}

// Derive returns a fresh register over terms that shares the receiver's
// configuration and carries its name bindings. Every term must have N()
// qubits.
//
// The coefficients are rescaled so that Σ|coeff|² equals the receiver's.
// Unitary term maps (Separate, per-qubit gates, forks by a unitary local,
// basis flips) preserve that weight, so the scale is one up to dropped
// negligible branches and the receiver's exact norm carries over, overlaps
// between terms included. A receiver of negligible weight is treated as
// weight one. Returns ErrZeroState when every new coefficient vanishes.
//
// Complexity: O(|terms|·N()).
func (r *Register) Derive(terms []Term) (*Register, error) {
	d, err := build(terms, r.conf())
	if err != nil {
		return nil, err
	}
	if d.n != r.n {
		return nil, fmt.Errorf("Derive: %d qubits, want %d: %w", d.n, r.n, ErrSizeMismatch)
	}
	d.copyNames(r.names)

	want := r.Probability()
	if want < cnum.Epsilon*cnum.Epsilon {
		want = 1
	}
	got := d.Probability()
	if got == want {
		return d, nil
	}

	return d.scaleTo(math.Sqrt(got/want), "derive")
}

// Clone returns a deep copy of r.
func (r *Register) Clone() *Register {
	c := &Register{n: r.n, terms: make([]Term, len(r.terms)), opts: r.opts}
	for i, t := range r.terms {
		c.terms[i] = t.Clone()
	}
	c.copyNames(r.names)

	return c
}

// N returns the number of qubits.
func (r *Register) N() int { return r.n }

// Len returns the number of terms.
func (r *Register) Len() int { return len(r.terms) }

// Terms returns a deep copy of the term list.
func (r *Register) Terms() []Term {
	out := make([]Term, len(r.terms))
	for i, t := range r.terms {
		out[i] = t.Clone()
	}

	return out
}

// Names returns a copy of the name table.
func (r *Register) Names() map[string]int {
	out := make(map[string]int, len(r.names))
	for k, v := range r.names {
		out[k] = v
	}

	return out
}

// Logger returns the configured logger.
func (r *Register) Logger() zerolog.Logger {
	return r.conf().log
}

func (r *Register) conf() *Options {
	if r.opts == nil {
		return defaultOptions
	}

	return r.opts
}

// Probability returns Σ|coeff_i|² over the register's own terms. It equals
// one after Normalize and the branch probability for a Project result.
func (r *Register) Probability() float64 {
	var p float64
	for _, t := range r.terms {
		p += t.Coeff.Abs2()
	}

	return p
}

// ---------- Names ----------

// Ix returns the reference that addresses qubit i by position.
func Ix(i int) string {
	return strconv.Itoa(i)
}

// Lookup resolves ref to a qubit index. A ref is either a bound name or a
// decimal index (see Ix); names take precedence.
// Returns ErrUnknownQubit when ref resolves to nothing in [0, N()).
func (r *Register) Lookup(ref string) (int, error) {
	if ix, ok := r.names[ref]; ok {
		return ix, nil
	}
	ix, err := strconv.Atoi(ref)
	if err != nil || ix < 0 || ix >= r.n {
		return 0, fmt.Errorf("lookup %q: %w", ref, ErrUnknownQubit)
	}

	return ix, nil
}

// lookupAll resolves refs in order, failing on the first unknown one.
func (r *Register) lookupAll(refs []string) ([]int, error) {
	ixs := make([]int, len(refs))
	for i, ref := range refs {
		ix, err := r.Lookup(ref)
		if err != nil {
			return nil, err
		}
		ixs[i] = ix
	}

	return ixs, nil
}

// Name binds name to the qubit addressed by ref (a name or an index).
func (r *Register) Name(name, ref string) (*Register, error) {
	ix, err := r.Lookup(ref)
	if err != nil {
		return r, err
	}
	if r.names == nil {
		r.names = map[string]int{}
	}
	r.names[name] = ix

	return r, nil
}

// Bind binds every key of bindings to the qubit its value addresses.
// Values resolve against the table as it was before the call, so the
// result does not depend on map iteration order. Nothing is bound when any
// value fails to resolve.
func (r *Register) Bind(bindings map[string]string) (*Register, error) {
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	resolved := make(map[string]int, len(bindings))
	for _, k := range keys {
		ix, err := r.Lookup(bindings[k])
		if err != nil {
			return r, fmt.Errorf("bind %q: %w", k, err)
		}
		resolved[k] = ix
	}
	r.copyNames(resolved)

	return r, nil
}

// BindFrom copies every name of other into r, overwriting existing ones.
// Returns ErrSizeMismatch when the qubit counts differ.
func (r *Register) BindFrom(other *Register) (*Register, error) {
	if r.n != other.n {
		return r, fmt.Errorf("BindFrom: %d vs %d qubits: %w", r.n, other.n, ErrSizeMismatch)
	}
	r.copyNames(other.names)

	return r, nil
}

func (r *Register) copyNames(src map[string]int) {
	if r.names == nil {
		r.names = make(map[string]int, len(src))
	}
	for k, v := range src {
		r.names[k] = v
	}
}
