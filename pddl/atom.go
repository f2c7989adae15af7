// Package pddl holds the grounded fragment of a propositional planning
// task: atoms with polarity, conjunctive conditions, and grounded
// operators with add/del effects. These are the inputs handed over by
// the grounding stage and consumed by the translation pipeline.
package pddl

import (
	"fmt"
	"strings"
)

// Atom is a ground propositional fact with polarity. Atoms are value
// types compared structurally, never by identity.
type Atom struct {
	Predicate string
	Args      []string
	Negated   bool
}

// NewAtom creates a positive atom for the given predicate and arguments.
func NewAtom(predicate string, args ...string) Atom {
	return Atom{Predicate: predicate, Args: args}
}

// Negate returns the atom with flipped polarity.
func (a Atom) Negate() Atom {
	a.Negated = !a.Negated
	return a
}

// Positive returns the atom with negation stripped.
func (a Atom) Positive() Atom {
	a.Negated = false
	return a
}

// Equal reports structural equality: same predicate, arguments, and polarity.
func (a Atom) Equal(other Atom) bool {
	if a.Predicate != other.Predicate || a.Negated != other.Negated {
		return false
	}
	if len(a.Args) != len(other.Args) {
		return false
	}
	for i := range a.Args {
		if a.Args[i] != other.Args[i] {
			return false
		}
	}
	return true
}

// Key returns a canonical map key for the atom. Unlike String, the key
// embeds structure with unambiguous separators, so two distinct atoms
// can never collide even if their display forms coincide.
func (a Atom) Key() string {
	var sb strings.Builder
	if a.Negated {
		sb.WriteByte('!')
	}
	sb.WriteString(a.Predicate)
	for _, arg := range a.Args {
		sb.WriteByte('\x00')
		sb.WriteString(arg)
	}
	return sb.String()
}

// String renders the atom in the grounding stage's display form, which
// is also the name of the net place derived from it.
func (a Atom) String() string {
	tag := "Atom"
	if a.Negated {
		tag = "NegatedAtom"
	}
	return fmt.Sprintf("%s %s(%s)", tag, a.Predicate, strings.Join(a.Args, ", "))
}

// Condition is an ordered conjunction of atoms. An empty condition is
// always true; a single literal is a singleton conjunction.
type Condition []Atom

// Contains reports whether the conjunction includes a structurally
// equal literal.
func (c Condition) Contains(a Atom) bool {
	for _, lit := range c {
		if lit.Equal(a) {
			return true
		}
	}
	return false
}
