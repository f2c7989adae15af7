package translate

import (
	"strings"

	"github.com/pflow-xyz/go-petriplan/pddl"
)

// complementPrefix marks synthesized complement predicates. The
// grounding stage never emits predicates carrying it.
const complementPrefix = "not_"

// ComplementPair relates an original negated literal to the positive
// atom synthesized to stand in for it.
type ComplementPair struct {
	Original   pddl.Atom // negated literal as it appeared in an operator
	Complement pddl.Atom // positive not_<predicate> atom
}

// ComplementMap is a bidirectional one-to-one index between negated
// literals and their synthesized complements. It is built once during
// polarity elimination and read-only afterwards.
type ComplementMap struct {
	byOriginal   map[string]pddl.Atom
	byComplement map[string]pddl.Atom
	pairs        []ComplementPair
}

// NewComplementMap creates an empty map.
func NewComplementMap() *ComplementMap {
	return &ComplementMap{
		byOriginal:   make(map[string]pddl.Atom),
		byComplement: make(map[string]pddl.Atom),
	}
}

// add records a pair, keeping the first insertion when the original
// literal was already mapped.
func (m *ComplementMap) add(original, complement pddl.Atom) {
	key := original.Key()
	if _, exists := m.byOriginal[key]; exists {
		return
	}
	m.byOriginal[key] = complement
	m.byComplement[complement.Key()] = original
	m.pairs = append(m.pairs, ComplementPair{Original: original, Complement: complement})
}

// Complement returns the complement for a negated literal.
func (m *ComplementMap) Complement(original pddl.Atom) (pddl.Atom, bool) {
	c, ok := m.byOriginal[original.Key()]
	return c, ok
}

// Original returns the negated literal a complement stands for.
func (m *ComplementMap) Original(complement pddl.Atom) (pddl.Atom, bool) {
	o, ok := m.byComplement[complement.Key()]
	return o, ok
}

// Pairs returns the recorded pairs in insertion order.
func (m *ComplementMap) Pairs() []ComplementPair {
	return m.pairs
}

// Len returns the number of recorded pairs.
func (m *ComplementMap) Len() int {
	return len(m.pairs)
}

// IsComplement reports whether the atom is a synthesized complement.
func IsComplement(a pddl.Atom) bool {
	return strings.HasPrefix(a.Predicate, complementPrefix)
}

// complementOf flips the literal's polarity and prefixes its predicate:
// the complement of ¬p is the positive atom not_p, and the complement
// twin of a positive effect p is the negated literal ¬not_p.
func complementOf(a pddl.Atom) pddl.Atom {
	c := a.Negate()
	c.Predicate = complementPrefix + c.Predicate
	return c
}

// RemovePolarity rewrites the safe operators so no precondition literal
// is negative, and pairs every effect with the complementary effect on
// its not_ twin: an operator that deletes p also adds not_p, and one
// that adds p also deletes not_p, keeping each complement pair
// consistent in every reachable marking. It is a pure transform: the
// input list is left untouched and a new list is returned along with
// the global atom↔complement mapping.
func RemovePolarity(operators []*pddl.Operator) ([]*pddl.Operator, *ComplementMap) {
	complements := NewComplementMap()
	out := make([]*pddl.Operator, 0, len(operators))
	for _, op := range operators {
		pre := make([]pddl.Atom, len(op.Preconditions))
		for i, lit := range op.Preconditions {
			if !lit.Negated {
				pre[i] = lit
				continue
			}
			comp := complementOf(lit)
			complements.add(lit, comp)
			pre[i] = comp
		}

		effects := op.Effects()
		twins := make([]pddl.Atom, 0, len(effects))
		for _, eff := range effects {
			twin := complementOf(eff)
			if eff.Negated {
				complements.add(eff, twin)
			}
			twins = append(twins, twin)
		}

		out = append(out, pddl.NewOperator(op.Name, pre, append(effects, twins...), op.Cost))
	}
	return out, complements
}
