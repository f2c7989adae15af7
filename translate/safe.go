package translate

import (
	"fmt"

	"github.com/pflow-xyz/go-petriplan/pddl"
)

// Limits bounds the combinatorial cost of safe-operator expansion.
// Zero values disable the corresponding check.
type Limits struct {
	// MaxAmbiguousEffects caps the per-operator exponent k: an operator
	// with more than this many ambiguous effects is rejected instead of
	// expanded into 2^k variants.
	MaxAmbiguousEffects int
	// MaxOperators caps the total size of the expanded operator list.
	MaxOperators int
}

// SafeOperators expands grounded operators into operators that are each
// guaranteed 1-safe under the Hickmott et al. semantics. An effect
// whose pre-state truth value is not determined by the precondition is
// ambiguous: firing the raw operator would put the net's safety at the
// mercy of unknown state. Each such operator is split into one variant
// per subset of its ambiguous effects, with the precondition extended
// to pin down the pre-state the subset assumes.
func SafeOperators(operators []*pddl.Operator, limits Limits) ([]*pddl.Operator, error) {
	var safe []*pddl.Operator
	for _, op := range operators {
		if op == nil {
			return nil, ErrMissingOperator
		}
		if op.Cost < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeCost, op.Name)
		}
		settled, ambiguous := partitionEffects(op)
		if len(ambiguous) == 0 {
			// Already 1-safe: every effect's pre-state is settled by the
			// precondition. Pass through unchanged.
			safe = append(safe, op)
			continue
		}
		if limits.MaxAmbiguousEffects > 0 && len(ambiguous) > limits.MaxAmbiguousEffects {
			return nil, fmt.Errorf("%w: %s has %d ambiguous effects (limit %d)",
				ErrTooManyAmbiguousEffects, op.Name, len(ambiguous), limits.MaxAmbiguousEffects)
		}
		variants := expand(op, settled, ambiguous)
		if limits.MaxOperators > 0 && len(safe)+len(variants) > limits.MaxOperators {
			return nil, fmt.Errorf("%w: expanding %s would exceed %d operators",
				ErrTooManyOperators, op.Name, limits.MaxOperators)
		}
		safe = append(safe, variants...)
	}
	return safe, nil
}

// partitionEffects splits an operator's joined effect set into settled
// effects (the precondition asserts their negation, so firing is
// unambiguous) and ambiguous effects (pre-state unknown). An effect
// that appears verbatim among the precondition literals is not a state
// change at all and is dropped from both sets.
func partitionEffects(op *pddl.Operator) (settled, ambiguous []pddl.Atom) {
	for _, eff := range op.Effects() {
		switch {
		case op.Preconditions.Contains(eff):
			// Already satisfied before firing; not a real effect.
		case op.Preconditions.Contains(eff.Negate()):
			settled = append(settled, eff)
		default:
			ambiguous = append(ambiguous, eff)
		}
	}
	return settled, ambiguous
}

// expand enumerates every subset of the ambiguous effects with an
// iterative bit mask, yielding 2^k operators with stable numbering
// name_1 .. name_2^k. A variant's effect set is the settled effects
// plus the subset; its precondition additionally asserts, for each
// ambiguous effect, the negation of the effect when the subset applies
// it (the literal was false and flips) or the effect itself when the
// subset omits it (the literal already held, so the effect is void).
func expand(op *pddl.Operator, settled, ambiguous []pddl.Atom) []*pddl.Operator {
	k := len(ambiguous)
	variants := make([]*pddl.Operator, 0, 1<<k)
	for mask := 0; mask < 1<<k; mask++ {
		effects := append([]pddl.Atom(nil), settled...)
		pre := appendUnique(nil, op.Preconditions)
		for i, amb := range ambiguous {
			if mask&(1<<i) != 0 {
				effects = append(effects, amb)
				pre = appendUnique(pre, pddl.Condition{amb.Negate()})
			} else {
				pre = appendUnique(pre, pddl.Condition{amb})
			}
		}
		name := fmt.Sprintf("%s_%d", op.Name, mask+1)
		variants = append(variants, pddl.NewOperator(name, pre, effects, op.Cost))
	}
	return variants
}

// appendUnique extends dst with the atoms of src, skipping structural
// duplicates while preserving first-seen order.
func appendUnique(dst []pddl.Atom, src pddl.Condition) []pddl.Atom {
	for _, a := range src {
		dup := false
		for _, b := range dst {
			if a.Equal(b) {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, a)
		}
	}
	return dst
}
