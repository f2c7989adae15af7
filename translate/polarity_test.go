package translate

import (
	"testing"

	"github.com/pflow-xyz/go-petriplan/pddl"
)

func TestRemovePolarityPreconditions(t *testing.T) {
	op := pddl.NewOperator("op",
		[]pddl.Atom{pddl.NewAtom("a"), pddl.NewAtom("b").Negate()},
		[]pddl.Atom{pddl.NewAtom("d")},
		0)

	out, complements := RemovePolarity([]*pddl.Operator{op})
	if len(out) != 1 {
		t.Fatalf("expected 1 operator, got %d", len(out))
	}
	for _, lit := range out[0].Preconditions {
		if lit.Negated {
			t.Errorf("precondition %v still negative after polarity elimination", lit)
		}
	}
	if !out[0].Preconditions.Contains(pddl.NewAtom("not_b")) {
		t.Errorf("negated precondition should be replaced by not_b, got %v", out[0].Preconditions)
	}

	comp, ok := complements.Complement(pddl.NewAtom("b").Negate())
	if !ok {
		t.Fatal("mapping should record the complement of NegatedAtom b")
	}
	if !comp.Equal(pddl.NewAtom("not_b")) {
		t.Errorf("complement = %v, want not_b", comp)
	}
	orig, ok := complements.Original(pddl.NewAtom("not_b"))
	if !ok || !orig.Equal(pddl.NewAtom("b").Negate()) {
		t.Errorf("reverse lookup = %v (%v), want NegatedAtom b", orig, ok)
	}
}

func TestRemovePolarityEffectTwins(t *testing.T) {
	// Deleting a must also add not_a; adding d must also delete not_d.
	op := pddl.NewOperator("op",
		[]pddl.Atom{pddl.NewAtom("a")},
		[]pddl.Atom{pddl.NewAtom("a").Negate(), pddl.NewAtom("d")},
		0)

	out, complements := RemovePolarity([]*pddl.Operator{op})
	rewritten := out[0]

	wantAdds := []pddl.Atom{pddl.NewAtom("d"), pddl.NewAtom("not_a")}
	for _, want := range wantAdds {
		found := false
		for _, add := range rewritten.AddEffects {
			if add.Equal(want) {
				found = true
			}
		}
		if !found {
			t.Errorf("add effects %v missing %v", rewritten.AddEffects, want)
		}
	}
	wantDels := []pddl.Atom{pddl.NewAtom("a"), pddl.NewAtom("not_d")}
	for _, want := range wantDels {
		found := false
		for _, del := range rewritten.DelEffects {
			if del.Equal(want) {
				found = true
			}
		}
		if !found {
			t.Errorf("del effects %v missing %v", rewritten.DelEffects, want)
		}
	}

	// Only negated literals enter the mapping: the twin of positive d
	// is an effect, not a recorded complement pair.
	if _, ok := complements.Complement(pddl.NewAtom("a").Negate()); !ok {
		t.Error("mapping should record NegatedAtom a -> not_a")
	}
	if complements.Len() != 1 {
		t.Errorf("mapping has %d pairs, want 1", complements.Len())
	}
}

func TestRemovePolarityIsPure(t *testing.T) {
	op := pddl.NewOperator("op",
		[]pddl.Atom{pddl.NewAtom("b").Negate()},
		[]pddl.Atom{pddl.NewAtom("d")},
		0)
	snapshot := op.Clone()

	RemovePolarity([]*pddl.Operator{op})

	if !op.Equal(snapshot) {
		t.Error("RemovePolarity must not mutate its input operators")
	}
}

func TestRemovePolaritySharesMappingAcrossOperators(t *testing.T) {
	op1 := pddl.NewOperator("op1", []pddl.Atom{pddl.NewAtom("b").Negate()}, nil, 0)
	op2 := pddl.NewOperator("op2", []pddl.Atom{pddl.NewAtom("b").Negate()}, nil, 0)

	_, complements := RemovePolarity([]*pddl.Operator{op1, op2})
	if complements.Len() != 1 {
		t.Errorf("the same negated literal must map to a single complement, got %d pairs", complements.Len())
	}
}

func TestIsComplement(t *testing.T) {
	if !IsComplement(pddl.NewAtom("not_b")) {
		t.Error("not_b should be recognized as a complement")
	}
	if IsComplement(pddl.NewAtom("notebook")) {
		t.Error("prefix match must be exact")
	}
}
