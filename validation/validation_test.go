package validation

import (
	"testing"

	"github.com/pflow-xyz/go-petriplan/pddl"
	"github.com/pflow-xyz/go-petriplan/petri"
	"github.com/pflow-xyz/go-petriplan/translate"
)

// hickmottNet builds the intermediate net for the standard worked
// example: operator x = ({a, ¬b}, {¬a, d}), initial state {a}.
func hickmottNet(t *testing.T) (*petri.Net, *translate.ComplementMap) {
	t.Helper()
	a := pddl.NewAtom("a")
	b := pddl.NewAtom("b")
	d := pddl.NewAtom("d")
	x := pddl.NewOperator("x",
		[]pddl.Atom{a, b.Negate()},
		[]pddl.Atom{a.Negate(), d},
		0)

	safe, err := translate.SafeOperators([]*pddl.Operator{x}, translate.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	positive, complements := translate.RemovePolarity(safe)
	net, err := translate.BuildNet([]pddl.Atom{a, b, d}, complements, positive, []pddl.Atom{a})
	if err != nil {
		t.Fatal(err)
	}
	return net, complements
}

func TestValidateWellFormedNet(t *testing.T) {
	net, complements := hickmottNet(t)
	result := NewValidator(net, complements).Validate()

	if !result.Valid {
		t.Errorf("expected valid net, got errors: %+v", result.Errors)
	}
	if result.Summary.Places != 6 {
		t.Errorf("places = %d, want 6", result.Summary.Places)
	}
	if result.Summary.Transitions != 2 {
		t.Errorf("transitions = %d, want 2", result.Summary.Transitions)
	}
	if result.Summary.Complements != 3 {
		t.Errorf("complements = %d, want 3", result.Summary.Complements)
	}
}

func TestValidateFlagsBrokenComplementMarking(t *testing.T) {
	net, complements := hickmottNet(t)
	// Corrupt the marking: give not_a a token while a also holds one.
	net.Place("Atom not_a()").AddToken()

	result := NewValidator(net, complements).Validate()
	if result.Valid {
		t.Fatal("expected complement-marking violation")
	}
	found := false
	for _, issue := range result.Errors {
		if issue.Category == "complement" {
			found = true
		}
	}
	if !found {
		t.Errorf("no complement issue among %+v", result.Errors)
	}
}

func TestValidateFlagsNonBinaryMarking(t *testing.T) {
	net := petri.NewNet()
	p := petri.NewPlace("p")
	p.AddToken()
	p.AddToken()
	if err := net.AddPlace(p); err != nil {
		t.Fatal(err)
	}

	result := NewValidator(net, nil).Validate()
	if result.Valid {
		t.Fatal("expected marking violation")
	}
	if result.Errors[0].Category != "marking" {
		t.Errorf("category = %q, want marking", result.Errors[0].Category)
	}
}

func TestValidateWarnsOnSinkTransition(t *testing.T) {
	net := petri.NewNet()
	p := petri.NewPlace("p")
	p.AddToken()
	if err := net.AddPlace(p); err != nil {
		t.Fatal(err)
	}
	net.AddTransition(petri.NewTransition("sink", []*petri.Place{p}, nil, 0))

	result := NewValidator(net, nil).Validate()
	if !result.Valid {
		t.Fatalf("sink transition is a warning, not an error: %+v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for a transition that produces nothing")
	}
}
