package translate

import (
	"fmt"

	"github.com/pflow-xyz/go-petriplan/pddl"
	"github.com/pflow-xyz/go-petriplan/petri"
)

// BuildNet maps the polarity-free safe operators onto a place/transition
// net following the Hickmott et al. construction. Places are the
// original atoms plus the synthesized complements; the initial marking
// puts a token on every atom in the initial state and on every
// complement whose original positive form is absent from it.
func BuildNet(atoms []pddl.Atom, complements *ComplementMap, operators []*pddl.Operator, init []pddl.Atom) (*petri.Net, error) {
	// The initial state may carry non-atomic junk from the grounding
	// stage; only positive atoms count.
	initSet := make(map[string]bool, len(init))
	for _, a := range init {
		if !a.Negated {
			initSet[a.Key()] = true
		}
	}

	net := petri.NewNet()
	placeByAtom := make(map[string]*petri.Place, len(atoms)+complements.Len())

	for _, atom := range atoms {
		place := petri.NewPlace(atom.String())
		if initSet[atom.Key()] {
			place.AddToken()
		}
		if err := net.AddPlace(place); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAtom, atom)
		}
		placeByAtom[atom.Key()] = place
	}
	for _, pair := range complements.Pairs() {
		place := petri.NewPlace(pair.Complement.String())
		if !initSet[pair.Original.Positive().Key()] {
			place.AddToken()
		}
		if err := net.AddPlace(place); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAtom, pair.Complement)
		}
		placeByAtom[pair.Complement.Key()] = place
	}

	for _, op := range operators {
		transition, err := buildTransition(op, placeByAtom)
		if err != nil {
			return nil, err
		}
		net.AddTransition(transition)
	}
	return net, nil
}

// buildTransition wires one safe operator: every precondition place is
// consumed, every add effect place is produced, and every precondition
// that is neither re-produced nor deleted is produced again. The net
// has no read-only arcs, so a token that must survive the firing has to
// be explicitly passed through.
func buildTransition(op *pddl.Operator, placeByAtom map[string]*petri.Place) (*petri.Transition, error) {
	origins := make([]*petri.Place, 0, len(op.Preconditions))
	for _, pre := range op.Preconditions {
		place, ok := placeByAtom[pre.Key()]
		if !ok {
			return nil, fmt.Errorf("%w: %s in %s", ErrUnknownAtom, pre, op.Name)
		}
		origins = append(origins, place)
	}

	destinations := make([]*petri.Place, 0, len(op.AddEffects)+len(op.Preconditions))
	produced := make(map[string]bool, len(op.AddEffects))
	for _, add := range op.AddEffects {
		place, ok := placeByAtom[add.Key()]
		if !ok {
			return nil, fmt.Errorf("%w: %s in %s", ErrUnknownAtom, add, op.Name)
		}
		destinations = append(destinations, place)
		produced[add.Key()] = true
	}

	// Preservation arcs, matched by structural atom identity rather
	// than display string.
	deleted := make(map[string]bool, len(op.DelEffects))
	for _, del := range op.DelEffects {
		deleted[del.Key()] = true
	}
	for _, pre := range op.Preconditions {
		key := pre.Key()
		if produced[key] || deleted[key] {
			continue
		}
		destinations = append(destinations, placeByAtom[key])
	}

	return petri.NewTransition(op.Name, origins, destinations, op.Cost), nil
}
