package validation

import "fmt"

// checkBinaryMarking verifies every place starts with 0 or 1 tokens.
// The construction guarantees 1-safety; more than one initial token
// means the builder was fed a malformed task.
func (v *Validator) checkBinaryMarking() {
	for _, p := range v.net.Places() {
		if p.Tokens < 0 || p.Tokens > 1 {
			v.addError("marking",
				fmt.Sprintf("place %q holds %d tokens, expected 0 or 1", p.Name, p.Tokens),
				[]string{p.Name})
		}
	}
}

// checkArcs verifies no transition lists the same place twice among
// its origins or destinations, and that every referenced place belongs
// to the net.
func (v *Validator) checkArcs() {
	for _, t := range v.net.Transitions() {
		seenOrigins := make(map[string]bool, len(t.Origins))
		for _, orig := range t.Origins {
			if seenOrigins[orig.Name] {
				v.addError("structure",
					fmt.Sprintf("transition %q consumes place %q twice", t.Name, orig.Name),
					[]string{t.Name, orig.Name})
			}
			seenOrigins[orig.Name] = true
			if v.net.Place(orig.Name) == nil {
				v.addError("structure",
					fmt.Sprintf("transition %q consumes unknown place %q", t.Name, orig.Name),
					[]string{t.Name, orig.Name})
			}
		}
		seenDests := make(map[string]bool, len(t.Destinations))
		for _, dest := range t.Destinations {
			if seenDests[dest.Name] {
				v.addError("structure",
					fmt.Sprintf("transition %q produces place %q twice", t.Name, dest.Name),
					[]string{t.Name, dest.Name})
			}
			seenDests[dest.Name] = true
			if v.net.Place(dest.Name) == nil {
				v.addError("structure",
					fmt.Sprintf("transition %q produces unknown place %q", t.Name, dest.Name),
					[]string{t.Name, dest.Name})
			}
		}
		if len(t.Destinations) == 0 {
			v.addWarning("structure",
				fmt.Sprintf("transition %q produces nothing", t.Name),
				[]string{t.Name})
		}
	}
}

// checkComplementMarking verifies that in the initial marking exactly
// one of each (atom, complement) place pair holds a token.
func (v *Validator) checkComplementMarking() {
	if v.complements == nil {
		return
	}
	marking := v.net.InitialMarking()
	for _, pair := range v.complements.Pairs() {
		origName := pair.Original.Positive().String()
		compName := pair.Complement.String()
		if v.net.Place(compName) == nil {
			v.addError("complement",
				fmt.Sprintf("complement place %q missing from net", compName),
				[]string{compName})
			continue
		}
		if v.net.Place(origName) == nil {
			// The complement exists but its base atom was never grounded.
			v.addWarning("complement",
				fmt.Sprintf("complement %q has no base place %q", compName, origName),
				[]string{compName})
			continue
		}
		if marking[origName]+marking[compName] != 1 {
			v.addError("complement",
				fmt.Sprintf("initial marking holds %d tokens across pair (%q, %q), expected exactly 1",
					marking[origName]+marking[compName], origName, compName),
				[]string{origName, compName})
		}
	}
}

// checkComplementPreservation fires every transition enabled in the
// initial marking and verifies each complement pair still holds
// exactly one token afterwards.
func (v *Validator) checkComplementPreservation() {
	if v.complements == nil {
		return
	}
	initial := v.net.InitialMarking()
	for _, t := range v.net.Transitions() {
		if !initial.Enabled(t) {
			continue
		}
		next, err := initial.Fire(t)
		if err != nil {
			v.addError("complement",
				fmt.Sprintf("firing %q failed: %v", t.Name, err),
				[]string{t.Name})
			continue
		}
		for _, pair := range v.complements.Pairs() {
			origName := pair.Original.Positive().String()
			compName := pair.Complement.String()
			if v.net.Place(origName) == nil || v.net.Place(compName) == nil {
				continue
			}
			if next[origName]+next[compName] != 1 {
				v.addError("complement",
					fmt.Sprintf("after firing %q, pair (%q, %q) holds %d tokens, expected exactly 1",
						t.Name, origName, compName, next[origName]+next[compName]),
					[]string{t.Name, origName, compName})
			}
		}
	}
}
