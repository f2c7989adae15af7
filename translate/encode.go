package translate

import (
	"fmt"

	"github.com/pflow-xyz/go-petriplan/pddl"
	"github.com/pflow-xyz/go-petriplan/petri"
	"github.com/pflow-xyz/go-petriplan/sas"
)

// Encode maps a completed net and the task goal onto the finite-domain
// encoding: one binary variable per place in net insertion order,
// initial values from the initial marking, goal pairs matched against
// place names, and one operator per transition with explicit pre/post
// values. No prevail conditions, mutexes, or axioms are emitted; the
// encoding is always cost-aware.
func Encode(net *petri.Net, goal pddl.Condition) (*sas.Task, error) {
	places := net.Places()
	variables := sas.Variables{
		Ranges:      make([]int, 0, len(places)),
		AxiomLayers: make([]int, 0, len(places)),
		ValueNames:  make([][]string, 0, len(places)),
	}
	initValues := make([]int, 0, len(places))
	varByPlace := make(map[string]int, len(places))

	var goalPairs []sas.VarValue
	matched := make([]bool, len(goal))

	for _, place := range places {
		index := variables.Len()
		varByPlace[place.Name] = index
		variables.Ranges = append(variables.Ranges, 2)
		variables.AxiomLayers = append(variables.AxiomLayers, -1)
		variables.ValueNames = append(variables.ValueNames, []string{
			place.Name + "(false)",
			place.Name + "(true)",
		})
		if place.Tokens > 0 {
			initValues = append(initValues, 1)
		} else {
			initValues = append(initValues, 0)
		}
		// A positive goal literal selects value 1 of its own variable; a
		// negated one selects value 0. Goal translation never introduces
		// a variable: the complement places are not consulted.
		for i, lit := range goal {
			if lit.String() == place.Name {
				goalPairs = append(goalPairs, sas.VarValue{Var: index, Value: 1})
				matched[i] = true
			}
			if lit.Negate().String() == place.Name {
				goalPairs = append(goalPairs, sas.VarValue{Var: index, Value: 0})
				matched[i] = true
			}
		}
	}
	for i, lit := range goal {
		if !matched[i] {
			return nil, fmt.Errorf("%w: %s", ErrGoalNotMapped, lit)
		}
	}

	operators := make([]sas.Operator, 0, len(net.Transitions()))
	for _, t := range net.Transitions() {
		operators = append(operators, encodeTransition(t, varByPlace))
	}

	return &sas.Task{
		Variables: variables,
		Init:      sas.State{Values: initValues},
		Goal:      sas.Goal{Pairs: goalPairs},
		Operators: operators,
		Metric:    true,
	}, nil
}

// encodeTransition folds a transition's arcs into pre/post pairs: every
// origin is consumed (pre 1) and restored only if it is also a
// destination; every destination not covered as an origin is produced
// from the empty slot (pre 0).
func encodeTransition(t *petri.Transition, varByPlace map[string]int) sas.Operator {
	isDestination := make(map[string]bool, len(t.Destinations))
	for _, dest := range t.Destinations {
		isDestination[dest.Name] = true
	}

	effects := make([]sas.Effect, 0, len(t.Origins)+len(t.Destinations))
	entered := make(map[int]bool, len(t.Origins))
	for _, orig := range t.Origins {
		v := varByPlace[orig.Name]
		post := 0
		if isDestination[orig.Name] {
			post = 1
		}
		effects = append(effects, sas.Effect{Var: v, Pre: 1, Post: post})
		entered[v] = true
	}
	for _, dest := range t.Destinations {
		v := varByPlace[dest.Name]
		if entered[v] {
			continue
		}
		effects = append(effects, sas.Effect{Var: v, Pre: 0, Post: 1})
	}

	return sas.Operator{
		Name:    fmt.Sprintf("(%s)", t.Name),
		Effects: effects,
		Cost:    t.Cost,
	}
}
