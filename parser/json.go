// Package parser handles JSON import/export of grounded planning
// tasks. The grounding stage runs out of process; its output is
// exchanged as a JSON document:
//
//	{
//	  "atoms": [{"predicate": "a", "args": ["x"]}],
//	  "operators": [
//	    {
//	      "name": "x",
//	      "preconditions": [{"predicate": "a"}, {"predicate": "b", "negated": true}],
//	      "add_effects": [{"predicate": "d"}],
//	      "del_effects": [{"predicate": "a"}],
//	      "cost": 1
//	    }
//	  ],
//	  "init": [{"predicate": "a"}],
//	  "goal": [{"predicate": "d"}],
//	  "relaxed_reachable": true
//	}
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/pflow-xyz/go-petriplan/pddl"
)

type jsonAtom struct {
	Predicate string   `json:"predicate"`
	Args      []string `json:"args,omitempty"`
	Negated   bool     `json:"negated,omitempty"`
}

type jsonOperator struct {
	Name          string     `json:"name"`
	Preconditions []jsonAtom `json:"preconditions,omitempty"`
	AddEffects    []jsonAtom `json:"add_effects,omitempty"`
	DelEffects    []jsonAtom `json:"del_effects,omitempty"`
	Cost          int        `json:"cost,omitempty"`
}

type jsonTask struct {
	Atoms            []jsonAtom     `json:"atoms"`
	Operators        []jsonOperator `json:"operators"`
	Init             []jsonAtom     `json:"init"`
	Goal             []jsonAtom     `json:"goal"`
	RelaxedReachable bool           `json:"relaxed_reachable"`
}

// FromJSON parses a grounded task document.
func FromJSON(data []byte) (*pddl.Task, error) {
	var raw jsonTask
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid task JSON: %w", err)
	}

	task := &pddl.Task{RelaxedReachable: raw.RelaxedReachable}
	for i, a := range raw.Atoms {
		if a.Predicate == "" {
			return nil, fmt.Errorf("atom %d: empty predicate", i)
		}
		if a.Negated {
			return nil, fmt.Errorf("atom %d: grounded atom set must be positive", i)
		}
		task.Atoms = append(task.Atoms, toAtom(a))
	}
	for i, o := range raw.Operators {
		if o.Name == "" {
			return nil, fmt.Errorf("operator %d: empty name", i)
		}
		if o.Cost < 0 {
			return nil, fmt.Errorf("operator %s: negative cost %d", o.Name, o.Cost)
		}
		op := &pddl.Operator{Name: o.Name, Cost: o.Cost}
		for _, p := range o.Preconditions {
			op.Preconditions = append(op.Preconditions, toAtom(p))
		}
		for j, e := range o.AddEffects {
			if e.Negated {
				return nil, fmt.Errorf("operator %s: add effect %d is negated", o.Name, j)
			}
			op.AddEffects = append(op.AddEffects, toAtom(e))
		}
		for j, e := range o.DelEffects {
			if e.Negated {
				return nil, fmt.Errorf("operator %s: del effect %d must be given positively", o.Name, j)
			}
			op.DelEffects = append(op.DelEffects, toAtom(e))
		}
		task.Operators = append(task.Operators, op)
	}
	for _, a := range raw.Init {
		task.Init = append(task.Init, toAtom(a))
	}
	for _, a := range raw.Goal {
		task.Goal = append(task.Goal, toAtom(a))
	}
	return task, nil
}

// ToJSON serializes a grounded task, for fixtures and round-tripping.
func ToJSON(task *pddl.Task) ([]byte, error) {
	raw := jsonTask{RelaxedReachable: task.RelaxedReachable}
	for _, a := range task.Atoms {
		raw.Atoms = append(raw.Atoms, fromAtom(a))
	}
	for _, op := range task.Operators {
		jo := jsonOperator{Name: op.Name, Cost: op.Cost}
		for _, p := range op.Preconditions {
			jo.Preconditions = append(jo.Preconditions, fromAtom(p))
		}
		for _, e := range op.AddEffects {
			jo.AddEffects = append(jo.AddEffects, fromAtom(e))
		}
		for _, e := range op.DelEffects {
			jo.DelEffects = append(jo.DelEffects, fromAtom(e))
		}
		raw.Operators = append(raw.Operators, jo)
	}
	for _, a := range task.Init {
		raw.Init = append(raw.Init, fromAtom(a))
	}
	for _, a := range task.Goal {
		raw.Goal = append(raw.Goal, fromAtom(a))
	}
	return json.MarshalIndent(raw, "", "  ")
}

func toAtom(a jsonAtom) pddl.Atom {
	return pddl.Atom{Predicate: a.Predicate, Args: a.Args, Negated: a.Negated}
}

func fromAtom(a pddl.Atom) jsonAtom {
	return jsonAtom{Predicate: a.Predicate, Args: a.Args, Negated: a.Negated}
}
