// Package sas holds the finite-domain (multi-valued) planning task
// artifacts produced by the translation pipeline and consumed by the
// planner's search component: binary variables, initial values, goal
// pairs, and operators with explicit pre/post values per variable.
package sas

// VarValue is a (variable index, value) pair.
type VarValue struct {
	Var   int
	Value int
}

// Variables declares the finite-domain variables: per-variable range,
// axiom layer (-1 when the variable is not derived), and the display
// name of each value.
type Variables struct {
	Ranges      []int
	AxiomLayers []int
	ValueNames  [][]string
}

// Len returns the number of variables.
func (v Variables) Len() int {
	return len(v.Ranges)
}

// State is a full assignment of values to variables.
type State struct {
	Values []int
}

// Goal is the conjunction of variable assignments the search must reach.
type Goal struct {
	Pairs []VarValue
}

// Effect assigns Post to Var when Pre matches (or unconditionally when
// Pre is -1). Conditions carry per-effect conditions; this pipeline
// never emits any.
type Effect struct {
	Var        int
	Pre        int
	Post       int
	Conditions []VarValue
}

// Operator is a finite-domain operator: prevail conditions (always
// empty here, folded into explicit pre/post pairs), effects, and cost.
type Operator struct {
	Name    string
	Prevail []VarValue
	Effects []Effect
	Cost    int
}

// MutexGroup is a set of mutually exclusive facts. The pipeline emits
// none.
type MutexGroup struct {
	Facts []VarValue
}

// Axiom derives a variable value from conditions. The pipeline emits
// none.
type Axiom struct {
	Conditions []VarValue
	Effect     VarValue
}

// Task is the complete finite-domain task.
type Task struct {
	Variables Variables
	Mutexes   []MutexGroup
	Init      State
	Goal      Goal
	Operators []Operator
	Axioms    []Axiom
	Metric    bool
}

// UnsolvableTask is the short-circuit artifact emitted when grounding
// reports the task has no relaxed solution: a single binary variable
// whose goal value is unreachable because no operator exists. The
// reason is for the caller to report; the encoding itself is fixed.
func UnsolvableTask(reason string) *Task {
	return &Task{
		Variables: Variables{
			Ranges:      []int{2},
			AxiomLayers: []int{-1},
			ValueNames:  [][]string{{"dummy(false)", "dummy(true)"}},
		},
		Init:   State{Values: []int{0}},
		Goal:   Goal{Pairs: []VarValue{{Var: 0, Value: 1}}},
		Metric: true,
	}
}
