package pddl

// Operator is a grounded action: a conjunctive precondition, add and
// del effect lists, and a non-negative cost. Del effects are stored in
// positive form; the polarity lives in the effect kind. Each pipeline
// stage owns its operator list exclusively, so operators are cloned
// rather than aliased when a stage rewrites them.
type Operator struct {
	Name          string
	Preconditions Condition
	AddEffects    []Atom
	DelEffects    []Atom
	Cost          int
}

// NewOperator builds an operator from a mixed-polarity effect list:
// positive literals become add effects, negated literals become del
// effects on their positive form.
func NewOperator(name string, preconditions []Atom, effects []Atom, cost int) *Operator {
	op := &Operator{
		Name:          name,
		Preconditions: append(Condition(nil), preconditions...),
		Cost:          cost,
	}
	for _, eff := range effects {
		if eff.Negated {
			op.DelEffects = append(op.DelEffects, eff.Positive())
		} else {
			op.AddEffects = append(op.AddEffects, eff)
		}
	}
	return op
}

// Effects returns the operator's full effect set expressed as the
// literal each effect makes true: add effects as-is, del effects
// negated.
func (op *Operator) Effects() []Atom {
	effects := make([]Atom, 0, len(op.AddEffects)+len(op.DelEffects))
	effects = append(effects, op.AddEffects...)
	for _, del := range op.DelEffects {
		effects = append(effects, del.Negate())
	}
	return effects
}

// Clone returns a deep copy of the operator.
func (op *Operator) Clone() *Operator {
	return &Operator{
		Name:          op.Name,
		Preconditions: append(Condition(nil), op.Preconditions...),
		AddEffects:    append([]Atom(nil), op.AddEffects...),
		DelEffects:    append([]Atom(nil), op.DelEffects...),
		Cost:          op.Cost,
	}
}

// Equal reports structural equality of two operators, including
// literal ordering.
func (op *Operator) Equal(other *Operator) bool {
	if op.Name != other.Name || op.Cost != other.Cost {
		return false
	}
	if !atomsEqual(op.Preconditions, other.Preconditions) {
		return false
	}
	return atomsEqual(op.AddEffects, other.AddEffects) &&
		atomsEqual(op.DelEffects, other.DelEffects)
}

func atomsEqual(a, b []Atom) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Task is the grounded planning task delivered by the upstream
// grounding stage: the full atom set, grounded operators, initial
// state, goal conjunction, and whether a relaxed solution exists.
type Task struct {
	Atoms            []Atom
	Operators        []*Operator
	Init             []Atom
	Goal             Condition
	RelaxedReachable bool
}
