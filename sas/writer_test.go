package sas

import (
	"strings"
	"testing"
)

func TestWriteUnsolvableTask(t *testing.T) {
	var sb strings.Builder
	if err := UnsolvableTask("no relaxed solution").Write(&sb); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	want := `begin_version
3
end_version
begin_metric
1
end_metric
1
begin_variable
var0
-1
2
dummy(false)
dummy(true)
end_variable
0
begin_state
0
end_state
begin_goal
1
0 1
end_goal
0
0
`
	if got := sb.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteOperatorSection(t *testing.T) {
	task := &Task{
		Variables: Variables{
			Ranges:      []int{2, 2},
			AxiomLayers: []int{-1, -1},
			ValueNames: [][]string{
				{"Atom p()(false)", "Atom p()(true)"},
				{"Atom q()(false)", "Atom q()(true)"},
			},
		},
		Init: State{Values: []int{1, 0}},
		Goal: Goal{Pairs: []VarValue{{Var: 1, Value: 1}}},
		Operators: []Operator{{
			Name: "(move_1)",
			Effects: []Effect{
				{Var: 0, Pre: 1, Post: 0},
				{Var: 1, Pre: 0, Post: 1},
			},
			Cost: 4,
		}},
		Metric: true,
	}

	var sb strings.Builder
	if err := task.Write(&sb); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := sb.String()

	// The operator name is emitted without the surrounding parentheses.
	opSection := `begin_operator
move_1
0
2
0 0 1 0
0 1 0 1
4
end_operator
`
	if !strings.Contains(out, opSection) {
		t.Errorf("operator section missing or malformed:\n%s", out)
	}
	if !strings.Contains(out, "begin_metric\n1\nend_metric\n") {
		t.Errorf("metric flag missing:\n%s", out)
	}
}

func TestVariablesLen(t *testing.T) {
	v := Variables{Ranges: []int{2, 2, 2}}
	if v.Len() != 3 {
		t.Errorf("Len() = %d, want 3", v.Len())
	}
}
