package sas

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Write emits the version-3 finite-domain task text format understood
// by the planner's search component. The format is fixed downstream;
// this writer only lays out the values the pipeline produced.
func (t *Task) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "begin_version")
	fmt.Fprintln(bw, 3)
	fmt.Fprintln(bw, "end_version")

	fmt.Fprintln(bw, "begin_metric")
	if t.Metric {
		fmt.Fprintln(bw, 1)
	} else {
		fmt.Fprintln(bw, 0)
	}
	fmt.Fprintln(bw, "end_metric")

	fmt.Fprintln(bw, t.Variables.Len())
	for i := 0; i < t.Variables.Len(); i++ {
		fmt.Fprintln(bw, "begin_variable")
		fmt.Fprintf(bw, "var%d\n", i)
		fmt.Fprintln(bw, t.Variables.AxiomLayers[i])
		fmt.Fprintln(bw, t.Variables.Ranges[i])
		for _, name := range t.Variables.ValueNames[i] {
			fmt.Fprintln(bw, name)
		}
		fmt.Fprintln(bw, "end_variable")
	}

	fmt.Fprintln(bw, len(t.Mutexes))
	for _, group := range t.Mutexes {
		fmt.Fprintln(bw, "begin_mutex_group")
		fmt.Fprintln(bw, len(group.Facts))
		for _, fact := range group.Facts {
			fmt.Fprintln(bw, fact.Var, fact.Value)
		}
		fmt.Fprintln(bw, "end_mutex_group")
	}

	fmt.Fprintln(bw, "begin_state")
	for _, value := range t.Init.Values {
		fmt.Fprintln(bw, value)
	}
	fmt.Fprintln(bw, "end_state")

	fmt.Fprintln(bw, "begin_goal")
	fmt.Fprintln(bw, len(t.Goal.Pairs))
	for _, pair := range t.Goal.Pairs {
		fmt.Fprintln(bw, pair.Var, pair.Value)
	}
	fmt.Fprintln(bw, "end_goal")

	fmt.Fprintln(bw, len(t.Operators))
	for _, op := range t.Operators {
		fmt.Fprintln(bw, "begin_operator")
		fmt.Fprintln(bw, strings.Trim(op.Name, "()"))
		fmt.Fprintln(bw, len(op.Prevail))
		for _, pair := range op.Prevail {
			fmt.Fprintln(bw, pair.Var, pair.Value)
		}
		fmt.Fprintln(bw, len(op.Effects))
		for _, eff := range op.Effects {
			fmt.Fprint(bw, len(eff.Conditions))
			for _, cond := range eff.Conditions {
				fmt.Fprint(bw, " ", cond.Var, " ", cond.Value)
			}
			fmt.Fprintln(bw, "", eff.Var, eff.Pre, eff.Post)
		}
		fmt.Fprintln(bw, op.Cost)
		fmt.Fprintln(bw, "end_operator")
	}

	fmt.Fprintln(bw, len(t.Axioms))
	for _, ax := range t.Axioms {
		fmt.Fprintln(bw, "begin_rule")
		fmt.Fprintln(bw, len(ax.Conditions))
		for _, cond := range ax.Conditions {
			fmt.Fprintln(bw, cond.Var, cond.Value)
		}
		fmt.Fprintln(bw, ax.Effect.Var, 1-ax.Effect.Value, ax.Effect.Value)
		fmt.Fprintln(bw, "end_rule")
	}

	return bw.Flush()
}
