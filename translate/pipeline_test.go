package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pflow-xyz/go-petriplan/eventlog"
	"github.com/pflow-xyz/go-petriplan/pddl"
)

func blocksTask() *pddl.Task {
	a := pddl.NewAtom("a")
	b := pddl.NewAtom("b")
	d := pddl.NewAtom("d")
	return &pddl.Task{
		Atoms: []pddl.Atom{a, b, d},
		Operators: []*pddl.Operator{pddl.NewOperator("x",
			[]pddl.Atom{a, b.Negate()},
			[]pddl.Atom{a.Negate(), d},
			0)},
		Init:             []pddl.Atom{a},
		Goal:             pddl.Condition{d},
		RelaxedReachable: true,
	}
}

func TestTranslateProducesCompleteResult(t *testing.T) {
	result, err := Translate(blocksTask(), DefaultOptions())
	require.NoError(t, err)

	assert.False(t, result.Unsolvable)
	require.NotNil(t, result.Task)
	require.NotNil(t, result.Net)
	require.NotNil(t, result.Complements)

	assert.Equal(t, 1, result.Stats.Operators)
	assert.Equal(t, 2, result.Stats.SafeOperators)
	assert.Equal(t, 3, result.Stats.ComplementPairs)
	assert.Equal(t, 6, result.Stats.Places)
	assert.Equal(t, 2, result.Stats.Transitions)
	assert.Equal(t, 6, result.Stats.Variables)
}

func TestTranslateUnsolvableShortCircuits(t *testing.T) {
	task := blocksTask()
	task.RelaxedReachable = false

	result, err := Translate(task, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, result.Unsolvable)
	assert.Equal(t, "no relaxed solution", result.Reason)
	assert.Nil(t, result.Net, "no intermediate artifacts on short-circuit")

	// The canonical unsolvable encoding: one binary variable, goal
	// unreachable because no operator exists.
	require.NotNil(t, result.Task)
	assert.Equal(t, 1, result.Task.Variables.Len())
	assert.Empty(t, result.Task.Operators)
	require.Len(t, result.Task.Goal.Pairs, 1)
	assert.Equal(t, 1, result.Task.Goal.Pairs[0].Value)
	assert.Equal(t, 0, result.Task.Init.Values[0])
}

func TestTranslateRespectsLimits(t *testing.T) {
	task := blocksTask()
	opts := DefaultOptions()
	opts.Limits.MaxOperators = 1

	_, err := Translate(task, opts)
	require.ErrorIs(t, err, ErrTooManyOperators)
}

func TestTranslateMalformedGoal(t *testing.T) {
	task := blocksTask()
	task.Goal = pddl.Condition{pddl.NewAtom("nowhere")}

	_, err := Translate(task, DefaultOptions())
	require.ErrorIs(t, err, ErrGoalNotMapped)
}

func TestTranslateRecordsStageEvents(t *testing.T) {
	opts := DefaultOptions()
	opts.Recorder = eventlog.NewRecorder()

	_, err := Translate(blocksTask(), opts)
	require.NoError(t, err)

	var stages []string
	for _, ev := range opts.Recorder.Events() {
		stages = append(stages, ev.Stage)
	}
	assert.Equal(t, []string{"expand", "polarity", "net", "encode"}, stages)
}

func TestTranslateIsDeterministic(t *testing.T) {
	first, err := Translate(blocksTask(), DefaultOptions())
	require.NoError(t, err)
	second, err := Translate(blocksTask(), DefaultOptions())
	require.NoError(t, err)

	assert.True(t, first.Net.Equal(second.Net))
	assert.Equal(t, first.Task, second.Task)
}
