// Package translate compiles a grounded propositional planning task
// into a finite-domain encoding by way of a 1-safe place/transition
// net, following the Hickmott et al. mapping. Grounded actions may not
// be 1-safe, so each is first expanded into provably safe variants,
// negative literals are then eliminated with complementary atoms, and
// the resulting operators are mapped onto a net whose places become
// binary state variables.
package translate

import (
	"github.com/rs/zerolog"

	"github.com/pflow-xyz/go-petriplan/eventlog"
	"github.com/pflow-xyz/go-petriplan/pddl"
	"github.com/pflow-xyz/go-petriplan/petri"
	"github.com/pflow-xyz/go-petriplan/sas"
)

// Options configures a translation run.
type Options struct {
	Limits   Limits
	Logger   zerolog.Logger
	Recorder *eventlog.Recorder // optional stage event recorder
}

// DefaultOptions returns options with the default expansion limits and
// a disabled logger.
func DefaultOptions() Options {
	return Options{
		Limits: Limits{MaxAmbiguousEffects: 20},
		Logger: zerolog.Nop(),
	}
}

// Stats counts the artifacts of each stage.
type Stats struct {
	Operators       int
	SafeOperators   int
	ComplementPairs int
	Places          int
	Transitions     int
	Variables       int
}

// Result is the outcome of a translation. When the grounding stage
// reported the task relaxed-unreachable, Unsolvable is set, Reason
// explains why, and Task carries the canonical unsolvable encoding;
// the intermediate artifacts are nil in that case.
type Result struct {
	Task          *sas.Task
	Net           *petri.Net
	Complements   *ComplementMap
	SafeOperators []*pddl.Operator
	Unsolvable    bool
	Reason        string
	Stats         Stats
}

// Translate runs the full pipeline on a grounded task. The pipeline is
// a pure function of its inputs: each stage fully consumes its input
// and hands a fresh structure to the next, and on error no partial
// output is returned.
func Translate(task *pddl.Task, opts Options) (*Result, error) {
	log := opts.Logger

	if !task.RelaxedReachable {
		const reason = "no relaxed solution"
		log.Info().Str("reason", reason).Msg("task unsolvable, skipping translation")
		record(opts.Recorder, "unsolvable", map[string]interface{}{"reason": reason})
		return &Result{
			Task:       sas.UnsolvableTask(reason),
			Unsolvable: true,
			Reason:     reason,
		}, nil
	}

	safe, err := SafeOperators(task.Operators, opts.Limits)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("operators", len(task.Operators)).
		Int("safe_operators", len(safe)).
		Msg("safe-operator expansion")
	record(opts.Recorder, "expand", map[string]interface{}{
		"operators":      len(task.Operators),
		"safe_operators": len(safe),
	})

	positive, complements := RemovePolarity(safe)
	log.Debug().Int("complement_pairs", complements.Len()).Msg("polarity elimination")
	record(opts.Recorder, "polarity", map[string]interface{}{
		"complement_pairs": complements.Len(),
	})

	net, err := BuildNet(task.Atoms, complements, positive, task.Init)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("places", len(net.Places())).
		Int("transitions", len(net.Transitions())).
		Msg("net construction")
	record(opts.Recorder, "net", map[string]interface{}{
		"places":      len(net.Places()),
		"transitions": len(net.Transitions()),
	})

	encoded, err := Encode(net, task.Goal)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("variables", encoded.Variables.Len()).
		Int("operators", len(encoded.Operators)).
		Msg("finite-domain encoding")
	record(opts.Recorder, "encode", map[string]interface{}{
		"variables": encoded.Variables.Len(),
		"operators": len(encoded.Operators),
	})

	return &Result{
		Task:          encoded,
		Net:           net,
		Complements:   complements,
		SafeOperators: positive,
		Stats: Stats{
			Operators:       len(task.Operators),
			SafeOperators:   len(safe),
			ComplementPairs: complements.Len(),
			Places:          len(net.Places()),
			Transitions:     len(net.Transitions()),
			Variables:       encoded.Variables.Len(),
		},
	}, nil
}

func record(r *eventlog.Recorder, stage string, attrs map[string]interface{}) {
	if r != nil {
		r.Record(stage, attrs)
	}
}
