// Package validation provides structural checks over a constructed
// net and its complement mapping: binary marking, place/atom
// bijection, arc well-formedness, and complement consistency of the
// initial marking and its one-step successors.
package validation

import (
	"github.com/pflow-xyz/go-petriplan/petri"
	"github.com/pflow-xyz/go-petriplan/translate"
)

// Result contains the outcome of validation.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
	Summary  Summary `json:"summary"`
}

// Issue represents a validation issue.
type Issue struct {
	Severity string   `json:"severity"` // "error" or "warning"
	Category string   `json:"category"` // "marking", "structure", "complement"
	Message  string   `json:"message"`
	Location []string `json:"location,omitempty"` // affected places/transitions
}

// Summary provides an overview of what was checked.
type Summary struct {
	Places      int `json:"places"`
	Transitions int `json:"transitions"`
	Complements int `json:"complements"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
}

// Validator performs the checks.
type Validator struct {
	net         *petri.Net
	complements *translate.ComplementMap
	result      *Result
}

// NewValidator creates a validator for a net and its complement
// mapping. The mapping may be nil; complement checks are skipped then.
func NewValidator(net *petri.Net, complements *translate.ComplementMap) *Validator {
	pairs := 0
	if complements != nil {
		pairs = complements.Len()
	}
	return &Validator{
		net:         net,
		complements: complements,
		result: &Result{
			Valid: true,
			Summary: Summary{
				Places:      len(net.Places()),
				Transitions: len(net.Transitions()),
				Complements: pairs,
			},
		},
	}
}

// Validate runs all checks.
func (v *Validator) Validate() *Result {
	v.checkBinaryMarking()
	v.checkArcs()
	v.checkComplementMarking()
	v.checkComplementPreservation()

	v.result.Valid = len(v.result.Errors) == 0
	v.result.Summary.Errors = len(v.result.Errors)
	v.result.Summary.Warnings = len(v.result.Warnings)
	return v.result
}

func (v *Validator) addError(category, message string, location []string) {
	v.result.Errors = append(v.result.Errors, Issue{
		Severity: "error",
		Category: category,
		Message:  message,
		Location: location,
	})
}

func (v *Validator) addWarning(category, message string, location []string) {
	v.result.Warnings = append(v.result.Warnings, Issue{
		Severity: "warning",
		Category: category,
		Message:  message,
		Location: location,
	})
}
