package translate

import "errors"

var (
	// Resource limits. Safe-operator expansion is exponential in the
	// number of ambiguous effects per action; callers set caps and
	// treat these as recoverable.
	ErrTooManyAmbiguousEffects = errors.New("translate: operator exceeds ambiguous-effect limit")
	ErrTooManyOperators        = errors.New("translate: safe-operator expansion exceeds operator limit")

	// Contract violations
	ErrGoalNotMapped   = errors.New("translate: goal literal has no matching place")
	ErrUnknownAtom     = errors.New("translate: operator references atom with no place")
	ErrDuplicateAtom   = errors.New("translate: duplicate atom in grounded atom set")
	ErrNegativeCost    = errors.New("translate: operator has negative cost")
	ErrMissingOperator = errors.New("translate: operator list contains nil entry")
)
