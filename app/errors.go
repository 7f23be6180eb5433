package app

import "github.com/ayoisaiah/proctor/internal/apperr"

var (
	errNothingToSet = &apperr.Error{
		Message: "no settings given: see 'proctor settings set --help'",
	}

	errRunUI = &apperr.Error{
		Message: "the clock screen exited unexpectedly",
	}
)
