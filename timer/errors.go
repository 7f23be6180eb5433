package timer

import "github.com/ayoisaiah/proctor/internal/apperr"

var (
	errReadStatus = &apperr.Error{
		Message: "unable to read the status file",
	}

	errApplySettings = &apperr.Error{
		Message: "settings were not applied",
	}
)
