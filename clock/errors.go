package clock

import "github.com/ayoisaiah/proctor/internal/apperr"

var (
	errUnknownMode = &apperr.Error{
		Message: "unknown clock mode: %q",
	}

	errSaveSettings = &apperr.Error{
		Message: "unable to save settings",
	}
)
