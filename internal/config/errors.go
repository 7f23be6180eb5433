package config

import "github.com/ayoisaiah/proctor/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errInvalidInterval = &apperr.Error{
		Message: "clock interval must be between %v and %v, got %v",
	}

	errInvalidRate = &apperr.Error{
		Message: "voice rate must be between %v and %v, got %v",
	}

	errInvalidVolume = &apperr.Error{
		Message: "voice volume must be between 0 and 1, got %v",
	}

	errUnknownLogLevel = &apperr.Error{
		Message: "unknown log level %q (expected debug, info, warn or error)",
	}

	errEssayConflict = &apperr.Error{
		Message: "--essay and --no-essay cannot be combined",
	}

	errInvalidFlag = &apperr.Error{
		Message: "invalid value for --%s",
	}
)
