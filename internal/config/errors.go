package config

import "github.com/ayoisaiah/calmclock/internal/apperr"

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

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q (must be bolt or sqlite)",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errSoundNotFound = &apperr.Error{
		Message: "sound file not found: %s",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "invalid log level %q",
	}

	errInvalidToggle = &apperr.Error{
		Message: "invalid value %q for --%s (use on or off)",
	}
)
