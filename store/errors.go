package store

import "github.com/ayoisaiah/calmclock/internal/apperr"

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is calmclock already running? Only one instance can use the store at a time",
	}

	errOpenStore = &apperr.Error{
		Message: "unable to open store at %s",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q",
	}
)
