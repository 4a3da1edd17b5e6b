package app

import "github.com/ayoisaiah/calmclock/internal/apperr"

var (
	errInitPaths = &apperr.Error{
		Message: "unable to locate the calmclock directories",
	}

	errOpenStore = &apperr.Error{
		Message: "unable to open the session store",
	}

	errParseDate = &apperr.Error{
		Message: "invalid value for --%s",
	}

	errNoteRequired = &apperr.Error{
		Message: "note text is required",
	}
)
