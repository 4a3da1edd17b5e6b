package timeutil

import "github.com/ayoisaiah/calmclock/internal/apperr"

var errUnparsableDate = &apperr.Error{
	Message: "unable to parse date %q",
}
