package timer

import "github.com/ayoisaiah/calmclock/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open sound file %s",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse session_cmd option",
	}

	errEncodeLogs = &apperr.Error{
		Message: "unable to encode session log",
	}

	errWriteExport = &apperr.Error{
		Message: "unable to write export file %s",
	}

	errSaveLogs = &apperr.Error{
		Message: "unable to save session log",
	}

	errSaveSettings = &apperr.Error{
		Message: "unable to save settings",
	}
)
