package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{Message: "unable to open %s"}

func TestErrorFmt(t *testing.T) {
	err := errTemplate.Fmt("calmclock.db")

	assert.Equal(t, "unable to open calmclock.db", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.Equal(t, "unable to open %s", errTemplate.Message)
}

func TestErrorWrap(t *testing.T) {
	err := errTemplate.Fmt("calmclock.db").Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "unable to open calmclock.db: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, errTemplate)
	assert.False(t, errors.Is(err, &Error{Message: "something else"}))
}
