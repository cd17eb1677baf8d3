package draftjs

import (
	"github.com/pkg/errors"
)

// ErrInvalidDocument is returned when raw input does not have the
// shape of a Draft.js document.
var ErrInvalidDocument = errors.New("invalid draftjs document")

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidDocument, format, args...)
}
