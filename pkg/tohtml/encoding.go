package tohtml

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// encode converts UTF-8 output to the encoding named by label.
// Characters the encoding cannot represent become numeric character
// references.
func encode(s, label string) (string, error) {
	if label == "" {
		return s, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", errors.Wrapf(err, "unsupported encoding %q", label)
	}

	out, err := encoding.HTMLEscapeUnsupported(enc.NewEncoder()).String(s)
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode output as %q", label)
	}
	return out, nil
}
