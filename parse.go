package dataurl

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/godataurl/internal/grammar"
	"github.com/ghettovoice/godataurl/internal/util"
)

// base64Flag is matched case-insensitively on the raw trimmed key,
// before percent-decoding.
const base64Flag = "base64"

// Parse parses a data URL from the given input src (string or []byte).
//
// Parse fails with an error matching [ErrEmptyInput] on empty input and
// [ErrMalformedInput] when the case-insensitive "data:" prefix or the comma
// separator is missing. The payload after the first comma is taken
// literally; base64 payload content is not validated here, invalid base64
// surfaces later from [DataURL.Bytes].
func Parse[T ~string | ~[]byte](src T) (*DataURL, error) {
	spec, payload, err := grammar.SplitURL(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	segs := strings.Split(spec, ";")
	u := &DataURL{
		content: []byte(payload),
		ctype:   segs[0],
	}
	for _, item := range segs[1:] {
		key, val, _ := strings.Cut(item, "=")
		key, val = util.TrimSP(key), util.TrimSP(val)
		if util.EqFold(key, base64Flag) {
			// a pure flag: any value after "=" is discarded
			u.encoded = true
			continue
		}
		u.params = u.params.Append(grammar.Unescape(key), grammar.Unescape(val))
	}
	return u, nil
}

// TryParse parses like [Parse], reporting failure with the ok flag instead
// of an error.
func TryParse[T ~string | ~[]byte](src T) (*DataURL, bool) {
	u, err := Parse(src)
	if err != nil {
		return nil, false
	}
	return u, true
}
