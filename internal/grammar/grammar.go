// Package grammar implements the lexical rules of RFC 2397 data URLs.
package grammar

//go:generate go tool errtrace -w .

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/godataurl/internal/constraints"
	"github.com/ghettovoice/godataurl/internal/errorutil"
	"github.com/ghettovoice/godataurl/internal/util"
)

const (
	ErrEmptyInput     errorutil.Error = "empty input"
	ErrMalformedInput errorutil.Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// Scheme is the data URL scheme prefix.
const Scheme = "data:"

// maximum length of the input rendition included in error messages
const errInputLen = 32

// SplitURL splits a data URL into its specification and payload parts.
// The input must begin with the "data:" prefix, matched case-insensitively,
// and must contain a comma separating the specification from the payload.
// The payload is everything after the FIRST comma and is returned literally,
// without any percent-decoding.
func SplitURL[T constraints.Byteseq](s T) (spec, payload string, err error) {
	if len(s) == 0 {
		return "", "", errtrace.Wrap(ErrEmptyInput)
	}
	if len(s) < len(Scheme) || !util.EqFold(string(s[:len(Scheme)]), Scheme) {
		return "", "", errtrace.Wrap(newMalformedInputErr(
			"missing %q prefix in %q", Scheme, util.Ellipsis(string(s), errInputLen),
		))
	}
	spec, payload, found := strings.Cut(string(s[len(Scheme):]), ",")
	if !found {
		return "", "", errtrace.Wrap(newMalformedInputErr(
			"missing comma separator in %q", util.Ellipsis(string(s), errInputLen),
		))
	}
	return spec, payload, nil
}
