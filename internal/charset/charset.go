// Package charset converts between byte sequences and strings of a named
// character encoding on top of the golang.org/x/text registry.
package charset

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ghettovoice/godataurl/internal/errorutil"
)

// DefaultName is the name of the default character encoding.
const DefaultName = "utf-8"

const ErrUnknownCharset errorutil.Error = "unknown charset"

// Lookup returns the encoding registered under the given IANA name.
// An empty name resolves to [DefaultName].
func Lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultName
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		// the index returns a nil encoding without an error for names
		// it knows but cannot convert
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownCharset, "%s", name))
	}
	return enc, nil
}

// Encode converts s into its byte representation in the named encoding.
func Encode(s, name string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(enc.NewEncoder().Bytes([]byte(s)))
}

// Decode converts bytes of the named encoding into a string.
func Decode(b []byte, name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	b2, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return string(b2), nil
}
