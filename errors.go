package dataurl

import (
	"github.com/ghettovoice/godataurl/internal/charset"
	"github.com/ghettovoice/godataurl/internal/errorutil"
	"github.com/ghettovoice/godataurl/internal/grammar"
)

// Error represents a data URL error. See [errorutil.Error].
type Error = errorutil.Error

// Parse errors.
const (
	// ErrEmptyInput is returned by [Parse] on empty input.
	ErrEmptyInput = grammar.ErrEmptyInput
	// ErrMalformedInput is returned by [Parse] when the input has no
	// "data:" prefix or no comma separator.
	ErrMalformedInput = grammar.ErrMalformedInput
)

// Read errors.
const (
	// ErrInvalidBase64 is returned when the payload carries the base64 flag
	// but is not valid base64 text.
	ErrInvalidBase64 Error = "invalid base64 content"
)

// ErrUnknownCharset is returned when a character encoding name is not
// registered in the IANA index.
const ErrUnknownCharset = charset.ErrUnknownCharset
