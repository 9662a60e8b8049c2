package dataurl

//go:generate go tool errtrace -w .

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/godataurl/internal/charset"
	"github.com/ghettovoice/godataurl/internal/errorutil"
	"github.com/ghettovoice/godataurl/internal/grammar"
	"github.com/ghettovoice/godataurl/internal/ioutil"
	"github.com/ghettovoice/godataurl/internal/types"
	"github.com/ghettovoice/godataurl/internal/util"
)

// RenderOptions contains options for rendering data URLs.
type RenderOptions = types.RenderOptions

// DefaultMediaType is the media type RFC 2397 assumes when a data URL
// carries none.
const DefaultMediaType = "text/plain;charset=US-ASCII"

// DataURL represents an RFC 2397 data URL.
//
// A DataURL is immutable after construction and safe for concurrent use.
// The payload is stored the way it appears in the URL body: base64 text when
// the base64 flag is set, literal content bytes otherwise. All constructors
// except [Parse] canonicalize to base64 storage.
type DataURL struct {
	content []byte
	ctype   string
	encoded bool
	params  Params
}

var _ interface {
	types.Renderer
	types.Cloneable[*DataURL]
	types.ValidFlag
	types.Equalable
	fmt.Stringer
} = (*DataURL)(nil)

// New creates a DataURL from raw content bytes.
// The content is stored base64-encoded, so the rendered URL always carries
// the ";base64" flag.
func New(content []byte, ctype string, params ...Param) *DataURL {
	return NewBase64(base64.StdEncoding.EncodeToString(content), ctype, params...)
}

// NewString creates a DataURL from text content encoded with the default
// UTF-8 encoding. See [New].
func NewString(content, ctype string, params ...Param) *DataURL {
	return New([]byte(content), ctype, params...)
}

// NewStringCharset creates a DataURL from text content encoded with the
// named character encoding. It fails with an error matching
// [ErrUnknownCharset] when the name is not registered. See [New].
func NewStringCharset(content, ctype, cs string, params ...Param) (*DataURL, error) {
	b, err := charset.Encode(content, cs)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return New(b, ctype, params...), nil
}

// NewBase64 creates a DataURL from an already base64-encoded payload.
// The payload is stored as given, without re-encoding or validation:
// invalid base64 text surfaces later from [DataURL.Bytes].
func NewBase64(encoded, ctype string, params ...Param) *DataURL {
	return &DataURL{
		content: []byte(encoded),
		ctype:   ctype,
		encoded: true,
		params:  Params(params).Clone(),
	}
}

// ContentType returns the media type exactly as it was given or parsed.
// It may be empty.
func (u *DataURL) ContentType() string {
	if u == nil {
		return ""
	}
	return u.ctype
}

// MediaType returns the effective media type: the content type when present,
// [DefaultMediaType] otherwise.
func (u *DataURL) MediaType() string {
	if u == nil {
		return ""
	}
	if u.ctype == "" {
		return DefaultMediaType
	}
	return u.ctype
}

// IsBase64 reports whether the stored payload is base64 text, i.e. whether
// the rendered URL carries the ";base64" flag.
func (u *DataURL) IsBase64() bool {
	return u != nil && u.encoded
}

// Params returns a copy of the media type parameters in their original order.
func (u *DataURL) Params() Params {
	if u == nil {
		return nil
	}
	return u.params.Clone()
}

// Charset returns the value of the last "charset" parameter.
func (u *DataURL) Charset() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.params.Last("charset")
}

// Bytes returns the decoded content bytes.
// It fails with an error matching [ErrInvalidBase64] when the payload
// carries the base64 flag but is not valid base64 text.
func (u *DataURL) Bytes() ([]byte, error) {
	if u == nil {
		return nil, nil
	}
	if !u.encoded {
		return bytes.Clone(u.content), nil
	}
	b, err := base64.StdEncoding.DecodeString(string(u.content))
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidBase64, err))
	}
	return b, nil
}

// Text returns the content decoded into a string with the default UTF-8
// encoding. See [DataURL.Bytes].
func (u *DataURL) Text() (string, error) {
	b, err := u.Bytes()
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return string(b), nil
}

// TextCharset returns the content decoded into a string with the named
// character encoding. See [DataURL.Bytes].
func (u *DataURL) TextCharset(name string) (string, error) {
	b, err := u.Bytes()
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(charset.Decode(b, name))
}

// Base64 returns the payload as base64 text.
// A payload already stored base64-encoded is returned as is, without
// re-encoding or validation; a raw payload is encoded with the standard
// alphabet.
func (u *DataURL) Base64() string {
	if u == nil {
		return ""
	}
	if u.encoded {
		return string(u.content)
	}
	return base64.StdEncoding.EncodeToString(u.content)
}

// RenderTo writes the data URL to the provided writer.
func (u *DataURL) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(grammar.Scheme, u.ctype)
	if u.encoded {
		cw.Fprint(";base64")
	}
	cw.Call(u.renderParams)
	cw.Fprint(",")
	// the payload goes out byte-for-byte, never percent-encoded
	cw.Write(u.content)
	return errtrace.Wrap2(cw.Result())
}

func (u *DataURL) renderParams(w io.Writer) (num int, err error) {
	if len(u.params) == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, p := range u.params {
		cw.Fprint(";", grammar.Escape(p.Key, nil), "=", grammar.Escape(p.Value, nil))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the data URL.
func (u *DataURL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the data URL.
func (u *DataURL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the data URL.
func (u *DataURL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods DataURL
		type DataURL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*DataURL)(u))
		return
	}
}

// Clone returns a deep copy of the data URL.
func (u *DataURL) Clone() *DataURL {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.content = bytes.Clone(u.content)
	u2.params = u.params.Clone()
	return &u2
}

// Equal compares this data URL with another for structural equality:
// payload bytes, content type, base64 flag and the ordered parameter list
// must all match.
func (u *DataURL) Equal(val any) bool {
	var other *DataURL
	switch v := val.(type) {
	case DataURL:
		other = &v
	case *DataURL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.encoded == other.encoded &&
		u.ctype == other.ctype &&
		bytes.Equal(u.content, other.content) &&
		u.params.Equal(other.params)
}

// IsValid checks whether the stored payload is readable: base64-flagged
// content must decode with the standard alphabet, raw content always is.
func (u *DataURL) IsValid() bool {
	if u == nil {
		return false
	}
	if !u.encoded {
		return true
	}
	_, err := base64.StdEncoding.DecodeString(string(u.content))
	return err == nil
}

// MarshalText implements [encoding.TextMarshaler].
func (u *DataURL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *DataURL) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = DataURL{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
