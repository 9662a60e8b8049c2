// Package dataurl provides parsing, construction, and rendering of "data"
// URLs as defined by RFC 2397.
//
// # Overview
//
// A data URL embeds typed content directly inside a URL string:
//
//	data:<mediatype>[;key=value...][;base64],<payload>
//
// The package is built around a single immutable value type, [DataURL],
// holding the payload, the media type, the base64 flag and an ordered list
// of media type parameters. All operations are pure functions over their
// inputs: there is no shared state, and every value is safe for concurrent
// use after construction.
//
// # Parsing
//
//	u, err := dataurl.Parse("data:text/plain;base64,SGVsbG8sIFdvcmxkIQ==")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	txt, _ := u.Text() // "Hello, World!"
//
// Parsing splits the input at the first comma: everything before it is the
// media type specification, everything after it is the literal payload.
// Specification items are scanned left to right; the "base64" item
// (matched case-insensitively on the raw trimmed key) becomes the base64
// flag, every other item becomes a percent-decoded key/value parameter with
// insertion order and duplicates preserved. The payload itself is never
// percent-decoded, and base64 payload text is not validated until a read
// method needs it.
//
// [TryParse] is a non-failing variant for callers that only care whether
// the input was a data URL at all:
//
//	if u, ok := dataurl.TryParse(input); ok {
//	    // ...
//	}
//
// # Construction
//
// Constructors canonicalize to base64 storage, so constructed URLs always
// render with the ";base64" flag:
//
//	u := dataurl.New([]byte{0xde, 0xad}, "application/octet-stream")
//	u = dataurl.NewString("hello", "text/plain")
//	u, err := dataurl.NewStringCharset("entré", "text/plain", "iso-8859-1")
//	u = dataurl.NewBase64("SGVsbG8=", "text/plain")
//
// # Rendering
//
// [DataURL.String] assembles the canonical form: "data:", the verbatim
// media type, ";base64" when flagged, each parameter as
// ";key=value" with percent-escaped key and value, a comma, and the payload
// byte-for-byte. For canonical inputs parsing and rendering are inverses:
//
//	u, _ := dataurl.Parse(s)
//	u.String() == s
//
// Inputs with incidental whitespace around ";" and "=" tokens, or with
// non-canonical parameter escaping, round-trip semantically but not
// byte-for-byte, since parsing trims and decodes what rendering does not
// reinsert.
package dataurl
