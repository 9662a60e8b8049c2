package dataurl

import "github.com/ghettovoice/godataurl/internal/types"

// Param is a single key/value parameter of the media type.
type Param = types.Param

// Params is an ordered list of media type parameters.
// Insertion order and duplicate keys are preserved across parse/render
// round-trips; lookup methods match keys case-insensitively.
type Params = types.Params
