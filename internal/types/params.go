package types

import (
	"slices"

	"github.com/ghettovoice/godataurl/internal/util"
)

// Param is a single key/value parameter of a media type.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of media type parameters.
// Lookup methods match keys case-insensitively.
// Insertion order and duplicate keys are preserved.
type Params []Param

// Get returns all values associated with the given key.
// If there are no values associated with the key, Get returns the empty slice.
func (ps Params) Get(key string) []string {
	var vals []string
	for _, p := range ps {
		if util.EqFold(p.Key, key) {
			vals = append(vals, p.Value)
		}
	}
	return vals
}

func (ps Params) First(key string) (string, bool) {
	for _, p := range ps {
		if util.EqFold(p.Key, key) {
			return p.Value, true
		}
	}
	return "", false
}

func (ps Params) Last(key string) (string, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if util.EqFold(ps[i].Key, key) {
			return ps[i].Value, true
		}
	}
	return "", false
}

// Has checks whether a given key is in the list.
func (ps Params) Has(key string) bool {
	_, ok := ps.First(key)
	return ok
}

// Append appends a parameter and returns the extended list.
func (ps Params) Append(key, value string) Params {
	return append(ps, Param{Key: key, Value: value})
}

// Clone returns a copy of the list.
func (ps Params) Clone() Params {
	return slices.Clone(ps)
}

// Equal compares this list with another for equality.
// Parameters are compared element-wise, so order and multiplicity matter.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case []Param:
		other = v
	default:
		return false
	}
	return slices.Equal(ps, other)
}
