package include

import (
	"strings"

	"github.com/wippyai/bridgegen/errors"
)

// Facility is a standard library capability generated code may depend on.
type Facility uint8

// Standard facilities in canonical emission order, then platform facilities.
const (
	Algorithm Facility = iota
	Array
	Cstddef
	Cstdint
	Cstring
	Exception
	InitializerList
	Iterator
	Memory
	Placement
	String
	TypeTraits
	Utility
	Vector
	BaseTSD

	numFacilities
)

// standardHeaders is checked in order by Set.Write. Never replace this with
// a map: emission order must not depend on iteration order.
var standardHeaders = [...]struct {
	facility Facility
	name     string
	header   string
}{
	{Algorithm, "algorithm", "algorithm"},
	{Array, "array", "array"},
	{Cstddef, "cstddef", "cstddef"},
	{Cstdint, "cstdint", "cstdint"},
	{Cstring, "cstring", "cstring"},
	{Exception, "exception", "exception"},
	{InitializerList, "initializer_list", "initializer_list"},
	{Iterator, "iterator", "iterator"},
	{Memory, "memory", "memory"},
	{Placement, "new", "new"},
	{String, "string", "string"},
	{TypeTraits, "type_traits", "type_traits"},
	{Utility, "utility", "utility"},
	{Vector, "vector", "vector"},
}

// platformInclude is a header that only exists on some targets and is
// wrapped in a preprocessor guard.
type platformInclude struct {
	facility Facility
	name     string
	macro    string
	header   string
}

// platformHeaders is emitted after every standard header, in table order.
var platformHeaders = [...]platformInclude{
	{BaseTSD, "basetsd", "_WIN32", "basetsd.h"},
}

// String returns the facility name accepted by ParseFacility.
func (f Facility) String() string {
	for _, h := range standardHeaders {
		if h.facility == f {
			return h.name
		}
	}
	for _, p := range platformHeaders {
		if p.facility == f {
			return p.name
		}
	}
	return "unknown"
}

// ParseFacility maps a facility name such as "vector" or "basetsd" back to
// its Facility.
func ParseFacility(name string) (Facility, error) {
	n := strings.TrimSpace(name)
	for _, h := range standardHeaders {
		if h.name == n {
			return h.facility, nil
		}
	}
	for _, p := range platformHeaders {
		if p.name == n {
			return p.facility, nil
		}
	}
	return 0, errors.UnknownFacility(name)
}

// Facilities returns every facility in emission order.
func Facilities() []Facility {
	out := make([]Facility, 0, numFacilities)
	for _, h := range standardHeaders {
		out = append(out, h.facility)
	}
	for _, p := range platformHeaders {
		out = append(out, p.facility)
	}
	return out
}
