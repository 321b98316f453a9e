package include

import (
	"strconv"
	"strings"

	"github.com/wippyai/bridgegen/errors"
)

// Kind selects the spelling of an include directive.
type Kind uint8

const (
	// Quoted renders as #include "path".
	Quoted Kind = iota
	// Bracketed renders as #include <path>.
	Bracketed
)

func (k Kind) String() string {
	switch k {
	case Quoted:
		return "quoted"
	case Bracketed:
		return "bracketed"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Include is a single header reference. The path is opaque: it is never
// resolved against the filesystem.
type Include struct {
	Path string
	Kind Kind
}

// NewQuoted returns an include rendered with double quotes.
func NewQuoted(path string) Include {
	return Include{Path: path, Kind: Quoted}
}

// NewBracketed returns an include rendered with angle brackets.
func NewBracketed(path string) Include {
	return Include{Path: path, Kind: Bracketed}
}

// String renders the include the way it appears in the output.
func (i Include) String() string {
	if i.Kind == Bracketed {
		return "#include <" + i.Path + ">"
	}
	return "#include " + strconv.Quote(i.Path)
}

// Parse reads a user include spec: `"a/b.h"`, `<vector>` or a bare path,
// which is treated as quoted.
func Parse(spec string) (Include, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Include{}, errors.InvalidInclude(spec)
	}

	switch s[0] {
	case '"':
		if len(s) < 3 || s[len(s)-1] != '"' {
			return Include{}, errors.InvalidInclude(spec)
		}
		return NewQuoted(s[1 : len(s)-1]), nil
	case '<':
		if len(s) < 3 || s[len(s)-1] != '>' || strings.ContainsAny(s[1:len(s)-1], `"<>`) {
			return Include{}, errors.InvalidInclude(spec)
		}
		return NewBracketed(s[1 : len(s)-1]), nil
	}

	if strings.ContainsAny(s, `"<>`) {
		return Include{}, errors.InvalidInclude(spec)
	}
	return NewQuoted(s), nil
}

// ParseList splits a comma-separated list of include specs.
func ParseList(list string) ([]Include, error) {
	var out []Include
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		inc, err := Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, inc)
	}
	return out, nil
}
