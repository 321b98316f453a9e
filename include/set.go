package include

import (
	"strings"

	"go.uber.org/zap"
)

// Set accumulates the includes one generated file needs. Flags are
// monotonic: once a facility is needed it stays needed.
type Set struct {
	custom []Include
	flags  uint32
}

// New returns an empty set.
func New() *Set {
	return &Set{}
}

// Insert appends a custom include. Duplicates are kept; include guards in
// the headers make repeated inclusion harmless.
func (s *Set) Insert(inc Include) {
	s.custom = append(s.custom, inc)
}

// Extend appends includes preserving their relative order.
func (s *Set) Extend(incs ...Include) {
	s.custom = append(s.custom, incs...)
}

// Need marks a facility as required.
func (s *Set) Need(f Facility) {
	if f >= numFacilities {
		return
	}
	s.flags |= 1 << f
}

// Needs reports whether a facility has been marked.
func (s *Set) Needs(f Facility) bool {
	return f < numFacilities && s.flags&(1<<f) != 0
}

// Custom returns a copy of the custom includes in insertion order.
func (s *Set) Custom() []Include {
	out := make([]Include, len(s.custom))
	copy(out, s.custom)
	return out
}

// Empty reports whether Write would emit nothing besides #pragma once.
func (s *Set) Empty() bool {
	return len(s.custom) == 0 && s.flags == 0
}

// Write appends the include block to b. Custom includes come first because
// they may define macros the standard headers observe.
func (s *Set) Write(b *strings.Builder, header bool) {
	if header {
		b.WriteString("#pragma once\n")
	}

	for _, inc := range s.custom {
		b.WriteString(inc.String())
		b.WriteByte('\n')
	}

	standard := 0
	for _, h := range standardHeaders {
		if !s.Needs(h.facility) {
			continue
		}
		b.WriteString("#include <")
		b.WriteString(h.header)
		b.WriteString(">\n")
		standard++
	}

	platform := 0
	for _, p := range platformHeaders {
		if !s.Needs(p.facility) {
			continue
		}
		b.WriteString("#if defined(")
		b.WriteString(p.macro)
		b.WriteString(")\n#include <")
		b.WriteString(p.header)
		b.WriteString(">\n#endif\n")
		platform++
	}

	Logger().Debug("wrote include block",
		zap.Bool("header", header),
		zap.Int("custom", len(s.custom)),
		zap.Int("standard", standard),
		zap.Int("platform", platform),
	)
}
