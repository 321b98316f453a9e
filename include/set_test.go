package include

import (
	"strings"
	"testing"
)

func render(s *Set, header bool) string {
	var b strings.Builder
	s.Write(&b, header)
	return b.String()
}

func TestWriteEmpty(t *testing.T) {
	s := New()
	if got := render(s, false); got != "" {
		t.Errorf("got %q, want empty output", got)
	}
	if got := render(s, true); got != "#pragma once\n" {
		t.Errorf("got %q, want only pragma once", got)
	}
	if !s.Empty() {
		t.Error("new set should be empty")
	}
}

func TestWriteScenario(t *testing.T) {
	s := New()
	s.Need(Vector)
	s.Need(Cstdint)
	s.Insert(NewQuoted("foo.h"))

	want := "#pragma once\n" +
		"#include \"foo.h\"\n" +
		"#include <cstdint>\n" +
		"#include <vector>\n"
	got := render(s, true)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, "<string>") {
		t.Error("unflagged <string> was emitted")
	}
}

func TestWriteCustomInsertionOrder(t *testing.T) {
	s := New()
	s.Insert(NewQuoted("b.h"))
	s.Insert(NewBracketed("a.h"))

	want := "#include \"b.h\"\n#include <a.h>\n"
	if got := render(s, false); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteDuplicatesKept(t *testing.T) {
	s := New()
	s.Extend(NewQuoted("x.h"), NewQuoted("x.h"))
	if got := strings.Count(render(s, false), `#include "x.h"`); got != 2 {
		t.Errorf("got %d directives, want 2", got)
	}
}

func TestWriteIdempotentFlags(t *testing.T) {
	for _, n := range []int{1, 2, 10} {
		s := New()
		for i := 0; i < n; i++ {
			s.Need(Memory)
		}
		if got := strings.Count(render(s, false), "#include <memory>"); got != 1 {
			t.Errorf("n=%d: got %d lines, want 1", n, got)
		}
	}
}

func TestWriteCanonicalOrder(t *testing.T) {
	forward := New()
	backward := New()
	all := Facilities()
	for _, f := range all {
		forward.Need(f)
	}
	for i := len(all) - 1; i >= 0; i-- {
		backward.Need(all[i])
	}

	got := render(forward, false)
	if got != render(backward, false) {
		t.Fatal("output depends on flag order")
	}

	want := strings.Join([]string{
		"#include <algorithm>",
		"#include <array>",
		"#include <cstddef>",
		"#include <cstdint>",
		"#include <cstring>",
		"#include <exception>",
		"#include <initializer_list>",
		"#include <iterator>",
		"#include <memory>",
		"#include <new>",
		"#include <string>",
		"#include <type_traits>",
		"#include <utility>",
		"#include <vector>",
		"#if defined(_WIN32)",
		"#include <basetsd.h>",
		"#endif",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteSectionOrder(t *testing.T) {
	s := New()
	s.Need(BaseTSD)
	s.Need(Algorithm)
	s.Insert(NewBracketed("zzz.h"))

	lines := strings.Split(strings.TrimSuffix(render(s, true), "\n"), "\n")
	want := []string{
		"#pragma once",
		"#include <zzz.h>",
		"#include <algorithm>",
		"#if defined(_WIN32)",
		"#include <basetsd.h>",
		"#endif",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteDeterministic(t *testing.T) {
	build := func() *Set {
		s := New()
		s.Insert(NewQuoted("gobridge.h"))
		s.Need(Cstddef)
		s.Need(String)
		s.Need(BaseTSD)
		return s
	}
	first := render(build(), true)
	for i := 0; i < 5; i++ {
		if got := render(build(), true); got != first {
			t.Fatalf("run %d differs:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestWriteEscaping(t *testing.T) {
	tests := []struct {
		name string
		inc  Include
		want string
	}{
		{"quote", NewQuoted(`we"ird.h`), `#include "we\"ird.h"`},
		{"backslash", NewQuoted(`dir\file.h`), `#include "dir\\file.h"`},
		{"newline", NewQuoted("a\nb.h"), `#include "a\nb.h"`},
		{"tab", NewQuoted("a\tb.h"), `#include "a\tb.h"`},
		{"bracketed verbatim", NewBracketed(`we"ird\file.h`), `#include <we"ird\file.h>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Insert(tt.inc)
			got := strings.TrimSuffix(render(s, false), "\n")
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNeedsAndCustomCopy(t *testing.T) {
	s := New()
	if s.Needs(String) {
		t.Error("String should start unset")
	}
	s.Need(String)
	if !s.Needs(String) {
		t.Error("String should be set")
	}
	if s.Needs(Vector) {
		t.Error("setting String must not imply Vector")
	}

	s.Insert(NewQuoted("a.h"))
	c := s.Custom()
	c[0].Path = "mutated.h"
	if s.Custom()[0].Path != "a.h" {
		t.Error("Custom should return a copy")
	}

	s.Need(numFacilities)
	if s.Needs(numFacilities) {
		t.Error("out of range facility should be ignored")
	}
}
