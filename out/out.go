// Package out models one generated C++ file: an include block assembled by
// an include.Set followed by the file body.
package out

import (
	"fmt"
	"strings"

	"github.com/wippyai/bridgegen/include"
)

// File is a generated translation unit or header.
type File struct {
	Include *include.Set
	body    strings.Builder
	Header  bool
}

// New creates an empty file. header selects #pragma once emission.
func New(header bool) *File {
	return &File{
		Include: include.New(),
		Header:  header,
	}
}

// Writeln appends one formatted line to the body.
func (f *File) Writeln(format string, args ...any) {
	if len(args) > 0 {
		fmt.Fprintf(&f.body, format, args...)
	} else {
		f.body.WriteString(format)
	}
	f.body.WriteByte('\n')
}

// Blank appends an empty line unless the body is empty or already ends with one.
func (f *File) Blank() {
	s := f.body.String()
	if s == "" || strings.HasSuffix(s, "\n\n") {
		return
	}
	f.body.WriteByte('\n')
}

// Body returns the body written so far.
func (f *File) Body() string {
	return f.body.String()
}

// Bytes renders the include block followed by the body.
func (f *File) Bytes() []byte {
	var b strings.Builder
	f.Include.Write(&b, f.Header)

	body := strings.TrimRight(f.body.String(), "\n")
	if body != "" {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(body)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
