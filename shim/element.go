package shim

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/bridgegen/errors"
)

// Element describes one supported slice element type on both sides.
type Element struct {
	Wit     wit.Type
	Segment string // symbol segment, also the WIT spelling
	GoType  string
	CxxType string
	size    uint32 // 0 means two words
}

// elements is the closed list, in emission order.
var elements = []Element{
	{Wit: wit.Bool{}, Segment: "bool", GoType: "bool", CxxType: "bool", size: 1},
	{Wit: wit.U8{}, Segment: "u8", GoType: "uint8", CxxType: "std::uint8_t", size: 1},
	{Wit: wit.U16{}, Segment: "u16", GoType: "uint16", CxxType: "std::uint16_t", size: 2},
	{Wit: wit.U32{}, Segment: "u32", GoType: "uint32", CxxType: "std::uint32_t", size: 4},
	{Wit: wit.U64{}, Segment: "u64", GoType: "uint64", CxxType: "std::uint64_t", size: 8},
	{Wit: wit.S8{}, Segment: "s8", GoType: "int8", CxxType: "std::int8_t", size: 1},
	{Wit: wit.S16{}, Segment: "s16", GoType: "int16", CxxType: "std::int16_t", size: 2},
	{Wit: wit.S32{}, Segment: "s32", GoType: "int32", CxxType: "std::int32_t", size: 4},
	{Wit: wit.S64{}, Segment: "s64", GoType: "int64", CxxType: "std::int64_t", size: 8},
	{Wit: wit.F32{}, Segment: "f32", GoType: "float32", CxxType: "float", size: 4},
	{Wit: wit.F64{}, Segment: "f64", GoType: "float64", CxxType: "double", size: 8},
	{Wit: wit.String{}, Segment: "string", GoType: "string", CxxType: "::gobridge::String"},
}

// Elements returns the supported element types in emission order.
func Elements() []Element {
	out := make([]Element, len(elements))
	copy(out, elements)
	return out
}

func (e Element) String() string {
	return e.Segment
}

func (e Element) index() int {
	for i := range elements {
		if elements[i].Segment == e.Segment {
			return i
		}
	}
	return -1
}

// LookupSegment finds an element by its segment name ("u32", "string").
func LookupSegment(segment string) (Element, bool) {
	for _, e := range elements {
		if e.Segment == segment {
			return e, true
		}
	}
	return Element{}, false
}

// Lookup finds the element for a WIT type, looking through type aliases.
func Lookup(t wit.Type) (Element, bool) {
	switch Underlying(t).(type) {
	case wit.Bool:
		return elements[0], true
	case wit.U8:
		return elements[1], true
	case wit.U16:
		return elements[2], true
	case wit.U32:
		return elements[3], true
	case wit.U64:
		return elements[4], true
	case wit.S8:
		return elements[5], true
	case wit.S16:
		return elements[6], true
	case wit.S32:
		return elements[7], true
	case wit.S64:
		return elements[8], true
	case wit.F32:
		return elements[9], true
	case wit.F64:
		return elements[10], true
	case wit.String:
		return elements[11], true
	default:
		return Element{}, false
	}
}

// Parse resolves a WIT primitive spelling such as "u32" to an element.
func Parse(name string) (Element, error) {
	t, err := wit.ParseType(name)
	if err != nil {
		return Element{}, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Value(name).
			WitType(name).
			Detail("parse element type").
			Cause(err).
			Build()
	}
	e, ok := Lookup(t)
	if !ok {
		return Element{}, errors.UnsupportedElement(name)
	}
	return e, nil
}

// Underlying follows type aliases (type a = b) down to the aliased type.
func Underlying(t wit.Type) wit.Type {
	for i := 0; i < 64; i++ {
		td, ok := t.(*wit.TypeDef)
		if !ok || td == nil {
			return t
		}
		next, ok := td.Kind.(wit.Type)
		if !ok {
			return t
		}
		t = next
	}
	return t
}

// TypeName renders a WIT type for diagnostics.
func TypeName(t wit.Type) string {
	if e, ok := Lookup(t); ok {
		return e.Segment
	}
	switch v := t.(type) {
	case wit.Char:
		return "char"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		switch k := v.Kind.(type) {
		case *wit.List:
			return "list<" + TypeName(k.Type) + ">"
		case *wit.Option:
			return "option<" + TypeName(k.Type) + ">"
		}
		return "typedef"
	default:
		return fmt.Sprintf("%T", t)
	}
}
