package shim

import (
	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/bridgegen/errors"
	"github.com/wippyai/bridgegen/include"
	"github.com/wippyai/bridgegen/out"
)

// DefaultRuntimeImport is the Go package the generated exports call into.
const DefaultRuntimeImport = "github.com/wippyai/bridgegen/rt"

// Config controls the spelling of generated code.
type Config struct {
	Prefix        string // symbol prefix, DefaultPrefix when empty
	Package       string // Go package of the cgo file, "main" when empty
	RuntimeImport string // DefaultRuntimeImport when empty
}

// Generator collects element types and writes their shims.
type Generator struct {
	cfg     Config
	present []bool
}

// NewGenerator creates a generator with no element types.
func NewGenerator(cfg Config) *Generator {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.Package == "" {
		cfg.Package = "main"
	}
	if cfg.RuntimeImport == "" {
		cfg.RuntimeImport = DefaultRuntimeImport
	}
	return &Generator{
		cfg:     cfg,
		present: make([]bool, len(elements)),
	}
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Add instantiates shims for e. Adding the same element twice is a no-op.
func (g *Generator) Add(e Element) {
	i := e.index()
	if i < 0 || g.present[i] {
		return
	}
	g.present[i] = true
	Logger().Debug("instantiate slice shims", zap.String("segment", e.Segment))
}

// AddType instantiates shims for a WIT element type.
func (g *Generator) AddType(t wit.Type) error {
	e, ok := Lookup(t)
	if !ok {
		return errors.UnsupportedElement(TypeName(t))
	}
	g.Add(e)
	return nil
}

// Elements returns the instantiated elements in emission order.
func (g *Generator) Elements() []Element {
	var elems []Element
	for i, ok := range g.present {
		if ok {
			elems = append(elems, elements[i])
		}
	}
	return elems
}

// Symbols returns every exported symbol the generator will emit.
func (g *Generator) Symbols() []string {
	var syms []string
	for _, e := range g.Elements() {
		for _, op := range Ops {
			syms = append(syms, g.Symbol(e, op))
		}
	}
	return syms
}

// Symbol returns the exported name of op for e under this generator's prefix.
func (g *Generator) Symbol(e Element, op Op) string {
	return Symbol(g.cfg.Prefix, e, op)
}

// Require flags the standard headers the C++ output depends on.
func (g *Generator) Require(s *include.Set) {
	if len(g.Elements()) == 0 {
		return
	}
	s.Need(include.Cstddef)
	s.Need(include.Cstdint)
}

func sliceType(e Element) string {
	return "::gobridge::Slice<" + e.CxxType + ">"
}

// WriteDecls writes the header part: explicit specialization declarations,
// extern "C" prototypes and layout assertions.
func (g *Generator) WriteDecls(f *out.File) {
	elems := g.Elements()
	if len(elems) == 0 {
		return
	}

	f.Writeln("namespace gobridge {")
	for _, e := range elems {
		t := e.CxxType
		f.Writeln("template <>")
		f.Writeln("Slice<%s>::Slice() noexcept;", t)
		f.Writeln("template <>")
		f.Writeln("void Slice<%s>::drop() noexcept;", t)
		f.Writeln("template <>")
		f.Writeln("std::size_t Slice<%s>::size() const noexcept;", t)
		f.Writeln("template <>")
		f.Writeln("const %s *Slice<%s>::data() const noexcept;", t, t)
		f.Writeln("template <>")
		f.Writeln("std::size_t Slice<%s>::stride() noexcept;", t)
	}
	f.Writeln("} // namespace gobridge")
	f.Blank()

	f.Writeln(`extern "C" {`)
	for _, e := range elems {
		st := sliceType(e)
		f.Writeln("void %s(%s *ptr) noexcept;", g.Symbol(e, OpNew), st)
		f.Writeln("void %s(%s *ptr) noexcept;", g.Symbol(e, OpDrop), st)
		f.Writeln("std::size_t %s(const %s *ptr) noexcept;", g.Symbol(e, OpLen), st)
		f.Writeln("const %s *%s(const %s *ptr) noexcept;", e.CxxType, g.Symbol(e, OpData), st)
		f.Writeln("std::size_t %s() noexcept;", g.Symbol(e, OpStride))
	}
	f.Writeln(`} // extern "C"`)
	f.Blank()

	for _, e := range elems {
		st := sliceType(e)
		f.Writeln("static_assert(sizeof(%s) == 3 * sizeof(std::size_t),", st)
		f.Writeln("              \"Slice<%s> must be three words\");", e.Segment)
		f.Writeln("static_assert(alignof(%s) == alignof(std::size_t),", st)
		f.Writeln("              \"Slice<%s> must be word aligned\");", e.Segment)
	}

	Logger().Debug("wrote slice declarations", zap.Int("elements", len(elems)))
}

// WriteImpl writes the source part: specializations forwarding to the
// exported Go functions.
func (g *Generator) WriteImpl(f *out.File) {
	elems := g.Elements()
	if len(elems) == 0 {
		return
	}

	f.Writeln("namespace gobridge {")
	for i, e := range elems {
		if i > 0 {
			f.Blank()
		}
		t := e.CxxType
		f.Writeln("template <>")
		f.Writeln("Slice<%s>::Slice() noexcept {", t)
		f.Writeln("  %s(this);", g.Symbol(e, OpNew))
		f.Writeln("}")
		f.Writeln("template <>")
		f.Writeln("void Slice<%s>::drop() noexcept {", t)
		f.Writeln("  %s(this);", g.Symbol(e, OpDrop))
		f.Writeln("}")
		f.Writeln("template <>")
		f.Writeln("std::size_t Slice<%s>::size() const noexcept {", t)
		f.Writeln("  return %s(this);", g.Symbol(e, OpLen))
		f.Writeln("}")
		f.Writeln("template <>")
		f.Writeln("const %s *Slice<%s>::data() const noexcept {", t, t)
		f.Writeln("  return %s(this);", g.Symbol(e, OpData))
		f.Writeln("}")
		f.Writeln("template <>")
		f.Writeln("std::size_t Slice<%s>::stride() noexcept {", t)
		f.Writeln("  return %s();", g.Symbol(e, OpStride))
		f.Writeln("}")
	}
	f.Writeln("} // namespace gobridge")

	Logger().Debug("wrote slice specializations", zap.Int("elements", len(elems)))
}
