package shim

import (
	"fmt"
	"go/format"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/bridgegen/errors"
)

// WriteGo writes the cgo half of the bridge. The result is gofmt-formatted.
func (g *Generator) WriteGo(b *strings.Builder) error {
	var src strings.Builder
	elems := g.Elements()

	src.WriteString("// Code generated by bridgegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&src, "package %s\n\n", g.cfg.Package)
	src.WriteString("import \"C\"\n")

	if len(elems) > 0 {
		fmt.Fprintf(&src, "\nimport (\n\t\"unsafe\"\n\n\t%q\n)\n", g.cfg.RuntimeImport)
		rtName := runtimePackageName(g.cfg.RuntimeImport)

		src.WriteString("\n// Each block fails to compile when []T is not exactly the three-word,\n")
		src.WriteString("// word-aligned handle the C++ side reserves.\n")
		for _, e := range elems {
			writeGoLayoutAssert(&src, e, rtName+".HandleSize")
		}
		for _, e := range elems {
			g.writeGoExports(&src, e, rtName)
		}
	}

	if err := formatGo(b, src.String()); err != nil {
		return err
	}

	Logger().Debug("wrote Go exports",
		zap.String("package", g.cfg.Package),
		zap.Int("elements", len(elems)),
	)
	return nil
}

// WriteRuntimeLayout writes layout.go of package rt: the assertion blocks of
// WriteGo for every supported element, checked against rt's own HandleSize.
func WriteRuntimeLayout(b *strings.Builder) error {
	var src strings.Builder
	src.WriteString("// Code generated by rtlayout. DO NOT EDIT.\n\n")
	src.WriteString("package rt\n\nimport \"unsafe\"\n\n")
	src.WriteString("// Slice headers of every bridged element type must be exactly three words,\n")
	src.WriteString("// word aligned. Each block fails to compile with \"constant overflows uintptr\"\n")
	src.WriteString("// when the layout differs.\n")
	for _, e := range elements {
		writeGoLayoutAssert(&src, e, "HandleSize")
	}
	return formatGo(b, src.String())
}

func formatGo(b *strings.Builder, src string) error {
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return errors.New(errors.PhaseGenerate, errors.KindInvalidData).
			Detail("format generated Go source").
			Cause(err).
			Build()
	}
	b.Write(formatted)
	return nil
}

func runtimePackageName(importPath string) string {
	if i := strings.LastIndexByte(importPath, '/'); i >= 0 {
		return importPath[i+1:]
	}
	return importPath
}

// writeGoLayoutAssert writes the size and alignment checks of []T against
// handleSize, an expression naming rt.HandleSize.
func writeGoLayoutAssert(b *strings.Builder, e Element, handleSize string) {
	zero := "[]" + e.GoType + "(nil)"
	fmt.Fprintf(b, "\n// %s\nvar (\n", e.Segment)
	fmt.Fprintf(b, "\t_ [unsafe.Sizeof(%s) - %s]struct{}\n", zero, handleSize)
	fmt.Fprintf(b, "\t_ [%s - unsafe.Sizeof(%s)]struct{}\n", handleSize, zero)
	fmt.Fprintf(b, "\t_ [unsafe.Alignof(%s) - unsafe.Alignof(uintptr(0))]struct{}\n", zero)
	fmt.Fprintf(b, "\t_ [unsafe.Alignof(uintptr(0)) - unsafe.Alignof(%s)]struct{}\n", zero)
	b.WriteString(")\n")
}

func (g *Generator) writeGoExports(b *strings.Builder, e Element, rt string) {
	t := e.GoType

	writeExport := func(op Op, params, result, body string) {
		name := g.Symbol(e, op)
		fmt.Fprintf(b, "\n//export %s\nfunc %s(%s)%s {\n\t%s\n}\n", name, name, params, result, body)
	}

	writeExport(OpNew, "this unsafe.Pointer", "", fmt.Sprintf("%s.SliceNew[%s](this)", rt, t))
	writeExport(OpDrop, "this unsafe.Pointer", "", fmt.Sprintf("%s.SliceDrop[%s](this)", rt, t))
	writeExport(OpLen, "this unsafe.Pointer", " uintptr", fmt.Sprintf("return %s.SliceLen[%s](this)", rt, t))
	writeExport(OpData, "this unsafe.Pointer", " unsafe.Pointer", fmt.Sprintf("return %s.SliceData[%s](this)", rt, t))
	writeExport(OpStride, "", " uintptr", fmt.Sprintf("return %s.SliceStride[%s]()", rt, t))
}
