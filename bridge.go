package bridgegen

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/bridgegen/errors"
	"github.com/wippyai/bridgegen/include"
	"github.com/wippyai/bridgegen/out"
	"github.com/wippyai/bridgegen/shim"
)

// RuntimeHeader is the complete contents of gobridge.h, which every
// generated header includes.
//
//go:embed gobridge.h
var RuntimeHeader string

// RuntimeHeaderName is the file name generated headers include.
const RuntimeHeaderName = "gobridge.h"

// Options configures one generation run.
type Options struct {
	Name          string // base name of generated files, "bridge" when empty
	Package       string // Go package of the cgo file
	Prefix        string // exported symbol prefix
	RuntimeImport string // import path of package rt
	Includes      []include.Include
	Needs         []include.Facility
	Elements      []shim.Element
}

// File is one generated output.
type File struct {
	Name    string
	Content []byte
}

// Files is the result of Generate.
type Files struct {
	Header  File
	Source  File
	Go      File
	Runtime File

	Elements []shim.Element
	Symbols  []string
}

// All returns the files in write order.
func (f *Files) All() []File {
	return []File{f.Runtime, f.Header, f.Source, f.Go}
}

// Generate produces the header, source, cgo and runtime files for the
// elements in opts plus every list<T> element found in res. res may be nil.
func Generate(opts Options, res *wit.Resolve) (*Files, error) {
	name := opts.Name
	if name == "" {
		name = "bridge"
	}
	if strings.ContainsAny(name, `/\`) {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Path(name).
			Value(name).
			Detail("file name must not contain a path separator").
			Build()
	}

	g := shim.NewGenerator(shim.Config{
		Prefix:        opts.Prefix,
		Package:       opts.Package,
		RuntimeImport: opts.RuntimeImport,
	})
	for _, e := range opts.Elements {
		g.Add(e)
	}
	for _, e := range Collect(res) {
		g.Add(e)
	}

	header := out.New(true)
	header.Include.Insert(include.NewQuoted(RuntimeHeaderName))
	header.Include.Extend(opts.Includes...)
	for _, f := range opts.Needs {
		header.Include.Need(f)
	}
	g.Require(header.Include)
	g.WriteDecls(header)

	source := out.New(false)
	source.Include.Insert(include.NewQuoted(name + ".h"))
	g.WriteImpl(source)

	var goSrc strings.Builder
	if err := g.WriteGo(&goSrc); err != nil {
		return nil, err
	}

	files := &Files{
		Header:  File{Name: name + ".h", Content: header.Bytes()},
		Source:  File{Name: name + ".cc", Content: source.Bytes()},
		Go:      File{Name: name + "_export.go", Content: []byte(goSrc.String())},
		Runtime: File{Name: RuntimeHeaderName, Content: []byte(RuntimeHeader)},

		Elements: g.Elements(),
		Symbols:  g.Symbols(),
	}

	Logger().Info("generated bridge",
		zap.String("name", name),
		zap.Int("elements", len(files.Elements)),
		zap.Int("symbols", len(files.Symbols)),
	)
	return files, nil
}

// WriteDir writes every file into dir, creating it if needed.
func (f *Files) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.New(errors.PhaseWrite, errors.KindIO).
			Path(dir).
			Detail("create output directory").
			Cause(err).
			Build()
	}
	for _, file := range f.All() {
		path := filepath.Join(dir, file.Name)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			return errors.WriteFailed(path, err)
		}
		Logger().Debug("wrote file", zap.String("path", path), zap.Int("bytes", len(file.Content)))
	}
	return nil
}
