package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bridgegen"
	"github.com/wippyai/bridgegen/errors"
	"github.com/wippyai/bridgegen/include"
	"github.com/wippyai/bridgegen/shim"
)

type config struct {
	witFile     string
	slices      string
	includes    string
	needs       string
	name        string
	pkg         string
	prefix      string
	outDir      string
	verbose     bool
	interactive bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.witFile, "wit", "", "WIT resolve JSON (wasm-tools component wit --json)")
	flag.StringVar(&cfg.slices, "slice", "", "Extra element types (comma-separated, e.g. u32,string)")
	flag.StringVar(&cfg.includes, "include", "", `Custom includes (comma-separated, e.g. "a.h",<b.h>)`)
	flag.StringVar(&cfg.needs, "need", "", "Extra standard facilities (comma-separated, e.g. vector,basetsd)")
	flag.StringVar(&cfg.name, "name", "bridge", "Base name of generated files")
	flag.StringVar(&cfg.pkg, "pkg", "main", "Go package of the generated cgo file")
	flag.StringVar(&cfg.prefix, "prefix", shim.DefaultPrefix, "Exported symbol prefix")
	flag.StringVar(&cfg.outDir, "out", ".", "Output directory")
	flag.BoolVar(&cfg.verbose, "v", false, "Verbose logging")
	flag.BoolVar(&cfg.interactive, "i", false, "Interactive preview instead of writing files")
	flag.Parse()

	if cfg.witFile == "" && cfg.slices == "" {
		fmt.Fprintln(os.Stderr, "Usage: bridgegen -wit <resolve.json> [-slice u32,...] [-include ...] [-need ...] [-out dir]")
		fmt.Fprintln(os.Stderr, "       bridgegen -slice u32,string -i  (interactive preview)")
		os.Exit(1)
	}

	if cfg.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync() //nolint:errcheck
		bridgegen.SetLogger(logger)
	}

	files, err := generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.interactive {
		if err := runInteractive(files); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := files.WriteDir(cfg.outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printSummary(os.Stdout, files, cfg.outDir, term.IsTerminal(int(os.Stdout.Fd())))
}

func generate(cfg config) (*bridgegen.Files, error) {
	opts := bridgegen.Options{
		Name:    cfg.name,
		Package: cfg.pkg,
		Prefix:  cfg.prefix,
	}

	incs, err := include.ParseList(cfg.includes)
	if err != nil {
		return nil, fmt.Errorf("include flag: %w", err)
	}
	opts.Includes = incs

	for _, name := range splitList(cfg.needs) {
		f, err := include.ParseFacility(name)
		if err != nil {
			return nil, fmt.Errorf("need flag: %w", err)
		}
		opts.Needs = append(opts.Needs, f)
	}

	for _, name := range splitList(cfg.slices) {
		e, err := shim.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("slice flag: %w", err)
		}
		opts.Elements = append(opts.Elements, e)
	}

	var res *wit.Resolve
	if cfg.witFile != "" {
		f, err := os.Open(cfg.witFile)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseParse, errors.KindIO, err, "open WIT file "+cfg.witFile)
		}
		defer f.Close()

		res, err = bridgegen.LoadWIT(f)
		if err != nil {
			return nil, fmt.Errorf("load WIT: %w", err)
		}
	}

	return bridgegen.Generate(opts, res)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
