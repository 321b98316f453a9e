// Package bridgegen generates the glue that lets C++ hold and read Go slices.
//
// Go slices are three words: data pointer, length, capacity. bridgegen emits
// a matched pair of files around that fact: a cgo file exporting five
// functions per element type, and a C++ header/source pair declaring them
// and wrapping them in ::gobridge::Slice<T>. Both sides assert the handle
// layout at build time, so a mismatch fails compilation instead of
// corrupting memory.
//
// # Architecture Overview
//
//	bridgegen/           Driver: WIT input, Generate, file output
//	├── include/         #include block assembly for generated C++ files
//	├── out/             Generated C++ file model (includes, then body)
//	├── shim/            Per-element slice shim generation (Go and C++)
//	├── rt/              Go-side unsafe boundary the exports call into
//	├── errors/          Structured error types
//	└── cmd/bridgegen/   Command line front end with interactive preview
//
// # Quick Start
//
//	res, err := bridgegen.LoadWIT(f) // wasm-tools component wit --json
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	files, err := bridgegen.Generate(bridgegen.Options{Name: "bridge"}, res)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = files.WriteDir("gen")
//
// # Supported Elements
//
// bool, u8-u64, s8-s64, f32, f64 and string. Other list element types are
// left to the rest of the code generator and skipped here.
//
// # Thread Safety
//
// Generation is single threaded and deterministic. The rt package may be
// called from any goroutine; a single handle must not be shared without
// synchronization.
package bridgegen
