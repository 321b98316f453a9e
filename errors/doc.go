// Package errors provides structured error types for bridgegen.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending input, the WIT type involved, the file
// path and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseGenerate, errors.KindUnsupported).
//		WitType("char").
//		Detail("no slice shim for element type").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedElement("char")
//	err := errors.InvalidInclude(`"unterminated.h`)
//
// Only the driver side of the generator produces errors. Include assembly and
// shim emission are infallible once their inputs are well formed.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
