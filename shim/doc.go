// Package shim generates the matched Go and C++ halves of the slice bridge.
//
// For every element type in a closed list (bool, u8-u64, s8-s64, f32, f64,
// string) the generator emits five exported entry points over an opaque
// three-word handle:
//
//	<prefix>_slice_<segment>_new
//	<prefix>_slice_<segment>_drop
//	<prefix>_slice_<segment>_len
//	<prefix>_slice_<segment>_data
//	<prefix>_slice_<segment>_stride
//
// The names are part of the link contract between both generated sides and
// are built by plain concatenation.
//
// # Outputs
//
//   - WriteGo: a cgo file with //export functions delegating to package rt,
//     preceded by constant-array assertions that fail the Go build when a
//     slice header is not three words, word aligned.
//   - WriteDecls: extern "C" declarations plus static_asserts on
//     ::gobridge::Slice<T> for the C++ header.
//   - WriteImpl: member specializations of ::gobridge::Slice<T> that call the
//     exports, for the C++ source file.
//
// Emission order follows the element table, not the order in which element
// types were added, so output is stable across runs.
package shim
