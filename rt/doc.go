// Package rt is the Go side of the slice bridge and the only place where
// foreign memory is touched.
//
// A foreign handle is three machine words laid out exactly like a Go slice
// header: data pointer, length, capacity. The C++ side only ever holds that
// blob and calls the generated exports, which delegate to the generic
// functions here:
//
//	SliceNew[T]     construct an empty slice in place, no allocation
//	SliceDrop[T]    release the backing array, leave the words zeroed
//	SliceLen[T]     current length
//	SliceData[T]    pointer to element 0, nil when nothing was ever stored
//	SliceStride[T]  unsafe.Sizeof(T)
//
// While a handle refers to a backing array the array is pinned with a
// runtime.Pinner held in a registry keyed by the handle address, so the
// garbage collector neither frees nor moves it even though the only
// reference lives in foreign memory. For []string the bytes of every string
// in the array are pinned with it; cgo checks that memory returned to C holds
// no unpinned Go pointers.
//
// # Caller obligations
//
// These are not checked:
//
//   - handles passed to SliceNew must be at least HandleSize bytes, word aligned
//   - SliceDrop must be called exactly once per SliceNew
//   - pointers returned by SliceData are invalid after SliceAppend or SliceSet
//   - a single handle must not be used from several goroutines at once
package rt

//go:generate go run ../internal/rtlayout -o layout.go
