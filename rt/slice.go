package rt

import (
	"runtime"
	"sync"
	"unsafe"
)

// HandleSize is the size of a foreign slice handle in bytes.
const HandleSize = 3 * unsafe.Sizeof(uintptr(0))

// Handle is Go-allocated storage for a foreign slice handle. Native callers
// that own a handle themselves use it with unsafe.Pointer(&h).
type Handle [3]uintptr

// pin is the registry entry of one handle: a pinner holding every Go object
// the foreign side can reach through the handle.
type pin struct {
	pinner  *runtime.Pinner
	objects int
}

var pins = struct {
	sync.Mutex
	m map[unsafe.Pointer]pin
}{m: make(map[unsafe.Pointer]pin)}

// repin swaps the pinned objects of a handle for ptrs. nil entries are
// skipped; with none left the handle is removed from the registry.
func repin(this unsafe.Pointer, ptrs ...unsafe.Pointer) {
	pins.Lock()
	defer pins.Unlock()

	if old, ok := pins.m[this]; ok {
		old.pinner.Unpin()
		delete(pins.m, this)
	}

	var p pin
	for _, ptr := range ptrs {
		if ptr == nil {
			continue
		}
		if p.pinner == nil {
			p.pinner = new(runtime.Pinner)
		}
		p.pinner.Pin(ptr)
		p.objects++
	}
	if p.pinner != nil {
		pins.m[this] = p
	}
}

// reachable lists the Go objects the foreign side can reach through s: the
// backing array and, for strings, the bytes of every string up to cap. cgo
// rejects a returned pointer to memory holding unpinned Go pointers.
func reachable[T any](s []T) []unsafe.Pointer {
	ptrs := []unsafe.Pointer{unsafe.Pointer(unsafe.SliceData(s))}
	if strs, ok := any(s).([]string); ok {
		for _, str := range strs[:cap(strs)] {
			if len(str) > 0 {
				ptrs = append(ptrs, unsafe.Pointer(unsafe.StringData(str)))
			}
		}
	}
	return ptrs
}

func words(this unsafe.Pointer) *[3]uintptr {
	return (*[3]uintptr)(this)
}

func load[T any](this unsafe.Pointer) []T {
	h := words(this)
	data := *(*unsafe.Pointer)(this)
	if data == nil {
		return nil
	}
	return unsafe.Slice((*T)(data), h[2])[:h[1]]
}

// store writes the header as plain words; the handle may live in foreign
// memory the garbage collector does not scan.
func store[T any](this unsafe.Pointer, s []T) {
	data := unsafe.Pointer(unsafe.SliceData(s))
	repin(this, reachable(s)...)

	h := words(this)
	h[0] = uintptr(data)
	h[1] = uintptr(len(s))
	h[2] = uintptr(cap(s))
}

// SliceNew constructs an empty slice in the uninitialized handle at this.
func SliceNew[T any](this unsafe.Pointer) {
	h := words(this)
	h[0], h[1], h[2] = 0, 0, 0
}

// SliceDrop releases the backing array. The handle must not be used again
// until SliceNew reinitializes it.
func SliceDrop[T any](this unsafe.Pointer) {
	repin(this)
	h := words(this)
	h[0], h[1], h[2] = 0, 0, 0
}

// SliceLen returns the number of elements.
func SliceLen[T any](this unsafe.Pointer) uintptr {
	return words(this)[1]
}

// SliceData returns a non-owning pointer to the first element.
func SliceData[T any](this unsafe.Pointer) unsafe.Pointer {
	return *(*unsafe.Pointer)(this)
}

// SliceStride returns the size of one element in bytes.
func SliceStride[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// SliceView returns the slice stored in the handle. The result aliases the
// backing array and must not outlive the next mutation or drop.
func SliceView[T any](this unsafe.Pointer) []T {
	return load[T](this)
}

// SliceAppend appends values on the Go side, growing the backing array as
// append does.
func SliceAppend[T any](this unsafe.Pointer, values ...T) {
	store(this, append(load[T](this), values...))
}

// SliceSet replaces the contents of the handle with s. The handle takes a
// reference to s, not a copy.
func SliceSet[T any](this unsafe.Pointer, s []T) {
	store(this, s)
}

// pinned reports how many handles currently hold a pinned backing array.
func pinned() int {
	pins.Lock()
	defer pins.Unlock()
	return len(pins.m)
}

// pinnedObjects reports how many objects the handle at this keeps pinned.
func pinnedObjects(this unsafe.Pointer) int {
	pins.Lock()
	defer pins.Unlock()
	return pins.m[this].objects
}
