package shim

// Info is the size and alignment of a type on one target.
type Info struct {
	FieldOffs map[string]uint32
	Size      uint32
	Align     uint32
}

// handleFields mirror the Go slice header.
var handleFields = []string{"data", "len", "cap"}

func alignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// HandleLayout lays out the opaque slice handle for a target word size in
// bytes (4 or 8). Every field is one word, so the result is always three
// words, word aligned.
func HandleLayout(word uint32) Info {
	fieldOffs := make(map[string]uint32, len(handleFields))
	offset := uint32(0)
	for _, name := range handleFields {
		offset = alignTo(offset, word)
		fieldOffs[name] = offset
		offset += word
	}
	return Info{
		Size:      alignTo(offset, word),
		Align:     word,
		FieldOffs: fieldOffs,
	}
}

// ElementLayout returns the stride and alignment of one element on a target.
// Strings are a (data, len) pair of words.
func ElementLayout(e Element, word uint32) Info {
	if e.size == 0 {
		return Info{Size: 2 * word, Align: word}
	}
	return Info{Size: e.size, Align: e.size}
}
