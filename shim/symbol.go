package shim

// Op names one of the five bridged operations.
type Op string

const (
	OpNew    Op = "new"
	OpDrop   Op = "drop"
	OpLen    Op = "len"
	OpData   Op = "data"
	OpStride Op = "stride"
)

// Ops lists the operations in emission order.
var Ops = []Op{OpNew, OpDrop, OpLen, OpData, OpStride}

// DefaultPrefix versions the link contract. Bump it whenever a signature
// or the handle layout changes.
const DefaultPrefix = "gobridge01"

// Symbol returns the exported name of op for element e.
func Symbol(prefix string, e Element, op Op) string {
	return prefix + "_slice_" + e.Segment + "_" + string(op)
}
