package canon

import (
	"github.com/wippyai/async-canon/component"
)

// Shape distinguishes future builtins from stream builtins
type Shape uint8

const (
	ShapeFuture Shape = iota
	ShapeStream
)

// String returns the shape word used in diagnostics
func (s Shape) String() string {
	switch s {
	case ShapeStream:
		return "stream"
	default:
		return "future"
	}
}

// BuiltinOp is a closed enum of the async canonical builtins.
// Dispatch over it is always an exhaustive switch so the compiler
// flags new ops that miss a table.
type BuiltinOp uint8

const (
	FutureNew BuiltinOp = iota
	FutureRead
	FutureWrite
	FutureCancelRead
	FutureCancelWrite
	FutureDropReadable
	FutureDropWritable
	StreamNew
	StreamRead
	StreamWrite
	StreamCancelRead
	StreamCancelWrite
	StreamDropReadable
	StreamDropWritable
)

// ExportName returns the canonical export name for the builtin
func (op BuiltinOp) ExportName() string {
	switch op {
	case FutureNew:
		return "future.new"
	case FutureRead:
		return "future.read"
	case FutureWrite:
		return "future.write"
	case FutureCancelRead:
		return "future.cancel-read"
	case FutureCancelWrite:
		return "future.cancel-write"
	case FutureDropReadable:
		return "future.drop-readable"
	case FutureDropWritable:
		return "future.drop-writable"
	case StreamNew:
		return "stream.new"
	case StreamRead:
		return "stream.read"
	case StreamWrite:
		return "stream.write"
	case StreamCancelRead:
		return "stream.cancel-read"
	case StreamCancelWrite:
		return "stream.cancel-write"
	case StreamDropReadable:
		return "stream.drop-readable"
	case StreamDropWritable:
		return "stream.drop-writable"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer for log output
func (op BuiltinOp) String() string {
	return op.ExportName()
}

// Shape returns the type shape the builtin operates on
func (op BuiltinOp) Shape() Shape {
	switch op {
	case StreamNew, StreamRead, StreamWrite, StreamCancelRead,
		StreamCancelWrite, StreamDropReadable, StreamDropWritable:
		return ShapeStream
	default:
		return ShapeFuture
	}
}

// transfersPayload reports whether the builtin moves payload data
// through linear memory. Only read and write do; the remaining
// builtins manipulate handles.
func (op BuiltinOp) transfersPayload() bool {
	switch op {
	case FutureRead, FutureWrite, StreamRead, StreamWrite:
		return true
	default:
		return false
	}
}

// OpForCanonKind maps a binary canon kind byte to its builtin op
func OpForCanonKind(kind byte) (BuiltinOp, bool) {
	switch kind {
	case component.CanonFutureNew:
		return FutureNew, true
	case component.CanonFutureRead:
		return FutureRead, true
	case component.CanonFutureWrite:
		return FutureWrite, true
	case component.CanonFutureCancelRead:
		return FutureCancelRead, true
	case component.CanonFutureCancelWrite:
		return FutureCancelWrite, true
	case component.CanonFutureDropReadable:
		return FutureDropReadable, true
	case component.CanonFutureDropWritable:
		return FutureDropWritable, true
	case component.CanonStreamNew:
		return StreamNew, true
	case component.CanonStreamRead:
		return StreamRead, true
	case component.CanonStreamWrite:
		return StreamWrite, true
	case component.CanonStreamCancelRead:
		return StreamCancelRead, true
	case component.CanonStreamCancelWrite:
		return StreamCancelWrite, true
	case component.CanonStreamDropReadable:
		return StreamDropReadable, true
	case component.CanonStreamDropWritable:
		return StreamDropWritable, true
	default:
		return 0, false
	}
}
