package canon

import (
	"strings"

	"github.com/tetratelabs/wazero/api"
)

// CoreFuncType is the flat core function signature a builtin must be
// backed by. Results holds at most one kind.
type CoreFuncType struct {
	Params  []api.ValueType
	Results []api.ValueType
}

// Equal reports structural equality: same parameter kinds in the same
// order and the same result.
func (t CoreFuncType) Equal(other CoreFuncType) bool {
	if len(t.Params) != len(other.Params) || len(t.Results) != len(other.Results) {
		return false
	}
	for i := range t.Params {
		if t.Params[i] != other.Params[i] {
			return false
		}
	}
	for i := range t.Results {
		if t.Results[i] != other.Results[i] {
			return false
		}
	}
	return true
}

// String renders the signature like "(i32, i32) -> i32" for logs
func (t CoreFuncType) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range t.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(api.ValueTypeName(p))
	}
	b.WriteString(") -> ")
	if len(t.Results) == 0 {
		b.WriteString("()")
	} else {
		b.WriteString(api.ValueTypeName(t.Results[0]))
	}
	return b.String()
}

// Synthesize returns the core signature a builtin must have. The
// shape depends only on the op: payload movement happens inside the
// function body, so payload presence never changes the arity, and the
// async flag changes runtime behavior but not the signature. Stream
// builtins share the future templates.
func Synthesize(op BuiltinOp) CoreFuncType {
	switch op {
	case FutureNew, StreamNew:
		// Packs the readable/writable handle pair into one i64
		return CoreFuncType{
			Results: []api.ValueType{api.ValueTypeI64},
		}

	case FutureRead, FutureWrite, StreamRead, StreamWrite:
		// (handle, buffer) -> status
		return CoreFuncType{
			Params:  []api.ValueType{api.ValueTypeI32, api.ValueTypeI32},
			Results: []api.ValueType{api.ValueTypeI32},
		}

	case FutureCancelRead, FutureCancelWrite, StreamCancelRead, StreamCancelWrite:
		// (handle) -> status
		return CoreFuncType{
			Params:  []api.ValueType{api.ValueTypeI32},
			Results: []api.ValueType{api.ValueTypeI32},
		}

	case FutureDropReadable, FutureDropWritable, StreamDropReadable, StreamDropWritable:
		// (handle) -> ()
		return CoreFuncType{
			Params: []api.ValueType{api.ValueTypeI32},
		}

	default:
		return CoreFuncType{}
	}
}
