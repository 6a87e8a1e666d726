package component

import (
	"strconv"

	"github.com/wippyai/async-canon/errors"
)

// PrimType represents a primitive value type
type PrimType byte

const (
	PrimBool   PrimType = 0x7f
	PrimS8     PrimType = 0x7e
	PrimU8     PrimType = 0x7d
	PrimS16    PrimType = 0x7c
	PrimU16    PrimType = 0x7b
	PrimS32    PrimType = 0x7a
	PrimU32    PrimType = 0x79
	PrimS64    PrimType = 0x78
	PrimU64    PrimType = 0x77
	PrimF32    PrimType = 0x76
	PrimF64    PrimType = 0x75
	PrimChar   PrimType = 0x74
	PrimString PrimType = 0x73
)

// TypeID is a unique identifier for a type in the table
type TypeID uint32

// TypeKind identifies the kind of an abstract type
type TypeKind uint8

const (
	KindDefined TypeKind = iota // plain value type (record, list, ...)
	KindFuture                  // future<T?>
	KindStream                  // stream<T?>
)

// String returns the kind name used in diagnostics and logs
func (k TypeKind) String() string {
	switch k {
	case KindDefined:
		return "defined"
	case KindFuture:
		return "future"
	case KindStream:
		return "stream"
	default:
		return "unknown"
	}
}

// ValType represents a component value type: a primitive or a
// reference to another table entry.
type ValType struct {
	Primitive PrimType // non-zero if primitive
	Ref       TypeID   // table entry if not primitive
}

// Prim builds a primitive value type
func Prim(p PrimType) ValType {
	return ValType{Primitive: p}
}

// Ref builds a value type referencing a table entry
func Ref(id TypeID) ValType {
	return ValType{Ref: id}
}

// IsPrimitive returns true if this is a primitive type
func (v ValType) IsPrimitive() bool {
	return v.Primitive != 0
}

// DefinedKind identifies the kind of a defined value type
type DefinedKind uint8

const (
	DefinedPrimitive DefinedKind = iota
	DefinedRecord
	DefinedList
	DefinedTuple
	DefinedOption
	DefinedResult
	DefinedEnum
	DefinedFlags
	DefinedVariant
)

// DefinedType represents a plain value type stored in the table
type DefinedType struct {
	Data interface{}
	Kind DefinedKind
}

// FieldData represents a record field
type FieldData struct {
	Name string
	Type ValType
}

// RecordData contains record type data
type RecordData struct {
	Fields []FieldData
}

// TupleData contains tuple type data
type TupleData struct {
	Types []ValType
}

// ResultData contains result type data
type ResultData struct {
	OK  *ValType
	Err *ValType
}

// CaseData represents a variant case
type CaseData struct {
	Type *ValType
	Name string
}

// VariantData contains variant type data
type VariantData struct {
	Cases []CaseData
}

// AbstractType is a single table entry. Future and stream entries
// carry an optional payload; defined entries carry value type data.
type AbstractType struct {
	Payload *ValType     // future/stream payload, nil when absent
	Defined *DefinedType // value type data when Kind == KindDefined
	Kind    TypeKind
}

// TypeTable stores all abstract types declared by a component.
//
// Entries are appended in declaration order and never mutated or
// removed, so lookups are safe from concurrent readers once loading
// is done. A ValType ref always points at an earlier entry, which
// keeps the type graph acyclic.
type TypeTable struct {
	entries []AbstractType
}

// NewTypeTable creates an empty type table
func NewTypeTable() *TypeTable {
	return &TypeTable{}
}

func (t *TypeTable) alloc(at AbstractType) TypeID {
	id := TypeID(len(t.entries))
	t.entries = append(t.entries, at)
	return id
}

// AllocFuture registers future<payload> and returns its ID.
// A nil payload declares a future that carries no value.
func (t *TypeTable) AllocFuture(payload *ValType) TypeID {
	return t.alloc(AbstractType{Kind: KindFuture, Payload: payload})
}

// AllocStream registers stream<payload> and returns its ID.
// A nil payload declares a stream that carries no values.
func (t *TypeTable) AllocStream(payload *ValType) TypeID {
	return t.alloc(AbstractType{Kind: KindStream, Payload: payload})
}

// AllocDefined registers a plain value type and returns its ID
func (t *TypeTable) AllocDefined(d DefinedType) TypeID {
	return t.alloc(AbstractType{Kind: KindDefined, Defined: &d})
}

// Len returns the number of registered types
func (t *TypeTable) Len() int {
	return len(t.entries)
}

// Resolve returns the abstract type for id
func (t *TypeTable) Resolve(id TypeID) (*AbstractType, error) {
	if int(id) >= len(t.entries) {
		return nil, errors.NotFound(errors.PhaseResolve, "type", strconv.FormatUint(uint64(id), 10))
	}
	return &t.entries[id], nil
}
