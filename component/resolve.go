package component

import (
	"fmt"

	"go.bytecodealliance.org/wit"
)

// ResolveValType converts a value type to its wit representation.
// Future and stream references resolve to u32: both ends are handles
// at the Canonical ABI level.
func (t *TypeTable) ResolveValType(vt ValType) (wit.Type, error) {
	if vt.IsPrimitive() {
		return resolvePrimitive(vt.Primitive)
	}

	at, err := t.Resolve(vt.Ref)
	if err != nil {
		return nil, err
	}

	switch at.Kind {
	case KindFuture, KindStream:
		return wit.U32{}, nil
	case KindDefined:
		return t.resolveDefined(at.Defined)
	default:
		return nil, fmt.Errorf("unsupported type kind at index %d: %s", vt.Ref, at.Kind)
	}
}

func resolvePrimitive(p PrimType) (wit.Type, error) {
	switch p {
	case PrimBool:
		return wit.Bool{}, nil
	case PrimS8:
		return wit.S8{}, nil
	case PrimU8:
		return wit.U8{}, nil
	case PrimS16:
		return wit.S16{}, nil
	case PrimU16:
		return wit.U16{}, nil
	case PrimS32:
		return wit.S32{}, nil
	case PrimU32:
		return wit.U32{}, nil
	case PrimS64:
		return wit.S64{}, nil
	case PrimU64:
		return wit.U64{}, nil
	case PrimF32:
		return wit.F32{}, nil
	case PrimF64:
		return wit.F64{}, nil
	case PrimChar:
		return wit.Char{}, nil
	case PrimString:
		return wit.String{}, nil
	default:
		return nil, fmt.Errorf("unknown primitive type: 0x%02x", p)
	}
}

func (t *TypeTable) resolveDefined(d *DefinedType) (wit.Type, error) {
	switch d.Kind {
	case DefinedPrimitive:
		p, ok := d.Data.(PrimType)
		if !ok {
			return nil, fmt.Errorf("primitive entry holds %T", d.Data)
		}
		return resolvePrimitive(p)

	case DefinedRecord:
		data := d.Data.(RecordData)
		fields := make([]wit.Field, len(data.Fields))
		for i, f := range data.Fields {
			fieldType, err := t.ResolveValType(f.Type)
			if err != nil {
				return nil, fmt.Errorf("record field %q: %w", f.Name, err)
			}
			fields[i] = wit.Field{Name: f.Name, Type: fieldType}
		}
		return &wit.TypeDef{Kind: &wit.Record{Fields: fields}}, nil

	case DefinedList:
		elemType, err := t.ResolveValType(d.Data.(ValType))
		if err != nil {
			return nil, fmt.Errorf("list element: %w", err)
		}
		return &wit.TypeDef{Kind: &wit.List{Type: elemType}}, nil

	case DefinedTuple:
		data := d.Data.(TupleData)
		types := make([]wit.Type, len(data.Types))
		for i, elem := range data.Types {
			elemType, err := t.ResolveValType(elem)
			if err != nil {
				return nil, fmt.Errorf("tuple element %d: %w", i, err)
			}
			types[i] = elemType
		}
		return &wit.TypeDef{Kind: &wit.Tuple{Types: types}}, nil

	case DefinedOption:
		innerType, err := t.ResolveValType(d.Data.(ValType))
		if err != nil {
			return nil, fmt.Errorf("option type: %w", err)
		}
		return &wit.TypeDef{Kind: &wit.Option{Type: innerType}}, nil

	case DefinedResult:
		data := d.Data.(ResultData)
		var okType, errType wit.Type
		var err error
		if data.OK != nil {
			okType, err = t.ResolveValType(*data.OK)
			if err != nil {
				return nil, fmt.Errorf("result ok: %w", err)
			}
		}
		if data.Err != nil {
			errType, err = t.ResolveValType(*data.Err)
			if err != nil {
				return nil, fmt.Errorf("result err: %w", err)
			}
		}
		return &wit.TypeDef{Kind: &wit.Result{OK: okType, Err: errType}}, nil

	case DefinedEnum:
		names := d.Data.([]string)
		cases := make([]wit.EnumCase, len(names))
		for i, name := range names {
			cases[i] = wit.EnumCase{Name: name}
		}
		return &wit.TypeDef{Kind: &wit.Enum{Cases: cases}}, nil

	case DefinedFlags:
		names := d.Data.([]string)
		flags := make([]wit.Flag, len(names))
		for i, name := range names {
			flags[i] = wit.Flag{Name: name}
		}
		return &wit.TypeDef{Kind: &wit.Flags{Flags: flags}}, nil

	case DefinedVariant:
		data := d.Data.(VariantData)
		cases := make([]wit.Case, len(data.Cases))
		for i, c := range data.Cases {
			var caseType wit.Type
			if c.Type != nil {
				var err error
				caseType, err = t.ResolveValType(*c.Type)
				if err != nil {
					return nil, fmt.Errorf("variant case %q: %w", c.Name, err)
				}
			}
			cases[i] = wit.Case{Name: c.Name, Type: caseType}
		}
		return &wit.TypeDef{Kind: &wit.Variant{Cases: cases}}, nil

	default:
		return nil, fmt.Errorf("unsupported defined type kind: %d", d.Kind)
	}
}
