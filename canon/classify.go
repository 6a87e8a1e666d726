package canon

import (
	"go.bytecodealliance.org/wit"
)

// Classification captures what lowering a payload requires from the
// canonical options.
type Classification struct {
	NeedsMemory  bool
	NeedsRealloc bool
}

// Classify decides the option requirements for a payload type.
//
// A nil payload transfers no data and needs nothing. Any present
// payload moves through linear memory. Payloads without a fixed
// lowered size (strings, lists, aggregates containing them)
// additionally need realloc so the destination buffer can grow.
// Pure: identical input always yields identical output.
func Classify(payload wit.Type) Classification {
	if payload == nil {
		return Classification{}
	}
	return Classification{
		NeedsMemory:  true,
		NeedsRealloc: variableSize(payload),
	}
}

// variableSize reports whether the lowered byte size of t is unknown
// at declaration time. Unknown kinds classify as fixed-size.
func variableSize(t wit.Type) bool {
	switch v := t.(type) {
	case wit.String:
		return true
	case *wit.TypeDef:
		return variableSizeTypeDef(v)
	default:
		return false
	}
}

func variableSizeTypeDef(td *wit.TypeDef) bool {
	if td == nil || td.Kind == nil {
		return false
	}

	switch kind := td.Kind.(type) {
	case wit.String:
		return true
	case *wit.List:
		return true
	case *wit.Record:
		for _, f := range kind.Fields {
			if variableSize(f.Type) {
				return true
			}
		}
		return false
	case *wit.Tuple:
		for _, elem := range kind.Types {
			if variableSize(elem) {
				return true
			}
		}
		return false
	case *wit.Variant:
		for _, c := range kind.Cases {
			if c.Type != nil && variableSize(c.Type) {
				return true
			}
		}
		return false
	case *wit.Option:
		return variableSize(kind.Type)
	case *wit.Result:
		if kind.OK != nil && variableSize(kind.OK) {
			return true
		}
		return kind.Err != nil && variableSize(kind.Err)
	default:
		return false
	}
}
