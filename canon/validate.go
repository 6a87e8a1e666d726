package canon

import (
	"github.com/wippyai/async-canon/component"
	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"
)

// UseSite is one canonical builtin use, as handed over by the
// declaration loader.
type UseSite struct {
	Supplied CoreFuncType
	Options  OptionSet
	Type     component.TypeID
	Op       BuiltinOp
}

// ValidateUseSite checks a single builtin use site against the type
// table. The gates run in a fixed order and the first failure wins:
// type-kind gate, then option validation, then signature matching.
//
// The table is only read, so independent sites may be validated
// concurrently.
func ValidateUseSite(table *component.TypeTable, site UseSite) error {
	at, err := table.Resolve(site.Type)
	if err != nil {
		return err
	}

	wantKind := component.KindFuture
	if site.Op.Shape() == ShapeStream {
		wantKind = component.KindStream
	}
	if at.Kind != wantKind {
		return &RequiresTypeError{Op: site.Op}
	}

	var payload wit.Type
	if at.Payload != nil {
		payload, err = table.ResolveValType(*at.Payload)
		if err != nil {
			return err
		}
	}
	cls := Classify(payload)

	if err := ValidateOptions(site.Op, cls, site.Options); err != nil {
		return err
	}

	if err := MatchSignature(site.Op, Synthesize(site.Op), site.Supplied); err != nil {
		return err
	}

	Logger().Debug("builtin use site validated",
		zap.Stringer("op", site.Op),
		zap.Uint32("type", uint32(site.Type)),
		zap.Bool("needs_memory", cls.NeedsMemory),
		zap.Bool("needs_realloc", cls.NeedsRealloc),
		zap.Stringer("signature", site.Supplied),
	)
	return nil
}
