package canon

import (
	"fmt"
)

// Diagnostic templates are part of the external contract: downstream
// tools match the rendered text verbatim. They live here and nowhere
// else.
const (
	requiresTypeTemplate   = "`%s` requires a %s type"
	optionRequiredTemplate = "canonical option `%s` is required"
	typeMismatchTemplate   = "type mismatch for export `%s` of module instantiation argument ``"
)

// OptionName names a canonical option in diagnostics
type OptionName string

const (
	OptionMemory  OptionName = "memory"
	OptionRealloc OptionName = "realloc"
)

// RequiresTypeError reports a builtin whose referenced type does not
// have the shape the builtin operates on.
type RequiresTypeError struct {
	Op BuiltinOp
}

func (e *RequiresTypeError) Error() string {
	return fmt.Sprintf(requiresTypeTemplate, e.Op.ExportName(), e.Op.Shape())
}

// OptionRequiredError reports a canonical option the payload
// classification requires but the use site does not supply.
type OptionRequiredError struct {
	Option OptionName
}

func (e *OptionRequiredError) Error() string {
	return fmt.Sprintf(optionRequiredTemplate, e.Option)
}

// SignatureMismatchError reports a supplied core function whose type
// differs from the synthesized one. The trailing empty backticked
// instantiation-argument label is literal.
type SignatureMismatchError struct {
	Export string
}

func (e *SignatureMismatchError) Error() string {
	return fmt.Sprintf(typeMismatchTemplate, e.Export)
}
