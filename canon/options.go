package canon

import (
	"github.com/wippyai/async-canon/component"
)

// MemoryRef references a core memory in the enclosing module
type MemoryRef uint32

// FuncRef references a core function in the enclosing module
type FuncRef uint32

// OptionSet is the canonical option record attached to one builtin
// use site. It is constructed once from the declaration and never
// mutated.
type OptionSet struct {
	Memory  *MemoryRef
	Realloc *FuncRef
	Async   bool
}

// OptionSetFromDef builds an OptionSet from a parsed canon definition
func OptionSetFromDef(def *component.AsyncCanonDef) OptionSet {
	var opts OptionSet
	if idx, ok := def.Memory(); ok {
		m := MemoryRef(idx)
		opts.Memory = &m
	}
	if idx, ok := def.Realloc(); ok {
		f := FuncRef(idx)
		opts.Realloc = &f
	}
	opts.Async = def.IsAsync()
	return opts
}

// ValidateOptions checks the option set against the payload
// classification, independent of the supplied signature.
//
// Only read and write move payload data, so only they ever require
// options; the remaining builtins accept extras without checking
// them. Memory is checked before realloc. The async flag never
// requires or forbids anything.
func ValidateOptions(op BuiltinOp, cls Classification, opts OptionSet) error {
	if !op.transfersPayload() {
		return nil
	}
	if cls.NeedsMemory && opts.Memory == nil {
		return &OptionRequiredError{Option: OptionMemory}
	}
	if cls.NeedsRealloc && opts.Realloc == nil {
		return &OptionRequiredError{Option: OptionRealloc}
	}
	return nil
}
