package canon

import (
	"testing"

	"github.com/wippyai/async-canon/component"
)

func memRef(idx uint32) *MemoryRef {
	m := MemoryRef(idx)
	return &m
}

func funcRef(idx uint32) *FuncRef {
	f := FuncRef(idx)
	return &f
}

func TestValidateOptions(t *testing.T) {
	fixed := Classification{NeedsMemory: true}
	variable := Classification{NeedsMemory: true, NeedsRealloc: true}

	tests := []struct {
		name       string
		op         BuiltinOp
		cls        Classification
		opts       OptionSet
		wantOption OptionName // "" means ok
	}{
		{
			name: "no payload needs nothing",
			op:   FutureRead,
			cls:  Classification{},
			opts: OptionSet{},
		},
		{
			name:       "fixed payload without memory",
			op:         FutureRead,
			cls:        fixed,
			opts:       OptionSet{},
			wantOption: OptionMemory,
		},
		{
			name: "fixed payload with memory",
			op:   FutureWrite,
			cls:  fixed,
			opts: OptionSet{Memory: memRef(0)},
		},
		{
			name:       "variable payload with memory only",
			op:         FutureRead,
			cls:        variable,
			opts:       OptionSet{Memory: memRef(0)},
			wantOption: OptionRealloc,
		},
		{
			name: "variable payload fully equipped",
			op:   StreamWrite,
			cls:  variable,
			opts: OptionSet{Memory: memRef(0), Realloc: funcRef(1)},
		},
		{
			name:       "memory reported before realloc",
			op:         StreamRead,
			cls:        variable,
			opts:       OptionSet{},
			wantOption: OptionMemory,
		},
		{
			name: "new ignores options entirely",
			op:   FutureNew,
			cls:  variable,
			opts: OptionSet{},
		},
		{
			name: "cancel ignores options entirely",
			op:   FutureCancelRead,
			cls:  variable,
			opts: OptionSet{},
		},
		{
			name: "drop ignores options entirely",
			op:   StreamDropWritable,
			cls:  variable,
			opts: OptionSet{},
		},
		{
			name: "extra options on drop are legal",
			op:   FutureDropReadable,
			cls:  Classification{},
			opts: OptionSet{Memory: memRef(3), Realloc: funcRef(4)},
		},
		{
			name: "async alone requires nothing",
			op:   FutureRead,
			cls:  Classification{},
			opts: OptionSet{Async: true},
		},
		{
			name:       "async does not satisfy memory",
			op:         FutureRead,
			cls:        fixed,
			opts:       OptionSet{Async: true},
			wantOption: OptionMemory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptions(tt.op, tt.cls, tt.opts)
			if tt.wantOption == "" {
				if err != nil {
					t.Fatalf("ValidateOptions() = %v, want nil", err)
				}
				return
			}
			optErr, ok := err.(*OptionRequiredError)
			if !ok {
				t.Fatalf("ValidateOptions() = %v, want *OptionRequiredError", err)
			}
			if optErr.Option != tt.wantOption {
				t.Errorf("Option = %q, want %q", optErr.Option, tt.wantOption)
			}
		})
	}
}

func TestOptionSetFromDef(t *testing.T) {
	def := &component.AsyncCanonDef{
		Kind: component.CanonFutureRead,
		Options: []component.CanonOption{
			{Kind: component.CanonOptMemory, Index: 1},
			{Kind: component.CanonOptRealloc, Index: 4},
			{Kind: component.CanonOptAsync},
		},
	}

	opts := OptionSetFromDef(def)
	if opts.Memory == nil || *opts.Memory != 1 {
		t.Errorf("Memory = %v, want 1", opts.Memory)
	}
	if opts.Realloc == nil || *opts.Realloc != 4 {
		t.Errorf("Realloc = %v, want 4", opts.Realloc)
	}
	if !opts.Async {
		t.Error("Async = false, want true")
	}
}

func TestOptionSetFromDefEmpty(t *testing.T) {
	def := &component.AsyncCanonDef{Kind: component.CanonFutureNew}

	opts := OptionSetFromDef(def)
	if opts.Memory != nil || opts.Realloc != nil || opts.Async {
		t.Errorf("OptionSetFromDef(empty) = %+v, want zero value", opts)
	}
}

func TestOptionSetFromDefCancelImmediate(t *testing.T) {
	def := &component.AsyncCanonDef{Kind: component.CanonFutureCancelRead, Async: true}

	opts := OptionSetFromDef(def)
	if !opts.Async {
		t.Error("cancel async immediate should carry into the option set")
	}
}
