package component

import (
	"fmt"
	"io"
)

// Async builtin canon kinds per Component Model binary format section 8
const (
	CanonStreamNew          byte = 0x0e
	CanonStreamRead         byte = 0x0f
	CanonStreamWrite        byte = 0x10
	CanonStreamCancelRead   byte = 0x11
	CanonStreamCancelWrite  byte = 0x12
	CanonStreamDropReadable byte = 0x13
	CanonStreamDropWritable byte = 0x14
	CanonFutureNew          byte = 0x15
	CanonFutureRead         byte = 0x16
	CanonFutureWrite        byte = 0x17
	CanonFutureCancelRead   byte = 0x18
	CanonFutureCancelWrite  byte = 0x19
	CanonFutureDropReadable byte = 0x1a
	CanonFutureDropWritable byte = 0x1b
)

// CanonOption kinds per Component Model binary format
const (
	CanonOptUTF8         byte = 0x00
	CanonOptUTF16        byte = 0x01
	CanonOptCompactUTF16 byte = 0x02
	CanonOptMemory       byte = 0x03
	CanonOptRealloc      byte = 0x04
	CanonOptPostReturn   byte = 0x05
	CanonOptAsync        byte = 0x06
	CanonOptCallback     byte = 0x07
	CanonOptCoreType     byte = 0x08
	CanonOptGc           byte = 0x09
)

// AsyncCanonDef holds a parsed async builtin canon definition
type AsyncCanonDef struct {
	Options   []CanonOption
	TypeIndex uint32
	Kind      byte
	Async     bool
}

// CanonOption holds a single option from a canon definition
type CanonOption struct {
	Index uint32
	Kind  byte
}

// ParseAsyncCanonSection parses a canon section (section 8) holding an
// async builtin definition.
// Despite vec encoding, component-model-async spec mandates exactly 1 canon per section.
func ParseAsyncCanonSection(data []byte) (*AsyncCanonDef, error) {
	r := getReader(data)
	defer putReader(r)

	// Read vec count (should be 1)
	count, err := readLEB128(r)
	if err != nil {
		return nil, fmt.Errorf("read canon vec count: %w", err)
	}
	if count != 1 {
		return nil, fmt.Errorf("expected 1 canon in section, got %d", count)
	}

	// Read canon kind
	kind, err := readByte(r)
	if err != nil {
		return nil, fmt.Errorf("read canon kind: %w", err)
	}

	canon := &AsyncCanonDef{Kind: kind}

	switch kind {
	case CanonFutureNew, CanonStreamNew,
		CanonFutureDropReadable, CanonFutureDropWritable,
		CanonStreamDropReadable, CanonStreamDropWritable:
		// new/drop: kind t:u32
		typeIdx, err := readLEB128(r)
		if err != nil {
			return nil, fmt.Errorf("read type index: %w", err)
		}
		canon.TypeIndex = typeIdx

	case CanonFutureRead, CanonFutureWrite, CanonStreamRead, CanonStreamWrite:
		// read/write: kind t:u32 opts:vec(canonopt)
		typeIdx, err := readLEB128(r)
		if err != nil {
			return nil, fmt.Errorf("read type index: %w", err)
		}
		canon.TypeIndex = typeIdx

		opts, err := readCanonOptions(r)
		if err != nil {
			return nil, fmt.Errorf("read options: %w", err)
		}
		canon.Options = opts

	case CanonFutureCancelRead, CanonFutureCancelWrite,
		CanonStreamCancelRead, CanonStreamCancelWrite:
		// cancel: kind t:u32 async:bool
		typeIdx, err := readLEB128(r)
		if err != nil {
			return nil, fmt.Errorf("read type index: %w", err)
		}
		canon.TypeIndex = typeIdx

		async, err := readByte(r)
		if err != nil {
			return nil, fmt.Errorf("read async flag: %w", err)
		}
		if async > 0x01 {
			return nil, fmt.Errorf("invalid async flag: 0x%02x", async)
		}
		canon.Async = async == 0x01

	default:
		return nil, fmt.Errorf("unknown async canon kind: 0x%02x", kind)
	}

	return canon, nil
}

func readCanonOptions(r io.Reader) ([]CanonOption, error) {
	count, err := readLEB128(r)
	if err != nil {
		return nil, fmt.Errorf("read option count: %w", err)
	}

	opts := make([]CanonOption, 0, count)
	for i := uint32(0); i < count; i++ {
		opt, err := readCanonOption(r)
		if err != nil {
			return nil, fmt.Errorf("read option %d: %w", i, err)
		}
		opts = append(opts, opt)
	}

	return opts, nil
}

func readCanonOption(r io.Reader) (CanonOption, error) {
	kind, err := readByte(r)
	if err != nil {
		return CanonOption{}, fmt.Errorf("read option kind: %w", err)
	}

	opt := CanonOption{Kind: kind}

	switch kind {
	case CanonOptUTF8, CanonOptUTF16, CanonOptCompactUTF16, CanonOptAsync, CanonOptGc:
		// No additional data

	case CanonOptMemory, CanonOptRealloc, CanonOptPostReturn, CanonOptCallback, CanonOptCoreType:
		idx, err := readLEB128(r)
		if err != nil {
			return CanonOption{}, fmt.Errorf("read option index: %w", err)
		}
		opt.Index = idx

	default:
		return CanonOption{}, fmt.Errorf("unknown canon option kind: 0x%02x", kind)
	}

	return opt, nil
}

// Memory returns the memory option index and whether one was supplied
func (c *AsyncCanonDef) Memory() (uint32, bool) {
	for _, opt := range c.Options {
		if opt.Kind == CanonOptMemory {
			return opt.Index, true
		}
	}
	return 0, false
}

// Realloc returns the realloc option index and whether one was supplied
func (c *AsyncCanonDef) Realloc() (uint32, bool) {
	for _, opt := range c.Options {
		if opt.Kind == CanonOptRealloc {
			return opt.Index, true
		}
	}
	return 0, false
}

// IsAsync reports whether the definition carries the async option or,
// for cancel builtins, the async immediate.
func (c *AsyncCanonDef) IsAsync() bool {
	if c.Async {
		return true
	}
	for _, opt := range c.Options {
		if opt.Kind == CanonOptAsync {
			return true
		}
	}
	return false
}
