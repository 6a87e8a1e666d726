package component

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// readerPool pools bytes.Reader instances to reduce allocations
var readerPool = sync.Pool{
	New: func() interface{} {
		return &bytes.Reader{}
	},
}

// getReader gets a pooled reader initialized with data
func getReader(data []byte) *bytes.Reader {
	r := readerPool.Get().(*bytes.Reader)
	r.Reset(data)
	return r
}

// putReader returns a reader to the pool
func putReader(r *bytes.Reader) {
	readerPool.Put(r)
}

// readByte reads a single byte efficiently without allocation
func readByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	// Fallback for readers that don't implement ByteReader
	var b [1]byte
	_, err := r.Read(b[:])
	return b[0], err
}

func readLEB128(r io.Reader) (uint32, error) {
	var result uint32
	var shift uint
	for i := 0; i < 5; i++ { // Max 5 bytes for uint32
		b, err := readByte(r)
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 32 {
			return 0, fmt.Errorf("LEB128 value too large")
		}
	}
	return 0, fmt.Errorf("LEB128 encoding exceeded maximum length")
}
