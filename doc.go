// Package asynccanon validates canonical ABI builtins for future and
// stream types in WebAssembly Component Model binaries.
//
// A builtin use site declares that a canonical operation (future.new,
// future.read, stream.write, ...) is realized by a core function. The
// validator checks three things, in order, stopping at the first
// failure:
//
//  1. the referenced type is a future (or stream) type,
//  2. the canonical options carry memory/realloc when the payload
//     needs them,
//  3. the supplied core function signature matches the shape the
//     canonical ABI requires for the operation.
//
// The component package holds the declaration model (type table,
// canon section parsing); the canon package holds the checking
// kernel. Parsing of full component binaries, instantiation, and
// execution are out of scope.
package asynccanon
