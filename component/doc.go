// Package component holds the declaration model consumed by the
// canon validator.
//
// Types declared by a component live in a TypeTable, an arena of
// AbstractType entries addressed by TypeID. Future and stream types
// carry an optional payload value type; payloads resolve to
// go.bytecodealliance.org/wit types for classification.
//
// ParseAsyncCanonSection decodes the async builtin canon definitions
// (future.new, stream.read, ...) from a canon section body, including
// their canonical options. Full component binary decoding is owned by
// the surrounding toolchain.
package component
