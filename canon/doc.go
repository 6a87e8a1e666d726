// Package canon checks canonical builtin use sites for future and
// stream types.
//
// A use site pairs a builtin op with a type reference, a canonical
// option set, and the core function signature supplied for it. Three
// gates run in order, stopping at the first failure:
//
//  1. the referenced type must resolve to the builtin's shape
//     (future ops need a future type, stream ops a stream type),
//  2. the option set must carry memory/realloc when the payload's
//     classification needs them,
//  3. the supplied signature must structurally equal the synthesized
//     one.
//
// Diagnostic text is contractual: the error strings rendered by the
// types in diagnostics.go are matched verbatim by downstream tools.
package canon
