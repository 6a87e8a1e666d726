// Package errors provides structured error types for the async-canon
// library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). These cover the library's internal failures:
// unknown type references, malformed canon sections, unsupported
// inputs. Validation diagnostics with contractual text live in the
// canon package instead, because their rendering is part of the
// external contract.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidData).
//		Path("canon", "options").
//		Detail("option vector truncated").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseResolve, "type", "17")
//	err := errors.OutOfBounds(errors.PhaseResolve, path, 10, 5)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
