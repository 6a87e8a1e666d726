package canon

// MatchSignature structurally compares the synthesized core signature
// to the supplied one and names the builtin's export on mismatch.
func MatchSignature(op BuiltinOp, want, got CoreFuncType) error {
	if !want.Equal(got) {
		return &SignatureMismatchError{Export: op.ExportName()}
	}
	return nil
}
