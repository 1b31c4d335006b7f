package ers

// ErrInvariantViolation is the root error of every structural
// inconsistency reported by the validation helpers in this module.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrRecoveredPanic roots the errors produced by ParsePanic and
// the WithRecover helpers.
const ErrRecoveredPanic Error = Error("recovered panic")

// IsInvariantViolation returns true if the argument is or resolves to
// ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, _ := r.(error)

	if r == nil || Ok(err) {
		return false
	}

	return Is(err, ErrInvariantViolation)
}
