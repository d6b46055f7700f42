// Package errors provides coded errors split into recoverable and fatal tiers.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Input errors
	CodeGuessInvalid     Code = "GUESS_INVALID"
	CodeInputUnavailable Code = "INPUT_UNAVAILABLE"

	// Random/seed errors
	CodeSeedUnavailable Code = "SEED_UNAVAILABLE"
)

// Fatal reports whether errors with this code must end the process.
// Unknown codes are treated as fatal.
func (c Code) Fatal() bool {
	switch c {
	case CodeGuessInvalid:
		return false
	default:
		return true
	}
}
