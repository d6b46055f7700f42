// Package game implements the number guessing session: a secret drawn from a
// fixed range, a fixed number of attempts, and per-guess feedback.
package game

const (
	// MinValue is the smallest secret value.
	MinValue = 1
	// MaxValue is the largest secret value.
	MaxValue = 5
	// MaxAttempts is the number of loop iterations a session runs. A line
	// that fails to parse still uses up its iteration.
	MaxAttempts = 3
)

// Feedback is the result of one loop iteration.
type Feedback int

const (
	FeedbackUnspecified Feedback = iota
	FeedbackTooSmall
	FeedbackTooBig
	FeedbackCorrect
	// FeedbackInvalid marks an iteration whose input did not parse.
	FeedbackInvalid
)

func (f Feedback) String() string {
	switch f {
	case FeedbackUnspecified:
		return "Unspecified"
	case FeedbackTooSmall:
		return "Too small"
	case FeedbackTooBig:
		return "Too big"
	case FeedbackCorrect:
		return "Correct"
	case FeedbackInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Compare reports how guess relates to secret. No range check is applied to
// guess.
func Compare(guess, secret int) Feedback {
	switch {
	case guess == secret:
		return FeedbackCorrect
	case guess < secret:
		return FeedbackTooSmall
	default:
		return FeedbackTooBig
	}
}

// RemainingAttempts returns how many loop iterations follow attempt.
func RemainingAttempts(attempt int) int {
	remaining := MaxAttempts - attempt
	if remaining < 0 {
		return 0
	}
	return remaining
}
