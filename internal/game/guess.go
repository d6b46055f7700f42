package game

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/guessing-game/internal/platform/errors"
)

// ParseGuess trims surrounding whitespace and parses the rest as an unsigned
// 32-bit decimal integer with an optional leading '+'. Failures carry
// CodeGuessInvalid and are recoverable.
func ParseGuess(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	value, err := strconv.ParseUint(strings.TrimPrefix(trimmed, "+"), 10, 32)
	if err != nil {
		return 0, apperrors.WrapWithMetadata(
			apperrors.CodeGuessInvalid,
			fmt.Sprintf("invalid guess %q", trimmed),
			map[string]string{"input": trimmed},
			err,
		)
	}
	return int(value), nil
}
