package game

import "math/rand"

// RollSecret draws the session secret uniformly from [MinValue, MaxValue].
// The draw is deterministic for a given seed; callers pass a crypto-random
// seed so sessions are not reproducible.
func RollSecret(seed int64) int {
	rng := rand.New(rand.NewSource(seed))
	return rng.Intn(MaxValue-MinValue+1) + MinValue
}
