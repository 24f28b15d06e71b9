package schedule

import "math/rand"

func deterministicRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
