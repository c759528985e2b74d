package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Chance returns true with the given probability (0.0 to 1.0)
// Probabilities are resolved to a tenth of a percent.
func Chance(gen Generator, probability float64) bool {
	if probability <= 0 {
		return false
	}

	if probability >= 1 {
		return true
	}

	return gen.Intn(1000) < int(probability*1000)
}
