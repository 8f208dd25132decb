package wordle

import "math/rand"

// Picker chooses the secret word from a non-empty list.
type Picker func(words []string) string

// RandomPicker picks uniformly at random using rng.
func RandomPicker(rng *rand.Rand) Picker {
	return func(words []string) string {
		return words[rng.Intn(len(words))]
	}
}

// FixedPicker always returns word, regardless of the list.
func FixedPicker(word string) Picker {
	return func([]string) string {
		return word
	}
}
