package matching

import (
	"errors"
	"math"
)

// ErrInvalidInput reports embedding vectors that cannot be compared.
var ErrInvalidInput = errors.New("vectors must have the same length")

// CosineSimilarity returns dot(a, b) / (|a| * |b|). A zero magnitude on either
// side yields 0.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrInvalidInput
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (normA * normB), nil
}
