package vectormath

import (
	"errors"
	"math"
)

var (
	// ErrDimensionMismatch is returned when the two vectors differ in length.
	ErrDimensionMismatch = errors.New("vectors have different dimensions")

	// ErrZeroMagnitude is returned when either vector has zero magnitude.
	// Callers decide whether that is fatal or maps to a zero similarity.
	ErrZeroMagnitude = errors.New("zero magnitude vector")
)

// Cosine returns the cosine similarity of a and b in [-1, 1].
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, ErrZeroMagnitude
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
