package errors

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// maxReportedValues bounds how many offending values an instability error carries.
const maxReportedValues = 10

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if any non-finite value is found.
func CheckNumericalStability(operation string, values []float64) error {
	var bad []float64
	count := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			count++
			if len(bad) < maxReportedValues {
				bad = append(bad, v)
			}
		}
	}
	if count > 0 {
		return NewNumericalInstabilityError(operation, bad, count)
	}
	return nil
}

// CheckMatrix checks all values in a matrix for NaN or Inf.
// Every entry is visited so the returned error reports the full count.
func CheckMatrix(operation string, m mat.Matrix) error {
	rows, cols := m.Dims()
	var bad []float64
	count := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				count++
				if len(bad) < maxReportedValues {
					bad = append(bad, v)
				}
			}
		}
	}
	if count > 0 {
		return NewNumericalInstabilityError(operation, bad, count)
	}
	return nil
}
