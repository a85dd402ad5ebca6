package stats

import (
	"github.com/YuminosukeSato/allgreens/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Mean は算術平均（標本の総和 / 標本数）を計算する
func Mean(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, errors.NewInvalidInputErrorWithCause("Mean", "no samples", errors.ErrEmptyData)
	}
	return floats.Sum(x) / float64(len(x)), nil
}

// Means は各変数の平均をDatasetの変数順に返す
func Means(ds *Dataset) []float64 {
	means := make([]float64, ds.NumVariables())
	for i := range means {
		// Datasetは標本数2以上を保証しているのでエラーにならない
		means[i], _ = Mean(ds.Variable(i))
	}
	return means
}
