package stats

import (
	"math"

	"github.com/YuminosukeSato/allgreens/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CorrelationMatrix はピアソン相関係数の対称行列を計算する
//
// 上三角（対角を含む）だけを計算し、SymDenseが下三角を共有するため
// r[i][j] と r[j][i] はビット単位で一致します。
// 退化変数（全標本が同一値）を含む行・列はNaNになります。
//
// パラメータ:
//   - ds: 入力データ
//   - means: Means(ds) の結果（長さは変数数と一致すること）
func CorrelationMatrix(ds *Dataset, means []float64) (*mat.SymDense, error) {
	n := ds.NumVariables()
	if len(means) != n {
		return nil, errors.NewDimensionError("CorrelationMatrix", n, len(means), 1)
	}

	columns := make([][]float64, n)
	for i := range columns {
		columns[i] = ds.Variable(i)
	}
	degenerate := degenerateMask(columns)

	r := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if degenerate[i] || degenerate[j] {
				r.SetSym(i, j, math.NaN())
				continue
			}
			r.SetSym(i, j, pearson(columns[i], columns[j], means[i], means[j]))
		}
	}
	return r, nil
}

// pearson は平均からの偏差の積和を用いて相関係数を計算する
// 分母がゼロの場合は0ではなくNaNを返す
func pearson(x, y []float64, meanX, meanY float64) float64 {
	var sumXY, sumX2, sumY2 float64
	for k := range x {
		dx := x[k] - meanX
		dy := y[k] - meanY
		sumXY += dx * dy
		sumX2 += dx * dx
		sumY2 += dy * dy
	}
	denom := math.Sqrt(sumX2 * sumY2)
	if denom == 0 {
		return math.NaN()
	}
	return sumXY / denom
}

// DegenerateVariables は全標本が同一値の変数のインデックスを昇順で返す
func DegenerateVariables(ds *Dataset) []int {
	var idx []int
	for i := 0; i < ds.NumVariables(); i++ {
		if isConstant(ds.Variable(i)) {
			idx = append(idx, i)
		}
	}
	return idx
}

func degenerateMask(columns [][]float64) []bool {
	mask := make([]bool, len(columns))
	for i, c := range columns {
		mask[i] = isConstant(c)
	}
	return mask
}

func isConstant(x []float64) bool {
	return floats.Min(x) == floats.Max(x)
}
