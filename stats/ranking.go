package stats

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/allgreens/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Determination は参照変数と1つの変数の組に対する決定係数
type Determination struct {
	Label string
	Index int
	R2    float64
}

// Extreme は走査中の最大または最小のr²とその変数
// Index が -1 の場合、比較可能な候補がなかったことを示す（R2はNaN）
type Extreme struct {
	Label string
	Index int
	R2    float64
}

// Found は候補が見つかったかどうかを返す
func (e Extreme) Found() bool {
	return e.Index >= 0
}

// Ranking は参照変数に対するr²の一覧と、その最大・最小
type Ranking struct {
	Reference      string
	ReferenceIndex int
	Scores         []Determination // 参照変数を除くインデックス昇順
	Most           Extreme         // r²最大（最も影響の大きい変数）
	Least          Extreme         // r²最小（最も影響の小さい変数）
}

// Rank は参照変数に対する各変数のr²を計算し、最大と最小を求める
//
// r² は r[reference][j] の2乗で、行列の値をそのまま使います。
// インデックス昇順に1回だけ走査し、最大は厳密な '>'、最小は厳密な '<' で更新するため、
// 同値の場合は先に現れた変数が残ります。NaNはどちらの比較も偽なので極値になりません。
func Rank(r mat.Symmetric, reference int, labels []string) (*Ranking, error) {
	const op = "Rank"

	n := r.SymmetricDim()
	if n < 2 {
		return nil, errors.NewInvalidInputError(op, fmt.Sprintf("at least 2 variables required, got %d", n))
	}
	if len(labels) != n {
		return nil, errors.NewDimensionError(op, n, len(labels), 1)
	}
	if reference < 0 || reference >= n {
		return nil, errors.NewInvalidInputError(op,
			fmt.Sprintf("reference index %d out of range [0, %d)", reference, n))
	}

	ranking := &Ranking{
		Reference:      labels[reference],
		ReferenceIndex: reference,
		Scores:         make([]Determination, 0, n-1),
		Most:           Extreme{Index: -1, R2: math.Inf(-1)},
		Least:          Extreme{Index: -1, R2: math.Inf(1)},
	}

	for j := 0; j < n; j++ {
		if j == reference {
			continue
		}
		rj := r.At(reference, j)
		r2 := rj * rj
		ranking.Scores = append(ranking.Scores, Determination{Label: labels[j], Index: j, R2: r2})

		if r2 > ranking.Most.R2 {
			ranking.Most = Extreme{Label: labels[j], Index: j, R2: r2}
		}
		if r2 < ranking.Least.R2 {
			ranking.Least = Extreme{Label: labels[j], Index: j, R2: r2}
		}
	}

	// すべてNaNだった場合は番兵値を残さない
	if !ranking.Most.Found() {
		ranking.Most.R2 = math.NaN()
	}
	if !ranking.Least.Found() {
		ranking.Least.R2 = math.NaN()
	}
	return ranking, nil
}
