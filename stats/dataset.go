package stats

import (
	"fmt"

	"github.com/YuminosukeSato/allgreens/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset は変数ラベルと標本値の組です。生成後は変更されません。
// 内部ではscikit-learnと同じく (標本数 × 変数数) の行列として保持します。
type Dataset struct {
	labels []string
	data   *mat.Dense
}

// NewDataset は変数ごとの標本列からDatasetを作成する
//
// パラメータ:
//   - labels: 変数名（variablesと同じ順序、重複不可）
//   - variables: variables[i][k] は変数iのk番目の標本
//
// 入力はコピーされるため、呼び出し後に元のスライスを変更しても影響しません。
// 変数が2未満、標本が2未満、標本数の不一致、NaN/Infを含む場合はErrInvalidInputを返します。
func NewDataset(labels []string, variables [][]float64) (*Dataset, error) {
	const op = "NewDataset"

	n := len(variables)
	if n < 2 {
		return nil, errors.NewInvalidInputError(op, fmt.Sprintf("at least 2 variables required, got %d", n))
	}
	if len(labels) != n {
		return nil, errors.NewDimensionError(op, n, len(labels), 1)
	}

	seen := make(map[string]int, n)
	for i, label := range labels {
		if label == "" {
			return nil, errors.NewInvalidInputError(op, fmt.Sprintf("label of variable %d is empty", i))
		}
		if prev, dup := seen[label]; dup {
			return nil, errors.NewInvalidInputError(op,
				fmt.Sprintf("duplicate label %q at indices %d and %d", label, prev, i))
		}
		seen[label] = i
	}

	m := len(variables[0])
	if m == 0 {
		return nil, errors.NewInvalidInputErrorWithCause(op,
			fmt.Sprintf("variable %q has no samples", labels[0]), errors.ErrEmptyData)
	}
	if m < 2 {
		return nil, errors.NewInvalidInputError(op, fmt.Sprintf("at least 2 samples required, got %d", m))
	}

	data := mat.NewDense(m, n, nil)
	for i, v := range variables {
		if len(v) != m {
			return nil, errors.Wrapf(errors.NewDimensionError(op, m, len(v), 0), "variable %q", labels[i])
		}
		if err := errors.CheckNumericalStability(labels[i], v); err != nil {
			return nil, errors.NewInvalidInputErrorWithCause(op, "samples must be finite", err)
		}
		data.SetCol(i, v)
	}

	return &Dataset{
		labels: append([]string(nil), labels...),
		data:   data,
	}, nil
}

// NumVariables は変数の数を返す
func (d *Dataset) NumVariables() int {
	_, c := d.data.Dims()
	return c
}

// NumSamples は変数あたりの標本数を返す
func (d *Dataset) NumSamples() int {
	r, _ := d.data.Dims()
	return r
}

// Labels は変数ラベルのコピーを返す
func (d *Dataset) Labels() []string {
	return append([]string(nil), d.labels...)
}

// Label はi番目の変数のラベルを返す
func (d *Dataset) Label(i int) string {
	return d.labels[i]
}

// Index はラベルに対応する変数のインデックスを返す
func (d *Dataset) Index(label string) (int, error) {
	for i, l := range d.labels {
		if l == label {
			return i, nil
		}
	}
	return -1, errors.NewInvalidInputError("Dataset.Index",
		fmt.Sprintf("unknown variable %q (have %v)", label, d.labels))
}

// Variable はi番目の変数の標本列のコピーを返す
func (d *Dataset) Variable(i int) []float64 {
	return mat.Col(nil, i, d.data)
}

// Matrix は (標本数 × 変数数) の読み取り専用ビューを返す
func (d *Dataset) Matrix() mat.Matrix {
	return d.data
}
