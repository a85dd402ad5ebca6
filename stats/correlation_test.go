package stats

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/allgreens/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func mustDataset(t *testing.T, labels []string, variables [][]float64) *Dataset {
	t.Helper()
	ds, err := NewDataset(labels, variables)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	return ds
}

func mustCorrelation(t *testing.T, ds *Dataset) *mat.SymDense {
	t.Helper()
	r, err := CorrelationMatrix(ds, Means(ds))
	if err != nil {
		t.Fatalf("CorrelationMatrix() error = %v", err)
	}
	return r
}

func TestCorrelationMatrixProperties(t *testing.T) {
	ds := mustDataset(t, []string{"a", "b", "c", "d"}, [][]float64{
		{1, 2, 3, 4, 5, 6},
		{2.1, 3.9, 6.2, 8.1, 9.7, 12.3},
		{6, 5, 4, 3, 2, 1},
		{3, 1, 4, 1, 5, 9},
	})
	r := mustCorrelation(t, ds)
	n := r.SymmetricDim()
	const eps = 1e-12

	for i := 0; i < n; i++ {
		if math.Abs(r.At(i, i)-1) > eps {
			t.Errorf("r[%d][%d] = %v, want 1", i, i, r.At(i, i))
		}
		for j := 0; j < n; j++ {
			if math.Float64bits(r.At(i, j)) != math.Float64bits(r.At(j, i)) {
				t.Errorf("r[%d][%d] = %v differs from r[%d][%d] = %v", i, j, r.At(i, j), j, i, r.At(j, i))
			}
			if v := r.At(i, j); v < -1-eps || v > 1+eps {
				t.Errorf("r[%d][%d] = %v outside [-1, 1]", i, j, v)
			}
		}
	}

	if math.Abs(r.At(0, 2)+1) > eps {
		t.Errorf("perfect anti-correlation = %v, want -1", r.At(0, 2))
	}
}

func TestCorrelationMatrixMatchesGonum(t *testing.T) {
	ds := mustDataset(t, []string{"a", "b", "c"}, [][]float64{
		{231, 156, 10, 519, 437, 487, 329},
		{3, 2.2, 0.5, 5.5, 4.4, 4.9, 3.1},
		{11, 12, 9, 16, 5, 4, 6},
	})
	r := mustCorrelation(t, ds)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := stat.Correlation(ds.Variable(i), ds.Variable(j), nil)
			if math.Abs(r.At(i, j)-want) > 1e-12 {
				t.Errorf("r[%d][%d] = %v, gonum stat.Correlation = %v", i, j, r.At(i, j), want)
			}
		}
	}
}

func TestCorrelationMatrixIdenticalTwoSamples(t *testing.T) {
	ds := mustDataset(t, []string{"x1", "x2"}, [][]float64{{1, 2}, {1, 2}})
	r := mustCorrelation(t, ds)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if r.At(i, j) != 1.0 {
				t.Errorf("r[%d][%d] = %v, want exactly 1", i, j, r.At(i, j))
			}
		}
	}
}

func TestCorrelationMatrixDegenerate(t *testing.T) {
	ds := mustDataset(t, []string{"x1", "x2", "x3"}, [][]float64{
		{1, 2, 4},
		{5, 5, 5},
		{0.1, 0.1, 0.1},
	})
	r := mustCorrelation(t, ds)

	for j := 0; j < 3; j++ {
		if !math.IsNaN(r.At(1, j)) {
			t.Errorf("r[1][%d] = %v, want NaN", j, r.At(1, j))
		}
		if !math.IsNaN(r.At(2, j)) {
			t.Errorf("r[2][%d] = %v, want NaN", j, r.At(2, j))
		}
	}
	if math.Abs(r.At(0, 0)-1) > 1e-15 {
		t.Errorf("r[0][0] = %v, want 1 for the non-degenerate variable", r.At(0, 0))
	}

	got := DegenerateVariables(ds)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("DegenerateVariables() = %v, want [1 2]", got)
	}
}

func TestCorrelationMatrixMeansMismatch(t *testing.T) {
	ds := mustDataset(t, []string{"a", "b"}, [][]float64{{1, 2}, {3, 5}})

	_, err := CorrelationMatrix(ds, []float64{1.5})
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("CorrelationMatrix() error = %v, want ErrInvalidInput", err)
	}
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) || dimErr.Expected != 2 || dimErr.Got != 1 {
		t.Errorf("expected DimensionError{Expected: 2, Got: 1}, got %v", err)
	}
}

func TestPearsonZeroDenominator(t *testing.T) {
	got := pearson([]float64{1, 1}, []float64{2, 3}, 1, 2.5)
	if !math.IsNaN(got) {
		t.Errorf("pearson() = %v, want NaN", got)
	}
}
