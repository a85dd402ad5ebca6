package stats

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/allgreens/pkg/errors"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name      string
		x         []float64
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "integers",
			x:         []float64{1, 2, 3, 4},
			want:      2.5,
			tolerance: 1e-15,
		},
		{
			name:      "single value",
			x:         []float64{7},
			want:      7,
			tolerance: 0,
		},
		{
			name:      "negative and fractional",
			x:         []float64{-1.5, 0.5, 4},
			want:      1.0,
			tolerance: 1e-15,
		},
		{
			name:      "x2 of All Greens",
			x:         []float64{3, 2.2, 0.5, 5.5, 4.4, 4.9, 3.1, 2.5, 0.6, 1.2, 5.4, 4.2, 4.7, 0.6},
			want:      42.8 / 14,
			tolerance: 1e-12,
		},
		{
			name:    "empty",
			x:       []float64{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.x)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Mean() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidInput) || !errors.Is(err, errors.ErrEmptyData) {
					t.Errorf("expected invalid input caused by empty data, got %v", err)
				}
				return
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Mean() = %v, want %v (tolerance: %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestMeans(t *testing.T) {
	ds, err := NewDataset([]string{"a", "b", "c"}, [][]float64{{1, 3}, {10, 20}, {-4, 4}})
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{2, 15, 0}
	got := Means(ds)
	if len(got) != len(want) {
		t.Fatalf("len(Means) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Means()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
