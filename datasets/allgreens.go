// Package datasets provides small built-in datasets.
package datasets

import (
	"github.com/YuminosukeSato/allgreens/stats"
)

// AllGreensLabels are the variable names of the All Greens franchise data.
//
//	x1  annual net sales ($1000)
//	x2  square feet of floor space (1000 sq ft)
//	x3  inventory ($1000)
//	x4  amount spent on advertising ($1000)
//	x5  size of sales district (1000 families)
//	x6  number of competing stores in the district
var AllGreensLabels = []string{"x1", "x2", "x3", "x4", "x5", "x6"}

// allGreensData holds one row per variable, 14 stores each.
var allGreensData = [][]float64{
	{231, 156, 10, 519, 437, 487, 329, 195, 20, 68, 570, 428, 464, 15},
	{3, 2.2, 0.5, 5.5, 4.4, 4.9, 3.1, 2.5, 0.6, 1.2, 5.4, 4.2, 4.7, 0.6},
	{294, 232, 149, 560, 567, 581, 512, 347, 151, 102, 788, 577, 535, 163},
	{8.2, 6.9, 3.3, 10.6, 10.4, 11.8, 8.1, 7.7, 3.6, 4.9, 12.3, 10.5, 11.3, 2.5},
	{8.2, 4.1, 3.9, 16.1, 14.1, 12.7, 10.1, 8.2, 4.7, 4.9, 12.3, 14.0, 15.3, 2.5},
	{11, 12, 9, 16, 5, 4, 6, 12, 6, 8, 1, 7, 3, 14},
}

// AllGreensData returns a copy of the raw table, one slice per variable.
func AllGreensData() [][]float64 {
	out := make([][]float64, len(allGreensData))
	for i, row := range allGreensData {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// LoadAllGreens returns the All Greens franchise dataset: six variables
// measured over 14 stores. x1 (sales) is the usual reference variable.
func LoadAllGreens() *stats.Dataset {
	ds, err := stats.NewDataset(AllGreensLabels, AllGreensData())
	if err != nil {
		// the table is a compile-time literal
		panic(err)
	}
	return ds
}
