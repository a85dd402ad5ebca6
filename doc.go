// Package allgreens computes Pearson correlation coefficients and
// coefficients of determination (r²) for a table of numeric variables, and
// reports which variable most and least influences a reference variable.
//
// The bundled data is the All Greens franchise table: six variables measured
// over 14 stores, with annual net sales (x1) as the reference.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/YuminosukeSato/allgreens/datasets"
//	    "github.com/YuminosukeSato/allgreens/report"
//	    "github.com/YuminosukeSato/allgreens/stats"
//	)
//
//	func main() {
//	    res, err := stats.Analyze(datasets.LoadAllGreens(), 0)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := report.Text(os.Stdout, res); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Packages
//
//   - stats: means, correlation matrix, r² ranking, Analyzer
//   - report: plain-text rendering of a stats.Result
//   - datasets: built-in All Greens data
//   - core/model: fitted-state bookkeeping shared by estimators
//   - pkg/errors: typed errors and warnings on cockroachdb/errors
//   - pkg/log: slog-compatible logging interface backed by zerolog
//
// # Numerical behavior
//
// All arithmetic is float64. Only the upper triangle of the correlation
// matrix is computed; the matrix is stored as a gonum SymDense so r[i][j]
// and r[j][i] are the same value. A variable whose samples are all equal
// has undefined correlations, reported as NaN rather than 0.
//
// The command-line entry point lives in cmd/allgreens.
package allgreens
