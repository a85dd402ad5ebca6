// Package report renders analysis results as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/YuminosukeSato/allgreens/pkg/errors"
	"github.com/YuminosukeSato/allgreens/stats"
)

// noCandidate is printed in place of a label when every r² was NaN.
const noCandidate = "none"

// Text writes the correlation matrix followed by the r² ranking against the
// reference variable. NaN values are printed as NaN.
func Text(w io.Writer, res *stats.Result) error {
	if res == nil || res.Matrix == nil || res.Ranking == nil {
		return errors.NewInvalidInputError("report.Text", "result is incomplete")
	}
	n := res.Matrix.SymmetricDim()
	if len(res.Labels) != n {
		return errors.NewDimensionError("report.Text", n, len(res.Labels), 1)
	}

	var b strings.Builder
	writeMatrix(&b, res)
	b.WriteString("\n")
	writeRanking(&b, res.Ranking)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}

func writeMatrix(b *strings.Builder, res *stats.Result) {
	b.WriteString("Correlation coefficients (r):\n")
	n := len(res.Labels)
	for i := 0; i < n; i++ {
		fmt.Fprintf(b, "%s: ", res.Labels[i])
		for j := 0; j < n; j++ {
			fmt.Fprintf(b, "%6.3f ", res.Matrix.At(i, j))
		}
		b.WriteString("\n")
	}
}

func writeRanking(b *strings.Builder, r *stats.Ranking) {
	ref := r.Reference
	fmt.Fprintf(b, "Coefficient of determination (r²) with %s:\n", ref)
	for _, s := range r.Scores {
		fmt.Fprintf(b, "%s & %s: r² = %.4f\n", ref, s.Label, s.R2)
	}
	fmt.Fprintf(b, "\nMost influential variable on %s (highest r²): %s (r² = %.4f)\n",
		ref, extremeLabel(r.Most), r.Most.R2)
	fmt.Fprintf(b, "Least influential variable on %s (lowest r²): %s (r² = %.4f)\n",
		ref, extremeLabel(r.Least), r.Least.R2)
}

func extremeLabel(e stats.Extreme) string {
	if !e.Found() {
		return noCandidate
	}
	return e.Label
}
