package stats

import (
	"strings"
	"time"

	"github.com/YuminosukeSato/allgreens/core/model"
	"github.com/YuminosukeSato/allgreens/pkg/errors"
	"github.com/YuminosukeSato/allgreens/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Analyzer は平均と相関行列を学習し、任意の参照変数でr²の順位付けを行う推定器
type Analyzer struct {
	model.BaseEstimator

	labels     []string
	means      []float64
	matrix     *mat.SymDense
	degenerate []int
	samples    int

	logger log.Logger
}

// Option はAnalyzerを設定する関数
type Option func(*Analyzer)

// WithLogger はAnalyzerが使うロガーを設定する
func WithLogger(l log.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// NewAnalyzer は新しいAnalyzerを作成する
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = log.GetLoggerWithName("stats")
	}
	a.logger = a.logger.With(log.ModelNameKey, "Analyzer")
	return a
}

// Fit は平均と相関行列を計算する
// 退化変数が見つかった場合は errors.Warn で警告し、計算自体は続行する
func (a *Analyzer) Fit(ds *Dataset) (err error) {
	defer errors.Recover(&err, "Analyzer.Fit")

	if ds == nil {
		return errors.NewInvalidInputError("Analyzer.Fit", "dataset is nil")
	}
	a.Reset()
	start := time.Now()

	means := Means(ds)
	a.logger.Debug("means computed",
		log.OperationKey, log.OperationMean,
		log.VariablesKey, ds.NumVariables(),
	)

	matrix, err := CorrelationMatrix(ds, means)
	if err != nil {
		return err
	}

	degenerate := DegenerateVariables(ds)
	if len(degenerate) > 0 {
		labels := make([]string, len(degenerate))
		for k, i := range degenerate {
			labels[k] = ds.Label(i)
			errors.Warn(errors.NewDegenerateVariableWarning(ds.Label(i), i, ds.Variable(i)[0]))
		}
		a.logger.Info("degenerate variables found",
			log.OperationKey, log.OperationCorrelation,
			log.DegenerateKey, strings.Join(labels, ","),
		)
	}
	if err := errors.CheckMatrix("correlation_matrix", matrix); err != nil {
		a.logger.Debug("correlation matrix has undefined entries", err)
	}

	a.labels = ds.Labels()
	a.means = means
	a.matrix = matrix
	a.degenerate = degenerate
	a.samples = ds.NumSamples()
	a.SetFitted()

	a.logger.Info("correlation matrix computed",
		log.OperationKey, log.OperationFit,
		log.VariablesKey, ds.NumVariables(),
		log.SamplesKey, ds.NumSamples(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Means は学習した平均のコピーを返す
func (a *Analyzer) Means() ([]float64, error) {
	if err := a.RequireFitted("Analyzer", "Means"); err != nil {
		return nil, err
	}
	return append([]float64(nil), a.means...), nil
}

// Matrix は学習した相関行列のコピーを返す
func (a *Analyzer) Matrix() (*mat.SymDense, error) {
	if err := a.RequireFitted("Analyzer", "Matrix"); err != nil {
		return nil, err
	}
	out := mat.NewSymDense(a.matrix.SymmetricDim(), nil)
	out.CopySym(a.matrix)
	return out, nil
}

// Degenerate は退化変数のインデックスを返す
func (a *Analyzer) Degenerate() ([]int, error) {
	if err := a.RequireFitted("Analyzer", "Degenerate"); err != nil {
		return nil, err
	}
	return append([]int(nil), a.degenerate...), nil
}

// Rank は参照変数のインデックスに対するr²の順位付けを返す
func (a *Analyzer) Rank(reference int) (*Ranking, error) {
	if err := a.RequireFitted("Analyzer", "Rank"); err != nil {
		return nil, err
	}
	ranking, err := Rank(a.matrix, reference, a.labels)
	if err != nil {
		a.logger.Error("ranking failed", err, log.OperationKey, log.OperationRank)
		return nil, err
	}
	for _, sc := range ranking.Scores {
		a.logger.Debug("r² computed",
			log.OperationKey, log.OperationRank,
			log.VariableKey, sc.Label,
			log.R2Key, sc.R2,
		)
	}
	a.logger.Info("ranking computed",
		log.OperationKey, log.OperationRank,
		log.ReferenceKey, ranking.Reference,
		log.MostInfluentialKey, ranking.Most.Label,
		log.LeastInfluentialKey, ranking.Least.Label,
	)
	return ranking, nil
}

// RankByLabel はラベルで指定した参照変数に対するr²の順位付けを返す
func (a *Analyzer) RankByLabel(label string) (*Ranking, error) {
	if err := a.RequireFitted("Analyzer", "RankByLabel"); err != nil {
		return nil, err
	}
	for i, l := range a.labels {
		if l == label {
			return a.Rank(i)
		}
	}
	return nil, errors.NewInvalidInputError("Analyzer.RankByLabel", "unknown reference variable "+label)
}

// Result は1回の解析の結果一式
type Result struct {
	Labels     []string
	Samples    int
	Means      []float64
	Matrix     *mat.SymDense
	Degenerate []int
	Ranking    *Ranking
}

// Analyze はDatasetに対して平均・相関行列・r²順位付けをまとめて実行する
func Analyze(ds *Dataset, reference int, opts ...Option) (*Result, error) {
	a := NewAnalyzer(opts...)
	if err := a.Fit(ds); err != nil {
		return nil, err
	}
	ranking, err := a.Rank(reference)
	if err != nil {
		return nil, err
	}
	return &Result{
		Labels:     append([]string(nil), a.labels...),
		Samples:    a.samples,
		Means:      a.means,
		Matrix:     a.matrix,
		Degenerate: a.degenerate,
		Ranking:    ranking,
	}, nil
}
