// Package model は推定器（Estimator）が共有する状態管理を提供する
package model

import "github.com/YuminosukeSato/allgreens/pkg/errors"

// EstimatorState は推定器の学習状態を表す
type EstimatorState int

const (
	// NotFitted はFitがまだ呼ばれていない状態
	NotFitted EstimatorState = iota
	// Fitted はFitが成功した状態
	Fitted
)

// String は状態名を返す
func (s EstimatorState) String() string {
	if s == Fitted {
		return "fitted"
	}
	return "not_fitted"
}

// BaseEstimator は全ての推定器に埋め込まれる基底構造体
type BaseEstimator struct {
	state EstimatorState
}

// State は現在の状態を返す
func (e *BaseEstimator) State() EstimatorState {
	return e.state
}

// IsFitted は推定器が学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted は推定器を学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset は推定器を初期状態に戻す
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}

// RequireFitted は未学習ならNotFittedErrorを返す
func (e *BaseEstimator) RequireFitted(name, method string) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError(name, method)
	}
	return nil
}
