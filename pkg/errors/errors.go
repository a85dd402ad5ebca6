// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 入力検証エラー、退化変数の警告、数値的不安定性を構造化された形で表現します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("allgreens-warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler は警告ハンドラを設定します。
// 退化変数の警告などをどう処理するかを呼び出し側で制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nilを渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// DegenerateVariableWarning は分散がゼロの変数（すべての標本が同一値）を検出した場合の警告です。
// このような変数との相関係数は定義されず、NaNとして伝播します。
type DegenerateVariableWarning struct {
	Variable string
	Index    int
	Value    float64 // 全標本に共通の値
}

func (w *DegenerateVariableWarning) Error() string {
	return fmt.Sprintf("variable '%s' (index %d) is constant at %g; its correlations are undefined (NaN)",
		w.Variable, w.Index, w.Value)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *DegenerateVariableWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("variable", w.Variable).
		Int("index", w.Index).
		Float64("value", w.Value).
		Str("type", "DegenerateVariableWarning")
}

// NewDegenerateVariableWarning は新しいDegenerateVariableWarningを作成します。
func NewDegenerateVariableWarning(variable string, index int, value float64) *DegenerateVariableWarning {
	return &DegenerateVariableWarning{Variable: variable, Index: index, Value: value}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// InvalidInputError は入力データや引数が計算の前提を満たさない場合のエラーです。
// errors.Is(err, ErrInvalidInput) で判定できます。
type InvalidInputError struct {
	Op     string
	Reason string
	Err    error // 原因（ErrEmptyDataなど、任意）
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("allgreens: %s: invalid input: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("allgreens: %s: invalid input: %s", e.Op, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// Is はErrInvalidInputとの比較を可能にします。
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "InvalidInputError")
	if e.Err != nil {
		event.Str("cause", e.Err.Error())
	}
}

// NewInvalidInputError は新しいInvalidInputErrorを作成し、スタックトレースを付与します。
func NewInvalidInputError(op, reason string) error {
	return errors.WithStack(&InvalidInputError{Op: op, Reason: reason})
}

// NewInvalidInputErrorWithCause は原因付きのInvalidInputErrorを作成します。
func NewInvalidInputErrorWithCause(op, reason string, cause error) error {
	return errors.WithStack(&InvalidInputError{Op: op, Reason: reason, Err: cause})
}

// DimensionError は変数ごとの標本数やラベル数が一致しない場合のエラーです。
// 入力検証エラーの一種なので ErrInvalidInput としても判定されます。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0: 標本, 1: 変数
}

func axisName(axis int) string {
	if axis == 0 {
		return "samples"
	}
	return "variables"
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("allgreens: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, axisName(e.Axis), e.Expected, e.Got)
}

// Is はErrInvalidInputとの比較を可能にします。
func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName(e.Axis)).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// NotFittedError はFit前のAnalyzerから結果を取得しようとした場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("allgreens: %s: not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// NumericalInstabilityError はNaNやInfが検出された場合のエラーです。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "correlation_matrix"）
	Values    []float64 // 問題のある値
	Count     int       // 検出された非有限値の総数
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("allgreens: non-finite values detected in %s (%d total). Values: [%s]",
		e.Operation, e.Count, valStr)
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, count int) error {
	return errors.WithStack(&NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Count:     count,
	})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrInvalidInput は入力検証エラー全般を表します。
	ErrInvalidInput = New("invalid input")

	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
