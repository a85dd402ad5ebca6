// Package log defines standard attribute keys for statistics operations.
//
// Keys follow a hierarchical naming convention ("stats.variables",
// "error.type") so records can be filtered by prefix.

package log

// Operation context.
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "stats", "report", "cli"
	ComponentKey = "component"

	// OperationKey specifies the statistics operation being performed.
	OperationKey = "stats.operation"

	// ModelNameKey identifies the estimator type, e.g. "Analyzer".
	ModelNameKey = "model.name"
)

// Data shape.
const (
	// VariablesKey is the number of variables in the dataset.
	VariablesKey = "stats.variables"

	// SamplesKey is the number of samples per variable.
	SamplesKey = "stats.samples"

	// VariableKey names a single variable by its label.
	VariableKey = "stats.variable"

	// ReferenceKey is the label of the reference variable.
	ReferenceKey = "stats.reference"
)

// Results.
const (
	// R2Key records a coefficient of determination.
	R2Key = "stats.r2"

	// MostInfluentialKey is the label with the highest r² against the reference.
	MostInfluentialKey = "stats.most_influential"

	// LeastInfluentialKey is the label with the lowest r² against the reference.
	LeastInfluentialKey = "stats.least_influential"

	// DegenerateKey lists labels of constant-valued variables.
	DegenerateKey = "stats.degenerate"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrorKey holds the error message.
	ErrorKey = "error"

	// ErrorTypeKey categorizes the error, e.g. "InvalidInputError".
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationMean        = "mean"
	OperationCorrelation = "correlation"
	OperationFit         = "fit"
	OperationRank        = "rank"
	OperationReport      = "report"
)
