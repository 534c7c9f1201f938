// This file defines standard attribute keys for online-learning log
// events. Using these keys consistently keeps logs filterable across the
// library: every training step, dictionary admission and scoring call is
// reported with the same field names.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "Centroid".
	ModelNameKey = "model.name"

	// EstimatorIDKey is a caller-assigned identifier for a specific
	// estimator instance, useful when several run side by side.
	EstimatorIDKey = "estimator.id"

	// OperationKey is the operation being performed.
	// Standard values: "train", "score", "reset", "serialize".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "ml.component"
)

// Data and dictionary state.
const (
	// FeaturesKey is the dimensionality of the sample vectors.
	FeaturesKey = "data.features"

	// SamplesSeenKey is the number of training calls so far.
	SamplesSeenKey = "train.samples_seen"

	// DictSizeKey is the current dictionary size of a sparsified
	// estimator.
	DictSizeKey = "dict.size"

	// AdmittedKey reports whether a training step grew the dictionary.
	AdmittedKey = "dict.admitted"

	// ResidualKey is the approximate-linear-dependence residual computed
	// for a training sample.
	ResidualKey = "train.residual"

	// ToleranceKey is the admission threshold in effect.
	ToleranceKey = "train.tolerance"
)

// Results.
const (
	// ScoreKey is a computed novelty score.
	ScoreKey = "score.value"

	// AlphaSumKey is the sum of the estimator weight vector, a
	// diagnostic for convexity drift.
	AlphaSumKey = "train.alpha_sum"
)
