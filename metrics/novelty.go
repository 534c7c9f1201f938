// Package metrics provides offline evaluation of one-class detectors.
//
// A novelty detector is evaluated on a labeled holdout: each sample has a
// score (higher means more novel) and a ground-truth label marking it as
// an outlier or an inlier.
package metrics

import (
	"sort"

	"github.com/YuminosukeSato/streamkern/pkg/errors"
)

// RocAuc computes the area under the ROC curve for novelty scores.
// labels[i] is true when sample i is a true outlier. Ties in the scores
// are handled with midranks, so the result equals the Mann-Whitney U
// statistic normalized to [0, 1]. A perfect detector scores 1; random
// scoring gives 0.5.
func RocAuc(scores []float64, labels []bool) (float64, error) {
	n := len(scores)
	if n == 0 {
		return 0, errors.NewValueError("RocAuc", "empty score slice")
	}
	if len(labels) != n {
		return 0, errors.NewDimensionError("RocAuc", n, len(labels))
	}

	var nPos, nNeg int
	for _, l := range labels {
		if l {
			nPos++
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		return 0, errors.NewValueError("RocAuc", "labels must contain both outliers and inliers")
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})

	// Midranks over tied scores, then the rank-sum form of the
	// Mann-Whitney U statistic.
	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && scores[idx[j]] == scores[idx[i]] {
			j++
		}
		mid := float64(i+j+1) / 2 // average of 1-based ranks i+1..j
		for k := i; k < j; k++ {
			ranks[idx[k]] = mid
		}
		i = j
	}

	var rankSum float64
	for i, l := range labels {
		if l {
			rankSum += ranks[i]
		}
	}
	u := rankSum - float64(nPos)*float64(nPos+1)/2
	return u / (float64(nPos) * float64(nNeg)), nil
}

// PrecisionAtThreshold computes the fraction of samples flagged as novel
// (score > threshold) that are true outliers. When nothing is flagged the
// precision is ill-defined and 0 is returned.
func PrecisionAtThreshold(scores []float64, labels []bool, threshold float64) (float64, error) {
	n := len(scores)
	if n == 0 {
		return 0, errors.NewValueError("PrecisionAtThreshold", "empty score slice")
	}
	if len(labels) != n {
		return 0, errors.NewDimensionError("PrecisionAtThreshold", n, len(labels))
	}

	var flagged, correct int
	for i, s := range scores {
		if s > threshold {
			flagged++
			if labels[i] {
				correct++
			}
		}
	}
	if flagged == 0 {
		return 0, nil
	}
	return float64(correct) / float64(flagged), nil
}

// RecallAtThreshold computes the fraction of true outliers whose score
// exceeds the threshold.
func RecallAtThreshold(scores []float64, labels []bool, threshold float64) (float64, error) {
	n := len(scores)
	if n == 0 {
		return 0, errors.NewValueError("RecallAtThreshold", "empty score slice")
	}
	if len(labels) != n {
		return 0, errors.NewDimensionError("RecallAtThreshold", n, len(labels))
	}

	var outliers, caught int
	for i, s := range scores {
		if labels[i] {
			outliers++
			if s > threshold {
				caught++
			}
		}
	}
	if outliers == 0 {
		return 0, errors.NewValueError("RecallAtThreshold", "labels contain no outliers")
	}
	return float64(caught) / float64(outliers), nil
}
