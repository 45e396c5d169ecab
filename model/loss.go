package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Softmax returns the row-wise softmax of scores, computed through
// log-sum-exp so large logits do not overflow.
func Softmax(scores *mat.Dense) *mat.Dense {
	b, c := scores.Dims()
	out := mat.NewDense(b, c, nil)
	for i := 0; i < b; i++ {
		row := scores.RawRowView(i)
		lse := floats.LogSumExp(row)
		for j, s := range row {
			out.Set(i, j, math.Exp(s-lse))
		}
	}

	return out
}

// SoftmaxCrossEntropy returns the per-instance cross-entropy between
// the softmax of each score row (logits over candidate slots) and the
// matching target distribution row:
//
//	loss[i] = Σ_c targets[i][c] · (logsumexp(scores[i]) − scores[i][c])
//
// For the batcher's fixed (1.0, 0.0) targets this reduces to
// logsumexp(scores[i]) − scores[i][0]. Aggregation over the batch is
// left to the caller. Returns ErrShapeMismatch unless both matrices
// share dimensions.
func SoftmaxCrossEntropy(scores, targets *mat.Dense) ([]float64, error) {
	sb, sc := scores.Dims()
	tb, tc := targets.Dims()
	if sb != tb || sc != tc {
		return nil, fmt.Errorf("%w: scores %dx%d vs targets %dx%d",
			ErrShapeMismatch, sb, sc, tb, tc)
	}

	losses := make([]float64, sb)
	for i := 0; i < sb; i++ {
		row := scores.RawRowView(i)
		tgt := targets.RawRowView(i)
		lse := floats.LogSumExp(row)
		var l float64
		for c, t := range tgt {
			l += t * (lse - row[c])
		}
		losses[i] = l
	}

	return losses, nil
}
