package train

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/LukasMut/jack/model"
)

// Adam hyper-parameter defaults (Kingma & Ba).
const (
	DefaultLearningRate = 1e-3
	DefaultBeta1        = 0.9
	DefaultBeta2        = 0.999
	DefaultEpsilon      = 1e-8
)

// AdamOptions configures one Adam instance.
type AdamOptions struct {
	LearningRate float64
	Beta1        float64
	Beta2        float64
	Epsilon      float64
}

// DefaultAdamOptions returns the standard Adam hyper-parameters.
func DefaultAdamOptions() AdamOptions {
	return AdamOptions{
		LearningRate: DefaultLearningRate,
		Beta1:        DefaultBeta1,
		Beta2:        DefaultBeta2,
		Epsilon:      DefaultEpsilon,
	}
}

// Adam holds the optimiser state for one parameter matrix: running
// first and second moment estimates and the step counter for bias
// correction.
type Adam struct {
	opts AdamOptions
	m    *mat.Dense
	v    *mat.Dense
	step int
}

// NewAdam allocates Adam state for a rows × cols parameter matrix.
func NewAdam(rows, cols int, opts AdamOptions) *Adam {
	return &Adam{
		opts: opts,
		m:    mat.NewDense(rows, cols, nil),
		v:    mat.NewDense(rows, cols, nil),
	}
}

// Step applies one in-place Adam update to weights given grad.
// Returns model.ErrShapeMismatch unless both match the state shape.
func (a *Adam) Step(weights, grad *mat.Dense) error {
	mr, mc := a.m.Dims()
	wr, wc := weights.Dims()
	gr, gc := grad.Dims()
	if wr != mr || wc != mc || gr != mr || gc != mc {
		return fmt.Errorf("%w: state %dx%d, weights %dx%d, grad %dx%d",
			model.ErrShapeMismatch, mr, mc, wr, wc, gr, gc)
	}

	a.step++
	c1 := 1 - math.Pow(a.opts.Beta1, float64(a.step))
	c2 := 1 - math.Pow(a.opts.Beta2, float64(a.step))
	for i := 0; i < mr; i++ {
		for j := 0; j < mc; j++ {
			g := grad.At(i, j)
			m := a.opts.Beta1*a.m.At(i, j) + (1-a.opts.Beta1)*g
			v := a.opts.Beta2*a.v.At(i, j) + (1-a.opts.Beta2)*g*g
			a.m.Set(i, j, m)
			a.v.Set(i, j, v)

			mHat := m / c1
			vHat := v / c2
			weights.Set(i, j, weights.At(i, j)-a.opts.LearningRate*mHat/(math.Sqrt(vHat)+a.opts.Epsilon))
		}
	}

	return nil
}
