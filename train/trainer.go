package train

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/LukasMut/jack/batch"
	"github.com/LukasMut/jack/dataset"
	"github.com/LukasMut/jack/model"
	"github.com/LukasMut/jack/reader"
)

// Default training configuration.
const (
	DefaultEpochs    = 10
	DefaultBatchSize = 5
)

// Options configures a Trainer.
//
// Fields:
//   - Epochs    — number of passes over the training data.
//   - BatchSize — window size handed to the batcher.
//   - Adam      — optimiser hyper-parameters, shared by both tables.
//   - Logger    — structured logger for per-epoch progress; nil means
//     slog.Default().
type Options struct {
	Epochs    int
	BatchSize int
	Adam      AdamOptions
	Logger    *slog.Logger
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Epochs:    DefaultEpochs,
		BatchSize: DefaultBatchSize,
		Adam:      DefaultAdamOptions(),
	}
}

// Trainer trains one reader: it owns one Adam state per embedding
// table and reports per-epoch mean loss. A Trainer is single-use state
// bound to its reader; it is not safe for concurrent use.
type Trainer struct {
	reader *reader.Reader
	opts   Options
	qOpt   *Adam
	cOpt   *Adam
	log    *slog.Logger
}

// New builds a Trainer for rd. Returns ErrBadEpochs or
// batch.ErrBadBatchSize on invalid options.
func New(rd *reader.Reader, opts Options) (*Trainer, error) {
	if opts.Epochs < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadEpochs, opts.Epochs)
	}
	if opts.BatchSize < 1 {
		return nil, batch.ErrBadBatchSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	q := rd.QuestionEmbedding()
	c := rd.CandidateEmbedding()

	return &Trainer{
		reader: rd,
		opts:   opts,
		qOpt:   NewAdam(q.VocabSize(), q.ReprDim(), opts.Adam),
		cOpt:   NewAdam(c.VocabSize(), c.ReprDim(), opts.Adam),
		log:    logger,
	}, nil
}

// Run trains for the configured number of epochs over data (nil falls
// back to the batcher's reference dataset) and returns the mean loss of
// each epoch. Returns ErrNoBatches if the data cannot fill one batch.
func (t *Trainer) Run(data *dataset.Dataset) ([]float64, error) {
	epochLosses := make([]float64, 0, t.opts.Epochs)
	for epoch := 1; epoch <= t.opts.Epochs; epoch++ {
		stream, err := t.reader.Batcher().Batches(data, batch.Options{BatchSize: t.opts.BatchSize})
		if err != nil {
			return nil, err
		}

		var sum float64
		var batches int
		for {
			b, err := stream.Next()
			if errors.Is(err, batch.ErrExhausted) {
				break
			}
			if err != nil {
				return nil, err
			}
			loss, err := t.trainStep(b)
			if err != nil {
				return nil, err
			}
			sum += loss
			batches++
		}
		if batches == 0 {
			return nil, ErrNoBatches
		}

		mean := sum / float64(batches)
		epochLosses = append(epochLosses, mean)
		t.log.Info("epoch finished",
			slog.Int("epoch", epoch),
			slog.Int("batches", batches),
			slog.Float64("mean_loss", mean))
	}

	return epochLosses, nil
}

// Evaluate computes the mean loss over data without touching the
// parameters. The stream is marked Eval; sampling behavior is the same
// in both modes.
func (t *Trainer) Evaluate(data *dataset.Dataset) (float64, error) {
	stream, err := t.reader.Batcher().Batches(data, batch.Options{BatchSize: t.opts.BatchSize, Eval: true})
	if err != nil {
		return 0, err
	}

	var sum float64
	var batches int
	for {
		b, err := stream.Next()
		if errors.Is(err, batch.ErrExhausted) {
			break
		}
		if err != nil {
			return 0, err
		}
		losses, err := t.reader.Loss(b)
		if err != nil {
			return 0, err
		}
		sum += floats.Sum(losses) / float64(len(losses))
		batches++
	}
	if batches == 0 {
		return 0, ErrNoBatches
	}

	return sum / float64(batches), nil
}

// trainStep runs forward and backward on one batch, applies one Adam
// step per table, and returns the batch mean loss.
func (t *Trainer) trainStep(b *batch.Batch) (float64, error) {
	qEmb := t.reader.QuestionEmbedding()
	cEmb := t.reader.CandidateEmbedding()

	qReprs, err := qEmb.Lookup(b.QuestionIDs)
	if err != nil {
		return 0, err
	}
	slots := make([]*mat.Dense, batch.NumSlots)
	ids := make([]int, b.Size())
	for c := 0; c < batch.NumSlots; c++ {
		for i := range b.CandidateIDs {
			ids[i] = b.CandidateIDs[i][c]
		}
		if slots[c], err = cEmb.Lookup(ids); err != nil {
			return 0, err
		}
	}

	scores, err := model.DotProductScores(qReprs, slots)
	if err != nil {
		return 0, err
	}
	targets := reader.Targets(b)
	losses, err := model.SoftmaxCrossEntropy(scores, targets)
	if err != nil {
		return 0, err
	}

	// ∂L/∂scores = softmax(scores) − targets.
	grad := model.Softmax(scores)
	grad.Sub(grad, targets)

	dim := qEmb.ReprDim()
	qGrad := mat.NewDense(qEmb.VocabSize(), dim, nil)
	cGrad := mat.NewDense(cEmb.VocabSize(), dim, nil)
	for i := 0; i < b.Size(); i++ {
		qRow := qReprs.RawRowView(i)
		for c := 0; c < batch.NumSlots; c++ {
			g := grad.At(i, c)
			candRow := slots[c].RawRowView(i)
			qid := b.QuestionIDs[i]
			cid := b.CandidateIDs[i][c]
			for j := 0; j < dim; j++ {
				qGrad.Set(qid, j, qGrad.At(qid, j)+g*candRow[j])
				cGrad.Set(cid, j, cGrad.At(cid, j)+g*qRow[j])
			}
		}
	}

	if err := t.qOpt.Step(qEmb.Weights(), qGrad); err != nil {
		return 0, err
	}
	if err := t.cOpt.Step(cEmb.Weights(), cGrad); err != nil {
		return 0, err
	}

	return floats.Sum(losses) / float64(len(losses)), nil
}
