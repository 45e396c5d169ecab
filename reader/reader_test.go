package reader_test

import (
	"testing"

	"github.com/LukasMut/jack/batch"
	"github.com/LukasMut/jack/dataset"
	"github.com/LukasMut/jack/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capitals builds a minimal two-candidate dataset with n "Paris"
// instances.
func capitals(n int) *dataset.Dataset {
	ds := &dataset.Dataset{
		Globals: dataset.Globals{Candidates: []dataset.Candidate{
			{Text: "Paris"}, {Text: "Berlin"},
		}},
	}
	questions := []string{
		"capital of France?",
		"home of the Louvre?",
		"seat of the French government?",
	}
	for i := 0; i < n; i++ {
		ds.Instances = append(ds.Instances, dataset.Instance{
			Questions: []dataset.Question{{
				Question: questions[i%len(questions)],
				Answers:  []dataset.Answer{{Text: "Paris"}},
			}},
		})
	}

	return ds
}

// nextBatch pulls one batch from a fresh stream.
func nextBatch(t *testing.T, rd *reader.Reader, size int) *batch.Batch {
	t.Helper()
	s, err := rd.Batcher().Batches(nil, batch.Options{BatchSize: size})
	require.NoError(t, err)
	b, err := s.Next()
	require.NoError(t, err)

	return b
}

// TestNew_ModelF verifies the registry dispatches to the model_f
// builder and the tables match the lexicon sizes.
func TestNew_ModelF(t *testing.T) {
	rd, err := reader.New(reader.ModelF, capitals(3), reader.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, rd.Batcher().NumQuestions(), rd.QuestionEmbedding().VocabSize())
	assert.Equal(t, rd.Batcher().NumCandidates(), rd.CandidateEmbedding().VocabSize())
	assert.Equal(t, reader.DefaultReprDim, rd.QuestionEmbedding().ReprDim())
}

// TestNew_UnknownModel verifies unknown registry keys fail.
func TestNew_UnknownModel(t *testing.T) {
	_, err := reader.New("model_g", capitals(1), reader.DefaultOptions())
	assert.ErrorIs(t, err, reader.ErrUnknownModel)
}

// TestNew_BadOptions verifies option validation and dataset error
// propagation.
func TestNew_BadOptions(t *testing.T) {
	_, err := reader.New(reader.ModelF, capitals(1), reader.Options{ReprDim: 0})
	assert.ErrorIs(t, err, reader.ErrBadReprDim)

	_, err = reader.New(reader.ModelF, &dataset.Dataset{}, reader.DefaultOptions())
	assert.ErrorIs(t, err, dataset.ErrNoCandidates)
}

// TestModels lists the fixed registry.
func TestModels(t *testing.T) {
	assert.Equal(t, []string{"model_f"}, reader.Models())
}

// TestReader_ScoresShape verifies the score matrix is B × 2.
func TestReader_ScoresShape(t *testing.T) {
	rd, err := reader.New(reader.ModelF, capitals(3), reader.DefaultOptions())
	require.NoError(t, err)

	b := nextBatch(t, rd, 3)
	scores, err := rd.Scores(b)
	require.NoError(t, err)

	r, c := scores.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, batch.NumSlots, c)
}

// TestReader_LossMatchesScores verifies Loss equals the cross-entropy
// of Scores against the batch targets, one value per instance.
func TestReader_LossMatchesScores(t *testing.T) {
	rd, err := reader.New(reader.ModelF, capitals(3), reader.DefaultOptions())
	require.NoError(t, err)

	b := nextBatch(t, rd, 2)
	losses, err := rd.Loss(b)
	require.NoError(t, err)

	require.Len(t, losses, 2)
	for i, l := range losses {
		assert.False(t, l < 0, "cross-entropy is non-negative, instance %d got %g", i, l)
	}
}

// TestReader_SeedDeterminism verifies two readers built with the same
// seed agree on parameters, sampled batches, and losses.
func TestReader_SeedDeterminism(t *testing.T) {
	opts := reader.Options{ReprDim: 4, Seed: 11}

	a, err := reader.New(reader.ModelF, capitals(3), opts)
	require.NoError(t, err)
	b, err := reader.New(reader.ModelF, capitals(3), opts)
	require.NoError(t, err)

	ba := nextBatch(t, a, 3)
	bb := nextBatch(t, b, 3)
	assert.Equal(t, ba, bb, "same seed must sample the same batch")

	la, err := a.Loss(ba)
	require.NoError(t, err)
	lb, err := b.Loss(bb)
	require.NoError(t, err)
	assert.Equal(t, la, lb, "same seed must reproduce the same losses")
}

// TestTargets verifies the dense conversion of batch targets.
func TestTargets(t *testing.T) {
	rd, err := reader.New(reader.ModelF, capitals(2), reader.DefaultOptions())
	require.NoError(t, err)

	b := nextBatch(t, rd, 2)
	targets := reader.Targets(b)
	r, c := targets.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		assert.Equal(t, 1.0, targets.At(i, 0))
		assert.Equal(t, 0.0, targets.At(i, 1))
	}
}
