package model_test

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/LukasMut/jack/model"
)

// benchmarkScores runs the full lookup → score → loss pipeline on a
// synthetic batch of the given shape.
func benchmarkScores(b *testing.B, batchSize, vocab, dim int) {
	emb, err := model.NewEmbedding(vocab, dim, rand.NewSource(1))
	if err != nil {
		b.Fatalf("NewEmbedding failed: %v", err)
	}
	ids := make([]int, batchSize)
	for i := range ids {
		ids[i] = i % vocab
	}
	targets := mat.NewDense(batchSize, 2, nil)
	for i := 0; i < batchSize; i++ {
		targets.Set(i, 0, 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, err := emb.Lookup(ids)
		if err != nil {
			b.Fatalf("Lookup failed: %v", err)
		}
		pos, _ := emb.Lookup(ids)
		neg, _ := emb.Lookup(ids)
		scores, err := model.DotProductScores(q, []*mat.Dense{pos, neg})
		if err != nil {
			b.Fatalf("DotProductScores failed: %v", err)
		}
		if _, err := model.SoftmaxCrossEntropy(scores, targets); err != nil {
			b.Fatalf("SoftmaxCrossEntropy failed: %v", err)
		}
	}
}

// BenchmarkPipeline_Small scores 32 instances over a 1k vocabulary.
func BenchmarkPipeline_Small(b *testing.B) {
	benchmarkScores(b, 32, 1000, 64)
}

// BenchmarkPipeline_Wide scores 256 instances with 256-dim embeddings.
func BenchmarkPipeline_Wide(b *testing.B) {
	benchmarkScores(b, 256, 10000, 256)
}
