package reader_test

import (
	"fmt"

	"github.com/LukasMut/jack/batch"
	"github.com/LukasMut/jack/dataset"
	"github.com/LukasMut/jack/reader"
)

// ExampleNew builds the model_f reader over a toy dataset and shows the
// shape contract: one score per (instance, candidate slot) pair.
func ExampleNew() {
	ds := &dataset.Dataset{
		Globals: dataset.Globals{Candidates: []dataset.Candidate{
			{Text: "Paris"}, {Text: "Berlin"},
		}},
		Instances: []dataset.Instance{
			{Questions: []dataset.Question{{Question: "capital of France?", Answers: []dataset.Answer{{Text: "Paris"}}}}},
			{Questions: []dataset.Question{{Question: "capital of Germany?", Answers: []dataset.Answer{{Text: "Berlin"}}}}},
		},
	}

	rd, err := reader.New(reader.ModelF, ds, reader.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	stream, err := rd.Batcher().Batches(nil, batch.Options{BatchSize: 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	b, err := stream.Next()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	scores, err := rd.Scores(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rows, cols := scores.Dims()
	losses, err := rd.Loss(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("scores: %dx%d, losses: %d\n", rows, cols, len(losses))
	// Output:
	// scores: 2x2, losses: 2
}
