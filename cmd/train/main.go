// Command train trains and evaluates a multiple-choice machine reader.
//
// Usage:
//
//	train -train data/train.json [-test data/test.json] [flags]
//
// Configuration precedence: built-in defaults, then the optional YAML
// config file (-config), then explicit command-line flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LukasMut/jack/batch"
	"github.com/LukasMut/jack/dataset"
	"github.com/LukasMut/jack/reader"
	"github.com/LukasMut/jack/train"
)

// config mirrors the YAML config file; zero values mean "not set".
type config struct {
	Train        string  `yaml:"train"`
	Test         string  `yaml:"test"`
	Model        string  `yaml:"model"`
	BatchSize    int     `yaml:"batch_size"`
	ReprDim      int     `yaml:"repr_dim"`
	Epochs       int     `yaml:"epochs"`
	Seed         uint64  `yaml:"seed"`
	LearningRate float64 `yaml:"learning_rate"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger); err != nil {
		logger.Error("training failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	var (
		configPath = flag.String("config", "", "optional YAML config file")
		trainPath  = flag.String("train", "", "training dataset (JSON)")
		testPath   = flag.String("test", "", "optional test dataset (JSON)")
		modelName  = flag.String("model", reader.DefaultModel, "reader model to build")
		batchSize  = flag.Int("batch_size", train.DefaultBatchSize, "instances per batch")
		reprDim    = flag.Int("repr_dim", reader.DefaultReprDim, "embedding width")
		epochs     = flag.Int("epochs", train.DefaultEpochs, "training epochs")
		seed       = flag.Uint64("seed", batch.DefaultSeed, "seed for sampling and init")
		lr         = flag.Float64("lr", train.DefaultLearningRate, "Adam learning rate")
		peek       = flag.Bool("peek", false, "print scores and losses of the first training batch")
	)
	flag.Parse()

	cfg := config{
		Train:        *trainPath,
		Test:         *testPath,
		Model:        *modelName,
		BatchSize:    *batchSize,
		ReprDim:      *reprDim,
		Epochs:       *epochs,
		Seed:         *seed,
		LearningRate: *lr,
	}
	if *configPath != "" {
		if err := applyConfigFile(*configPath, &cfg); err != nil {
			return err
		}
	}
	if cfg.Train == "" {
		return errors.New("missing required -train dataset")
	}

	trainData, err := loadDataset(cfg.Train)
	if err != nil {
		return err
	}
	logger.Info("training data loaded",
		slog.String("path", cfg.Train),
		slog.Int("instances", len(trainData.Instances)),
		slog.Int("candidates", len(trainData.Globals.Candidates)))

	rd, err := reader.New(cfg.Model, trainData, reader.Options{ReprDim: cfg.ReprDim, Seed: cfg.Seed})
	if err != nil {
		return err
	}
	logger.Info("reader built",
		slog.String("model", cfg.Model),
		slog.Int("questions", rd.Batcher().NumQuestions()),
		slog.Int("candidates", rd.Batcher().NumCandidates()),
		slog.Int("repr_dim", cfg.ReprDim))

	if *peek {
		if err := peekBatch(rd, cfg.BatchSize); err != nil {
			return err
		}
	}

	adam := train.DefaultAdamOptions()
	adam.LearningRate = cfg.LearningRate
	tr, err := train.New(rd, train.Options{
		Epochs:    cfg.Epochs,
		BatchSize: cfg.BatchSize,
		Adam:      adam,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	if _, err := tr.Run(trainData); err != nil {
		return err
	}

	if cfg.Test == "" {
		return nil
	}
	testData, err := loadDataset(cfg.Test)
	if err != nil {
		return err
	}
	loss, err := tr.Evaluate(testData)
	if err != nil {
		return err
	}
	logger.Info("evaluation finished",
		slog.String("path", cfg.Test),
		slog.Float64("mean_loss", loss))

	return nil
}

// applyConfigFile overlays values from a YAML file onto cfg, then lets
// flags that were explicitly set on the command line win.
func applyConfigFile(path string, cfg *config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fileCfg config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if fileCfg.Train != "" && !set["train"] {
		cfg.Train = fileCfg.Train
	}
	if fileCfg.Test != "" && !set["test"] {
		cfg.Test = fileCfg.Test
	}
	if fileCfg.Model != "" && !set["model"] {
		cfg.Model = fileCfg.Model
	}
	if fileCfg.BatchSize != 0 && !set["batch_size"] {
		cfg.BatchSize = fileCfg.BatchSize
	}
	if fileCfg.ReprDim != 0 && !set["repr_dim"] {
		cfg.ReprDim = fileCfg.ReprDim
	}
	if fileCfg.Epochs != 0 && !set["epochs"] {
		cfg.Epochs = fileCfg.Epochs
	}
	if fileCfg.Seed != 0 && !set["seed"] {
		cfg.Seed = fileCfg.Seed
	}
	if fileCfg.LearningRate != 0 && !set["lr"] {
		cfg.LearningRate = fileCfg.LearningRate
	}

	return nil
}

// loadDataset opens and decodes one JSON dataset.
func loadDataset(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return dataset.Decode(f)
}

// peekBatch prints the scores and losses of one fresh batch, mirroring
// a debugging session: useful to eyeball shapes and initial magnitudes.
func peekBatch(rd *reader.Reader, batchSize int) error {
	stream, err := rd.Batcher().Batches(nil, batch.Options{BatchSize: batchSize})
	if err != nil {
		return err
	}
	b, err := stream.Next()
	if err != nil {
		return err
	}
	scores, err := rd.Scores(b)
	if err != nil {
		return err
	}
	losses, err := rd.Loss(b)
	if err != nil {
		return err
	}

	for i := 0; i < b.Size(); i++ {
		fmt.Printf("question=%d candidates=%v scores=(%.4f, %.4f) loss=%.4f\n",
			b.QuestionIDs[i], b.CandidateIDs[i], scores.At(i, 0), scores.At(i, 1), losses[i])
	}

	return nil
}
