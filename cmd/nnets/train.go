package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/born-ml/nnets/internal/dataset"
	"github.com/born-ml/nnets/internal/nn"
	"github.com/born-ml/nnets/internal/train"
)

func runTrain(args []string, out io.Writer) {
	defaults := train.DefaultConfig()

	fs := flag.NewFlagSet("train", flag.ExitOnError)
	trainVectors := fs.String("train-vectors", "data/fashion_mnist_train_vectors.csv", "Training input vectors")
	trainLabels := fs.String("train-labels", "data/fashion_mnist_train_labels.csv", "Training labels")
	testVectors := fs.String("test-vectors", "data/fashion_mnist_test_vectors.csv", "Test input vectors (empty = skip)")
	testLabels := fs.String("test-labels", "data/fashion_mnist_test_labels.csv", "Test labels")
	outDir := fs.String("predictions-dir", ".", "Directory for trainPredictions and actualTestPredictions")
	epochs := fs.Int("epochs", defaults.Epochs, "Number of training epochs")
	batchSize := fs.Int("batch", defaults.BatchSize, "Mini-batch size")
	lr := fs.Float64("lr", defaults.LearningRate, "Initial learning rate")
	gamma := fs.Float64("gamma", defaults.LRDecay, "Learning rate decay per epoch")
	optimizer := fs.String("optimizer", defaults.Optimizer, "Optimizer: sgd or rmsprop")
	rho := fs.Float64("rho", defaults.HistoryInfluence, "RMSProp history influence")
	smoothing := fs.Float64("eps", defaults.SmoothingTerm, "RMSProp smoothing term")
	validation := fs.Float64("validation", defaults.ValidationFraction, "Fraction of training data held out")
	seed := fs.Uint64("seed", defaults.Seed, "Random seed")
	_ = fs.Parse(args)

	start := time.Now()

	cfg := train.Config{
		Epochs:             *epochs,
		BatchSize:          *batchSize,
		LearningRate:       *lr,
		LRDecay:            *gamma,
		Optimizer:          *optimizer,
		HistoryInfluence:   *rho,
		SmoothingTerm:      *smoothing,
		ValidationFraction: *validation,
		Seed:               *seed,
	}
	trainer, err := train.New(cfg, out)
	if err != nil {
		log.Fatalf("Failed to configure training: %v", err)
	}

	trainSet, err := dataset.Read(*trainVectors, *trainLabels)
	if err != nil {
		log.Fatalf("Failed to load training data: %v", err)
	}
	if len(trainSet) == 0 {
		log.Fatalf("Training data %s is empty", *trainVectors)
	}
	numCategories := dataset.NumCategories(trainSet)
	fmt.Fprintf(out, "train_dataset_size=%d\n", len(trainSet))
	fmt.Fprintf(out, "input_vector_size=%d\n", trainSet.InputSize())
	fmt.Fprintf(out, "num_categories=%d\n", numCategories)

	net := train.NewClassifier(trainSet.InputSize(), numCategories)
	net.InitWeights(trainer.Random())

	if _, err := trainer.Fit(net, trainSet); err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	evaluate(out, net, trainSet, "train", filepath.Join(*outDir, "trainPredictions"))

	if *testVectors != "" {
		testSet, err := dataset.Read(*testVectors, *testLabels)
		if err != nil {
			log.Fatalf("Failed to load test data: %v", err)
		}
		evaluate(out, net, testSet, "test", filepath.Join(*outDir, "actualTestPredictions"))
	}

	fmt.Fprintf(out, "Total runtime: %d seconds\n", int(time.Since(start).Seconds()))
}

func evaluate(out io.Writer, net nn.Module, ds dataset.Dataset, name, predictionsPath string) {
	predictions, acc := train.Evaluate(net, ds)
	fmt.Fprintf(out, "final %s dataset success rate %g\n", name, acc)

	if err := dataset.WritePredictions(predictionsPath, predictions); err != nil {
		log.Fatalf("Failed to write %s predictions: %v", name, err)
	}
}
