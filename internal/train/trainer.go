// Package train drives mini-batch training of nn.Module classifiers.
//
// The trainer owns the loop the network itself knows nothing about: shuffling,
// the train/validation split, mini-batching, the loss, learning-rate decay
// and progress reporting.
package train

import (
	"errors"
	"fmt"
	"io"

	"github.com/born-ml/nnets/internal/dataset"
	"github.com/born-ml/nnets/internal/nn"
	"github.com/born-ml/nnets/internal/optim"
	"github.com/born-ml/nnets/internal/random"
)

// Training errors.
var (
	ErrEmptyDataset = errors.New("training split is empty")
	ErrOutputSize   = errors.New("network output size does not match the number of categories")
)

// EpochStats summarizes one epoch.
type EpochStats struct {
	Epoch              int
	LearningRate       float64 // Rate used during the epoch.
	Loss               float64 // Sum of half squared errors over the training split.
	ValidationAccuracy float64 // 0 when there is no validation split.
}

// History is the per-epoch record returned by Fit.
type History []EpochStats

// Trainer runs mini-batch gradient training.
type Trainer struct {
	cfg Config
	out io.Writer
	rng *random.Random
}

// New creates a Trainer. Progress lines go to out; a nil out discards them.
func New(cfg Config, out io.Writer) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid training config: %w", err)
	}
	if out == nil {
		out = io.Discard
	}
	return &Trainer{
		cfg: cfg,
		out: out,
		rng: random.New(cfg.Seed),
	}, nil
}

// Random returns the trainer's random source. Use it for InitWeights so a
// whole run is reproducible from Config.Seed.
func (t *Trainer) Random() *random.Random {
	return t.rng
}

// Fit trains net on ds.
//
// The data is shuffled once and split into training and validation parts.
// Each epoch reshuffles the training part, and for every mini-batch runs
// ZeroGrad, Forward/Backward per sample against a one-hot target, then one
// optimizer step. The learning rate decays after each epoch.
//
// net must produce one output per category (dataset.NumCategories).
func (t *Trainer) Fit(net nn.Module, ds dataset.Dataset) (History, error) {
	optimizer, err := t.cfg.NewOptimizer()
	if err != nil {
		return nil, err
	}
	decay := optim.ExponentialDecay{Gamma: t.cfg.LRDecay}

	numCategories := dataset.NumCategories(ds)
	data := ds.Clone()
	data.Shuffle(t.rng)
	trainSet, validationSet := data.Split(t.cfg.ValidationFraction)
	if len(trainSet) == 0 {
		return nil, ErrEmptyDataset
	}

	fmt.Fprintf(t.out, "train_size=%d validation_size=%d num_categories=%d\n",
		len(trainSet), len(validationSet), numCategories)

	target := make([]float64, numCategories)
	grad := make([]float64, numCategories)
	history := make(History, 0, t.cfg.Epochs)

	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		trainSet.Shuffle(t.rng)
		lr := optimizer.GetLR()
		var epochLoss float64

		for batch, start := 0, 0; start < len(trainSet); batch, start = batch+1, start+t.cfg.BatchSize {
			end := min(start+t.cfg.BatchSize, len(trainSet))

			optimizer.ZeroGrad(net)
			var batchLoss float64
			for _, s := range trainSet[start:end] {
				net.Forward(s.Input)
				output := net.Output()
				if len(output) != numCategories {
					return nil, fmt.Errorf("%w: got %d, want %d", ErrOutputSize, len(output), numCategories)
				}

				nn.OneHot(target, s.Label)
				batchLoss += nn.HalfSquaredError(output, target, grad)
				net.Backward(grad)
			}
			optimizer.Step(net)

			epochLoss += batchLoss
			fmt.Fprintf(t.out, "epoch=%d batch=%d batch_error=%g\n", epoch, batch, batchLoss)
		}

		decay.Apply(optimizer)

		stats := EpochStats{Epoch: epoch, LearningRate: lr, Loss: epochLoss}
		if len(validationSet) > 0 {
			_, stats.ValidationAccuracy = Evaluate(net, validationSet)
			fmt.Fprintf(t.out, "epoch=%d success_rate=%g\n", epoch, stats.ValidationAccuracy)
		}
		history = append(history, stats)
	}

	return history, nil
}

// Predict returns the arg-max category of net's output for every sample.
func Predict(net nn.Module, ds dataset.Dataset) []int {
	predictions := make([]int, len(ds))
	for i, s := range ds {
		net.Forward(s.Input)
		predictions[i] = nn.ArgMax(net.Output())
	}
	return predictions
}

// Accuracy returns the share of predictions matching the labels of ds.
// It returns 0 for an empty dataset.
func Accuracy(predictions []int, ds dataset.Dataset) float64 {
	if len(ds) == 0 {
		return 0
	}
	correct := 0
	for i, s := range ds {
		if predictions[i] == s.Label {
			correct++
		}
	}
	return float64(correct) / float64(len(ds))
}

// Evaluate predicts every sample of ds and returns the predictions with their accuracy.
func Evaluate(net nn.Module, ds dataset.Dataset) ([]int, float64) {
	predictions := Predict(net, ds)
	return predictions, Accuracy(predictions, ds)
}
