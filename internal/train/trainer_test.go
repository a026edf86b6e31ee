package train

import (
	"bytes"
	"testing"

	"github.com/born-ml/nnets/internal/dataset"
	"github.com/born-ml/nnets/internal/nn"
	"github.com/born-ml/nnets/internal/optim"
	"github.com/born-ml/nnets/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separable returns n points in [0,1)² labelled 1 when x0 > x1.
func separable(n int, seed uint64) dataset.Dataset {
	rng := random.New(seed)
	ds := make(dataset.Dataset, n)
	for i := range ds {
		x := make([]float64, 2)
		rng.GenerateUniform(x, 0, 1)
		label := 0
		if x[0] > x[1] {
			label = 1
		}
		ds[i] = dataset.Sample{Input: x, Label: label}
	}
	return ds
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Epochs = 40
	cfg.BatchSize = 10
	cfg.LearningRate = 0.1
	cfg.LRDecay = 1
	cfg.Optimizer = OptimizerSGD
	cfg.ValidationFraction = 0.2
	cfg.Seed = 17
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 20, cfg.Epochs)
	assert.Equal(t, 200, cfg.BatchSize)
	assert.Equal(t, 1e-4, cfg.LearningRate)
	assert.Equal(t, 0.95, cfg.LRDecay)
	assert.Equal(t, OptimizerRMSProp, cfg.Optimizer)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"epochs", func(c *Config) { c.Epochs = 0 }},
		{"batch", func(c *Config) { c.BatchSize = -1 }},
		{"validation", func(c *Config) { c.ValidationFraction = 1 }},
		{"decay", func(c *Config) { c.LRDecay = 0 }},
		{"learning rate", func(c *Config) { c.LearningRate = 0 }},
		{"smoothing", func(c *Config) { c.SmoothingTerm = -1 }},
		{"smoothing zero", func(c *Config) { c.SmoothingTerm = 0 }},
		{"history", func(c *Config) { c.HistoryInfluence = 1 }},
		{"optimizer", func(c *Config) { c.Optimizer = "adagrad" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())

			_, err := New(cfg, nil)
			assert.Error(t, err)
		})
	}
}

func TestConfig_NewOptimizer(t *testing.T) {
	cfg := DefaultConfig()
	o, err := cfg.NewOptimizer()
	require.NoError(t, err)
	assert.IsType(t, &optim.RMSProp{}, o)

	cfg.Optimizer = OptimizerSGD
	o, err = cfg.NewOptimizer()
	require.NoError(t, err)
	assert.IsType(t, &optim.SGD{}, o)
	assert.Equal(t, cfg.LearningRate, o.GetLR())

	cfg.Optimizer = "nope"
	_, err = cfg.NewOptimizer()
	assert.ErrorIs(t, err, optim.ErrUnknownOptimizer)

	cfg.Optimizer = OptimizerRMSProp
	cfg.SmoothingTerm = 0
	_, err = cfg.NewOptimizer()
	assert.ErrorIs(t, err, optim.ErrInvalidSmoothingTerm)
}

func TestConfig_NewOptimizerKeepsZeroHistoryInfluence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistoryInfluence = 0
	require.NoError(t, cfg.Validate())

	o, err := cfg.NewOptimizer()
	require.NoError(t, err)

	layer := nn.NewFullyConnected(1, 1, nn.Identity{})
	layer.Forward([]float64{1})
	layer.Backward([]float64{2})
	o.Step(layer)

	// With no history the first step is lr·g/|g|.
	assert.InDelta(t, -cfg.LearningRate, layer.Weights()[0], 1e-12)
}

func TestFit_LearnsSeparableData(t *testing.T) {
	cfg := smallConfig()
	var out bytes.Buffer
	trainer, err := New(cfg, &out)
	require.NoError(t, err)

	net := nn.NewSequence(
		nn.NewFullyConnected(2, 8, nn.Tanh{}),
		nn.NewFullyConnected(8, 2, nn.LogisticSigmoid{}),
	)
	net.InitWeights(trainer.Random())

	ds := separable(300, 3)
	history, err := trainer.Fit(net, ds)
	require.NoError(t, err)
	require.Len(t, history, cfg.Epochs)

	assert.Less(t, history[len(history)-1].Loss, history[0].Loss)
	_, acc := Evaluate(net, ds)
	assert.Greater(t, acc, 0.8)

	assert.Contains(t, out.String(), "train_size=240 validation_size=60 num_categories=2")
	assert.Contains(t, out.String(), "epoch=0 batch=0 batch_error=")
	assert.Contains(t, out.String(), "success_rate=")
}

func TestFit_DecaysLearningRate(t *testing.T) {
	cfg := smallConfig()
	cfg.Epochs = 3
	cfg.LRDecay = 0.5
	cfg.Optimizer = OptimizerRMSProp
	trainer, err := New(cfg, nil)
	require.NoError(t, err)

	net := NewClassifier(2, 2, 4)
	net.InitWeights(trainer.Random())

	history, err := trainer.Fit(net, separable(50, 1))
	require.NoError(t, err)

	require.Len(t, history, 3)
	assert.InDelta(t, 0.1, history[0].LearningRate, 1e-12)
	assert.InDelta(t, 0.05, history[1].LearningRate, 1e-12)
	assert.InDelta(t, 0.025, history[2].LearningRate, 1e-12)
}

func TestFit_Deterministic(t *testing.T) {
	run := func() History {
		cfg := smallConfig()
		cfg.Epochs = 3
		trainer, err := New(cfg, nil)
		require.NoError(t, err)
		net := NewClassifier(2, 2, 5)
		net.InitWeights(trainer.Random())
		h, err := trainer.Fit(net, separable(60, 9))
		require.NoError(t, err)
		return h
	}
	assert.Equal(t, run(), run())
}

func TestFit_Errors(t *testing.T) {
	trainer, err := New(smallConfig(), nil)
	require.NoError(t, err)

	_, err = trainer.Fit(NewClassifier(2, 2, 3), nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	// Three outputs for a two-category dataset.
	_, err = trainer.Fit(NewClassifier(2, 3, 3), separable(20, 2))
	assert.ErrorIs(t, err, ErrOutputSize)
}

func TestNewClassifier(t *testing.T) {
	net := NewClassifier(784, 10)
	require.Equal(t, 4, net.Len())

	first := net.Module(0).(*nn.FullyConnected[nn.ReLU])
	last := net.Module(3).(*nn.FullyConnected[nn.ReLU])
	assert.Equal(t, 784, first.InputSize())
	assert.Equal(t, 300, first.OutputSize())
	assert.Equal(t, 100, last.InputSize())
	assert.Equal(t, 10, last.OutputSize())

	net = NewClassifier(4, 3, 6)
	assert.Equal(t, 2, net.Len())
}

func TestPredictAndAccuracy(t *testing.T) {
	// Output = input, so the prediction is the index of the larger coordinate.
	layer := nn.NewFullyConnected(2, 2, nn.Identity{})
	copy(layer.Weights(), []float64{1, 0, 0, 1})

	ds := dataset.Dataset{
		{Input: []float64{1, 0}, Label: 0},
		{Input: []float64{0, 1}, Label: 1},
		{Input: []float64{0.2, 0.9}, Label: 0},
		{Input: []float64{3, 2}, Label: 0},
	}

	predictions, acc := Evaluate(layer, ds)
	assert.Equal(t, []int{0, 1, 1, 0}, predictions)
	assert.InDelta(t, 0.75, acc, 1e-12)
	assert.Zero(t, Accuracy(nil, nil))
}
