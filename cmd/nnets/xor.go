package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/nnets/internal/models"
	"github.com/born-ml/nnets/internal/optim"
	"github.com/born-ml/nnets/internal/random"
)

var xorSamples = []struct {
	input    []float64
	expected float64
}{
	{[]float64{0, 0}, 0},
	{[]float64{0, 1}, 1},
	{[]float64{1, 0}, 1},
	{[]float64{1, 1}, 0},
}

func runXor(args []string, out io.Writer) {
	fs := flag.NewFlagSet("xor", flag.ExitOnError)
	train := fs.Bool("train", false, "Train a sigmoid network instead of using known weights")
	epochs := fs.Int("epochs", 10000, "Number of training epochs")
	lr := fs.Float64("lr", 0.5, "Learning rate for gradient descent")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time based)")
	verbose := fs.Bool("v", false, "Print the error of every epoch")
	_ = fs.Parse(args)

	net := models.NewXorNet()

	if !*train {
		net.SetCorrectWeights()
		for _, s := range xorSamples {
			net.Forward(s.input)
			fmt.Fprintf(out, "x0=%g x1=%g y=%g\n", s.input[0], s.input[1], net.Output()[0])
		}
		return
	}

	if *seed == 0 {
		*seed = timeSeed()
	}
	net.InitWeights(random.New(*seed))
	optimizer := optim.NewSGD(optim.SGDConfig{LR: *lr})

	grad := make([]float64, 1)
	for epoch := 0; epoch < *epochs; epoch++ {
		var loss float64

		optimizer.ZeroGrad(net)
		for _, s := range xorSamples {
			net.Forward(s.input)
			grad[0] = net.Output()[0] - s.expected
			loss += 0.5 * grad[0] * grad[0]
			net.Backward(grad)
		}
		optimizer.Step(net)

		if *verbose || epoch == *epochs-1 {
			fmt.Fprintf(out, "epoch=%d; error=%g\n", epoch, loss)
		}
	}

	// Evaluate slightly off the training points.
	input := make([]float64, 2)
	for _, s := range xorSamples {
		input[0] = s.input[0] + 0.1
		input[1] = s.input[1] - 0.1
		net.Forward(input)
		fmt.Fprintf(out, "x0=%g x1=%g y=%g\n", input[0], input[1], net.Output()[0])
	}
	fmt.Fprintf(os.Stderr, "seed=%d\n", *seed)
}
