package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/ahmedtd/bnn/toolbox"
	"github.com/google/subcommands"
)

type DemoCommand struct {
	in inputFlags
}

var _ subcommands.Command = (*DemoCommand)(nil)

func (*DemoCommand) Name() string {
	return "demo"
}

func (*DemoCommand) Synopsis() string {
	return "Run the built-in 2-2-2 example network"
}

func (*DemoCommand) Usage() string {
	return ``
}

func (c *DemoCommand) SetFlags(f *flag.FlagSet) {
	c.in.SetFlags(f, "0.05,0.10")
}

func (c *DemoCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *DemoCommand) executeErr(ctx context.Context) error {
	x, err := c.in.load()
	if err != nil {
		return err
	}

	out, err := runDemo(x)
	if err != nil {
		return err
	}

	log.Printf("Output: %v", out)
	return nil
}

// makeDemoNetwork builds the 2-[2]-2 example network with hand-set weights.
func makeDemoNetwork() (*toolbox.Network, error) {
	net, err := toolbox.MakeNetwork(2, 2, []int{2}, 0.01)
	if err != nil {
		return nil, fmt.Errorf("while creating network: %w", err)
	}

	net.Layers[0].W = toolbox.AF32FromRows(
		[]float32{0.15, 0.20},
		[]float32{0.25, 0.30},
	)
	net.Layers[0].Bias = 0.35

	net.Layers[1].W = toolbox.AF32FromRows(
		[]float32{0.40, 0.45},
		[]float32{0.50, 0.55},
	)
	net.Layers[1].Bias = 0.60

	return net, nil
}

func runDemo(x []float32) ([]float32, error) {
	net, err := makeDemoNetwork()
	if err != nil {
		return nil, err
	}
	if err := checkInputSize(net, x); err != nil {
		return nil, err
	}
	return net.Apply(x), nil
}

func checkInputSize(net *toolbox.Network, x []float32) error {
	if len(x) != net.InputSize {
		return fmt.Errorf("input has %d features, network expects %d", len(x), net.InputSize)
	}
	return nil
}
