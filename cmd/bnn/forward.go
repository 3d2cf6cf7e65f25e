package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/ahmedtd/bnn/toolbox"
	"github.com/google/subcommands"
)

type ForwardCommand struct {
	topology topologyFlags
	in       inputFlags

	weight float64
	bias   float64
}

var _ subcommands.Command = (*ForwardCommand)(nil)

func (*ForwardCommand) Name() string {
	return "forward"
}

func (*ForwardCommand) Synopsis() string {
	return "Run one input through a network with constant weights"
}

func (*ForwardCommand) Usage() string {
	return ``
}

func (c *ForwardCommand) SetFlags(f *flag.FlagSet) {
	c.topology.SetFlags(f)
	c.in.SetFlags(f, "")
	f.Float64Var(&c.weight, "weight", 0, "Value assigned to every weight")
	f.Float64Var(&c.bias, "bias", 0, "Value assigned to every layer bias")
}

func (c *ForwardCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *ForwardCommand) executeErr(ctx context.Context) error {
	x, err := c.in.load()
	if err != nil {
		return err
	}

	out, err := c.run(x)
	if err != nil {
		return err
	}

	log.Printf("Output: %v", out)
	return nil
}

func (c *ForwardCommand) run(x []float32) ([]float32, error) {
	net, err := toolbox.MakeNetwork(c.topology.inputs, c.topology.outputs, c.topology.hidden, float32(c.topology.learningRate))
	if err != nil {
		return nil, fmt.Errorf("while creating network: %w", err)
	}

	for l := 0; l < len(net.Layers); l++ {
		net.Layers[l].W.Fill(float32(c.weight))
		net.Layers[l].Bias = float32(c.bias)
	}

	if err := checkInputSize(net, x); err != nil {
		return nil, err
	}

	return net.Apply(x), nil
}
