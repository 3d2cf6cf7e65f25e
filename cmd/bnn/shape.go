package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ahmedtd/bnn/toolbox"
	"github.com/google/subcommands"
)

type ShapeCommand struct {
	topology topologyFlags
}

var _ subcommands.Command = (*ShapeCommand)(nil)

func (*ShapeCommand) Name() string {
	return "shape"
}

func (*ShapeCommand) Synopsis() string {
	return "Validate a topology and print each layer's weight shape"
}

func (*ShapeCommand) Usage() string {
	return ``
}

func (c *ShapeCommand) SetFlags(f *flag.FlagSet) {
	c.topology.SetFlags(f)
}

func (c *ShapeCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx, os.Stdout); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *ShapeCommand) executeErr(ctx context.Context, w io.Writer) error {
	net, err := toolbox.MakeNetwork(c.topology.inputs, c.topology.outputs, c.topology.hidden, float32(c.topology.learningRate))
	if err != nil {
		return fmt.Errorf("while creating network: %w", err)
	}

	for l, shape := range net.Shapes() {
		kind := "hidden"
		if l == len(net.Layers)-1 {
			kind = "output"
		}
		if _, err := fmt.Fprintf(w, "layer %d (%s): weights %dx%d\n", l, kind, shape[0], shape[1]); err != nil {
			return fmt.Errorf("while writing layer %d: %w", l, err)
		}
	}

	return nil
}
