// Command bnn evaluates small sigmoid feed-forward networks.
//
// To run the built-in example network: `go run ./cmd/bnn demo`
//
// To check a topology: `go run ./cmd/bnn shape --inputs=3 --outputs=1 --hidden=4,5 --learning-rate=0.1`
//
// To run a constant-weight network: `go run ./cmd/bnn forward --inputs=2 --outputs=2 --hidden=3 --weight=0.1 --input=1,2`
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&DemoCommand{}, "")
	subcommands.Register(&ForwardCommand{}, "")
	subcommands.Register(&ShapeCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
