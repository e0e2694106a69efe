// Command ai2048 is an interactive terminal front-end: it reads one command per line from
// stdin and writes the grid and search results to stdout.
package main

import (
	"context"
	"flag"

	"github.com/herohde/ai2048/pkg/engine"
	"github.com/herohde/ai2048/pkg/engine/console"
	"github.com/seekerror/logw"
)

var (
	maxDepth       = flag.Uint("depth", 8, "maximum search depth")
	minProbability = flag.Float64("min-probability", 1e-4, "branch cutoff probability")
	seed           = flag.Int64("seed", 0, "random seed for tile spawns")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "ai2048",
		engine.WithSeed(*seed),
		engine.WithOptions(engine.Options{
			MaxDepth:       uint8(*maxDepth),
			MinProbability: float32(*minProbability),
		}))

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()

	logw.Exitf(ctx, "ai2048 exited")
}
