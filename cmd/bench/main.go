// Command bench drives internal/bench from the command line, printing
// total nodes and nodes/sec the way the teacher's own bench tool does.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/halvorsen/negafish/internal/bench"
	"github.com/halvorsen/negafish/internal/logging"
)

var depth = flag.Int("depth", 5, "depth to search to")

func main() {
	flag.Parse()

	lg := logging.New()
	defer lg.Sync()

	res, err := bench.Run(context.Background(), *depth, lg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("nodes %d\n", res.Nodes)
	fmt.Printf("  nps %.0f\n", res.NodesPerSecond())
}
