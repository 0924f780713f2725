// Command negafish is a minimal UCI-like line-protocol front end over
// the facade package. It is intentionally thin: the engineering budget
// goes into engine/eval/search/perft, not the protocol shell.
package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"

	"github.com/halvorsen/negafish/internal/config"
	"github.com/halvorsen/negafish/internal/logging"
)

var (
	buildVersion = "(devel)"
	buildTime    = "(just now)"
)

func main() {
	fmt.Printf("negafish %s, built with %s at %s, running on %s\n",
		buildVersion, runtime.Version(), buildTime, runtime.GOARCH)

	log := logging.New()
	defer log.Sync()

	cfg, err := config.Load("negafish.toml")
	if err != nil {
		log.Errorf("%v", err)
		cfg = config.Default()
	}

	u := newUCI(cfg, log)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if err := u.execute(line); err != nil {
			if err == errQuit {
				break
			}
			log.Errorf("line %q: %v", line, err)
		}
	}
}
