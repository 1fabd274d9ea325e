// Command pathbench checks the shortest-path stack on known fixtures, then
// times a point-to-point search over a large random planar graph.
//
// Usage:
//
//	pathbench [--nodes N] [--arcs M] [--seed S] [--degree D] [--loglevel L] [--skip-selfcheck]
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/digraph"
	"github.com/katalvlaran/lvpath/dijkstra"
)

var log = logging.MustGetLogger("pathbench")

var stdoutLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{level}] %{message}`,
)

// Options are the command-line flags.
type Options struct {
	Nodes         int    `short:"n" long:"nodes" default:"20000" description:"number of nodes in the random graph"`
	Arcs          int    `short:"a" long:"arcs" default:"180000" description:"number of random arc draws"`
	Seed          int64  `short:"s" long:"seed" description:"random seed (0 picks one from the clock)"`
	Degree        int    `short:"d" long:"degree" default:"4" description:"fan-out of the open-set heap"`
	LogLevel      string `short:"l" long:"loglevel" default:"info" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	SkipSelfCheck bool   `long:"skip-selfcheck" description:"skip the fixture checks before the benchmark"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	setupLogging(opts.LogLevel)
	if err := run(opts); err != nil {
		log.Critical(err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	backendStdout := logging.NewLogBackend(os.Stdout, "", 0)
	logging.SetBackend(logging.NewBackendFormatter(backendStdout, stdoutLogFormat))

	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl = logging.INFO
	}
	logging.SetLevel(lvl, "")
}

// run executes the self-checks and the timed search.
func run(opts Options) error {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	log.Noticef("Seed: %d", opts.Seed)

	if !opts.SkipSelfCheck {
		if err := selfCheck(); err != nil {
			return fmt.Errorf("self-check failed: %w", err)
		}
		log.Info("Self-check passed.")
	}

	start := time.Now()
	g, err := builder.RandomGraph(opts.Nodes, opts.Arcs, builder.WithSeed(opts.Seed))
	if err != nil {
		return err
	}
	log.Infof("Built the graph (%d nodes, %d arcs) in %s.", len(g.Nodes), g.ArcCount(), time.Since(start))

	rng := newRand(opts.Seed)
	source, target := g.Choose(rng), g.Choose(rng)
	log.Infof("Source: %s", source)
	log.Infof("Target: %s", target)

	start = time.Now()
	res, err := dijkstra.Search(source, target, g.Weights, digraph.NodeHasher{},
		dijkstra.WithDegree[*digraph.Node](opts.Degree))
	if err != nil {
		return err
	}
	log.Infof("Dijkstra's algorithm in %s.", time.Since(start))
	log.Debugf("Stats: %+v", res.Stats)

	if !res.Found {
		reach, err := bfs.BFS(source, digraph.NodeHasher{})
		if err != nil {
			return err
		}
		if hops, ok := reach.Depth.Get(target); ok {
			return fmt.Errorf("search missed %s, reachable in %d hops", target, hops)
		}
		log.Warningf("Target is unreachable from source (%d nodes reachable).", len(reach.Order))

		return nil
	}

	log.Info("Path:")
	for _, n := range res.Path {
		log.Info(n.String())
	}
	log.Infof("Path is a valid path: %t", digraph.IsValidPath(res.Path))
	cost, err := digraph.PathCost(res.Path, g.Weights)
	if err != nil {
		return err
	}
	log.Infof("Path cost: %f", cost)

	return nil
}

// newRand derives the endpoint-picking stream from the graph seed.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed ^ 0x5eed))
}
