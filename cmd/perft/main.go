// Command perft is the engine's debugging and benchmarking driver: it runs
// chesscore.Perft from a FEN position to a given depth, or verifies an
// entire EPD/YAML regression suite and reports every mismatch (offending
// FEN, depth, expected vs. actual node count, non-zero exit).
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/BurntSushi/toml"
	logging "github.com/op/go-logging"

	"github.com/corvidchess/chesscore"
	"github.com/corvidchess/chesscore/epd"
	"github.com/corvidchess/chesscore/fen"
)

var log = logging.MustGetLogger("perft")

// runConfig is the optional TOML run-configuration file's shape. Flags
// always override whatever this file sets.
type runConfig struct {
	FEN            string `toml:"fen"`
	Depth          int    `toml:"depth"`
	EPDPath        string `toml:"epd_path"`
	SuitePath      string `toml:"suite_path"`
	StopOnMismatch bool   `toml:"stop_on_mismatch"`
}

func main() {
	configPath := flag.String("config", "", "Path to an optional TOML run-configuration file")
	depth := flag.Int("depth", 0, "Perft depth to search from -fen (0: use config or default 5)")
	fenStr := flag.String("fen", "", "FEN of the position to search (default: standard starting position)")
	epdPath := flag.String("epd", "", "Path to a perft regression EPD file to verify")
	suitePath := flag.String("suite", "", "Path to a perft regression suite.yaml file to verify")
	stopOnMismatch := flag.Bool("stop-on-mismatch", false, "Stop verifying a suite at the first mismatch")
	cpuprofile := flag.String("cpuprofile", "", "File to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "File to write a heap profile to")
	flag.Parse()

	initLogging()
	chesscore.InitCore()

	cfg := runConfig{Depth: 5}
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			log.Fatalf("reading config %s: %v", *configPath, err)
		}
	}
	if *fenStr != "" {
		cfg.FEN = *fenStr
	}
	if *depth != 0 {
		cfg.Depth = *depth
	}
	if *epdPath != "" {
		cfg.EPDPath = *epdPath
	}
	if *suitePath != "" {
		cfg.SuitePath = *suitePath
	}
	if *stopOnMismatch {
		cfg.StopOnMismatch = true
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("creating cpu profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("starting cpu profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	switch {
	case cfg.EPDPath != "":
		runSuite(readEPDFile(cfg.EPDPath), cfg.StopOnMismatch)
	case cfg.SuitePath != "":
		runSuite(readYAMLFile(cfg.SuitePath), cfg.StopOnMismatch)
	default:
		runSingle(cfg.FEN, cfg.Depth)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatalf("creating memory profile: %v", err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("writing memory profile: %v", err)
		}
	}
}

func initLogging() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
}

func readEPDFile(path string) []epd.Case {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening epd file %s: %v", path, err)
	}
	defer f.Close()

	cases, err := epd.ParseFile(f)
	if err != nil {
		log.Fatalf("parsing epd file %s: %v", path, err)
	}
	return cases
}

func readYAMLFile(path string) []epd.Case {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening suite file %s: %v", path, err)
	}
	defer f.Close()

	cases, err := epd.ParseYAML(f)
	if err != nil {
		log.Fatalf("parsing suite file %s: %v", path, err)
	}
	return cases
}

func runSuite(cases []epd.Case, stopOnMismatch bool) {
	log.Infof("verifying %d perft cases", len(cases))

	start := time.Now()
	var mismatches []epd.Mismatch
	for _, c := range cases {
		mismatches = append(mismatches, epd.Run([]epd.Case{c})...)
		if stopOnMismatch && len(mismatches) > 0 {
			break
		}
	}
	elapsed := time.Since(start)

	if len(mismatches) == 0 {
		log.Infof("all %d cases passed in %s", len(cases), elapsed)
		return
	}

	for _, m := range mismatches {
		fmt.Fprintln(os.Stderr, m.String())
		if stopOnMismatch {
			break
		}
	}
	log.Errorf("%d perft mismatch(es) found verifying %d cases", len(mismatches), len(cases))
	os.Exit(1)
}

func runSingle(fenStr string, depth int) {
	if fenStr == "" {
		fenStr = fen.StartPos
	}
	src, err := fen.Parse(fenStr)
	if err != nil {
		log.Fatalf("parsing fen %q: %v", fenStr, err)
	}
	pos := chesscore.NewPosition(src)

	start := time.Now()
	nodes := chesscore.Perft(depth, pos)
	elapsed := time.Since(start)

	log.Infof("fen=%q depth=%d nodes=%d elapsed=%s nps=%.0f",
		fenStr, depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}
