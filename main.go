package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rhartert/microsat/parsers"
	"github.com/rhartert/microsat/sat"
)

var flagHelp = flag.Bool(
	"h",
	false,
	"print usage and exit",
)

var flagFile = flag.String(
	"f",
	"",
	"DIMACS CNF instance file",
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

const usage = `usage: microsat [-h] [-f] <file>

  -h, --help    print this message
  -f <file>     DIMACS CNF instance to solve (may also be given positionally)
`

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
}

func parseConfig() (*config, error) {
	flag.Usage = func() { fmt.Print(usage) }
	flag.Parse()

	if *flagHelp {
		fmt.Print(usage)
		os.Exit(0)
	}

	instanceFile := *flagFile
	if instanceFile == "" && flag.NArg() > 0 {
		instanceFile = flag.Arg(0)
	}
	if instanceFile == "" {
		fmt.Print(usage)
		return nil, fmt.Errorf("missing instance file")
	}

	return &config{
		instanceFile: instanceFile,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
	}, nil
}

func run(cfg *config) error {
	gzipped := strings.HasSuffix(cfg.instanceFile, ".gz")
	s, err := parsers.LoadDIMACS(cfg.instanceFile, gzipped)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	stats := s.Stats()
	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c mem_used:   %d\n", stats.MemUsed)
	fmt.Printf("c conflicts:  %d\n", stats.NConflicts)
	fmt.Printf("c lemmas:     %d\n", stats.NLemmas)

	switch status {
	case sat.True:
		fmt.Println("s SATISFIABLE")
		model := s.Model()
		vals := make([]string, len(model))
		for i, b := range model {
			if b {
				vals[i] = fmt.Sprintf("%d", i+1)
			} else {
				vals[i] = fmt.Sprintf("-%d", i+1)
			}
		}
		fmt.Println(strings.Join(vals, " "))
	case sat.False:
		fmt.Println("s UNSATISFIABLE")
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
