// flags.go - command-line flag definitions and config assembly
package main

import (
	"flag"
	"fmt"

	"github.com/tmorten/descnote-go/internal/config"
)

// cliOptions is the parsed command line: the assembled config plus the
// positional input files.
type cliOptions struct {
	cfg     *config.Config
	files   []string
	version bool
}

// parseFlags builds the run configuration from args. A -c config file is
// loaded first; flags given on the command line override it.
func parseFlags(args []string) (*cliOptions, error) {
	cfg := config.NewDefault()
	fs := flag.NewFlagSet("descnote", flag.ContinueOnError)

	configFile := fs.String("c", "", "YAML config file")
	outputFile := fs.String("o", "", "output file (default: stdout)")
	format := fs.String("W", string(cfg.Format), "output format: uci, halg, desc")
	checks := fs.Bool("checks", false, "recompute and append + and # markers")
	quiet := fs.Bool("quiet", false, "suppress progress logging")
	workers := fs.Int("workers", cfg.Workers, "games converted in parallel")
	version := fs.Bool("version", false, "print version and exit")

	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			return nil, err
		}
	}

	// Only flags the user actually set override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.OutputFile = *outputFile
		case "W":
			cfg.Format = config.Format(*format)
		case "checks":
			cfg.Checks = *checks
		case "quiet":
			cfg.Quiet = *quiet
		case "workers":
			cfg.Workers = *workers
		}
	})

	return &cliOptions{cfg: cfg, files: fs.Args(), version: *version}, nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: descnote [options] [input-files...]\n\n")
	fmt.Fprintf(w, "Converts descriptive-notation game transcripts to modern notation.\n")
	fmt.Fprintf(w, "Reads stdin when no input files are given.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nOutput formats (-W):\n")
	fmt.Fprintf(w, "  uci    Coordinate moves (e2e4, e7e8q) (default)\n")
	fmt.Fprintf(w, "  halg   Hyphenated long algebraic (Ng1-f3, e4xd5)\n")
	fmt.Fprintf(w, "  desc   Descriptive notation round trip (N-KB3)\n")
}
