// descnote converts chess game transcripts written in English descriptive
// notation (P-K4, N-KB3, O-O) into modern notations, validating every move
// against a full rules engine along the way.
package main

import (
	"flag"
	"fmt"
	"os"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args)
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if opts.version {
		fmt.Printf("descnote version %s\n", programVersion)
		return 0
	}

	cfg := opts.cfg
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFile, err)
			return 1
		}
		defer file.Close()
		cfg.Output = file
	}

	p := &processor{cfg: cfg}
	var converted, failed int

	if len(opts.files) == 0 {
		converted, failed = p.processReader("stdin", os.Stdin)
	} else {
		for _, filename := range opts.files {
			file, err := os.Open(filename)
			if err != nil {
				fmt.Fprintf(cfg.LogWriter, "Error opening file %s: %v\n", filename, err)
				failed++
				continue
			}
			c, f := p.processReader(filename, file)
			converted += c
			failed += f
			file.Close()
		}
	}

	cfg.Logf("%d game(s) converted, %d failed.\n", converted, failed)
	if failed > 0 {
		return 1
	}
	return 0
}
