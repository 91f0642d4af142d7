package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bookerqa/booking-contract-tests/framework"
)

type commandParams struct {
	serviceURL     string
	timeoutSeconds int
	seed           int64
	filters        framework.RegexFilters
	debug          bool
	debugAll       bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", "", "base URL of the booking service (overrides configuration)")
	fs.IntVar(&c.timeoutSeconds, "timeout", 0, "per-request timeout in seconds (overrides configuration)")
	fs.Int64Var(&c.seed, "seed", 0, "seed for generated test data (0 means derive from the clock)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}
