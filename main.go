package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bookerqa/booking-contract-tests/bookingtests"
	"github.com/bookerqa/booking-contract-tests/config"
	"github.com/bookerqa/booking-contract-tests/framework"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		os.Exit(1)
	}
	if params.serviceURL != "" {
		cfg.BaseURL = params.serviceURL
	}
	if params.timeoutSeconds > 0 {
		cfg.TimeoutSeconds = params.timeoutSeconds
	}

	seed := params.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("Running booking API conformance suite against %s (seed %d)\n\n", cfg.BaseURL, seed)
	framework.PrintFilterDescription(os.Stdout, params.filters)

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	warnings := framework.NewWarningLog()

	results := bookingtests.RunTestSuite(cfg, seed, params.filters.AsFilter, testLogger, warnings)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	framework.PrintWarningSummary(os.Stdout, warnings)
	if !results.OK() {
		os.Exit(1)
	}
}
