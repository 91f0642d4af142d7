package bookingtests

import (
	"github.com/bookerqa/booking-contract-tests/config"
	"github.com/bookerqa/booking-contract-tests/framework"
)

// RunTestSuite runs the full booking conformance suite against the configured
// service. The warning log accumulates the run's observations; the caller prints its
// summary afterwards.
func RunTestSuite(
	cfg config.Config,
	seed int64,
	filter framework.Filter,
	testLogger framework.TestLogger,
	warnings *framework.WarningLog,
) framework.Results {
	suite := &suiteConfig{cfg: cfg, seed: seed}

	return framework.Run(filter, testLogger, warnings, func(c *framework.Context) {
		t := newTestScope(c, suite)
		defer t.close()

		t.Run("liveness", DoLivenessTests)
		t.Run("authentication", DoAuthTests)
		t.Run("booking CRUD", DoBookingCRUDTests)
		t.Run("filtering", DoFilteringTests)
		t.Run("data validation", DoDataValidationTests)
		t.Run("error handling", DoErrorHandlingTests)
		t.Run("end-to-end scenarios", DoScenarioTests)
	})
}
