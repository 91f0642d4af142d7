// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of tests.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Tests can be selected or excluded with regex filters.
//
// 2. Each test can write debug output to a capturing logger; the output is attached to
// the test's result and can be dumped to the console on failure.
//
// 3. A shared warning log collects severity-tagged observations about the service under
// test, keyed by the name of the test that noticed them. Observations are not failures:
// they describe behavior the harness faithfully reports but does not judge.
//
// The domain-specific code that knows what is being tested is responsible for issuing
// the actual requests and providing a domain-specific test API on top of the test context.
package framework
