// Package suitekittest provides a contract test suite for suitekit.Lifecycle
// implementations.
//
// Each contract defines a small suite on the harness under test, runs it, and
// checks what the helpers observed:
//
//	func TestContracts(t *testing.T) {
//	    suitekittest.Verify(t, func(tb testing.TB) suitekittest.Harness { return myrunner.New(tb) })
//	}
package suitekittest

// AllContracts returns all test cases for the contract test suite.
func AllContracts() []TestCase {
	const initialCapacity = 20

	contracts := make([]TestCase, 0, initialCapacity)

	contracts = append(contracts, lazyContracts()...)
	contracts = append(contracts, freshContracts()...)
	contracts = append(contracts, varyContracts()...)
	contracts = append(contracts, errorContracts()...)

	return contracts
}
