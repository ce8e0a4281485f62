// Package harness registers groups of test methods and runs them in
// registration order, reporting each test as passed, skipped, failed or
// crashed.
package harness

// Group is a family of related tests sharing one instance. The runner calls
// SetUp before and TearDown after every method of the group.
type Group interface {
	SetUp()
	TearDown()
}

// Case gives embedding group types no-op SetUp and TearDown hooks.
type Case struct{}

// SetUp does nothing.
func (Case) SetUp() {}

// TearDown does nothing.
func (Case) TearDown() {}
