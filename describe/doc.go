// Package describe adapts testcase.Spec to suitekit.Lifecycle, so Lazy, Fresh
// and Vary handles can be declared in nested groupings.
//
// A Suite is defined first and run afterwards:
//
//	func TestCart(t *testing.T) {
//	    s := describe.New(t)
//	    cart := suitekit.NewLazy(s, suitekit.Func(NewCart))
//	    items := suitekit.NewVary(s, 1)
//
//	    s.Describe("checkout", func() {
//	        items.Set(3)
//	        s.It("charges every item", func(t testing.TB) {
//	            ...
//	        })
//	    })
//
//	    s.Run()
//	}
//
// Groupings become testcase contexts. Before-each hooks run outermost first,
// after-each hooks run in reverse order of attachment, innermost grouping first,
// and they run even when a test stops early with t.FailNow or t.SkipNow.
//
// testcase may shuffle test order (see its TESTCASE_ORDERING setting), so
// tests must not depend on each other.
//
// # Environment
//
// SUITEKIT_LOG_LEVEL enables zerolog tracing of hooks into the test log, and
// SUITEKIT_FOCUS restricts the suite to tests whose full name contains one of
// its shell-quoted terms.
package describe
