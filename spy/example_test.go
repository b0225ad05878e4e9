package spy_test

import (
	"fmt"

	"github.com/ruffel/suitekit/spy"
)

func ExampleSpy() {
	s := spy.New().Return("cached")

	out := s.Call("users", 42)
	s.Call("orders")

	fmt.Println(out.String(0))
	fmt.Println(s.CallCount(), s.LastCall())

	s.Reset()
	fmt.Println(s.Called())
	// Output:
	// cached
	// 2 [orders]
	// false
}
