package suitekit

import (
	"fmt"
	"regexp"
)

// verb matches a fmt verb with optional flags, width and precision. A space
// flag is not accepted, so "100% coverage" is not a template.
var verb = regexp.MustCompile(`%[-+#0]*[0-9]*(\.[0-9]+)?[vTtbcdoOqxXUeEfFgGsp]`)

// Each defines one grouping per value. name is a fmt template when it contains
// a verb ("with %v"); otherwise the value is appended to it.
func Each[V any](lc Lifecycle, values []V, name string, body func(v V)) {
	for _, v := range values {
		lc.Group(GroupName(name, v), func() { body(v) })
	}
}

// GroupName renders the grouping name Each uses for v. A name without a verb,
// including one with a bare %, is used literally.
func GroupName(name string, v any) string {
	if verb.MatchString(name) {
		return fmt.Sprintf(name, v)
	}

	if name == "" {
		return fmt.Sprint(v)
	}

	return name + " " + fmt.Sprint(v)
}
