package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable keys into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a
// problem unless you're actually using it. This is helpful for turning
// triangle or vertex indices into something more easily distinguishable when
// debugging a triangulation.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
