package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name turns pointers into memorable readable names, which beats staring at
// hex addresses while tracing hull tasks. The memo table is never pruned,
// so this leaks on purpose; names are only generated on demand, so the cost
// is zero unless tracing is on.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so keep them nondeterministic
	// as a reminder that the same name never means the same thing across
	// runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
