package advanced

import "github.com/pkg/errors"

// Threading errors through the hull algorithms would complicate code whose
// failure modes are all internal invariant violations. Instead we panic with
// a HullError, and the public API recovers and converts to an error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError(errors.Errorf(format, args...)))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
