package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/hull/dbg"
)

// Tracing for the quickhull task stack. Off by default; flip this on when
// debugging a partition gone wrong and each task gets a readable name and a
// line per expansion.
var TraceQuickHull = false

func (t *quickHullTask) dbgName() string {
	name := dbg.Name(t)
	if t.emit {
		return aurora.Cyan(name).String()
	}
	if len(t.subset) == 0 {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func (t *quickHullTask) trace(farthest Point) {
	if !TraceQuickHull {
		return
	}
	fmt.Printf("%s: %d points between (%v, %v) and (%v, %v), farthest (%v, %v)\n",
		t.dbgName(), len(t.subset), t.p.X, t.p.Y, t.q.X, t.q.Y, farthest.X, farthest.Y)
}
