/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scheme

import "github.com/jtolds/gls"

// callStackMgr tracks the chain of combinations currently being applied,
// goroutine-local, the same tool the teacher reaches for in scm.go's
// "parallel" special form (gls.Go propagating context into new
// goroutines). This interpreter is single-threaded per spec.md §5 — no
// operation spawns a goroutine — so gls.Go itself has nothing to do
// here; what's reused is gls's per-goroutine value stack, which turns
// out to be a convenient way to accumulate "evaluating (f ...) inside
// (g ...)" frames for runtime error messages without threading an
// explicit stack parameter through every call to Eval.
var callStackMgr = gls.NewContextManager()

const callStackKey = "goscheme-callstack"

// pushFrame runs fn with label appended to the current call stack,
// visible to CallStack for the duration of fn.
func pushFrame(label string, fn func()) {
	stack, _ := callStackMgr.GetValue(callStackKey)
	var frames []string
	if s, ok := stack.([]string); ok {
		frames = s
	}
	next := make([]string, len(frames)+1)
	copy(next, frames)
	next[len(frames)] = label
	callStackMgr.SetValues(gls.Values{callStackKey: next}, fn)
}

// CallStack returns the labels of the combinations currently being
// applied, outermost first. Read by runtimeErrorf to annotate a
// RuntimeError that escapes from deep recursion.
func CallStack() []string {
	if v, ok := callStackMgr.GetValue(callStackKey); ok {
		if frames, ok := v.([]string); ok {
			return frames
		}
	}
	return nil
}
