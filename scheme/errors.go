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

import (
	"fmt"
	"strings"
)

// SyntaxError reports ill-formed input: a lexical or structural defect,
// an arity violation on a special form, or more than one expression
// handed to Interpret in a single call.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return "Syntax error: " + e.Msg }

// NameError reports a lookup or set! against a name with no reachable
// binding.
type NameError struct {
	Name string
}

func (e *NameError) Error() string { return "Name error: unbound name " + e.Name }

// RuntimeError reports a type mismatch, an arity violation on an
// ordinary procedure, evaluation of (), an out-of-range index, division
// by zero, calling a non-procedure, or car/cdr of the empty list. Stack
// is the chain of combinations being applied at the moment it was
// raised, outermost first exactly as CallStack() returns it; Error()
// walks it back to front so the message reads innermost first — it
// lets a runtime error escaping from deep recursion report the calls
// that led to it rather than just the failing one.
type RuntimeError struct {
	Msg   string
	Stack []string
}

func (e *RuntimeError) Error() string {
	if len(e.Stack) == 0 {
		return "Runtime error: " + e.Msg
	}
	var b strings.Builder
	b.WriteString("Runtime error: ")
	b.WriteString(e.Msg)
	for i := len(e.Stack) - 1; i >= 0; i-- {
		b.WriteString(" in ")
		b.WriteString(e.Stack[i])
	}
	return b.String()
}

func syntaxErrorf(format string, a ...any) {
	panic(&SyntaxError{Msg: fmt.Sprintf(format, a...)})
}

func nameError(name string) {
	panic(&NameError{Name: name})
}

// runtimeErrorf captures the current call stack at the moment of the
// panic — by the time Engine.Interpret's recover() runs, the goroutine-
// local frames pushed by pushFrame have already unwound, so the stack
// must be read here, not at the recovery point.
func runtimeErrorf(format string, a ...any) {
	panic(&RuntimeError{Msg: fmt.Sprintf(format, a...), Stack: CallStack()})
}
