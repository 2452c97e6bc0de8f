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
	"strconv"
	"strings"
)

// String renders v the way the REPL and error messages do: numbers as
// decimal digits, booleans as #t/#f, symbols as their name, () as "()",
// pairs splicing their elements the way spec.md §4.3 describes, and
// procedures as a stable name. Adapted from the teacher's
// scm.SerializeToString, rebuilt around real pairs instead of slices.
func (v Value) String() string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNil:
		b.WriteString("()")
	case KindNumber:
		b.WriteString(strconv.FormatInt(v.num, 10))
	case KindBoolean:
		if v.bval {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case KindSymbol:
		b.WriteString(v.sym)
	case KindPair:
		b.WriteByte('(')
		writeValue(b, v.pair.Head)
		writePairTail(b, v.pair.Tail)
		b.WriteByte(')')
	case KindProcedure:
		b.WriteString(v.proc.displayName())
	}
}

// writePairTail renders the remainder of a pair after its head: nothing
// if the tail is (), a splice of further elements if the tail is
// another pair, or " . <tail>" for a genuinely dotted tail.
func writePairTail(b *strings.Builder, tail Value) {
	switch tail.kind {
	case KindNil:
		return
	case KindPair:
		b.WriteByte(' ')
		writeValue(b, tail.pair.Head)
		writePairTail(b, tail.pair.Tail)
	default:
		b.WriteString(" . ")
		writeValue(b, tail)
	}
}
