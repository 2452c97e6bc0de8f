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

// Kind tags the alternatives of the runtime value union. Operations that
// need shape discrimination switch on Kind rather than relying on
// virtual dispatch, the same discipline the teacher's Scmer keeps (there
// via a packed aux tag; here via a plain field, since nothing in this
// interpreter is hot enough to justify unsafe tricks).
type Kind uint8

const (
	KindNil Kind = iota
	KindNumber
	KindBoolean
	KindSymbol
	KindPair
	KindProcedure
)

// Value is the tagged runtime value: Number | Boolean | Symbol | Pair |
// Procedure, plus the singleton empty list. Only one payload field is
// meaningful at a time, selected by kind.
type Value struct {
	kind Kind
	num  int64
	bval bool
	sym  string
	pair *Pair
	proc *Procedure
}

// Pair is the mutable two-slot cons cell. A Pair may be referenced from
// many positions; set-car!/set-cdr! mutate it in place, so mutation
// through any reference is observable through every other reference to
// the same *Pair.
type Pair struct {
	Head Value
	Tail Value
}

// Nil is the sole canonical empty list.
func Nil() Value { return Value{kind: KindNil} }

// Number constructs an immutable integer value.
func Number(n int64) Value { return Value{kind: KindNumber, num: n} }

// Boolean constructs one of the two boolean singletons.
func Boolean(b bool) Value { return Value{kind: KindBoolean, bval: b} }

// Sym constructs an immutable symbol value.
func Sym(name string) Value { return Value{kind: KindSymbol, sym: name} }

// Cons allocates a new mutable pair.
func Cons(head, tail Value) Value { return Value{kind: KindPair, pair: &Pair{Head: head, Tail: tail}} }

var (
	True  = Boolean(true)
	False = Boolean(false)
)

func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the empty list.
func (v Value) IsNil() bool { return v.kind == KindNil }

// IsPair reports whether v is a non-empty pair (pair? in the language).
func (v Value) IsPair() bool { return v.kind == KindPair }

// IsTruthy implements the language's truthiness rule: only #f is false,
// everything else (including 0 and ()) is true.
func (v Value) IsTruthy() bool {
	return !(v.kind == KindBoolean && !v.bval)
}

// IsProperList reports whether v is () or a chain of pairs terminating
// in (). A dotted (improper) list answers false.
func (v Value) IsProperList() bool {
	for {
		switch v.kind {
		case KindNil:
			return true
		case KindPair:
			v = v.pair.Tail
		default:
			return false
		}
	}
}

// symbolName extracts a symbol's name, reporting whether v was a symbol.
func symbolName(v Value) (string, bool) {
	if v.kind != KindSymbol {
		return "", false
	}
	return v.sym, true
}

// List builds a proper list from vals, right-folding so the last
// element's tail is ().
func List(vals ...Value) Value {
	result := Nil()
	for i := len(vals) - 1; i >= 0; i-- {
		result = Cons(vals[i], result)
	}
	return result
}

// flattenArgs walks the tail links of v and returns an ordered, finite
// sequence of values: each pair along the way contributes its Head; a
// final non-pair, non-nil tail is appended as the last element, so
// (a b . c) flattens to [a, b, c]. This is where list-ref's dotted-list
// quirk comes from: flattening an improper tail in this way is exactly
// what makes (list-ref '(1 . 2) 1) return 2. list-tail does not use it;
// it walks the Tail links directly.
func flattenArgs(v Value) []Value {
	var out []Value
	for {
		switch v.kind {
		case KindNil:
			return out
		case KindPair:
			out = append(out, v.pair.Head)
			v = v.pair.Tail
		default:
			out = append(out, v)
			return out
		}
	}
}
