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

// installPairsAndLists declares cons, car, cdr, list, list-ref,
// list-tail, set-car!, and set-cdr! — the mutable-pair library of
// spec.md §4.6. None of these are special forms: each evaluates every
// operand it uses, left to right, same as the teacher's cons/car/cdr in
// scm/list.go, just against real *Pair cells instead of memcp's
// []Scmer slices (memcp's scripting dialect represents lists as slices
// and has no mutable cons cell at all, so set-car!/set-cdr! and the
// sharing semantics spec.md §3 requires have no teacher counterpart to
// adapt from one-for-one; the Declare-based registration style is kept,
// the data structure underneath is rebuilt from spec.md directly).
func installPairsAndLists(root *Env) {
	declare(root, Declaration{
		Name: "cons", Desc: "constructs a new pair from a head and a tail",
		MinArgs: 2, MaxArgs: 2,
		Fn: func(args []Value, env *Env) Value {
			return Cons(Eval(args[0], env), Eval(args[1], env))
		},
	})

	declare(root, Declaration{
		Name: "car", Desc: "returns the head of a non-empty pair",
		MinArgs: 1, MaxArgs: 1,
		Fn: func(args []Value, env *Env) Value {
			v := Eval(args[0], env)
			if v.kind != KindPair {
				runtimeErrorf("car: expected a pair, got %s", v.String())
			}
			return v.pair.Head
		},
	})

	declare(root, Declaration{
		Name: "cdr", Desc: "returns the tail of a non-empty pair",
		MinArgs: 1, MaxArgs: 1,
		Fn: func(args []Value, env *Env) Value {
			v := Eval(args[0], env)
			if v.kind != KindPair {
				runtimeErrorf("cdr: expected a pair, got %s", v.String())
			}
			return v.pair.Tail
		},
	})

	declare(root, Declaration{
		Name: "list", Desc: "constructs a proper list from its arguments",
		MinArgs: 0, MaxArgs: -1,
		Fn: func(args []Value, env *Env) Value {
			vals := make([]Value, len(args))
			for i, a := range args {
				vals[i] = Eval(a, env)
			}
			return List(vals...)
		},
	})

	declare(root, Declaration{
		Name: "list-ref", Desc: "returns the element at the given index",
		MinArgs: 2, MaxArgs: 2,
		Fn: func(args []Value, env *Env) Value {
			items := flattenArgs(Eval(args[0], env))
			idx := requireIndex("list-ref", Eval(args[1], env))
			if idx < 0 || idx >= int64(len(items)) {
				runtimeErrorf("list-ref: index %d out of range", idx)
			}
			return items[idx]
		},
	})

	declare(root, Declaration{
		Name: "list-tail", Desc: "drops the given number of elements from the front of a list",
		MinArgs: 2, MaxArgs: 2,
		Fn: func(args []Value, env *Env) Value {
			cur := Eval(args[0], env)
			n := requireIndex("list-tail", Eval(args[1], env))
			for n > 0 {
				if cur.kind != KindPair {
					runtimeErrorf("list-tail: index out of range")
				}
				cur = cur.pair.Tail
				n--
			}
			return cur
		},
	})

	declare(root, Declaration{
		Name: "set-car!", Desc: "mutates the head of a pair in place",
		MinArgs: 2, MaxArgs: 2,
		Fn: func(args []Value, env *Env) Value {
			p := Eval(args[0], env)
			v := Eval(args[1], env)
			if p.kind != KindPair {
				runtimeErrorf("set-car!: expected a pair, got %s", p.String())
			}
			p.pair.Head = v
			return Nil()
		},
	})

	declare(root, Declaration{
		Name: "set-cdr!", Desc: "mutates the tail of a pair in place",
		MinArgs: 2, MaxArgs: 2,
		Fn: func(args []Value, env *Env) Value {
			p := Eval(args[0], env)
			v := Eval(args[1], env)
			if p.kind != KindPair {
				runtimeErrorf("set-cdr!: expected a pair, got %s", p.String())
			}
			p.pair.Tail = v
			return Nil()
		},
	})
}

func requireIndex(name string, v Value) int64 {
	if v.kind != KindNumber {
		runtimeErrorf("%s: index must be a number, got %s", name, v.String())
	}
	if v.num < 0 {
		runtimeErrorf("%s: index must not be negative", name)
	}
	return v.num
}
