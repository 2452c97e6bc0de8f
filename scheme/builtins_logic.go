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

// installLogical declares and, or, and not. and/or are, per spec.md
// §4.6, "non-special for the purposes of arity and argument-vector
// handling" — an arity violation on either is a RuntimeError, not a
// SyntaxError, so IsSpecial stays false — "but with short-circuit
// semantics internally": they still receive their operands unevaluated
// and decide for themselves how many to evaluate, exactly like quote or
// if. This is the one place the teacher's Declaration.Foldable flag
// would have been tempting to reach for; it is dropped everywhere in
// this repo (see DESIGN.md) because nothing here does constant folding.
func installLogical(root *Env) {
	declare(root, Declaration{
		Name: "and", Desc: "evaluates its arguments left to right, short-circuiting on the first falsy one",
		MinArgs: 0, MaxArgs: -1,
		Fn: func(args []Value, env *Env) Value {
			result := True
			for _, a := range args {
				result = Eval(a, env)
				if !result.IsTruthy() {
					return result
				}
			}
			return result
		},
	})

	declare(root, Declaration{
		Name: "or", Desc: "evaluates its arguments left to right, short-circuiting on the first truthy one",
		MinArgs: 0, MaxArgs: -1,
		Fn: func(args []Value, env *Env) Value {
			result := False
			for _, a := range args {
				result = Eval(a, env)
				if result.IsTruthy() {
					return result
				}
			}
			return result
		},
	})

	declare(root, Declaration{
		Name: "not", Desc: "returns #t iff its argument is #f",
		MinArgs: 1, MaxArgs: 1,
		Fn: func(args []Value, env *Env) Value {
			return Boolean(!Eval(args[0], env).IsTruthy())
		},
	})
}
