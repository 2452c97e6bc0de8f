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

// installPredicates declares boolean?, number?, symbol?, pair?, list?,
// and null? — the unary type predicates of spec.md §4.6.
func installPredicates(root *Env) {
	declarePredicate(root, "boolean?", "reports whether its argument is a boolean", func(v Value) bool {
		return v.kind == KindBoolean
	})
	declarePredicate(root, "number?", "reports whether its argument is a number", func(v Value) bool {
		return v.kind == KindNumber
	})
	declarePredicate(root, "symbol?", "reports whether its argument is a symbol", func(v Value) bool {
		return v.kind == KindSymbol
	})
	declarePredicate(root, "pair?", "reports whether its argument is a non-empty pair", func(v Value) bool {
		return v.IsPair()
	})
	declarePredicate(root, "list?", "reports whether its argument is () or a proper list", Value.IsProperList)
	declarePredicate(root, "null?", "reports whether its argument is ()", Value.IsNil)
}

func declarePredicate(root *Env, name, desc string, pred func(Value) bool) {
	declare(root, Declaration{
		Name: name, Desc: desc,
		MinArgs: 1, MaxArgs: 1,
		Fn: func(args []Value, env *Env) Value {
			return Boolean(pred(Eval(args[0], env)))
		},
	})
}
