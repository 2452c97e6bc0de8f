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

// installBindingForms declares quote, lambda, define, set!, and if —
// the five special forms of spec.md §4.6. Each is free to decide which
// of its operands to evaluate and when, which is exactly why they carry
// IsSpecial: true and never call evalNumberArgs or similar — they work
// directly with the raw operand expressions handed to them.
func installBindingForms(root *Env) {
	declare(root, Declaration{
		Name: "quote", Desc: "returns its argument unevaluated",
		MinArgs: 1, MaxArgs: 1, IsSpecial: true,
		Fn: func(args []Value, env *Env) Value {
			return args[0]
		},
	})

	declare(root, Declaration{
		Name: "lambda", Desc: "constructs a user procedure capturing the current environment",
		MinArgs: 2, MaxArgs: -1, IsSpecial: true,
		Fn: func(args []Value, env *Env) Value {
			return makeLambda(args[0], args[1:], env)
		},
	})

	declare(root, Declaration{
		Name: "define", Desc: "binds a name in the current frame",
		MinArgs: 2, MaxArgs: -1, IsSpecial: true,
		Fn: func(args []Value, env *Env) Value {
			return evalDefine(args[0], args[1:], env)
		},
	})

	declare(root, Declaration{
		Name: "set!", Desc: "mutates an existing binding",
		MinArgs: 2, MaxArgs: 2, IsSpecial: true,
		Fn: func(args []Value, env *Env) Value {
			name, ok := symbolName(args[0])
			if !ok {
				syntaxErrorf("set!: expected a symbol, got %s", args[0].String())
			}
			env.Set(name, Eval(args[1], env))
			return Nil()
		},
	})

	declare(root, Declaration{
		Name: "if", Desc: "evaluates test, then evaluates and returns the selected branch",
		MinArgs: 2, MaxArgs: 3, IsSpecial: true,
		Fn: func(args []Value, env *Env) Value {
			if Eval(args[0], env).IsTruthy() {
				return Eval(args[1], env)
			}
			if len(args) == 3 {
				return Eval(args[2], env)
			}
			return Nil()
		},
	})
}

// makeLambda builds a user procedure from a raw params expression and a
// non-empty body. paramsExpr is one of: a symbol (rest form — the whole
// evaluated argument list is bound to that name), () (zero fixed
// parameters), or a proper list of symbols (fixed arity).
func makeLambda(paramsExpr Value, body []Value, env *Env) Value {
	proc := &Procedure{IsLambda: true, Env: env, Body: body}

	switch {
	case paramsExpr.kind == KindSymbol:
		proc.Rest = paramsExpr.sym
	case paramsExpr.IsNil():
		proc.Params = nil
	case paramsExpr.IsProperList():
		items := flattenArgs(paramsExpr)
		names := make([]string, len(items))
		for i, item := range items {
			name, ok := symbolName(item)
			if !ok {
				syntaxErrorf("lambda: parameter %s is not a symbol", item.String())
			}
			names[i] = name
		}
		proc.Params = names
	default:
		syntaxErrorf("lambda: parameter list must be a proper list of symbols or a single symbol")
	}

	return procedureValue(proc)
}

// evalDefine implements both (define name expr) and the sugared
// (define (f p1 p2 ...) body...), which desugars to
// (define f (lambda (p1 p2 ...) body...)).
func evalDefine(target Value, rest []Value, env *Env) Value {
	if name, ok := symbolName(target); ok {
		if len(rest) != 1 {
			syntaxErrorf("define: expected exactly one expression after a plain name")
		}
		env.Define(name, Eval(rest[0], env))
		return Nil()
	}

	if target.kind != KindPair {
		syntaxErrorf("define: expected a name or a (name params...) form, got %s", target.String())
	}
	name, ok := symbolName(target.pair.Head)
	if !ok {
		syntaxErrorf("define: function name must be a symbol")
	}
	if len(rest) == 0 {
		syntaxErrorf("define: function body must not be empty")
	}

	env.Define(name, makeLambda(target.pair.Tail, rest, env))
	return Nil()
}
