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

// Eval maps (value, environment) to a value, dispatching on the value's
// shape exactly as spec.md §4.5 describes. Tail-call optimization is an
// explicit non-goal, so — unlike the teacher's scm.Eval, which loops via
// goto restart to keep Scheme tail calls from growing the Go stack —
// this Eval recurses plainly; a Go stack frame per Scheme call is the
// simpler, idiomatic choice when TCO was never required.
func Eval(v Value, env *Env) Value {
	switch v.kind {
	case KindNumber, KindBoolean, KindProcedure:
		return v
	case KindSymbol:
		return env.Lookup(v.sym)
	case KindNil:
		runtimeErrorf("cannot evaluate the empty list")
		panic("unreachable")
	case KindPair:
		return evalCombination(v.pair, env)
	}
	panic("unreachable")
}

// evalCombination evaluates a call form (head . tail): evaluate head to
// find the callee, flatten tail into an unevaluated argument vector,
// check arity, and apply.
func evalCombination(p *Pair, env *Env) Value {
	callee := Eval(p.Head, env)
	if callee.kind != KindProcedure {
		runtimeErrorf("cannot apply %s: not a procedure", callee.String())
	}
	proc := callee.proc
	args := flattenArgs(p.Tail)

	if !arityOK(proc, len(args)) {
		if proc.IsSpecial {
			syntaxErrorf("%s: wrong number of arguments", proc.Name)
		}
		runtimeErrorf("%s: wrong number of arguments", proc.displayName())
	}

	// Lambdas are always applicative, so their operands are evaluated
	// here, once, in the caller's frame — both to bind parameters and to
	// render the call-stack/trace label with concrete argument values
	// ((fact 3), not the source form (fact (- n 1))). Built-ins decide
	// for themselves what to evaluate (quote, if, and, ...), so they keep
	// the raw operand expressions and a label built from the source form.
	if proc.IsLambda {
		values := make([]Value, len(args))
		for i, a := range args {
			values[i] = Eval(a, env)
		}

		label := applicationLabel(p.Head, values)
		var result Value
		pushFrame(label, func() {
			if tr := env.Trace(); tr != nil {
				tr.Event(label, "apply", "B")
				defer tr.Event(label, "apply", "E")
			}
			result = applyLambda(proc, values)
		})
		return result
	}

	label := frameLabel(p)
	var result Value
	pushFrame(label, func() {
		if tr := env.Trace(); tr != nil {
			tr.Event(label, "apply", "B")
			defer tr.Event(label, "apply", "E")
		}
		result = proc.Fn(args, env)
	})
	return result
}

func applyLambda(proc *Procedure, values []Value) Value {
	frame := NewEnv(proc.Env)
	if proc.Rest != "" {
		frame.Define(proc.Rest, List(values...))
	} else {
		for i, name := range proc.Params {
			frame.Define(name, values[i])
		}
	}

	var result Value
	for _, body := range proc.Body {
		result = Eval(body, frame)
	}
	return result
}

// frameLabel renders the raw, unevaluated combination for a built-in
// call's diagnostic call stack and trace events, since built-ins don't
// uniformly evaluate their operands (quote, if, and, ...).
func frameLabel(p *Pair) string {
	return (Value{kind: KindPair, pair: p}).String()
}

// applicationLabel renders a lambda call with its already-evaluated
// arguments — (fact 3), not the unevaluated source form (fact
// (- n 1)) — so a RuntimeError's captured CallStack() and trace events
// name the concrete recursion chain that led to it.
func applicationLabel(head Value, values []Value) string {
	return List(append([]Value{head}, values...)...).String()
}
