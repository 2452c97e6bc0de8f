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

// evalNumberArgs evaluates each of args, left to right, in env, and
// requires every result to be a Number — the shared argument-evaluation
// discipline every arithmetic and comparison built-in follows, adapted
// from the teacher's own fast-path accumulation in scm/alu.go (minus the
// float promotion and JIT constant folding: spec.md's Non-goals exclude
// floating point entirely).
func evalNumberArgs(name string, args []Value, env *Env) []int64 {
	nums := make([]int64, len(args))
	for i, a := range args {
		v := Eval(a, env)
		if v.kind != KindNumber {
			runtimeErrorf("%s: expected a number, got %s", name, v.String())
		}
		nums[i] = v.num
	}
	return nums
}

// installArithmetic declares +, -, *, /, max, min, and abs.
func installArithmetic(root *Env) {
	declare(root, Declaration{
		Name: "+", Desc: "sums its arguments; the empty sum is 0",
		MinArgs: 0, MaxArgs: -1,
		Fn: func(args []Value, env *Env) Value {
			var sum int64
			for _, n := range evalNumberArgs("+", args, env) {
				sum += n
			}
			return Number(sum)
		},
	})

	declare(root, Declaration{
		Name: "-", Desc: "left-folds subtraction; one argument negates it",
		MinArgs: 1, MaxArgs: -1,
		Fn: func(args []Value, env *Env) Value {
			nums := evalNumberArgs("-", args, env)
			if len(nums) == 1 {
				return Number(-nums[0])
			}
			result := nums[0]
			for _, n := range nums[1:] {
				result -= n
			}
			return Number(result)
		},
	})

	declare(root, Declaration{
		Name: "*", Desc: "multiplies its arguments; the empty product is 1",
		MinArgs: 0, MaxArgs: -1,
		Fn: func(args []Value, env *Env) Value {
			result := int64(1)
			for _, n := range evalNumberArgs("*", args, env) {
				result *= n
			}
			return Number(result)
		},
	})

	declare(root, Declaration{
		Name: "/", Desc: "left-folds integer division across at least two arguments",
		MinArgs: 2, MaxArgs: -1,
		Fn: func(args []Value, env *Env) Value {
			nums := evalNumberArgs("/", args, env)
			result := nums[0]
			for _, n := range nums[1:] {
				if n == 0 {
					runtimeErrorf("/: division by zero")
				}
				result /= n
			}
			return Number(result)
		},
	})

	declare(root, Declaration{
		Name: "max", Desc: "returns the greatest of its arguments",
		MinArgs: 1, MaxArgs: -1,
		Fn: func(args []Value, env *Env) Value {
			nums := evalNumberArgs("max", args, env)
			m := nums[0]
			for _, n := range nums[1:] {
				if n > m {
					m = n
				}
			}
			return Number(m)
		},
	})

	declare(root, Declaration{
		Name: "min", Desc: "returns the least of its arguments",
		MinArgs: 1, MaxArgs: -1,
		Fn: func(args []Value, env *Env) Value {
			nums := evalNumberArgs("min", args, env)
			m := nums[0]
			for _, n := range nums[1:] {
				if n < m {
					m = n
				}
			}
			return Number(m)
		},
	})

	declare(root, Declaration{
		Name: "abs", Desc: "returns the absolute value of its argument",
		MinArgs: 1, MaxArgs: 1,
		Fn: func(args []Value, env *Env) Value {
			n := evalNumberArgs("abs", args, env)[0]
			if n < 0 {
				n = -n
			}
			return Number(n)
		},
	})
}

// installComparisonOp declares one of <, <=, >, >=, = — each accepts
// zero arguments (vacuously #t) or two-or-more, testing that cmp holds
// across every adjacent pair. Exactly one argument is, per spec.md
// §4.6, neither of the accepted shapes, so it is rejected explicitly
// rather than folded into MinArgs/MaxArgs (which can only express a
// contiguous range).
func installComparisonOp(root *Env, name string, cmp func(a, b int64) bool) {
	declare(root, Declaration{
		Name: name, Desc: "tests the relation across every adjacent pair of its arguments",
		MinArgs: 0, MaxArgs: -1,
		Fn: func(args []Value, env *Env) Value {
			if len(args) == 1 {
				runtimeErrorf("%s: wrong number of arguments", name)
			}
			nums := evalNumberArgs(name, args, env)
			for i := 1; i < len(nums); i++ {
				if !cmp(nums[i-1], nums[i]) {
					return False
				}
			}
			return True
		},
	})
}

func installComparisons(root *Env) {
	installComparisonOp(root, "<", func(a, b int64) bool { return a < b })
	installComparisonOp(root, "<=", func(a, b int64) bool { return a <= b })
	installComparisonOp(root, ">", func(a, b int64) bool { return a > b })
	installComparisonOp(root, ">=", func(a, b int64) bool { return a >= b })
	installComparisonOp(root, "=", func(a, b int64) bool { return a == b })
}
