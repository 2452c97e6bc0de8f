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
	"os"
	"testing"
)

func mustInterpret(t *testing.T, e *Engine, text string) string {
	t.Helper()
	result, err := e.Interpret(text)
	if err != nil {
		t.Fatalf("Interpret(%q): unexpected error: %v", text, err)
	}
	return result
}

func TestEngine_Arithmetic(t *testing.T) {
	e := NewEngine()
	tests := []struct {
		text string
		want string
	}{
		{"(+ 1 2 3)", "6"},
		{"(+)", "0"},
		{"(- 5 2 1)", "2"},
		{"(- 5)", "-5"},
		{"(* 2 3 4)", "24"},
		{"(*)", "1"},
		{"(/ 10 2)", "5"},
		{"(max 1 5 3)", "5"},
		{"(min 1 5 3)", "1"},
		{"(abs -7)", "7"},
	}
	for _, tt := range tests {
		if got := mustInterpret(t, e, tt.text); got != tt.want {
			t.Errorf("%s => %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestEngine_DivisionByZero(t *testing.T) {
	e := NewEngine()
	_, err := e.Interpret("(/ 1 0)")
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T (%v)", err, err)
	}
}

func TestEngine_ComparisonArityQuirk(t *testing.T) {
	e := NewEngine()
	if got := mustInterpret(t, e, "(<)"); got != "#t" {
		t.Errorf("(<) => %s, want #t", got)
	}
	if got := mustInterpret(t, e, "(< 1 2 3)"); got != "#t" {
		t.Errorf("(< 1 2 3) => %s, want #t", got)
	}
	if _, err := e.Interpret("(< 1)"); err == nil {
		t.Error("(< 1): expected an arity error, got none")
	}
}

func TestEngine_AndOrShortCircuit(t *testing.T) {
	e := NewEngine()
	if got := mustInterpret(t, e, "(and #f (/ 1 0))"); got != "#f" {
		t.Errorf("(and #f (/ 1 0)) => %s, want #f", got)
	}
	if got := mustInterpret(t, e, "(or #t (/ 1 0))"); got != "#t" {
		t.Errorf("(or #t (/ 1 0)) => %s, want #t", got)
	}
}

func TestEngine_DefineAndLookup(t *testing.T) {
	e := NewEngine()
	mustInterpret(t, e, "(define x 10)")
	if got := mustInterpret(t, e, "x"); got != "10" {
		t.Errorf("x => %s, want 10", got)
	}
}

func TestEngine_SetUndefinedNameIsAnError(t *testing.T) {
	e := NewEngine()
	_, err := e.Interpret("(set! never-defined 1)")
	if _, ok := err.(*NameError); !ok {
		t.Fatalf("expected *NameError, got %T (%v)", err, err)
	}
}

func TestEngine_ZeroArityLambdaWithMutation(t *testing.T) {
	// spec.md's own closure-counter scenario: a zero-parameter lambda
	// whose body mutates a variable captured from its defining scope.
	e := NewEngine()
	mustInterpret(t, e, "(define x 0)")
	mustInterpret(t, e, "(define bump (lambda () (set! x (+ x 1)) x))")
	if got := mustInterpret(t, e, "(bump)"); got != "1" {
		t.Errorf("first (bump) => %s, want 1", got)
	}
	if got := mustInterpret(t, e, "(bump)"); got != "2" {
		t.Errorf("second (bump) => %s, want 2", got)
	}
}

func TestEngine_PerClosureMutableState(t *testing.T) {
	// Two independent calls of a counter-constructor must capture two
	// independent mutable frames.
	e := NewEngine()
	mustInterpret(t, e, `(define (make-counter)
		(define n 0)
		(lambda () (set! n (+ n 1)) n))`)
	mustInterpret(t, e, "(define c1 (make-counter))")
	mustInterpret(t, e, "(define c2 (make-counter))")
	if got := mustInterpret(t, e, "(c1)"); got != "1" {
		t.Errorf("(c1) => %s, want 1", got)
	}
	if got := mustInterpret(t, e, "(c1)"); got != "2" {
		t.Errorf("second (c1) => %s, want 2", got)
	}
	if got := mustInterpret(t, e, "(c2)"); got != "1" {
		t.Errorf("(c2) => %s, want 1 (independent from c1)", got)
	}
}

func TestEngine_RestParameterGathersArguments(t *testing.T) {
	e := NewEngine()
	mustInterpret(t, e, "(define (gather . args) args)")
	if got := mustInterpret(t, e, "(gather 1 2 3)"); got != "(1 2 3)" {
		t.Errorf("(gather 1 2 3) => %s, want (1 2 3)", got)
	}
	if got := mustInterpret(t, e, "(gather)"); got != "()" {
		t.Errorf("(gather) => %s, want ()", got)
	}
}

func TestEngine_FactorialByRecursion(t *testing.T) {
	e := NewEngine()
	mustInterpret(t, e, `(define (fact n)
		(if (= n 0) 1 (* n (fact (- n 1)))))`)
	if got := mustInterpret(t, e, "(fact 5)"); got != "120" {
		t.Errorf("(fact 5) => %s, want 120", got)
	}
	if got := mustInterpret(t, e, "(fact 0)"); got != "1" {
		t.Errorf("(fact 0) => %s, want 1", got)
	}
}

func TestEngine_DottedPairPrinting(t *testing.T) {
	e := NewEngine()
	if got := mustInterpret(t, e, "(cons 1 2)"); got != "(1 . 2)" {
		t.Errorf("(cons 1 2) => %s, want (1 . 2)", got)
	}
}

func TestEngine_SetCarCdrMutatesSharedStructure(t *testing.T) {
	e := NewEngine()
	mustInterpret(t, e, "(define p (cons 1 2))")
	mustInterpret(t, e, "(define q p)")
	mustInterpret(t, e, "(set-car! p 99)")
	if got := mustInterpret(t, e, "q"); got != "(99 . 2)" {
		t.Errorf("mutation through p was not visible via alias q: %s", got)
	}
}

func TestEngine_ListRefOnImproperListFlattensTail(t *testing.T) {
	e := NewEngine()
	if got := mustInterpret(t, e, "(list-ref (cons 1 2) 1)"); got != "2" {
		t.Errorf("(list-ref (cons 1 2) 1) => %s, want 2", got)
	}
}

func TestEngine_OnlyOneTopLevelExpression(t *testing.T) {
	e := NewEngine()
	_, err := e.Interpret("1 2")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError for trailing input, got %T (%v)", err, err)
	}
}

func TestEngine_ApplyingANonProcedureIsARuntimeError(t *testing.T) {
	e := NewEngine()
	_, err := e.Interpret("(1 2 3)")
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T (%v)", err, err)
	}
}

func TestEngine_InitResetsState(t *testing.T) {
	e := NewEngine()
	mustInterpret(t, e, "(define x 42)")
	e.Init()
	_, err := e.Interpret("x")
	if _, ok := err.(*NameError); !ok {
		t.Fatalf("expected Init to wipe prior definitions, got %T (%v)", err, err)
	}
}

func TestEngine_LoadFileReturnsLastResult(t *testing.T) {
	e := NewEngine()
	dir := t.TempDir()
	path := dir + "/prog.scm"
	writeFile(t, path, "(define x 1)\n(+ x 1)\n")
	got, err := e.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != "2" {
		t.Errorf("LoadFile last result = %s, want 2", got)
	}
}

func TestEngine_StringRendersAnAlreadyEvaluatedValue(t *testing.T) {
	e := NewEngine()
	if got := e.String(Cons(Number(1), Number(2))); got != "(1 . 2)" {
		t.Errorf("String(cons 1 2) = %s, want (1 . 2)", got)
	}
}

func TestBuiltinNames_ListsEveryInstalledBuiltin(t *testing.T) {
	NewEngine() // installBuiltins runs as a side effect of Init
	names := BuiltinNames()
	for _, want := range []string{"quote", "lambda", "define", "if", "+", "cons", "null?"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("BuiltinNames() missing %q: %v", want, names)
		}
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
