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

import "testing"

func TestBuiltins_Predicates(t *testing.T) {
	e := NewEngine()
	tests := []struct {
		text string
		want string
	}{
		{"(boolean? #t)", "#t"},
		{"(boolean? 1)", "#f"},
		{"(number? 1)", "#t"},
		{"(number? #t)", "#f"},
		{"(symbol? 'x)", "#t"},
		{"(symbol? 1)", "#f"},
		{"(pair? (cons 1 2))", "#t"},
		{"(pair? '())", "#f"},
		{"(null? '())", "#t"},
		{"(null? (cons 1 2))", "#f"},
		{"(list? '())", "#t"},
		{"(list? (list 1 2 3))", "#t"},
		{"(list? (cons 1 2))", "#f"},
	}
	for _, tt := range tests {
		if got := mustInterpret(t, e, tt.text); got != tt.want {
			t.Errorf("%s => %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestBuiltins_QuoteDoesNotEvaluate(t *testing.T) {
	e := NewEngine()
	if got := mustInterpret(t, e, "(quote (+ 1 2))"); got != "(+ 1 2)" {
		t.Errorf("quote evaluated its argument: got %s", got)
	}
	if got := mustInterpret(t, e, "'(a b c)"); got != "(a b c)" {
		t.Errorf("'(a b c) => %s, want (a b c)", got)
	}
}

func TestBuiltins_IfWithoutElseBranch(t *testing.T) {
	e := NewEngine()
	if got := mustInterpret(t, e, "(if #f 1)"); got != "()" {
		t.Errorf("(if #f 1) => %s, want ()", got)
	}
}

func TestBuiltins_ListTailOutOfRangeIsRuntimeError(t *testing.T) {
	e := NewEngine()
	_, err := e.Interpret("(list-tail (list 1 2) 5)")
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T (%v)", err, err)
	}
}

func TestBuiltins_CarCdrOfNonPairIsRuntimeError(t *testing.T) {
	e := NewEngine()
	if _, err := e.Interpret("(car '())"); !isRuntimeError(err) {
		t.Errorf("(car '()): expected *RuntimeError, got %T (%v)", err, err)
	}
	if _, err := e.Interpret("(cdr 5)"); !isRuntimeError(err) {
		t.Errorf("(cdr 5): expected *RuntimeError, got %T (%v)", err, err)
	}
}

func isRuntimeError(err error) bool {
	_, ok := err.(*RuntimeError)
	return ok
}

func TestBuiltins_LambdaArityMismatchIsRuntimeError(t *testing.T) {
	e := NewEngine()
	mustInterpret(t, e, "(define (f a b) (+ a b))")
	_, err := e.Interpret("(f 1)")
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T (%v)", err, err)
	}
}

func TestBuiltins_SpecialFormArityMismatchIsSyntaxError(t *testing.T) {
	e := NewEngine()
	_, err := e.Interpret("(if)")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T (%v)", err, err)
	}
}

func TestBuiltins_NotNegatesTruthiness(t *testing.T) {
	e := NewEngine()
	if got := mustInterpret(t, e, "(not #f)"); got != "#t" {
		t.Errorf("(not #f) => %s, want #t", got)
	}
	if got := mustInterpret(t, e, "(not 0)"); got != "#f" {
		t.Errorf("(not 0) => %s, want #f (0 is truthy)", got)
	}
}
