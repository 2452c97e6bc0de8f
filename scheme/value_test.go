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

func TestValue_IsTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"false is falsy", False, false},
		{"true is truthy", True, true},
		{"zero is truthy", Number(0), true},
		{"nil is truthy", Nil(), true},
		{"symbol is truthy", Sym("x"), true},
	}
	for _, tt := range tests {
		if got := tt.v.IsTruthy(); got != tt.want {
			t.Errorf("%s: IsTruthy() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValue_IsProperList(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil is proper", Nil(), true},
		{"(1 2 3) is proper", List(Number(1), Number(2), Number(3)), true},
		{"(1 . 2) is not proper", Cons(Number(1), Number(2)), false},
		{"a bare number is not a list", Number(1), false},
	}
	for _, tt := range tests {
		if got := tt.v.IsProperList(); got != tt.want {
			t.Errorf("%s: IsProperList() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFlattenArgs(t *testing.T) {
	proper := List(Number(1), Number(2), Number(3))
	got := flattenArgs(proper)
	if len(got) != 3 {
		t.Fatalf("proper list: got %d elements, want 3", len(got))
	}

	improper := Cons(Number(1), Number(2))
	got = flattenArgs(improper)
	if len(got) != 2 || got[0].num != 1 || got[1].num != 2 {
		t.Fatalf("improper list (1 . 2): got %v", got)
	}
}
