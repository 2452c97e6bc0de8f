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

func TestEnv_DefineLookup(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Number(1))
	if got := root.Lookup("x"); got.num != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestEnv_LookupThroughParent(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Number(1))
	child := NewEnv(root)
	if got := child.Lookup("x"); got.num != 1 {
		t.Fatalf("child did not see parent binding: %v", got)
	}
}

func TestEnv_DefineShadowsWithoutMutatingParent(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Number(1))
	child := NewEnv(root)
	child.Define("x", Number(2))
	if got := child.Lookup("x"); got.num != 2 {
		t.Fatalf("child shadow failed: %v", got)
	}
	if got := root.Lookup("x"); got.num != 1 {
		t.Fatalf("parent binding was mutated by child Define: %v", got)
	}
}

func TestEnv_SetMutatesDefiningFrame(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Number(1))
	child := NewEnv(root)
	child.Set("x", Number(9))
	if got := root.Lookup("x"); got.num != 9 {
		t.Fatalf("Set through a child frame did not reach the defining frame: %v", got)
	}
}

func TestEnv_SetUndefinedNamePanics(t *testing.T) {
	root := NewEnv(nil)
	defer func() {
		r := recover()
		if _, ok := r.(*NameError); !ok {
			t.Fatalf("expected *NameError, got %T (%v)", r, r)
		}
	}()
	root.Set("never-defined", Number(1))
}

func TestEnv_LookupUndefinedNamePanics(t *testing.T) {
	root := NewEnv(nil)
	defer func() {
		r := recover()
		if _, ok := r.(*NameError); !ok {
			t.Fatalf("expected *NameError, got %T (%v)", r, r)
		}
	}()
	root.Lookup("never-defined")
}

func TestEnv_Has(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Number(1))
	child := NewEnv(root)
	if !child.Has("x") {
		t.Fatal("expected Has to see the parent binding")
	}
	if child.Has("y") {
		t.Fatal("expected Has to report false for an unbound name")
	}
}
