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

// Env is one frame of the lexical environment chain: a map from name to
// value plus an optional parent. This mirrors the teacher's scm.Env
// (Vars map[Symbol]Scmer, Outer *Env, walked by FindRead/FindWrite) —
// generalized to the plain Define/Set/Lookup/Has contract spec.md §4.4
// names instead of memcp's read/write-frame split.
type Env struct {
	vars   map[string]Value
	parent *Env
	tr     *Tracefile // non-nil only on the root frame an Engine attached a trace to
}

// NewEnv allocates a fresh, empty frame chained to parent. The root
// frame is created with a nil parent by the engine.
func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[string]Value), parent: parent}
}

// Define unconditionally binds name in this frame, overwriting any
// existing binding in this frame (but never shadowing by writing to an
// ancestor).
func (e *Env) Define(name string, v Value) {
	e.vars[name] = v
}

// Set finds the nearest frame, starting at e, that already binds name
// and replaces its binding. It signals a NameError if no frame in the
// chain binds name.
func (e *Env) Set(name string, v Value) {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.vars[name]; ok {
			f.vars[name] = v
			return
		}
	}
	nameError(name)
}

// Lookup walks from e to the root, returning the first binding found.
// It signals a NameError if name is unbound anywhere in the chain.
func (e *Env) Lookup(name string) Value {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v
		}
	}
	nameError(name)
	panic("unreachable")
}

// Has reports whether name is reachable from e, without signaling.
func (e *Env) Has(name string) bool {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.vars[name]; ok {
			return true
		}
	}
	return false
}

// Trace walks from e to the root and returns the Tracefile an Engine
// attached there, or nil if none was attached.
func (e *Env) Trace() *Tracefile {
	for f := e; f != nil; f = f.parent {
		if f.tr != nil {
			return f.tr
		}
	}
	return nil
}
