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

// Declaration describes one entry of the built-in library, mirroring
// the teacher's scm.Declaration (Name, Desc, MinParameter, MaxParameter,
// Fn) with the doc-generation fields (Params, Returns, Foldable,
// WriteDocumentation) dropped — nothing in this repo publishes
// reference docs — and an IsSpecial flag added, since spec.md's
// special-form/ordinary-procedure split has no counterpart in the
// teacher's single Declare path.
type Declaration struct {
	Name      string
	Desc      string
	MinArgs   int
	MaxArgs   int // -1 means unbounded
	IsSpecial bool
	Fn        BuiltinFn
}

// builtinNames records the published order of the built-in library, the
// same role the teacher's declaration_titles plays for its (here
// unneeded) documentation generator; kept because listing "what this
// interpreter supports" is a reasonable thing for a host program to ask.
var builtinNames []string

func declare(root *Env, d Declaration) {
	builtinNames = append(builtinNames, d.Name)
	root.Define(d.Name, procedureValue(&Procedure{
		Name:      d.Name,
		Desc:      d.Desc,
		MinArgs:   d.MinArgs,
		MaxArgs:   d.MaxArgs,
		IsSpecial: d.IsSpecial,
		Fn:        d.Fn,
	}))
}

// installBuiltins populates root with every operation spec.md §4.6
// names. Grouped into one install function per category, the same
// layout the teacher uses (init_list, and friends, one per concern
// file) rather than one giant function.
func installBuiltins(root *Env) {
	builtinNames = builtinNames[:0]
	installBindingForms(root)
	installArithmetic(root)
	installComparisons(root)
	installLogical(root)
	installPairsAndLists(root)
	installPredicates(root)
}

// BuiltinNames returns the published names of the built-in library, in
// installation order.
func BuiltinNames() []string {
	out := make([]string, len(builtinNames))
	copy(out, builtinNames)
	return out
}
