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

// Read consumes one value tree from t, per the grammar of spec.md §4.2.
// It is the Go-idiomatic analogue of the teacher's readFrom in
// scm/parser.go, rebuilt around real mutable cons pairs instead of
// memcp's []Scmer slices, since the pair-sharing and set-car!/set-cdr!
// semantics spec.md requires have no slice-based equivalent.
func Read(t *Tokenizer) Value {
	tok := t.Current()
	switch tok.Kind {
	case TokenInteger:
		t.Advance()
		return Number(tok.Int)
	case TokenSymbol:
		t.Advance()
		switch tok.Text {
		case "#t":
			return True
		case "#f":
			return False
		default:
			return Sym(tok.Text)
		}
	case TokenQuote:
		t.Advance()
		quoted := Read(t)
		return List(Sym("quote"), quoted)
	case TokenOpenParen:
		t.Advance()
		return readList(t)
	case TokenCloseParen:
		syntaxErrorf("unexpected ')'")
	case TokenDot:
		syntaxErrorf("unexpected '.'")
	case TokenUnknown:
		syntaxErrorf("unexpected character %q", string(tok.Ch))
	case TokenEOF:
		syntaxErrorf("unexpected end of input")
	}
	panic("unreachable")
}

// readList is called with the opening parenthesis already consumed. It
// implements the non-LL(1) dotted-pair lookahead noted in spec.md's
// design notes: peek for Dot only after a head element has been read.
func readList(t *Tokenizer) Value {
	if t.Current().Kind == TokenCloseParen {
		t.Advance()
		return Nil()
	}
	if t.Current().Kind == TokenDot {
		syntaxErrorf("'.' cannot begin a list")
	}

	head := Read(t)

	switch t.Current().Kind {
	case TokenCloseParen:
		t.Advance()
		return Cons(head, Nil())
	case TokenDot:
		t.Advance()
		tail := Read(t)
		if t.Current().Kind != TokenCloseParen {
			syntaxErrorf("expected ')' after the tail of a dotted pair")
		}
		t.Advance()
		return Cons(head, tail)
	default:
		tail := readList(t)
		return Cons(head, tail)
	}
}
