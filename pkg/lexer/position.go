package lexer

import "fmt"

// Position is a 1-based line/column coordinate in the source text.
// Line 1, column 1 is the first character.
type Position struct {
	Line int
	Col  int
}

// Advance returns the position of the character following r.
func (p Position) Advance(r rune) Position {
	if r == '\n' {
		return Position{Line: p.Line + 1, Col: 1}
	}
	p.Col++
	return p
}

// Before reports whether p comes before q in line/column order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// BoundKind tells whether a token's end position is part of the token.
type BoundKind uint8

const (
	// Included means the token occupies through and including the
	// character at the bound position.
	Included BoundKind = iota
	// Excluded means the token ends strictly before the bound position;
	// the character there belongs to the following token, or was never
	// part of this one.
	Excluded
)

// Bound is a token's end boundary.
type Bound struct {
	Kind BoundKind
	Pos  Position
}

// IncludedAt builds an inclusive end bound at p.
func IncludedAt(p Position) Bound {
	return Bound{Kind: Included, Pos: p}
}

// ExcludedAt builds an exclusive end bound at p.
func ExcludedAt(p Position) Bound {
	return Bound{Kind: Excluded, Pos: p}
}

func (b Bound) String() string {
	if b.Kind == Included {
		return fmt.Sprintf("..=%s", b.Pos)
	}
	return fmt.Sprintf("..%s", b.Pos)
}
