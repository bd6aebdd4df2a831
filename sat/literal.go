package sat

import "fmt"

// Literal is a propositional literal. Variables are 0-indexed; a literal
// encodes the variable index and its polarity as 2*v for the positive
// occurrence and 2*v+1 for the negative occurrence.
type Literal int

// PositiveLiteral returns the positive occurrence of variable v.
func PositiveLiteral(v int) Literal {
	return Literal(2 * v)
}

// NegativeLiteral returns the negative occurrence of variable v.
func NegativeLiteral(v int) Literal {
	return Literal(2*v + 1)
}

// VarID returns the variable this literal refers to.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive reports whether l is the positive occurrence of its variable.
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("-%d", l.VarID())
}

// toSigned converts a Literal to the engine's internal 1-indexed signed
// integer encoding (variable v occupies {v, -v}, 0 is never a valid
// literal). This is the literal domain the arena and its watch chains are
// built around.
func toSigned(l Literal) int {
	v := l.VarID() + 1
	if l.IsPositive() {
		return v
	}
	return -v
}
