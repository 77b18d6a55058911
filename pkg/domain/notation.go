package domain

// Notation identifies the syntactic form of an expression: where operators
// sit relative to their operands.
type Notation string

const (
	// NotationInfix places operators between operands, e.g. "(a+b)*c".
	NotationInfix Notation = "infix"
	// NotationPrefix places operators before operands (Polish), e.g. "*+abc".
	NotationPrefix Notation = "prefix"
	// NotationPostfix places operators after operands (reverse Polish), e.g. "ab+c*".
	NotationPostfix Notation = "postfix"
)

// Valid reports whether n is one of the three known notations.
func (n Notation) Valid() bool {
	switch n {
	case NotationInfix, NotationPrefix, NotationPostfix:
		return true
	}
	return false
}
