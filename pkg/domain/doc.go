/*
Package domain contains the core domain models for the Polish engine.

It defines the fundamental entities of expression analysis: single-character
tokens and their classification, the notation taxonomy, the binary expression
tree, and the error vocabulary. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - TokenKind: Explicit classification of one expression character.
  - Notation: The syntactic form of an expression (infix, prefix, postfix).
  - Node: A binary expression tree node (operators inside, operands at leaves).
  - Analysis: The complete result of analyzing one expression.
*/
package domain
