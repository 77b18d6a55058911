/*
Package polish analyzes single-character-token arithmetic expressions written
in infix, prefix (Polish), or postfix (reverse Polish) notation.

Given one raw expression the engine detects which notation it uses, validates
its structure, converts it to canonical postfix, and builds an explicit binary
expression tree. The tree re-renders any of the three notations and can be
drawn as an ASCII diagram or exported as a Mermaid graph.

# Concept

The engine is pure and stateless: every call builds fresh stacks and a fresh
tree, so a single Engine is safe for concurrent use across independent
expressions. Adapters (CLI, HTTP, MCP) wrap the engine without adding logic of
their own, following Hexagonal Architecture.

Operands are opaque single characters; the engine never evaluates an
expression numerically. Precedence is + - (1), * / (2), ^ (3), with every
operator treated as left-associative.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/polish"
	)

	func main() {
		eng := polish.New()

		res, err := eng.Analyze("(a+b)*c")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("notation:", res.Notation) // infix
		fmt.Println("postfix:", res.Postfix)   // ab+c*
		fmt.Println("prefix:", res.Prefix)     // *+abc
		fmt.Println("infix:", res.Infix)       // ((a+b)*c)
	}
*/
package polish
