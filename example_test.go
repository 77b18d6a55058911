package polish_test

import (
	"fmt"
	"log"

	"github.com/aretw0/polish"
)

// Example demonstrates the full analysis pipeline on an infix expression.
func Example() {
	engine := polish.New()

	res, err := engine.Analyze("(a+b)*c")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("notation:", res.Notation)
	fmt.Println("postfix:", res.Postfix)
	fmt.Println("prefix:", res.Prefix)
	fmt.Println("infix:", res.Infix)

	// Output:
	// notation: infix
	// postfix: ab+c*
	// prefix: *+abc
	// infix: ((a+b)*c)
}

// ExampleEngine_Analyze_postfix shows that postfix input is already canonical:
// the rendered postfix equals the input.
func ExampleEngine_Analyze_postfix() {
	engine := polish.New()

	res, err := engine.Analyze("ab+c*")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Notation, res.Postfix)

	// Output:
	// postfix ab+c*
}
