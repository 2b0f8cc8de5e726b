package lib

import "fmt"

func ExampleEval() {
	fmt.Println(Eval("1 + 2 * 3"))
	fmt.Println(Eval("(1 + 2) * 3"))
	fmt.Println(Eval("2 ^ 3 ^ 2"))
	fmt.Println(Eval("12.5 / 5"))
	fmt.Println(Eval("1 / 0"))
	fmt.Println(Eval(""))

	// Output:
	// 7 <nil>
	// 9 <nil>
	// 64 <nil>
	// 2.5 <nil>
	// +Inf <nil>
	// 0 empty expression
}

func ExampleScan() {
	tokens, _ := Scan("(2 + 3.5)")
	for _, tok := range tokens {
		fmt.Println(tok)
	}

	_, err := Scan("2 & 3")
	fmt.Println(err)

	// Output:
	// 1:1 -> (
	// 1:2 -> number: 2
	// 1:4 -> +
	// 1:6 -> number: 3.5
	// 1:9 -> )
	// Error at line 1:3: unsupported token '&'
}
