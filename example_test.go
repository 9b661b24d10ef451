package exact_test

import (
	"fmt"

	"github.com/exactcalc/exact"
	"github.com/exactcalc/exact/funcs"
)

func Example() {
	ctx := exact.NewContext(exact.Library(funcs.Library()))
	for _, src := range []string{
		"tax = 7/100",
		"total(price) = price * (1 + tax)",
		"total(200)",
		"2^64",
		"10!",
	} {
		r, err := exact.Evaluate(src, ctx)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}
	// Output:
	// 7/100
	// 0
	// 214
	// 18446744073709551616
	// 3628800
}

func ExampleExpr_Vars() {
	e, err := exact.Parse("a*x^2 + b*x + c")
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Vars())
	// Output:
	// [a b c x]
}
