package rules_test

import (
	"fmt"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/rules"
)

func ExampleParse() {
	rule, errs := rules.Parse("[a][b, ci, c][d]", 250)
	if len(errs) > 0 {
		panic(errs[0])
	}
	fmt.Println(rule)
	// Output: [A] [B, CI, C] [D]
}
