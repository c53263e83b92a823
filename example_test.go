package numfmt_test

import (
	"fmt"

	"github.com/bjaus/numfmt"
)

func ExampleFormatter_Format() {
	for _, mode := range numfmt.Modes() {
		f := numfmt.MustNew("(XXX) XXX-XXXX", 'X', numfmt.WithMode(mode))
		fmt.Printf("%-8s %q\n", mode, f.Format("555"))
	}
	// Output:
	// strict   "(555"
	// fill-in  "(555) XXX-XXXX"
	// mixed    "(555) X"
}

func ExampleFormatter_Unfixed() {
	f := numfmt.MustNew("(XXX) XXX-XXXX", 'X', numfmt.WithMode(numfmt.FillIn))
	formatted := f.Format("tel. 555 12")
	content, ok := f.Unfixed(formatted)
	fmt.Println(formatted, content, ok)
	fmt.Println(f.FillIn(content) == formatted)
	// Output:
	// (555) 12X-XXXX 55512 true
	// true
}

func ExampleFormatString() {
	s, err := numfmt.FormatString("4111111111111111", "XXXX XXXX XXXX XXXX", 'X', numfmt.Strict)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: 4111 1111 1111 1111
}
