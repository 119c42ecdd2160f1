package main

import (
	"fmt"

	"github.com/marcodamonte/go-concepts/funcptrs"
)

func demoFunctionValues() error {
	// A named function is a value: copy it freely.
	op1 := funcptrs.Sum
	op2 := op1
	label("op1(1, 2), op2(2, 1)", fmt.Sprint(op1(1, 2), ", ", op2(2, 1)))

	// op1 == op2 does not compile: func values only compare with nil.
	// Handle is the comparable form.
	h1, h2 := funcptrs.MustHandle(op1), funcptrs.MustHandle(op2)
	label("handle(op1) == handle(op2)", h1 == h2)
	label("handle(op1)", h1)
	label("handle(Sub)", funcptrs.MustHandle(funcptrs.Sub))

	var fp funcptrs.BinaryOp = funcptrs.Sub
	label("BinaryOp(Sub)(1, 2)", fp(1, 2))
	return nil
}

func demoCalculator() error {
	label("Calculator(0, 0, Sum)", funcptrs.Calculator(0, 0, funcptrs.Sum))
	label("Calculator(0, 0, Sub)", funcptrs.Calculator(0, 0, funcptrs.Sub))
	label("Calculator(6, 7, mul)", funcptrs.Calculator(6, 7, func(x, y int64) int64 { return x * y }))
	return nil
}

func demoSorter() error {
	seq := []int32{3, 1, 4, 1, 5, 9}
	label("input", fmt.Sprint(seq))

	funcptrs.Sorter(seq, funcptrs.Ascending[int32])
	label("Sorter(seq, Ascending)", fmt.Sprint(seq))

	funcptrs.Sorter(seq, funcptrs.Descending[int32])
	label("Sorter(seq, Descending)", fmt.Sprint(seq))

	// A closure works wherever a named comparison does.
	funcptrs.Sorter(seq, func(a, b int32) int { return int(a) - int(b) })
	label("Sorter(seq, closure)", fmt.Sprint(seq))
	return nil
}

func demoRegistry() error {
	r := funcptrs.DefaultRegistry()
	if err := r.Register("mul", func(x, y int32) int32 { return x * y }); err != nil {
		return err
	}
	label("names", r.Names())

	for _, name := range r.Names() {
		got, err := r.Apply(name, 6, 3)
		if err != nil {
			return err
		}
		label(fmt.Sprintf("Apply(%q, 6, 3)", name), got)
	}
	label("Coincide(0, 0)", r.Coincide(0, 0))

	if _, err := r.Apply("div", 6, 3); err != nil {
		label("Apply(\"div\", 6, 3)", err)
	}
	return nil
}
