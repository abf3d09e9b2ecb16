// Package main provides the dualgrad demonstration CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/dualgrad/autodiff"
	"github.com/born-ml/dualgrad/dual"
	"github.com/born-ml/dualgrad/gradcheck"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("dualgrad %s\n", version)
		return
	}

	x := flag.Float64("x", 3, "Point at which the forward-mode example is differentiated")
	check := flag.Bool("check", false, "Verify both examples against finite differences")
	flag.Parse()

	fmt.Println("reverse mode autodiff")
	reverseExample()

	fmt.Println("forward mode autodiff")
	forwardExample(*x)

	if *check {
		if err := verify(*x); err != nil {
			log.Fatalf("gradient check failed: %v", err)
		}
		fmt.Println("gradient check passed")
	}
}

// quadratic builds a*c² + b*c + 9.
func quadratic(leaves []*autodiff.Node) *autodiff.Node {
	a, b, c := leaves[0], leaves[1], leaves[2]
	return a.Mul(c.Pow(2)).Add(b.Mul(c)).Add(autodiff.New(9))
}

// polynomial is f(x) = x² + 2x + 1.
func polynomial(x dual.Number) dual.Number {
	return x.PowReal(2).Add(x.MulReal(2)).AddReal(1)
}

func reverseExample() {
	leaves := []*autodiff.Node{autodiff.New(3), autodiff.New(5), autodiff.New(1)}

	// 3x² + 5x + 9; let x = 1
	exp1 := quadratic(leaves)
	exp1.Backward()

	for _, v := range []*autodiff.Node{leaves[2], exp1} {
		fmt.Println(v)
	}
}

func forwardExample(x float64) {
	result := dual.Forward(polynomial, x)
	fmt.Printf("eval_result: %g, dual: %g\n", result.Val, result.Dual)
}

func verify(x float64) error {
	if err := gradcheck.CheckBackward(quadratic, []float64{3, 5, 1}, gradcheck.DefaultTolerance); err != nil {
		return err
	}
	return gradcheck.CheckForward(polynomial, x, gradcheck.DefaultTolerance)
}
