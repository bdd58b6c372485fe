// SPDX-License-Identifier: MIT
package gnn_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kprop/gnn"
	"github.com/katalvlaran/kprop/matrix"
	"github.com/katalvlaran/kprop/topology"
)

// ExampleClassifier_Forward classifies the nodes of a 6-ring and checks that
// every output row is a probability distribution.
func ExampleClassifier_Forward() {
	ring, _ := topology.Cycle(6)
	x, _ := matrix.NewDenseFrom([][]float64{
		{1, 0}, {1, 0}, {1, 0},
		{0, 1}, {0, 1}, {0, 1},
	})

	clf, _ := gnn.New(2, 8, 2, gnn.WithHops(2), gnn.WithDecay(0.1), gnn.WithSeed(1))
	logp, _ := clf.Forward(x, ring, nil, gnn.Eval)

	fmt.Println(logp.Rows(), logp.Cols())
	for i := 0; i < logp.Rows(); i++ {
		row, _ := logp.Row(i)
		fmt.Printf("%.6f\n", math.Exp(row[0])+math.Exp(row[1]))
	}
	// Output:
	// 6 2
	// 1.000000
	// 1.000000
	// 1.000000
	// 1.000000
	// 1.000000
	// 1.000000
}
