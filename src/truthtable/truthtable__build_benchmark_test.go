package truthtable_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/eriklarko/logic-evaluator/src/boolexpr"
	"github.com/eriklarko/logic-evaluator/src/truthtable"
)

func BenchmarkBuild_SixteenVariables(b *testing.B) {
	node, err := boolexpr.New("(A and B) xor (C or D) nand (E xnor F) nor (G and H) or (I xor J) and (K nor L) xnor (M nand N) or (O and not P)")
	if err != nil {
		b.Fatal(err)
	}

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			generator := truthtable.NewGenerator(0, workers)
			for i := 0; i < b.N; i++ {
				if _, err := generator.Build(context.Background(), node, node.Variables()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
