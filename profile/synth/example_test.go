package synth_test

import (
	"fmt"

	"github.com/cwbudde/algo-surf/profile/synth"
)

func ExampleGenerator_Sinusoid() {
	g, _ := synth.New(2.0)
	p, _ := g.Sinusoid(8, 1, 4)
	fmt.Printf("%.0f %.0f %.0f %.0f\n", p[0], p[1], p[2], p[3])
	// Output:
	// 0 1 0 -1
}
