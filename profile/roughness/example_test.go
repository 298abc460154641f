package roughness_test

import (
	"fmt"

	"github.com/cwbudde/algo-surf/profile/roughness"
)

func ExampleSplit() {
	p := []float64{3, 3, 3, 3, 3, 3, 3, 3}
	w, r, _ := roughness.Split(p, 1.0, 800)
	fmt.Printf("w[0]=%.1f len(r)=%d\n", w[0], len(r))
	// Output:
	// w[0]=3.0 len(r)=8
}
