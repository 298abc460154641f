package profile_test

import (
	"fmt"

	"github.com/cwbudde/algo-surf/profile"
)

func ExampleMirrorExtend() {
	out, _ := profile.MirrorExtend([]float64{1, 2, 3}, 3, 3)
	fmt.Println(out)
	// Output:
	// [3 2 1 1 2 3 3 2 1]
}

func ExampleCrop() {
	out, _ := profile.Crop([]float64{3, 2, 1, 1, 2, 3, 3, 2, 1}, 3, 3)
	fmt.Println(out)
	// Output:
	// [1 2 3]
}
