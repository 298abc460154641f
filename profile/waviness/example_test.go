package waviness_test

import (
	"fmt"

	"github.com/cwbudde/algo-surf/profile/waviness"
)

func ExampleExtract() {
	p := []float64{2.5, 2.5, 2.5, 2.5, 2.5, 2.5}
	w, _ := waviness.Extract(p, 1.0, 800)
	fmt.Printf("%d %.1f\n", len(w), w[0])
	// Output:
	// 6 2.5
}

func ExampleNew() {
	f, _ := waviness.New(2.0)
	fmt.Printf("%.0f\n", f.CutoffWavelength())
	// Output:
	// 800
}

func ExampleFilter_CutoffIndex() {
	f, _ := waviness.New(2.0, waviness.WithCutoffWavelength(800))
	k, m := f.CutoffIndex(5000)
	fmt.Printf("k=%d fft=%d\n", k, m)
	// Output:
	// k=40 fft=16384
}
