package synth

import (
	"math"
	"testing"
)

func TestSinusoid(t *testing.T) {
	g, err := New(2.0)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Wavelength of 8 um at 2 um spacing: 4 samples per period.
	p, err := g.Sinusoid(8, 1.5, 8)
	if err != nil {
		t.Fatalf("Sinusoid error: %v", err)
	}
	if len(p) != 8 {
		t.Fatalf("length mismatch: got %d", len(p))
	}

	want := []float64{0, 1.5, 0, -1.5, 0, 1.5, 0, -1.5}
	for i := range want {
		if math.Abs(p[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, p[i], want[i])
		}
	}
}

func TestSinusoidValidation(t *testing.T) {
	g, err := New(1.0)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err := g.Sinusoid(100, 1, 0); err == nil {
		t.Fatalf("expected error for zero samples")
	}
	if _, err := g.Sinusoid(0, 1, 10); err == nil {
		t.Fatalf("expected error for zero wavelength")
	}
	if _, err := New(0); err == nil {
		t.Fatalf("expected error for zero sample distance")
	}
}

func TestNoiseDeterminism(t *testing.T) {
	g1, _ := New(1.0, WithSeed(42))
	g2, _ := New(1.0, WithSeed(42))

	n1, err := g1.Noise(0.5, 100)
	if err != nil {
		t.Fatalf("Noise error: %v", err)
	}
	n2, err := g2.Noise(0.5, 100)
	if err != nil {
		t.Fatalf("Noise error: %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("index %d: %v != %v", i, n1[i], n2[i])
		}
		if math.Abs(n1[i]) > 0.5 {
			t.Fatalf("index %d: noise %v exceeds amplitude", i, n1[i])
		}
	}

	if _, err := g1.Noise(-1, 10); err == nil {
		t.Fatalf("expected error for negative amplitude")
	}
}

func TestStep(t *testing.T) {
	g, _ := New(1.0)

	p, err := g.Step(2.0, 3, 6)
	if err != nil {
		t.Fatalf("Step error: %v", err)
	}

	want := []float64{0, 0, 0, 2, 2, 2}
	for i := range want {
		if p[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, p[i], want[i])
		}
	}
}

func TestAdd(t *testing.T) {
	out, err := Add([]float64{1, 2}, []float64{10, 20}, []float64{100, 200})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if out[0] != 111 || out[1] != 222 {
		t.Fatalf("unexpected sum: %v", out)
	}

	if _, err := Add(); err == nil {
		t.Fatalf("expected error for no inputs")
	}
	if _, err := Add([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatalf("expected error for length mismatch")
	}
}
