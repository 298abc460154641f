package amplitude

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-surf/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		p := testutil.SineProfile(100, 1, 1, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				Calculate(p)
			}
		})
	}
}
