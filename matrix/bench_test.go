package matrix_test

import (
	"testing"

	"github.com/katalvlaran/healthnet/builder"
	"github.com/katalvlaran/healthnet/matrix"
)

func BenchmarkShortestPaths_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(12, 12))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.ShortestPaths(g); err != nil {
			b.Fatal(err)
		}
	}
}
