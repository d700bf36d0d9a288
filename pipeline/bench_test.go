package pipeline

import (
	"context"
	"testing"
)

// BenchmarkRun measures a full 20-instance sweep on 300 nodes.
// Complexity: O(m·n²) sampling + O(m·S·(S+E)) distances.
func BenchmarkRun(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Run(context.Background(), 300, 20, quiet, WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}
