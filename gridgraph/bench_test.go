package gridgraph_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/patchwall/gridgraph"
)

// randomRows builds an n×n wall where roughly half the cells need repair.
func randomRows(n int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	rows := make([]string, n)
	var sb strings.Builder
	for r := 0; r < n; r++ {
		sb.Reset()
		for c := 0; c < n; c++ {
			if rng.Intn(2) == 0 {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// BenchmarkNewGrid measures decoding of a random 1000×1000 wall.
// Complexity: O(W×H)
func BenchmarkNewGrid(b *testing.B) {
	rows := randomRows(1000, 42)
	opts := gridgraph.DefaultGridOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.NewGrid(rows, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRegions measures Regions on a random 1000×1000 wall.
// Complexity: O(W×H)
func BenchmarkRegions(b *testing.B) {
	g, err := gridgraph.NewGrid(randomRows(1000, 42), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions()
	}
}
