package corpus_test

import (
	"testing"

	"github.com/katalvlaran/changepoint/corpus"
)

// benchmarkBuild measures end-to-end corpus construction (draw + simulate +
// encode) for n samples at the given worker count.
func benchmarkBuild(b *testing.B, n, workers int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := corpus.Build(n,
			corpus.WithSeed(1),
			corpus.WithWorkers(workers),
			corpus.WithEncoding(smallEnc()))
		if err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_SerialSmall benchmarks 100 samples on one worker.
func BenchmarkBuild_SerialSmall(b *testing.B) {
	benchmarkBuild(b, 100, 1)
}

// BenchmarkBuild_Parallel8 benchmarks 100 samples across 8 workers.
func BenchmarkBuild_Parallel8(b *testing.B) {
	benchmarkBuild(b, 100, 8)
}
