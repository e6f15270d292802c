package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/go-keyopt/internal/fuzzy"
	"github.com/dzonerzy/go-keyopt/internal/intern"
)

// Category: supporting machinery

var optionNames = []string{
	"copy", "move", "delete", "verbose", "retries", "target", "source",
	"output", "format", "timeout", "parallel", "dry-run",
}

func BenchmarkFuzzyFindBest(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fuzzy.FindBestOption("verbos", optionNames, 2)
	}
}

func BenchmarkInternLookup(b *testing.B) {
	in := intern.New(len(optionNames))
	in.PreIntern(optionNames)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := in.Lookup("verbose"); !ok {
			b.Fatal("lookup miss")
		}
	}
}
