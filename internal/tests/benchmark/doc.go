// Package benchmark provides performance benchmarks for ossd.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Run a single scale:
//
//	go test -bench='BenchmarkReconcile/projects_10000' -benchmem ./internal/tests/benchmark/...
//
// Compare results:
//
//	benchstat old.txt new.txt
package benchmark
