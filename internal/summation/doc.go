// Package summation implements the range summation strategies benchmarked by
// the application: a sequential baseline and several fork-join variants that
// partition [RangeStart, RangeEnd) across worker goroutines.
//
// Every strategy returns the same 128-bit value, ExpectedSum. The partitioned
// variants cover the half-open range [RangeStart, Endpoint) and add Endpoint
// back once all workers have been joined.
package summation
