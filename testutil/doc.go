// Package testutil provides testing utilities for the file doubles.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Blocks
//
//	rng := testutil.NewRNG(seed)
//	block := rng.AlignedBlock(4096, 4096) // random bytes, 4096-aligned
//	parts := testutil.Split(block, 3)     // scatter list for WritevAsync
package testutil
