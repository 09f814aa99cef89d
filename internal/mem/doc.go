// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Direct I/O style interfaces require buffers whose start address is a
// multiple of the device block size. AllocAligned over-allocates and slices
// into the backing array so the returned slice starts on such a boundary.
package mem
