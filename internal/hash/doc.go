// Package hash provides checksums used to compare byte streams.
//
// # CRC32-Castagnoli (CRC32C)
//
// Semantic-checking streams are compared by their CRC32C digest, the same
// polynomial the storage layer uses for block checksums:
//
//	checksum := hash.CRC32C(data)
package hash
