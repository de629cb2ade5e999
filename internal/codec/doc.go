// Package codec compresses snapshot payloads with LZ4 or ZSTD.
//
// Payloads that do not compress to below 90% of their raw size are stored
// uncompressed; Compress reports which type was actually applied.
package codec
