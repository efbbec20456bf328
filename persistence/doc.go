// Package persistence serializes learned subspaces to a compact binary
// format: a fixed little-endian header with magic, version, element-type
// and compression tags, followed by an optionally compressed payload
// protected by a CRC32 checksum. CRC32 detects accidental corruption only;
// it is not tamper-proof.
package persistence
