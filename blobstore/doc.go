// Package blobstore abstracts where serialized model artifacts live.
// Backends exist for memory (tests), the local filesystem, Amazon S3 and
// MinIO/S3-compatible object storage. Model files are small and read
// whole, so the interface is deliberately simple: Put, Open, Delete, List.
package blobstore
