// Package minio implements the model artifact store on MinIO and other
// S3-compatible object storage.
package minio
