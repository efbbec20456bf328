// Package s3 implements the model artifact store on Amazon S3. Uploads go
// through the multipart upload manager; an optional client-side rate
// limiter keeps bulk model publishing below account throttling limits.
package s3
