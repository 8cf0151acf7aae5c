// Package storage provides the object storage client for remote snapshots.
//
// Snapshots are plain directories of YAML documents; pushing one to an S3 or
// MinIO bucket lets two instances that share no filesystem promote
// configuration between environments. The Client interface wraps the minio
// SDK with exactly the operations the transfer service uses, and the mocks
// subpackage provides a testify mock of it.
//
// Object storage is optional: export, import, and validate never touch it.
package storage
