// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client. The bridge uses it for two optional jobs: importing
// a host cache snapshot written by another process, and exporting sync run reports
// with a bounded retention.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket)
package storage
