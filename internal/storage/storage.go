package storage

import "context"

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// ObjectStorage uploads raw byte buffers to a remote object store and
// returns durable public URLs. A failed upload is terminal for that file;
// no retry is attempted and previously uploaded files are not retracted.
type ObjectStorage interface {
	Upload(ctx context.Context, data []byte, contentType, folder string) (string, error)
}
