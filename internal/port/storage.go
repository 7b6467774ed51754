package port

import "context"

// DocumentArchive stores rendered invoice documents in durable object
// storage and returns the location of the stored copy.
type DocumentArchive interface {
	Store(ctx context.Context, key, contentType string, body []byte) (location string, err error)
}
