package repository

import "context"

// ObjectStore reads and writes objects addressed by s3://bucket/key URIs.
type ObjectStore interface {
	Get(ctx context.Context, uri string) ([]byte, error)
	// Put uploads the local file to uri and returns the final object URI.
	Put(ctx context.Context, uri string, localPath string) (string, error)
}
