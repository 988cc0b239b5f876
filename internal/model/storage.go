package model

import (
	"context"
	"io"
)

// Storage keeps binary objects such as movie posters.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (Object, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// Object is a downloaded object stream with its metadata.
type Object struct {
	io.ReadCloser
	Size        int64
	ContentType string
}
