package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/myflix-server/internal/model"
)

// fakeMinio implements objectAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	putErr         error
	putSize        int64
	putContentType string
	putBody        []byte

	getRC  io.ReadCloser
	getErr error

	statInfo minioLib.ObjectInfo
	statErr  error
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}

func (f *fakeMinio) PutObject(_ context.Context, _ string, _ string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	f.putSize = size
	f.putContentType = opts.ContentType
	f.putBody, _ = io.ReadAll(r)
	return minioLib.UploadInfo{Size: size}, nil
}

func (f *fakeMinio) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}

func (f *fakeMinio) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return f.statInfo, f.statErr
}

var errNoSuchKey = minioLib.ErrorResponse{Code: "NoSuchKey"}

func TestNewClientWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true}
		c, err := NewClientWithAPI(ctx, api, "posters")
		require.NoError(t, err)
		assert.Equal(t, "posters", c.bucket)
		assert.False(t, api.madeBucket)
	})

	t.Run("creates bucket", func(t *testing.T) {
		api := &fakeMinio{bucketExists: false}
		_, err := NewClientWithAPI(ctx, api, "posters")
		require.NoError(t, err)
		assert.True(t, api.madeBucket)
	})

	t.Run("exists check error", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeMinio{bucketExistsErr: errors.New("boom")}, "posters")
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to ensure bucket exists")
	})

	t.Run("make bucket error", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeMinio{makeBucketErr: errors.New("fail")}, "posters")
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to create bucket")
	})
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "posters"}
		err := c.Upload(ctx, "inception.jpg", bytes.NewReader([]byte("data")), 4, "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, int64(4), api.putSize)
		assert.Equal(t, "image/jpeg", api.putContentType)
		assert.Equal(t, []byte("data"), api.putBody)
	})

	t.Run("error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{putErr: errors.New("put-fail")}, bucket: "posters"}
		err := c.Upload(ctx, "k", bytes.NewReader([]byte("data")), -1, "")
		assert.ErrorContains(t, err, "failed to upload object")
	})
}

func TestClient_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{
			statInfo: minioLib.ObjectInfo{Size: 3, ContentType: "image/png"},
			getRC:    io.NopCloser(bytes.NewReader([]byte("abc"))),
		}
		c := &Client{api: api, bucket: "posters"}

		obj, err := c.Download(ctx, "k")
		require.NoError(t, err)
		defer obj.Close()

		data, err := io.ReadAll(obj)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), data)
		assert.Equal(t, int64(3), obj.Size)
		assert.Equal(t, "image/png", obj.ContentType)
	})

	t.Run("missing key", func(t *testing.T) {
		c := &Client{api: &fakeMinio{statErr: errNoSuchKey}, bucket: "posters"}
		_, err := c.Download(ctx, "absent")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("stat error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{statErr: errors.New("stat-fail")}, bucket: "posters"}
		_, err := c.Download(ctx, "k")
		assert.ErrorContains(t, err, "failed to stat object")
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("get error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{getErr: errors.New("get-fail")}, bucket: "posters"}
		_, err := c.Download(ctx, "k")
		assert.ErrorContains(t, err, "failed to get object")
	})
}

func TestClient_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		c := &Client{api: &fakeMinio{}, bucket: "posters"}
		ok, err := c.Exists(ctx, "k")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not found", func(t *testing.T) {
		c := &Client{api: &fakeMinio{statErr: errNoSuchKey}, bucket: "posters"}
		ok, err := c.Exists(ctx, "absent")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{statErr: errors.New("stat-fail")}, bucket: "posters"}
		ok, err := c.Exists(ctx, "k")
		assert.False(t, ok)
		assert.ErrorContains(t, err, "failed to stat object")
	})
}
