package snapshot

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"config-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testBucket = "config-snapshots"

func TestTransferPush(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads Only YAML Documents", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.yml"), []byte("a: 1\n"), 0o644))
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "ir_config_parameters.yml"), []byte("b: 2\n"), 0o644))
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))
		assert.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, testBucket).Return(true, nil)
		client.On("PutObject", mock.Anything, testBucket, "releases/manifest.yml",
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)
		client.On("PutObject", mock.Anything, testBucket, "releases/ir_config_parameters.yml",
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

		transfer := NewTransfer(client, testBucket, zap.NewNop())
		count, err := transfer.Push(ctx, dir, "releases")
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		client.AssertExpectations(t)
	})

	t.Run("Creates Missing Bucket", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.yml"), []byte("a: 1\n"), 0o644))

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, testBucket).Return(false, nil)
		client.On("MakeBucket", mock.Anything, testBucket, mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, testBucket, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

		transfer := NewTransfer(client, testBucket, zap.NewNop())
		count, err := transfer.Push(ctx, dir, "")
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		client.AssertExpectations(t)
	})

	t.Run("Upload Failure Aborts", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.yml"), []byte("a: 1\n"), 0o644))

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, testBucket).Return(true, nil)
		client.On("PutObject", mock.Anything, testBucket, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, assert.AnError)

		transfer := NewTransfer(client, testBucket, zap.NewNop())
		count, err := transfer.Push(ctx, dir, "releases")
		assert.Error(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestTransferPull(t *testing.T) {
	ctx := context.Background()

	t.Run("Downloads Every Object Under Prefix", func(t *testing.T) {
		objCh := make(chan minio.ObjectInfo, 2)
		objCh <- minio.ObjectInfo{Key: "releases/manifest.yml"}
		objCh <- minio.ObjectInfo{Key: "releases/ir_sequences.yml"}
		close(objCh)
		var objects <-chan minio.ObjectInfo = objCh

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, testBucket, mock.Anything).Return(objects)
		client.On("GetObject", mock.Anything, testBucket, "releases/manifest.yml", mock.Anything).
			Return(io.NopCloser(strings.NewReader("export_date: now\n")), nil)
		client.On("GetObject", mock.Anything, testBucket, "releases/ir_sequences.yml", mock.Anything).
			Return(io.NopCloser(strings.NewReader("ir_sequences: []\n")), nil)

		dir := t.TempDir()
		transfer := NewTransfer(client, testBucket, zap.NewNop())
		count, err := transfer.Pull(ctx, "releases", dir)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)

		content, err := os.ReadFile(filepath.Join(dir, "manifest.yml"))
		assert.NoError(t, err)
		assert.Equal(t, "export_date: now\n", string(content))
		client.AssertExpectations(t)
	})

	t.Run("Listing Error Aborts", func(t *testing.T) {
		objCh := make(chan minio.ObjectInfo, 1)
		objCh <- minio.ObjectInfo{Err: assert.AnError}
		close(objCh)
		var objects <-chan minio.ObjectInfo = objCh

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, testBucket, mock.Anything).Return(objects)

		transfer := NewTransfer(client, testBucket, zap.NewNop())
		count, err := transfer.Pull(ctx, "releases", t.TempDir())
		assert.Error(t, err)
		assert.Equal(t, 0, count)
	})
}
