package snapshot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"config-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Transfer moves snapshot directories to and from object storage, so
// environments that share no filesystem can promote configuration.
type Transfer struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewTransfer creates a transfer bound to a bucket.
func NewTransfer(client storage.Client, bucket string, l *zap.Logger) *Transfer {
	return &Transfer{client: client, bucket: bucket, logger: l}
}

// Push uploads every YAML document in dir under prefix, creating the bucket
// if needed. Returns the number of uploaded documents.
func (t *Transfer) Push(ctx context.Context, dir, prefix string) (int, error) {
	if err := t.ensureBucket(ctx); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read snapshot directory: %w", err)
	}

	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}
		if err := t.pushFile(ctx, dir, prefix, entry.Name()); err != nil {
			return uploaded, err
		}
		uploaded++
	}

	t.logger.Info("Pushed snapshot",
		zap.String("prefix", prefix),
		zap.Int("documents", uploaded),
	)
	return uploaded, nil
}

func (t *Transfer) pushFile(ctx context.Context, dir, prefix, name string) error {
	filePath := filepath.Join(dir, name)
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", filePath, err)
	}

	objectName := path.Join(prefix, name)
	_, err = t.client.PutObject(ctx, t.bucket, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/yaml",
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", objectName, err)
	}
	return nil
}

// Pull downloads every object under prefix into dir. Returns the number of
// downloaded documents.
func (t *Transfer) Pull(ctx context.Context, prefix, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create target directory: %w", err)
	}

	downloaded := 0
	objects := t.client.ListObjects(ctx, t.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for obj := range objects {
		if obj.Err != nil {
			return downloaded, fmt.Errorf("list objects: %w", obj.Err)
		}
		if err := t.pullObject(ctx, obj.Key, dir); err != nil {
			return downloaded, err
		}
		downloaded++
	}

	t.logger.Info("Pulled snapshot",
		zap.String("prefix", prefix),
		zap.Int("documents", downloaded),
	)
	return downloaded, nil
}

func (t *Transfer) pullObject(ctx context.Context, key, dir string) error {
	rc, err := t.client.GetObject(ctx, t.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("download %s: %w", key, err)
	}
	defer rc.Close()

	target := filepath.Join(dir, path.Base(key))
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, rc); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

func (t *Transfer) ensureBucket(ctx context.Context) error {
	exists, err := t.client.BucketExists(ctx, t.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := t.client.MakeBucket(ctx, t.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	return nil
}
