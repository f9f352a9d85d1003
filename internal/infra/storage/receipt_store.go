// Package storage persists uploaded payment receipts on a blob store.
package storage

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register the file:// bucket driver

	"encontro/config"
	"encontro/internal/domain/service"
)

// receiptStore implements service.ReceiptStore on top of a gocloud.dev
// bucket. The bucket URL decides the backing store, so local disk and cloud
// object storage are interchangeable through configuration.
type receiptStore struct {
	bucket *blob.Bucket
}

// NewReceiptStore opens the configured bucket. For file:// URLs the target
// directory is created if missing.
func NewReceiptStore(ctx context.Context, cfg *config.Config) (service.ReceiptStore, error) {
	if cfg.Uploads == nil || cfg.Uploads.BucketURL == "" {
		return nil, errors.New("uploads bucket URL must be provided")
	}

	bucketURL := cfg.Uploads.BucketURL
	if dir, ok := localDir(bucketURL); ok {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create receipts directory")
		}
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open receipts bucket %s", bucketURL)
	}

	return &receiptStore{bucket: bucket}, nil
}

// Save writes the receipt content under the given object name.
func (s *receiptStore) Save(ctx context.Context, name string, contentType string, body io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "open writer for receipt %s", name)
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return errors.Wrapf(err, "write receipt %s", name)
	}

	return errors.Wrapf(writer.Close(), "close receipt %s", name)
}

// Open returns a reader over a previously stored receipt.
func (s *receiptStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, name, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open receipt %s", name)
	}

	return reader, nil
}

// Close releases the underlying bucket.
func (s *receiptStore) Close() error {
	return s.bucket.Close()
}

func localDir(bucketURL string) (string, bool) {
	const scheme = "file://"
	if len(bucketURL) > len(scheme) && bucketURL[:len(scheme)] == scheme {
		return bucketURL[len(scheme):], true
	}

	return "", false
}
