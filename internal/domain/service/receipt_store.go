package service

import (
	"context"
	"io"
)

// ReceiptStore persists uploaded PIX proof-of-payment files. Implementations
// sit on a blob store; the domain only sees opaque object names.
type ReceiptStore interface {
	// Save writes the receipt content under the given object name.
	Save(ctx context.Context, name string, contentType string, body io.Reader) error

	// Open returns a reader over a previously stored receipt.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
