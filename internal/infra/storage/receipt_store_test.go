package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"encontro/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()

	return &config.Config{
		Uploads: &config.UploadsConfig{
			BucketURL: "file://" + filepath.ToSlash(dir),
		},
	}
}

func TestReceiptStore_SaveAndOpen(t *testing.T) {
	ctx := context.Background()
	store, err := NewReceiptStore(ctx, fileConfig(t))
	require.NoError(t, err)

	content := "comprovante pix"
	err = store.Save(ctx, "pagamento-123.pdf", "application/pdf", strings.NewReader(content))
	require.NoError(t, err)

	reader, err := store.Open(ctx, "pagamento-123.pdf")
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestReceiptStore_OpenMissing(t *testing.T) {
	ctx := context.Background()
	store, err := NewReceiptStore(ctx, fileConfig(t))
	require.NoError(t, err)

	reader, err := store.Open(ctx, "nao-existe.pdf")
	assert.Error(t, err)
	assert.Nil(t, reader)
}

func TestReceiptStore_MissingBucketURL(t *testing.T) {
	store, err := NewReceiptStore(context.Background(), &config.Config{})
	assert.Error(t, err)
	assert.Nil(t, store)
}
