package usecase_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/application/usecase"
	"inkwell/pkg/tasks"
)

func newUploadFixture() (*usecase.Uploader, *memoryBlobStore, *memoryCatalog, *recordingPublisher, *tasks.Runner) {
	blobs := newMemoryBlobStore()
	catalog := newMemoryCatalog()
	publisher := &recordingPublisher{}
	runner := tasks.NewRunner(time.Second)
	uploader := usecase.NewUploader(publisher, catalog, blobs, blobs, runner)

	return uploader, blobs, catalog, publisher, runner
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.White)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestUpload(t *testing.T) {
	t.Parallel()

	uploader, blobs, catalog, publisher, _ := newUploadFixture()

	content := pngBytes(t, 12, 8)
	media, err := uploader.Upload(context.Background(), usecase.UploadFile{
		Name:    "header.png",
		Content: content,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, media.Key)
	assert.Equal(t, int64(len(content)), media.Size, "size must be the exact byte length")
	assert.Equal(t, "image/png", media.MimeType)
	assert.Contains(t, media.URL, media.Key)
	require.NotNil(t, media.Dimensions)
	assert.Equal(t, 12, media.Dimensions.Width)
	assert.Equal(t, 8, media.Dimensions.Height)

	assert.True(t, blobs.contains(media.Key))
	stored, err := catalog.GetByKey(context.Background(), media.Key)
	require.NoError(t, err)
	assert.Equal(t, "header.png", stored.FileName)

	assert.Equal(t, []string{"media.uploaded:" + media.Key}, publisher.events)
}

func TestUploadValidation(t *testing.T) {
	t.Parallel()

	uploader, _, _, _, _ := newUploadFixture()

	tests := []struct {
		name    string
		file    usecase.UploadFile
		wantErr error
	}{
		{
			name:    "empty content",
			file:    usecase.UploadFile{Name: "empty.png"},
			wantErr: usecase.ErrEmptyFile,
		},
		{
			name:    "blank name",
			file:    usecase.UploadFile{Name: "  ", Content: []byte("data")},
			wantErr: usecase.ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := uploader.Upload(context.Background(), tt.file)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUploadTransportFailure(t *testing.T) {
	t.Parallel()

	uploader, blobs, catalog, publisher, runner := newUploadFixture()
	blobs.failPut = true

	_, err := uploader.Upload(context.Background(), usecase.UploadFile{
		Name:    "doc.txt",
		Content: []byte("hello"),
	})
	require.ErrorIs(t, err, usecase.ErrUploadTransport)

	runner.Wait()

	assert.Empty(t, catalog.rows, "no catalog row without a blob")
	assert.Empty(t, publisher.events)
}

func TestUploadCatalogInsertRollback(t *testing.T) {
	t.Parallel()

	uploader, blobs, catalog, publisher, runner := newUploadFixture()
	catalog.failInsert = true

	_, err := uploader.Upload(context.Background(), usecase.UploadFile{
		Name:    "orphan.txt",
		Content: []byte("orphaned bytes"),
	})
	require.ErrorIs(t, err, usecase.ErrCatalogInsert,
		"insert failure must surface distinctly from a transport failure")

	runner.Wait()

	blobs.mu.Lock()
	remaining := len(blobs.objects)
	blobs.mu.Unlock()
	assert.Zero(t, remaining, "compensating delete must remove the orphaned blob")
	assert.Empty(t, catalog.rows)
	assert.Empty(t, publisher.events)
}

func TestUploadNonImageHasNoDimensions(t *testing.T) {
	t.Parallel()

	uploader, _, _, _, _ := newUploadFixture()

	media, err := uploader.Upload(context.Background(), usecase.UploadFile{
		Name:    "notes.txt",
		Content: []byte("plain text, not an image"),
	})
	require.NoError(t, err)
	assert.Nil(t, media.Dimensions)
}
