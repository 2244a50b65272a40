package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/uploads/"})
	require.NoError(t, err)

	key := "media/p1/photo.jpg"
	require.NoError(t, s.Save(ctx, key, strings.NewReader("jpeg-bytes"), "image/jpeg"))

	ok, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	rc, err := s.Open(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))

	assert.Equal(t, "/uploads/media/p1/photo.jpg", s.URL(key))

	require.NoError(t, s.Delete(ctx, key))
	ok, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Open(ctx, key)
	assert.ErrorIs(t, err, ErrObjectNotFound)

	// повторное удаление не ошибка
	assert.NoError(t, s.Delete(ctx, key))
}

func TestLocalStorageStaysInsideRoot(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: root})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "../../escape.txt", strings.NewReader("x"), "text/plain"))

	ok, err := s.Exists(ctx, "escape.txt")
	require.NoError(t, err)
	assert.True(t, ok, "traversal must be resolved inside the storage root")
}

func TestKeys(t *testing.T) {
	key := NewObjectKey("p1", "Holiday.PNG")
	assert.True(t, strings.HasPrefix(key, "media/p1/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	assert.Equal(t, "media/p1/abc_thumb.jpg", ThumbnailKey("media/p1/abc.png"))
}

func TestNewStorageRejectsUnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)

	_, err = NewStorage(Config{Type: "cloudflare_r2"})
	assert.Error(t, err, "r2 requires an endpoint")
}
