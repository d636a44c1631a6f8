package media

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFixture(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	header := form.File["file"][0]
	file, err := header.Open()
	require.NoError(t, err)
	return file, header
}

func TestStore_Save(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root, "/media")
	require.NoError(t, err)

	file, header := uploadFixture(t, "photo.JPG", []byte("fake-jpeg-bytes"))
	defer file.Close()

	relPath, err := store.Save(file, header, "products")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "products/"), "Path should start with the subdir")
	assert.True(t, strings.HasSuffix(relPath, ".jpg"), "Extension should be kept, lowercased")
	assert.NotContains(t, relPath, "photo", "Original filename must not leak into the stored name")

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-jpeg-bytes"), data)

	assert.Equal(t, "/media/"+relPath, store.URL(relPath))
}

func TestStore_Save_UnsupportedType(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/media")
	require.NoError(t, err)

	file, header := uploadFixture(t, "payload.exe", []byte("nope"))
	defer file.Close()

	_, err = store.Save(file, header, "products")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestStore_Save_RejectsEscapingSubdir(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(filepath.Join(root, "media"), "/media")
	require.NoError(t, err)

	for _, subdir := range []string{"..", "../outside", "a/../../outside", "/etc", ""} {
		file, header := uploadFixture(t, "photo.jpg", []byte("fake"))
		_, err = store.Save(file, header, subdir)
		file.Close()
		require.Error(t, err, "subdir %q must be rejected", subdir)
		assert.True(t, errors.Is(err, ErrInvalidSubdir), "subdir %q should map to ErrInvalidSubdir", subdir)
	}

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1, "Nothing may be written outside the media root")
	assert.Equal(t, "media", entries[0].Name())
}

func TestStore_Save_NestedSubdirStaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root, "/media")
	require.NoError(t, err)

	file, header := uploadFixture(t, "photo.jpg", []byte("fake"))
	defer file.Close()

	relPath, err := store.Save(file, header, "products/./gallery")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "products/gallery/"), "Dot segments should be normalized away")
}

func TestStore_Remove_MissingFileIsFine(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/media")
	require.NoError(t, err)

	assert.NoError(t, store.Remove("products/gone.jpg"))
	assert.NoError(t, store.Remove(""))
}
