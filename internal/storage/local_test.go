package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// minimal valid PNG header, enough for content sniffing
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func multipartUpload(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(MaxImageSize))

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	return file, header
}

func TestSaveImageStoresPNG(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads", "logos")
	require.NoError(t, err)

	file, header := multipartUpload(t, "logo.png", pngHeader)
	defer file.Close()

	url, err := store.SaveImage(file, header, "logos")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/logos/"))
	require.True(t, strings.HasSuffix(url, ".png"))

	// the file landed on disk with the sniffed extension, not the client name
	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(dir, "logos", name))
	require.NoError(t, err)
	require.Equal(t, pngHeader, data)
	require.NotContains(t, name, "logo")
}

func TestSaveImageRejectsNonImage(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", "logos")
	require.NoError(t, err)

	file, header := multipartUpload(t, "evil.png", []byte("#!/bin/sh\necho pwned"))
	defer file.Close()

	_, err = store.SaveImage(file, header, "logos")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported image type")
}

func TestSaveImageRejectsOversize(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", "logos")
	require.NoError(t, err)

	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, MaxImageSize)...)
	file, header := multipartUpload(t, "big.png", big)
	defer file.Close()

	_, err = store.SaveImage(file, header, "logos")
	require.Error(t, err)
}

func TestSaveImageDistinctNamesForSameContent(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", "logos")
	require.NoError(t, err)

	f1, h1 := multipartUpload(t, "a.png", pngHeader)
	defer f1.Close()
	url1, err := store.SaveImage(f1, h1, "logos")
	require.NoError(t, err)

	f2, h2 := multipartUpload(t, "a.png", pngHeader)
	defer f2.Close()
	url2, err := store.SaveImage(f2, h2, "logos")
	require.NoError(t, err)

	require.NotEqual(t, url1, url2)
}
