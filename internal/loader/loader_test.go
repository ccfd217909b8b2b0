package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFile_Success(t *testing.T) {
	path := writeFile(t, "resume.txt", "Java developer with SQL experience.")

	text, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, "Java developer with SQL experience.", text)
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestFile_Directory(t *testing.T) {
	_, err := File(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestFile_Empty(t *testing.T) {
	path := writeFile(t, "empty.txt", "   \n ")

	_, err := File(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestJob_FileSource(t *testing.T) {
	path := writeFile(t, "job.txt", "Backend role: Java and SQL.")

	text, err := Job(context.Background(), path, "")
	require.NoError(t, err)
	assert.Contains(t, text, "Backend role")
}

func TestJob_URLSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><main>Backend role: Java and SQL.</main></body></html>`))
	}))
	defer server.Close()

	text, err := Job(context.Background(), "", server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend role")
}

func TestJob_BothSourcesRejected(t *testing.T) {
	_, err := Job(context.Background(), "job.txt", "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestJob_NoSource(t *testing.T) {
	_, err := Job(context.Background(), "", "")
	assert.Error(t, err)
}
