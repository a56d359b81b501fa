package social

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadPosts(t *testing.T) {
	path := writeDataset(t, "user,content\nalice,hello world\nbob,\"quoted, with comma\"\n")

	posts, err := ReadPosts(path)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(posts))
	assert.Equal(t, "alice", posts[0].User)
	assert.Equal(t, "hello world", posts[0].Content)
	assert.Equal(t, "quoted, with comma", posts[1].Content)
}

func TestReadPosts_CoercesShortRows(t *testing.T) {
	// A row with only a user column keeps its slot with empty content.
	path := writeDataset(t, "user,content\ncarol\ndave,msg,extra-column\n")

	posts, err := ReadPosts(path)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(posts))
	assert.Equal(t, "carol", posts[0].User)
	assert.Equal(t, "", posts[0].Content)
	assert.Equal(t, "dave", posts[1].User)
	assert.Equal(t, "msg", posts[1].Content)
}

func TestReadPosts_MalformedLinesRetried(t *testing.T) {
	// The bare quote makes the strict pass fail; the permissive retry
	// keeps the rows it can still parse.
	path := writeDataset(t, "user,content\nalice,plain\neve,say \"hi\" there\n")

	posts, err := ReadPosts(path)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(posts))
	assert.Equal(t, "alice", posts[0].User)
	assert.Equal(t, "eve", posts[1].User)
}

func TestReadPosts_HeaderOnly(t *testing.T) {
	path := writeDataset(t, "user,content\n")

	posts, err := ReadPosts(path)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(posts))
}

func TestReadPosts_MissingFile(t *testing.T) {
	_, err := ReadPosts(filepath.Join(t.TempDir(), "nope.csv"))

	assert.NotEqual(t, nil, err)
}
