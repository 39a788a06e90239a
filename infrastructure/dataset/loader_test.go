package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const sampleDataset = `{
  "users": [
    {"id": "u1", "username": "alice", "attributes": {"age": 30, "gender": "female", "location": "Berlin"}, "posts": ["p1"]},
    {"id": "u2", "username": "bob", "attributes": {"age": 22, "gender": "male", "location": "Oslo"}, "posts_read": ["p1"]}
  ],
  "posts": [
    {"id": "p1", "author": "u1", "content": "hello world", "creation_time": "2024-01-01T10:00:00Z", "viewed_by": ["u2"]}
  ],
  "comments": []
}`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_Load(t *testing.T) {
	source := NewFileSource(writeDataset(t, sampleDataset), zaptest.NewLogger(t))

	ds, err := source.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Users, 2)
	assert.Equal(t, "u1", ds.Users[0].ID)
	assert.Equal(t, "alice", ds.Users[0].Username)
	assert.Equal(t, 30, ds.Users[0].Attributes.Age)
	assert.Equal(t, []string{"p1"}, ds.Users[1].PostsRead)

	require.Len(t, ds.Posts, 1)
	assert.Equal(t, []string{"u2"}, ds.Posts[0].ViewedBy)
	assert.Empty(t, ds.Comments)
}

func TestFileSource_MissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "absent.json"), zaptest.NewLogger(t))

	_, err := source.Load(context.Background())
	assert.Error(t, err)
}

func TestFileSource_MalformedJSON(t *testing.T) {
	source := NewFileSource(writeDataset(t, "{not json"), zaptest.NewLogger(t))

	_, err := source.Load(context.Background())
	assert.Error(t, err)
}
