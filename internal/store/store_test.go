package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmalloy/folio/internal/content"
)

func testDoc() content.Document {
	return content.Document{
		"social": []any{
			map[string]any{"id": "s1", "platform": "github", "url": "https://github.com/x"},
		},
		"blog": map[string]any{
			"title": "Writing",
			"posts": []any{
				map[string]any{"id": "1", "title": "Hello", "published": true},
			},
		},
	}
}

// stores under test; sqlite is exercised the same way but needs cgo, so it
// shares the suite rather than having a bespoke one.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	jf, err := NewJSONFileStore(filepath.Join(t.TempDir(), "content.json"))
	require.NoError(t, err)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"json":   jf,
	}
}

func TestLoadEmptyOnFirstRun(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			doc, err := s.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, doc)

			_, ok, err := s.LoadSection(context.Background(), "blog")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Save(ctx, testDoc()))

			doc, err := s.Load(ctx)
			require.NoError(t, err)
			require.Contains(t, doc, "social")
			require.Contains(t, doc, "blog")

			social := doc["social"].([]any)
			require.Len(t, social, 1)
			assert.Equal(t, "github", social[0].(map[string]any)["platform"])

			blog := doc["blog"].(map[string]any)
			posts := blog["posts"].([]any)
			require.Len(t, posts, 1)
			assert.Equal(t, true, posts[0].(map[string]any)["published"])
		})
	}
}

func TestSaveSectionLeavesOthersAlone(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Save(ctx, testDoc()))

			require.NoError(t, s.SaveSection(ctx, "social", []any{}))

			value, ok, err := s.LoadSection(ctx, "social")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Empty(t, value)

			blog, ok, err := s.LoadSection(ctx, "blog")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "Writing", blog.(map[string]any)["title"])
		})
	}
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	doc := testDoc()
	require.NoError(t, s.Save(ctx, doc))

	// Mutating what we saved or loaded must not reach the store.
	doc["social"].([]any)[0].(map[string]any)["platform"] = "mutated"
	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "github", loaded["social"].([]any)[0].(map[string]any)["platform"])

	loaded["social"].([]any)[0].(map[string]any)["platform"] = "mutated again"
	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "github", again["social"].([]any)[0].(map[string]any)["platform"])
}

func TestJSONFileStoreToleratesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	require.NoError(t, os.WriteFile(path, []byte("[1, 2, 3]"), 0o644))

	s, err := NewJSONFileStore(path)
	require.NoError(t, err)
	doc, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestFactory(t *testing.T) {
	dir := t.TempDir()

	s, err := New("json", dir)
	require.NoError(t, err)
	assert.IsType(t, &JSONFileStore{}, s)

	s, err = New("", dir)
	require.NoError(t, err)
	assert.IsType(t, &JSONFileStore{}, s)

	s, err = New("memory", dir)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = New("mongodb", dir)
	assert.Error(t, err)
}
