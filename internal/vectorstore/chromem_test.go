package vectorstore

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hashEmbedder is a deterministic local embedder: each text maps to a fixed
// normalized vector derived from its character histogram, so similar strings
// land near each other without any network dependency.
type hashEmbedder struct{}

func (hashEmbedder) embed(text string) []float32 {
	const dim = 64
	v := make([]float32, dim)
	for _, r := range text {
		v[int(r)%dim]++
	}
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		v[0] = 1
		return v
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range v {
		v[i] *= scale
	}
	return v
}

func (e hashEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = e.embed(t)
	}
	return out, nil
}

func (e hashEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.embed(text), nil
}

func newTestStore(t *testing.T) *ChromemStore {
	t.Helper()
	store, err := NewChromemStore(ChromemConfig{}, hashEmbedder{}, nil)
	require.NoError(t, err)
	return store
}

func TestNewChromemStore_RequiresEmbedder(t *testing.T) {
	_, err := NewChromemStore(ChromemConfig{}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestChromemStore_AddAndSearch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ids, err := store.AddDocuments(ctx, []Document{
		{
			ID:       "bearing",
			Content:  "bearing wear causes vibration above nominal frequency",
			Metadata: map[string]string{"source": "pump_manual.md", "page": "12"},
		},
		{
			ID:       "pressure",
			Content:  "low discharge pressure indicates impeller damage or leak",
			Metadata: map[string]string{"source": "pump_manual.md", "page": "20"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"bearing", "pressure"}, ids)
	assert.Equal(t, 2, store.Count())

	results, err := store.Search(ctx, "bearing wear causes vibration above nominal frequency", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "bearing", results[0].ID)
	assert.Equal(t, "pump_manual.md", results[0].Metadata["source"])
	assert.InDelta(t, 1.0, float64(results[0].Score), 0.001, "exact text should score as identical")
}

func TestChromemStore_AddDocuments_Empty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddDocuments(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyDocuments)
}

func TestChromemStore_AddDocuments_GeneratesMissingIDs(t *testing.T) {
	store := newTestStore(t)

	ids, err := store.AddDocuments(context.Background(), []Document{
		{Content: "some passage"},
	})
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.NotEmpty(t, ids[0])
}

func TestChromemStore_Search_EmptyCollection(t *testing.T) {
	store := newTestStore(t)

	results, err := store.Search(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestChromemStore_Search_CapsKAtDocumentCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddDocuments(ctx, []Document{
		{ID: "a", Content: "first passage"},
		{ID: "b", Content: "second passage"},
	})
	require.NoError(t, err)

	results, err := store.Search(ctx, "passage", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestChromemStore_Search_InvalidArguments(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Search(context.Background(), "", 3)
	assert.Error(t, err)

	_, err = store.Search(context.Background(), "query", 0)
	assert.Error(t, err)
}

func TestChromemStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewChromemStore(ChromemConfig{Path: dir}, hashEmbedder{}, nil)
	require.NoError(t, err)

	_, err = store.AddDocuments(ctx, []Document{{ID: "a", Content: "persistent passage"}})
	require.NoError(t, err)

	reopened, err := NewChromemStore(ChromemConfig{Path: dir}, hashEmbedder{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Count())
}
