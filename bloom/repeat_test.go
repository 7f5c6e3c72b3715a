package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/docspan"
	"github.com/fwojciec/docspan/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(t *testing.T, body string) *docspan.Document {
	t.Helper()

	text := "Site nav\n" + body + "\nCopyright"
	doc, err := docspan.NewDocument(text,
		docspan.Span{Begin: 0, End: 8, Kind: "nav", Depth: 1},
		docspan.Span{Begin: 9, End: 9 + len(body), Kind: "main", Depth: 1},
		docspan.Span{Begin: 10 + len(body), End: len(text), Kind: "footer", Depth: 1},
	)
	require.NoError(t, err)
	return doc
}

func TestRepeatMarker_Mark(t *testing.T) {
	t.Parallel()

	t.Run("marks content shared across documents", func(t *testing.T) {
		t.Parallel()

		a := page(t, "First article")
		b := page(t, "Second article")

		m := bloom.NewRepeatMarker(1000, 0.001)
		m.Observe(a)
		m.Observe(b)

		marks := m.Mark(a)

		require.Len(t, marks, 2)
		assert.Equal(t, docspan.Kind("nav"), marks[0].Kind)
		assert.Equal(t, docspan.Kind("footer"), marks[1].Kind)
	})

	t.Run("single document marks nothing", func(t *testing.T) {
		t.Parallel()

		a := page(t, "Only article")

		m := bloom.NewRepeatMarker(1000, 0.001)
		m.Observe(a)
		m.Observe(a.Clone())

		// The same document observed twice does count twice.
		assert.Len(t, m.Mark(a), 3)

		fresh := bloom.NewRepeatMarker(1000, 0.001)
		fresh.Observe(a)
		assert.Empty(t, fresh.Mark(a))
	})

	t.Run("restricted to kinds", func(t *testing.T) {
		t.Parallel()

		a := page(t, "First article")
		b := page(t, "Second article")

		m := bloom.NewRepeatMarker(1000, 0.001, "footer")
		m.Observe(a)
		m.Observe(b)

		marks := m.Mark(b)

		require.Len(t, marks, 1)
		assert.Equal(t, docspan.Kind("footer"), marks[0].Kind)
	})

	t.Run("cleaner removes repeated chrome", func(t *testing.T) {
		t.Parallel()

		a := page(t, "First article")
		b := page(t, "Second article")

		m := bloom.NewRepeatMarker(1000, 0.001)
		m.Observe(a)
		m.Observe(b)

		out, err := docspan.NewCleaner(m).Clean(a)
		require.NoError(t, err)

		assert.Equal(t, "\nFirst article\n", out.Text)
	})
}

func TestRepeatMarker_ConcurrentObserve(t *testing.T) {
	t.Parallel()

	m := bloom.NewRepeatMarker(10000, 0.001)

	docs := make([]*docspan.Document, 50)
	for i := range docs {
		docs[i] = page(t, fmt.Sprintf("Article %d", i))
	}

	var wg sync.WaitGroup
	for _, doc := range docs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Observe(doc)
		}()
	}
	wg.Wait()

	count := m.EstimatedCount()
	assert.True(t, count >= 45 && count <= 60, "expected count near 52, got %d", count)
	assert.Len(t, m.Mark(docs[7]), 2)
}
