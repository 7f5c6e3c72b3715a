package docspan_test

import (
	"testing"

	"github.com/fwojciec/docspan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalCover(t *testing.T) {
	t.Parallel()

	t.Run("returns empty cover for no spans", func(t *testing.T) {
		t.Parallel()

		cover, err := docspan.MinimalCover(nil)

		require.NoError(t, err)
		assert.Empty(t, cover)
	})

	t.Run("sorts disjoint spans", func(t *testing.T) {
		t.Parallel()

		cover, err := docspan.MinimalCover([]docspan.Span{
			{Begin: 10, End: 14},
			{Begin: 0, End: 4},
		})

		require.NoError(t, err)
		assert.Equal(t, []docspan.Interval{{Begin: 0, End: 4}, {Begin: 10, End: 14}}, cover)
	})

	t.Run("merges overlapping spans", func(t *testing.T) {
		t.Parallel()

		cover, err := docspan.MinimalCover([]docspan.Span{
			{Begin: 0, End: 6},
			{Begin: 4, End: 9},
		})

		require.NoError(t, err)
		assert.Equal(t, []docspan.Interval{{Begin: 0, End: 9}}, cover)
	})

	t.Run("merges adjacent spans", func(t *testing.T) {
		t.Parallel()

		cover, err := docspan.MinimalCover([]docspan.Span{
			{Begin: 5, End: 8},
			{Begin: 0, End: 5},
		})

		require.NoError(t, err)
		assert.Equal(t, []docspan.Interval{{Begin: 0, End: 8}}, cover)
	})

	t.Run("keeps spans separated by a single byte apart", func(t *testing.T) {
		t.Parallel()

		cover, err := docspan.MinimalCover([]docspan.Span{
			{Begin: 0, End: 4},
			{Begin: 5, End: 8},
		})

		require.NoError(t, err)
		assert.Len(t, cover, 2)
	})

	t.Run("absorbs nested spans", func(t *testing.T) {
		t.Parallel()

		cover, err := docspan.MinimalCover([]docspan.Span{
			{Begin: 0, End: 20},
			{Begin: 3, End: 7},
			{Begin: 10, End: 12},
		})

		require.NoError(t, err)
		assert.Equal(t, []docspan.Interval{{Begin: 0, End: 20}}, cover)
	})

	t.Run("merges zero-length span touching a neighbor", func(t *testing.T) {
		t.Parallel()

		cover, err := docspan.MinimalCover([]docspan.Span{
			{Begin: 4, End: 4},
			{Begin: 0, End: 4},
			{Begin: 9, End: 9},
		})

		require.NoError(t, err)
		assert.Equal(t, []docspan.Interval{{Begin: 0, End: 4}, {Begin: 9, End: 9}}, cover)
	})

	t.Run("rejects span with begin after end", func(t *testing.T) {
		t.Parallel()

		_, err := docspan.MinimalCover([]docspan.Span{{Begin: 0, End: 3}, {Begin: 7, End: 2}})

		require.Error(t, err)
		assert.Equal(t, docspan.EINVALID, docspan.ErrorCode(err))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := [][]docspan.Span{
			{{Begin: 0, End: 3}, {Begin: 2, End: 5}, {Begin: 9, End: 11}, {Begin: 11, End: 11}},
			{{Begin: 30, End: 40}, {Begin: 1, End: 2}, {Begin: 2, End: 3}, {Begin: 35, End: 50}},
			{{Begin: 7, End: 7}},
		}

		for _, spans := range inputs {
			first, err := docspan.MinimalCover(spans)
			require.NoError(t, err)

			asSpans := make([]docspan.Span, len(first))
			for i, c := range first {
				asSpans[i] = c.Span()
			}
			second, err := docspan.MinimalCover(asSpans)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		}
	})
}
