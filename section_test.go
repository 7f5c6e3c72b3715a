package docspan_test

import (
	"testing"

	"github.com/fwojciec/docspan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heading(begin, end, level int, attrs ...string) docspan.Span {
	s := docspan.Span{Begin: begin, End: end, Kind: "h", Depth: 1, Attributes: map[string]string{"level": string(rune('0' + level))}}
	for i := 0; i+1 < len(attrs); i += 2 {
		s.Attributes[attrs[i]] = attrs[i+1]
	}
	return s
}

func TestSections(t *testing.T) {
	t.Parallel()

	t.Run("lists headings in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := docspan.NewDocument("Intro\ntext\nGetting Started",
			heading(0, 5, 1),
			docspan.Span{Begin: 6, End: 10, Kind: "p", Depth: 1},
			heading(11, 26, 2),
		)
		require.NoError(t, err)

		sections := docspan.Sections(doc)

		require.Len(t, sections, 2)
		assert.Equal(t, 1, sections[0].Level)
		assert.Equal(t, "Intro", sections[0].Title)
		assert.Equal(t, "intro", sections[0].Anchor)
		assert.Equal(t, 2, sections[1].Level)
		assert.Equal(t, "getting-started", sections[1].Anchor)
		assert.Equal(t, 11, sections[1].Span.Begin)
	})

	t.Run("handles duplicate headings with numeric suffixes", func(t *testing.T) {
		t.Parallel()

		doc, err := docspan.NewDocument("Usage\nUsage\nUsage",
			heading(0, 5, 2),
			heading(6, 11, 2),
			heading(12, 17, 2),
		)
		require.NoError(t, err)

		sections := docspan.Sections(doc)

		require.Len(t, sections, 3)
		assert.Equal(t, "usage", sections[0].Anchor)
		assert.Equal(t, "usage-1", sections[1].Anchor)
		assert.Equal(t, "usage-2", sections[2].Anchor)
	})

	t.Run("prefers element id", func(t *testing.T) {
		t.Parallel()

		doc, err := docspan.NewDocument("API Reference", heading(0, 13, 1, "id", "api"))
		require.NoError(t, err)

		sections := docspan.Sections(doc)

		require.Len(t, sections, 1)
		assert.Equal(t, "api", sections[0].Anchor)
	})

	t.Run("strips special characters from anchors", func(t *testing.T) {
		t.Parallel()

		doc, err := docspan.NewDocument("What's new? (v2.0)", heading(0, 18, 3))
		require.NoError(t, err)

		assert.Equal(t, "whats-new-v20", docspan.Sections(doc)[0].Anchor)
	})

	t.Run("ignores spans without a valid level", func(t *testing.T) {
		t.Parallel()

		doc, err := docspan.NewDocument("abc",
			docspan.Span{Begin: 0, End: 3, Kind: "p"},
			docspan.Span{Begin: 0, End: 3, Kind: "h7", Attributes: map[string]string{"level": "7"}},
		)
		require.NoError(t, err)

		assert.Empty(t, docspan.Sections(doc))
	})
}
