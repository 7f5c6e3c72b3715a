package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docspan"
	"github.com/fwojciec/docspan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTemplate_ReadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("stores paths as plain strings", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "templates", "acme.yaml")
		tmpl := &docspan.Template{
			ID:    "ignored",
			Name:  "acme",
			Kinds: []docspan.Kind{"Page", "Value"},
			Fields: []docspan.Field{
				{Name: "total", Path: "Page > Value:nth-of-type(2)"},
			},
		}

		require.NoError(t, fs.WriteTemplate(path, tmpl))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Page > Value:nth-of-type(2)")
		assert.NotContains(t, string(data), "ignored")

		got, err := fs.ReadTemplate(path)
		require.NoError(t, err)
		assert.Equal(t, "acme", got.Name)
		assert.Equal(t, tmpl.Kinds, got.Kinds)
		assert.Equal(t, tmpl.Fields, got.Fields)
		assert.Empty(t, got.ID)
	})

	t.Run("reads hand-written template", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "t.yaml", `
name: report
fields:
  - name: title
    path: Section:nth-of-type(1) > Heading
`)

		got, err := fs.ReadTemplate(path)

		require.NoError(t, err)
		assert.Equal(t, []docspan.Field{{Name: "title", Path: "Section:nth-of-type(1) > Heading"}}, got.Fields)
		assert.Empty(t, got.Kinds)
	})

	t.Run("rejects template with malformed path", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "t.yaml", "name: bad\nfields:\n  - name: x\n    path: 'A >'\n")

		_, err := fs.ReadTemplate(path)

		assert.Equal(t, docspan.EINVALID, docspan.ErrorCode(err))
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "t.yaml", "name: [unclosed")

		_, err := fs.ReadTemplate(path)

		assert.Equal(t, docspan.EINVALID, docspan.ErrorCode(err))
	})

	t.Run("refuses to write invalid template", func(t *testing.T) {
		t.Parallel()

		err := fs.WriteTemplate(filepath.Join(t.TempDir(), "t.yaml"), &docspan.Template{Name: "x"})

		assert.Equal(t, docspan.EINVALID, docspan.ErrorCode(err))
	})
}
