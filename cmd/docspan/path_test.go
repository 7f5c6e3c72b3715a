package main_test

import (
	"testing"

	"github.com/fwojciec/docspan"
	main "github.com/fwojciec/docspan/cmd/docspan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the element path", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(loaderOf(map[string]*docspan.Document{"a.json": page(t, "a.json")}))

		err := (&main.PathCmd{File: "a.json", Begin: 10, End: 14}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Page > Footer\n", stdout.String())
	})

	t.Run("missing element", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(loaderOf(map[string]*docspan.Document{"a.json": page(t, "a.json")}))

		err := (&main.PathCmd{File: "a.json", Begin: 1, End: 3}).Run(deps)

		assert.Equal(t, docspan.ENOTFOUND, docspan.ErrorCode(err))
	})

	t.Run("unrecognized kind has no path", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(loaderOf(map[string]*docspan.Document{"a.json": page(t, "a.json")}))

		err := (&main.PathCmd{File: "a.json", Begin: 10, End: 14, Kinds: []string{"Page", "Body"}}).Run(deps)

		assert.Equal(t, docspan.EINVALID, docspan.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not recognized")
	})
}
