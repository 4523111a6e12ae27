package signal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("off returns nil source", func(t *testing.T) {
		src, err := New(Config{Source: "off"})
		require.NoError(t, err)
		assert.Nil(t, src)
	})

	t.Run("file source", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scheme")
		src, err := New(Config{Source: "file", File: path})
		require.NoError(t, err)
		assert.IsType(t, &File{}, src)
	})

	t.Run("file source requires path", func(t *testing.T) {
		_, err := New(Config{Source: "file"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires a path")
	})

	t.Run("probe source", func(t *testing.T) {
		src, err := New(Config{Source: "probe"})
		require.NoError(t, err)
		assert.IsType(t, &Probe{}, src)
	})

	t.Run("unknown source rejected", func(t *testing.T) {
		_, err := New(Config{Source: "carrier-pigeon"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown signal source")
	})
}
