package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippedScenes(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("..", "..", "scenes", "*"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	for _, path := range matches {
		t.Run(filepath.Base(path), func(t *testing.T) {
			_, err := Load(path)
			assert.NoError(t, err)
		})
	}
}

func TestShippedDefaultMatchesBuiltIn(t *testing.T) {
	sc, err := Load(filepath.Join("..", "..", "scenes", "cascade.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), sc)
}
