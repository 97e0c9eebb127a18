package config

import (
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/home/user/.config/posh"
	logger := log.New(io.Discard, "", 0)

	if err := Initialize(fsys, dir, logger); err != nil {
		t.Fatal(err)
	}

	store := NewStore(fsys, logger, io.Discard)
	configPath := filepath.Join(dir, ConfigurationName)
	assert.Equal(t, DefaultsAt(configPath), store.Load(configPath))

	exists, err := afero.Exists(fsys, filepath.Join(dir, HistoryName))
	assert.NoError(t, err)
	assert.True(t, exists)

	t.Run("keeps existing config", func(t *testing.T) {
		cfg := store.Load(configPath)
		cfg.ShowTime = false
		store.Save(cfg)

		assert.NoError(t, Initialize(fsys, dir, logger))
		assert.False(t, store.Load(configPath).ShowTime)
	})
}
