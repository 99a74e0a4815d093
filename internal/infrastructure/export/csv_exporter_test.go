package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporter_Export(t *testing.T) {
	ctx := context.Background()
	rows := []ordering.ExportRow{
		{ProductID: 25, ProductName: "pikachu", Quantity: 2},
		{ProductID: 1, ProductName: "bulbasaur", Quantity: 1},
	}

	t.Run("writes header and one line per row", func(t *testing.T) {
		dir := t.TempDir()
		exporter := NewCSVExporter(&config.ExportConfig{Directory: dir, Filename: "ordenes.csv"}, nil)

		path, err := exporter.Export(ctx, rows)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "ordenes.csv"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ID, Nombre, Cantidad\n25, pikachu, 2\n1, bulbasaur, 1\n", string(content))
	})

	t.Run("creates the export directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "exports")
		exporter := NewCSVExporter(&config.ExportConfig{Directory: dir, Filename: "ordenes.csv"}, nil)

		_, err := exporter.Export(ctx, rows)
		require.NoError(t, err)
		assert.DirExists(t, dir)
	})

	t.Run("overwrites the previous export", func(t *testing.T) {
		dir := t.TempDir()
		exporter := NewCSVExporter(&config.ExportConfig{Directory: dir, Filename: "ordenes.csv"}, nil)

		_, err := exporter.Export(ctx, rows)
		require.NoError(t, err)
		path, err := exporter.Export(ctx, rows[:1])
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ID, Nombre, Cantidad\n25, pikachu, 2\n", string(content))
	})

	t.Run("empty commit still writes the header", func(t *testing.T) {
		dir := t.TempDir()
		exporter := NewCSVExporter(&config.ExportConfig{Directory: dir, Filename: "ordenes.csv"}, nil)

		path, err := exporter.Export(ctx, nil)
		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ID, Nombre, Cantidad\n", string(content))
	})

	t.Run("failure leaves no partial file", func(t *testing.T) {
		dir := t.TempDir()
		// Make the directory read-only so the temp file write fails.
		require.NoError(t, os.Chmod(dir, 0o555))
		t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

		exporter := NewCSVExporter(&config.ExportConfig{Directory: dir, Filename: "ordenes.csv"}, nil)
		_, err := exporter.Export(ctx, rows)
		require.Error(t, err)

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("cancelled context aborts before writing", func(t *testing.T) {
		dir := t.TempDir()
		exporter := NewCSVExporter(&config.ExportConfig{Directory: dir, Filename: "ordenes.csv"}, nil)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := exporter.Export(cancelled, rows)
		require.ErrorIs(t, err, context.Canceled)
	})
}
