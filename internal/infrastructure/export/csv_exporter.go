package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// CSVExporter writes order commits to a CSV file. The file is written to a
// uniquely named temp file first and renamed into place, so a crashed or
// failed export never leaves a partial file at the final path.
type CSVExporter struct {
	directory string
	filename  string
	logger    *zap.Logger
}

// NewCSVExporter creates a new CSVExporter
func NewCSVExporter(cfg *config.ExportConfig, logger *zap.Logger) *CSVExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVExporter{
		directory: cfg.Directory,
		filename:  cfg.Filename,
		logger:    logger,
	}
}

// Export writes the rows of one order commit and returns the file path
func (e *CSVExporter) Export(ctx context.Context, rows []ordering.ExportRow) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.directory, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	finalPath := filepath.Join(e.directory, e.filename)
	tmpPath := filepath.Join(e.directory, fmt.Sprintf(".%s.%s.tmp", e.filename, uuid.NewString()))

	if err := e.writeFile(tmpPath, rows); err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			e.logger.Warn("Failed to remove partial export file",
				zap.String("path", tmpPath),
				zap.Error(rmErr))
		}
		return "", err
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			e.logger.Warn("Failed to remove partial export file",
				zap.String("path", tmpPath),
				zap.Error(rmErr))
		}
		return "", fmt.Errorf("failed to finalize export file: %w", err)
	}

	e.logger.Info("Order export written",
		zap.String("path", finalPath),
		zap.Int("rows", len(rows)))
	return finalPath, nil
}

// writeFile writes the export format: a fixed header followed by one line per
// row, matching the layout downstream consumers already parse.
func (e *CSVExporter) writeFile(path string, rows []ordering.ExportRow) error {
	var b strings.Builder
	b.WriteString("ID, Nombre, Cantidad\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%d, %s, %d\n", row.ProductID, row.ProductName, row.Quantity)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// Ensure CSVExporter implements ordering.Exporter
var _ ordering.Exporter = (*CSVExporter)(nil)
