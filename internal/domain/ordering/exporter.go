package ordering

import "context"

// ExportRow is one line item of the order export file, carrying the values
// the buyer submitted rather than the resolved product row.
type ExportRow struct {
	ProductID   int
	ProductName string
	Quantity    int
}

// Exporter writes the export file for one order commit and returns its path.
// A failed export must not leave a partial file behind.
type Exporter interface {
	Export(ctx context.Context, rows []ExportRow) (string, error)
}
