package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Table is one output file: a fixed column order and the rows to write.
type Table struct {
	Name    string
	File    string
	Columns []string
	Rows    []model.Record
}

type Exporter struct {
	dir string
	out io.Writer
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir, out: color.Output}
}

// SetOutput redirects progress messages.
func (e *Exporter) SetOutput(w io.Writer) {
	e.out = w
}

func (e *Exporter) Dir() string {
	return e.dir
}

// WriteTable writes t to <dir>/<t.File>, replacing any existing file.
func (e *Exporter) WriteTable(t Table) (string, error) {
	filePath := filepath.Join(e.dir, t.File)
	color.New(color.FgCyan).Fprintf(e.out, "Writing %s...\n", filePath)

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file for %s: %w", t.Name, err)
	}

	if err := WriteCSV(file, t.Columns, t.Rows); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", filePath, err)
	}

	color.New(color.FgGreen).Fprintf(e.out, "[OK] Created %s (%s rows)\n", filePath, humanize.Comma(int64(len(t.Rows))))
	return filePath, nil
}

// WriteCSV writes a header of columns followed by one CRLF-terminated line
// per row, in the given column order.
func WriteCSV(w io.Writer, columns []string, rows []model.Record) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(columns); err != nil {
		return err
	}

	values := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			values[i] = row.Value(col)
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
