// Package csvexport writes spreadsheet-friendly CSV downloads and parses contact imports.
package csvexport

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// bom makes Excel detect UTF-8
const bom = "\ufeff"

// Writer emits a UTF-8 BOM followed by records with every field double-quoted.
type Writer struct {
	w *bufio.Writer
}

// NewWriter writes the BOM to w and returns a Writer for the records that follow.
func NewWriter(w io.Writer) (*Writer, error) {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(bom); err != nil {
		return nil, err
	}
	return &Writer{w: bw}, nil
}

// Write writes one record terminated by CRLF
func (w *Writer) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			if err := w.w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	_, err := w.w.WriteString("\r\n")
	return err
}

// WriteAll writes records and flushes
func (w *Writer) WriteAll(records [][]string) error {
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Send streams header and rows to the client as a file download named filename.
func Send(c *gin.Context, filename string, header []string, rows [][]string) error {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	w, err := NewWriter(c.Writer)
	if err != nil {
		return err
	}
	if err := w.Write(header); err != nil {
		return err
	}
	return w.WriteAll(rows)
}
