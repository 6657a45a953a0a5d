package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tealeg/xlsx/v3"
)

var (
	ErrUnsupportedFile = errors.New("unsupported file type, only .csv and .xlsx files are allowed")
	ErrEmptyFile       = errors.New("file has no header row")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ImportRow maps lower-cased column names to trimmed cell values.
type ImportRow map[string]string

// Get returns the first non-empty value among keys.
func (r ImportRow) Get(keys ...string) string {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}

// Table is a parsed upload: a header row and the data records that follow it.
type Table struct {
	Header  []string
	Records [][]string
	// Broken holds the read error of records that could not be split into cells.
	Broken map[int]string
}

// BrokenRow returns the read error of record i, if any.
func (t *Table) BrokenRow(i int) (string, bool) {
	msg, ok := t.Broken[i]
	return msg, ok
}

// Len is the number of data records.
func (t *Table) Len() int {
	return len(t.Records)
}

// Row returns record i keyed by header name. Cells beyond the header are dropped,
// missing trailing cells read as empty.
func (t *Table) Row(i int) ImportRow {
	row := make(ImportRow, len(t.Header))
	record := t.Records[i]
	for j, name := range t.Header {
		key := strings.ToLower(name)
		if key == "" {
			continue
		}
		if j < len(record) {
			row[key] = record[j]
		} else {
			row[key] = ""
		}
	}
	return row
}

// HasColumn reports whether any of names is a header column.
func (t *Table) HasColumn(names ...string) bool {
	for _, h := range t.Header {
		for _, n := range names {
			if strings.EqualFold(h, n) {
				return true
			}
		}
	}
	return false
}

// SupportedFile reports whether filename has an extension Parse understands.
func SupportedFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}

// Parse reads an upload, picking the format by file extension.
func Parse(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(r)
	case ".xlsx":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return ParseXLSX(data)
	}
	return nil, ErrUnsupportedFile
}

// ParseCSV reads comma separated text. Quoted fields may contain commas,
// quotes and newlines; a stray quote inside an unquoted field is kept as
// text. Blank lines are skipped and rows may be ragged. A line the reader
// still cannot split is kept as a broken record instead of failing the file.
func ParseCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var records [][]string
	broken := make(map[int]string)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			broken[len(records)] = parseErr.Err.Error()
			records = append(records, nil)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("malformed csv: %w", err)
		}
		records = append(records, record)
	}

	return newTable(records, broken)
}

// ParseXLSX reads the first worksheet of an xlsx workbook.
func ParseXLSX(data []byte) (*Table, error) {
	wb, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("malformed xlsx: %w", err)
	}
	return parseWorkbook(wb)
}

func parseWorkbook(wb *xlsx.File) (*Table, error) {
	if len(wb.Sheets) == 0 {
		return nil, ErrEmptyFile
	}
	sheet := wb.Sheets[0]

	var records [][]string
	err := sheet.ForEachRow(func(row *xlsx.Row) error {
		record := make([]string, 0, sheet.MaxCol)
		for i := 0; i < sheet.MaxCol; i++ {
			record = append(record, row.GetCell(i).String())
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet.Name, err)
	}

	return newTable(records, nil)
}

// newTable trims every cell, drops blank records and splits off the header.
// broken maps raw record positions to the reason they could not be read.
func newTable(records [][]string, broken map[int]string) (*Table, error) {
	t := &Table{Broken: make(map[int]string)}

	for i, record := range records {
		if msg, ok := broken[i]; ok {
			if t.Header == nil {
				return nil, fmt.Errorf("malformed header: %s", msg)
			}
			t.Broken[len(t.Records)] = msg
			t.Records = append(t.Records, nil)
			continue
		}

		blank := true
		for j := range record {
			record[j] = strings.TrimSpace(record[j])
			if record[j] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}

		if t.Header == nil {
			t.Header = record
			continue
		}
		t.Records = append(t.Records, record)
	}

	if t.Header == nil {
		return nil, ErrEmptyFile
	}
	return t, nil
}
