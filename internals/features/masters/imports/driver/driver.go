package driver

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// Row is one pre-parsed spreadsheet row, column header to cell value.
// Clients upload the sheet already parsed to JSON, so numeric cells arrive
// as float64 and empty cells may be missing entirely.
type Row map[string]interface{}

// Spec configures the import of one entity type.
type Spec struct {
	Entity  string
	Sheet   string
	Columns []string          // expected headers, in sheet order
	Rename  map[string]string // header -> field name, for irregular headers
	// Upsert resolves lookups and creates or updates one row. It opens its
	// own transaction, keeping row failures isolated from the rest of the
	// batch. Returns true when a new record was created.
	Upsert func(ctx context.Context, db *gorm.DB, fields map[string]string, actorID uint) (bool, error)
}

type Summary struct {
	NewRecordsCreated      int `json:"newRecordsCreated"`
	ExistingRecordsUpdated int `json:"existingRecordsUpdated"`
	FailedRecords          int `json:"failedRecords"`
}

// FailedRow keeps the original cell values (in column order) plus the
// failure message for the error report.
type FailedRow struct {
	Values []string
	Error  string
}

// Run processes rows strictly sequentially. Missing columns are defaulted
// to "" before the row reaches validation, and every row runs in its own
// transaction so one bad row never aborts the batch.
func Run(ctx context.Context, db *gorm.DB, spec Spec, rows []Row, actorID uint) (Summary, []FailedRow) {
	var summary Summary
	var failed []FailedRow

	for _, row := range rows {
		fields := make(map[string]string, len(spec.Columns))
		values := make([]string, len(spec.Columns))
		for i, col := range spec.Columns {
			v := CellString(row[col])
			values[i] = v
			fields[FieldName(col, spec.Rename)] = v
		}

		created, err := spec.Upsert(ctx, db, fields, actorID)
		if err != nil {
			summary.FailedRecords++
			failed = append(failed, FailedRow{Values: values, Error: ErrorText(err)})
			continue
		}
		if created {
			summary.NewRecordsCreated++
		} else {
			summary.ExistingRecordsUpdated++
		}
	}
	return summary, failed
}

// ErrorWorkbook renders the failed rows back into a workbook with the
// original columns plus an Error column, for the operator to fix and
// re-upload.
func ErrorWorkbook(spec Spec, failed []FailedRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, 0, len(spec.Columns)+1)
	for _, col := range spec.Columns {
		header = append(header, col)
	}
	header = append(header, "Error")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range failed {
		cells := make([]interface{}, 0, len(row.Values)+1)
		for _, v := range row.Values {
			cells = append(cells, v)
		}
		cells = append(cells, row.Error)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}

// FieldName maps a spreadsheet header to its internal field name: the
// override table first, then plain lowerCamel ("Drop Dealer Codes" ->
// "dropDealerCodes").
func FieldName(col string, rename map[string]string) string {
	if v, ok := rename[col]; ok {
		return v
	}
	words := strings.Fields(col)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String()
}

// CellString normalizes a parsed cell to a trimmed string. Numeric cells
// come out of JSON as float64; integral values must not grow a ".0".
func CellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	default:
		return ""
	}
}

// ParseStatus reads the Active/Inactive column. Empty means "leave as is".
func ParseStatus(s string) (*int, error) {
	switch strings.TrimSpace(s) {
	case "":
		return nil, nil
	case "Active":
		v := 1
		return &v, nil
	case "Inactive":
		v := 0
		return &v, nil
	default:
		return nil, helper.Business("Status must be Active or Inactive")
	}
}

// SplitList splits a comma-separated cell into trimmed, non-empty items.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ErrorText flattens validation error lists into one report cell.
func ErrorText(err error) string {
	if ve, ok := err.(helper.ValidationErrors); ok {
		parts := make([]string, 0, len(ve))
		for _, fe := range ve {
			parts = append(parts, fe.Field+": "+fe.Message)
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}
