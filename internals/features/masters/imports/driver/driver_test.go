package driver

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

func TestFieldName(t *testing.T) {
	rename := map[string]string{"GSTIN": "gstin"}
	assert.Equal(t, "name", FieldName("Name", nil))
	assert.Equal(t, "dropDealerCodes", FieldName("Drop Dealer Codes", nil))
	assert.Equal(t, "gstin", FieldName("GSTIN", rename))
	assert.Equal(t, "", FieldName("  ", nil))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", CellString(nil))
	assert.Equal(t, "x", CellString("  x  "))
	assert.Equal(t, "9876543210", CellString(float64(9876543210)))
	assert.Equal(t, "1.5", CellString(1.5))
	assert.Equal(t, "Yes", CellString(true))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("Active")
	require.NoError(t, err)
	assert.Equal(t, 1, *s)

	s, err = ParseStatus("Inactive")
	require.NoError(t, err)
	assert.Equal(t, 0, *s)

	s, err = ParseStatus("")
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = ParseStatus("Enabled")
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList("  "))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a , b ,"))
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "Dealer not found", ErrorText(helper.Business("Dealer not found")))
	assert.Equal(t, "name: The name field is required; phone: bad",
		ErrorText(helper.ValidationErrors{
			{Field: "name", Message: "The name field is required"},
			{Field: "phone", Message: "bad"},
		}))
}

func runSpec() (Spec, *[]map[string]string) {
	var seen []map[string]string
	spec := Spec{
		Entity:  "Widget",
		Columns: []string{"Name", "Code", "Status"},
		Upsert: func(_ context.Context, _ *gorm.DB, f map[string]string, _ uint) (bool, error) {
			seen = append(seen, f)
			switch f["name"] {
			case "":
				return false, helper.Business("Name is required")
			case "existing":
				return false, nil
			default:
				return true, nil
			}
		},
	}
	return spec, &seen
}

func TestRunCountsAndDefaults(t *testing.T) {
	spec, seen := runSpec()

	rows := []Row{
		{"Name": "fresh", "Code": "A1", "Status": "Active"},
		{"Name": "existing", "Code": "A2"}, // Status column missing entirely
		{"Code": "A3"},                     // Name missing -> row error
	}
	summary, failed := Run(context.Background(), nil, spec, rows, 1)

	assert.Equal(t, 1, summary.NewRecordsCreated)
	assert.Equal(t, 1, summary.ExistingRecordsUpdated)
	assert.Equal(t, 1, summary.FailedRecords)

	// missing columns arrive as "", never absent
	require.Len(t, *seen, 3)
	assert.Equal(t, "", (*seen)[1]["status"])
	assert.Equal(t, "", (*seen)[2]["name"])

	// the failed row keeps its original values plus the message
	require.Len(t, failed, 1)
	assert.Equal(t, []string{"", "A3", ""}, failed[0].Values)
	assert.Equal(t, "Name is required", failed[0].Error)
}

func TestRunOneBadRowDoesNotAbortBatch(t *testing.T) {
	spec, _ := runSpec()
	rows := []Row{
		{"Name": ""},         // fails
		{"Name": "fresh"},    // still processed
		{"Name": "existing"}, // still processed
	}
	summary, failed := Run(context.Background(), nil, spec, rows, 1)
	assert.Equal(t, 1, summary.FailedRecords)
	assert.Equal(t, 1, summary.NewRecordsCreated)
	assert.Equal(t, 1, summary.ExistingRecordsUpdated)
	assert.Len(t, failed, 1)
}

func TestErrorWorkbook(t *testing.T) {
	spec, _ := runSpec()
	buf, err := ErrorWorkbook(spec, []FailedRow{
		{Values: []string{"", "A3", "Active"}, Error: "Name is required"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Name", "Code", "Status", "Error"}, rows[0])
	assert.Equal(t, "A3", rows[1][1])
	assert.Equal(t, "Name is required", rows[1][3])
}
