package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	caseModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
	configService "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/service"
	partnerModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/model"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// Export builds the whole table in memory before serializing. The masters
// are administrative scale (hundreds to low thousands of rows), so no
// streaming.

type ExportTable struct {
	Sheet   string
	Headers []string
	Rows    [][]string
}

type DateRange struct {
	From *time.Time
	To   *time.Time
}

const dateLayout = "2006-01-02"

// ParseDateRange reads optional fromDate/toDate (YYYY-MM-DD). toDate is
// inclusive of the whole day.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	if s := strings.TrimSpace(from); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return r, helper.Business("Invalid fromDate, expected YYYY-MM-DD")
		}
		r.From = &t
	}
	if s := strings.TrimSpace(to); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return r, helper.Business("Invalid toDate, expected YYYY-MM-DD")
		}
		t = t.AddDate(0, 0, 1)
		r.To = &t
	}
	return r, nil
}

func applyRange(q *gorm.DB, r DateRange) *gorm.DB {
	if r.From != nil {
		q = q.Where("created_at >= ?", *r.From)
	}
	if r.To != nil {
		q = q.Where("created_at < ?", *r.To)
	}
	return q
}

// nameMap loads id->name for one reference table, soft-deleted rows
// included so exports of old records still resolve.
func nameMap(db *gorm.DB, table string) (map[uint]string, error) {
	var rows []struct {
		ID   uint
		Name string
	}
	if err := db.Table(table).Select("id, name").Unscoped().Scan(&rows).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]string, len(rows))
	for _, r := range rows {
		m[r.ID] = r.Name
	}
	return m, nil
}

func codeMap(db *gorm.DB, table string) (map[uint]string, error) {
	var rows []struct {
		ID   uint
		Code string
	}
	if err := db.Table(table).Select("id, code").Unscoped().Scan(&rows).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]string, len(rows))
	for _, r := range rows {
		m[r.ID] = r.Code
	}
	return m, nil
}

func DealerExport(db *gorm.DB, r DateRange) (*ExportTable, error) {
	var dealers []partnerModel.Dealer
	if err := applyRange(db.Unscoped(), r).Preload("DropDealers").Order("id").Find(&dealers).Error; err != nil {
		return nil, err
	}
	clients, err := nameMap(db, "clients")
	if err != nil {
		return nil, err
	}
	states, err := nameMap(db, "states")
	if err != nil {
		return nil, err
	}
	cities, err := nameMap(db, "cities")
	if err != nil {
		return nil, err
	}
	dealerCodes, err := codeMap(db, "dealers")
	if err != nil {
		return nil, err
	}

	t := &ExportTable{
		Sheet: "Dealers",
		Headers: []string{
			"Name", "Code", "GSTIN", "Email", "Phone", "Address",
			"Client", "State", "City", "Drop Dealer Codes", "Status",
		},
	}
	for _, d := range dealers {
		gstin, address := "", ""
		if d.GSTIN != nil {
			gstin = *d.GSTIN
		}
		if d.Address != nil {
			address = *d.Address
		}
		drops := make([]string, 0, len(d.DropDealers))
		for _, dd := range d.DropDealers {
			drops = append(drops, dealerCodes[dd.DropDealerID])
		}
		t.Rows = append(t.Rows, []string{
			d.Name, d.Code, gstin, d.Email, d.Phone, address,
			clients[d.ClientID], states[d.StateID], cities[d.CityID],
			strings.Join(drops, ", "), d.StatusLabel(),
		})
	}
	return t, nil
}

func AspExport(db *gorm.DB, r DateRange) (*ExportTable, error) {
	var asps []partnerModel.Asp
	if err := applyRange(db.Unscoped(), r).Order("id").Find(&asps).Error; err != nil {
		return nil, err
	}
	cities, err := nameMap(db, "cities")
	if err != nil {
		return nil, err
	}

	t := &ExportTable{
		Sheet:   "ASPs",
		Headers: []string{"Name", "Code", "Email", "Phone", "City", "Status"},
	}
	for _, a := range asps {
		t.Rows = append(t.Rows, []string{
			a.Name, a.Code, a.Email, a.Phone, cities[a.CityID], a.StatusLabel(),
		})
	}
	return t, nil
}

func AspMechanicExport(db *gorm.DB, r DateRange) (*ExportTable, error) {
	var mechanics []partnerModel.AspMechanic
	if err := applyRange(db.Unscoped(), r).Preload("SubServices").Order("id").Find(&mechanics).Error; err != nil {
		return nil, err
	}
	aspCodes, err := codeMap(db, "asps")
	if err != nil {
		return nil, err
	}
	cities, err := nameMap(db, "cities")
	if err != nil {
		return nil, err
	}
	subServices, err := nameMap(db, "sub_services")
	if err != nil {
		return nil, err
	}

	t := &ExportTable{
		Sheet:   "ASP Mechanics",
		Headers: []string{"Name", "Phone", "ASP Code", "City", "Sub Services", "Status"},
	}
	for _, m := range mechanics {
		names := make([]string, 0, len(m.SubServices))
		for _, s := range m.SubServices {
			names = append(names, subServices[s.SubServiceID])
		}
		t.Rows = append(t.Rows, []string{
			m.Name, m.Phone, aspCodes[m.AspID], cities[m.CityID],
			strings.Join(names, ", "), m.StatusLabel(),
		})
	}
	return t, nil
}

func DispositionExport(db *gorm.DB, r DateRange) (*ExportTable, error) {
	var dispositions []caseModel.Disposition
	if err := applyRange(db.Unscoped(), r).Order("id").Find(&dispositions).Error; err != nil {
		return nil, err
	}

	t := &ExportTable{
		Sheet:   "Dispositions",
		Headers: []string{"Name", "Type", "Status"},
	}
	for _, d := range dispositions {
		typeName := configService.CategoryNameByID(db, constants.ConfigTypeDispositionType, d.TypeID)
		t.Rows = append(t.Rows, []string{d.Name, typeName, d.StatusLabel()})
	}
	return t, nil
}

func CaseSubjectExport(db *gorm.DB, r DateRange) (*ExportTable, error) {
	var subjects []caseModel.CaseSubject
	if err := applyRange(db.Unscoped(), r).Order("id").Find(&subjects).Error; err != nil {
		return nil, err
	}
	dispositions, err := nameMap(db, "dispositions")
	if err != nil {
		return nil, err
	}

	t := &ExportTable{
		Sheet:   "Case Subjects",
		Headers: []string{"Name", "Disposition", "Status"},
	}
	for _, s := range subjects {
		disp := ""
		if s.DispositionID != nil {
			disp = dispositions[*s.DispositionID]
		}
		t.Rows = append(t.Rows, []string{s.Name, disp, s.StatusLabel()})
	}
	return t, nil
}

// WriteCSV serializes the table with a header line.
func WriteCSV(t *ExportTable) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(t.Headers); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteXLSX serializes the table as a single-sheet workbook.
func WriteXLSX(t *ExportTable) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if t.Sheet != "" {
		if err := f.SetSheetName(sheet, t.Sheet); err != nil {
			return nil, err
		}
		sheet = t.Sheet
	}

	header := make([]interface{}, 0, len(t.Headers))
	for _, h := range t.Headers {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range t.Rows {
		cells := make([]interface{}, 0, len(row))
		for _, v := range row {
			cells = append(cells, v)
		}
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
