package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/clients/userservice"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	caseModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
	clientModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/model"
	configModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/model"
	geoModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/imports/driver"
	partnerModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/model"
	partnerService "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/service"
	serviceModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/model"
)

type stubUsers struct{ nextID uint }

func (s *stubUsers) CreateUser(context.Context, userservice.CreateUserInput) (*userservice.User, error) {
	s.nextID++
	return &userservice.User{ID: s.nextID}, nil
}

func (s *stubUsers) UpdateUser(_ context.Context, id uint, _ userservice.UpdateUserInput) (*userservice.User, error) {
	return &userservice.User{ID: id}, nil
}

func (s *stubUsers) GetUser(_ context.Context, id uint) (*userservice.User, error) {
	return &userservice.User{ID: id}, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&geoModel.State{}, &geoModel.City{},
		&clientModel.Client{},
		&serviceModel.Service{}, &serviceModel.SubService{},
		&partnerModel.Dealer{}, &partnerModel.DropDealer{},
		&partnerModel.Asp{}, &partnerModel.AspMechanic{}, &partnerModel.AspMechanicSubService{},
		&caseModel.Disposition{}, &caseModel.ActivityStatus{}, &caseModel.CaseSubject{},
		&configModel.Config{},
	))

	require.NoError(t, db.Create(&geoModel.State{Name: "Tamil Nadu"}).Error)
	require.NoError(t, db.Create(&geoModel.City{Name: "Chennai", StateID: 1}).Error)
	require.NoError(t, db.Create(&clientModel.Client{Name: "Acme Motors", Code: "ACME"}).Error)
	return db
}

func dealerRow(name, code string) driver.Row {
	return driver.Row{
		"Name": name, "Code": code,
		"Email": code + "@example.com", "Phone": "9876543210",
		"Client": "Acme Motors", "State": "Tamil Nadu", "City": "Chennai",
		"Status": "Active",
	}
}

func TestDealerImportCreatesAndUpdates(t *testing.T) {
	db := setupTestDB(t)
	spec := DealerSpec(partnerService.NewPartnerService(&stubUsers{}))

	summary, failed := driver.Run(context.Background(), db, spec,
		[]driver.Row{dealerRow("Chennai Wheels", "DLR001")}, 1)
	require.Empty(t, failed)
	assert.Equal(t, 1, summary.NewRecordsCreated)

	// re-importing the same code updates, no new row
	summary, failed = driver.Run(context.Background(), db, spec,
		[]driver.Row{dealerRow("Chennai Wheels Renamed", "DLR001")}, 1)
	require.Empty(t, failed)
	assert.Equal(t, 0, summary.NewRecordsCreated)
	assert.Equal(t, 1, summary.ExistingRecordsUpdated)

	var count int64
	require.NoError(t, db.Unscoped().Model(&partnerModel.Dealer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var d partnerModel.Dealer
	require.NoError(t, db.First(&d).Error)
	assert.Equal(t, "Chennai Wheels Renamed", d.Name)
}

func TestDealerImportUnresolvableLookupFailsRow(t *testing.T) {
	db := setupTestDB(t)
	spec := DealerSpec(partnerService.NewPartnerService(&stubUsers{}))

	bad := dealerRow("Madurai Wheels", "DLR002")
	bad["Client"] = "No Such Client"
	good := dealerRow("Chennai Wheels", "DLR001")

	summary, failed := driver.Run(context.Background(), db, spec, []driver.Row{bad, good}, 1)
	assert.Equal(t, 1, summary.FailedRecords)
	assert.Equal(t, 1, summary.NewRecordsCreated, "one bad row never aborts the batch")

	require.Len(t, failed, 1)
	assert.Equal(t, "Client not found", failed[0].Error)
	assert.Contains(t, failed[0].Values, "No Such Client", "original values kept for the report")

	// the failed row wrote nothing
	var count int64
	require.NoError(t, db.Unscoped().Model(&partnerModel.Dealer{}).Where("code = ?", "DLR002").Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCaseSubjectImportNormalizedDisposition(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&configModel.Config{
		TypeID: constants.ConfigTypeDispositionType, Name: "Service Related",
	}).Error)
	require.NoError(t, db.Create(&caseModel.Disposition{
		Name: "Vehicle Breakdown - Towing", TypeID: 1,
	}).Error)

	spec := CaseSubjectSpec()
	summary, failed := driver.Run(context.Background(), db, spec, []driver.Row{
		// en dash plus doubled space still resolves
		{"Name": "Engine Failure", "Disposition": "Vehicle  Breakdown – Towing"},
	}, 1)
	require.Empty(t, failed)
	assert.Equal(t, 1, summary.NewRecordsCreated)

	var subject caseModel.CaseSubject
	require.NoError(t, db.First(&subject).Error)
	require.NotNil(t, subject.DispositionID)
	assert.EqualValues(t, 1, *subject.DispositionID)
}

func TestDealerExportReplacesForeignKeys(t *testing.T) {
	db := setupTestDB(t)
	spec := DealerSpec(partnerService.NewPartnerService(&stubUsers{}))
	_, failed := driver.Run(context.Background(), db, spec,
		[]driver.Row{dealerRow("Chennai Wheels", "DLR001")}, 1)
	require.Empty(t, failed)

	table, err := DealerExport(db, DateRange{})
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	row := table.Rows[0]
	assert.Equal(t, "Chennai Wheels", row[0])
	assert.Equal(t, "Acme Motors", row[6], "client id replaced by name")
	assert.Equal(t, "Tamil Nadu", row[7])
	assert.Equal(t, "Chennai", row[8])
	assert.Equal(t, "Active", row[10])
	// no raw ids anywhere in the output
	assert.NotContains(t, row, "1")
}

func TestExportDateRangeFilter(t *testing.T) {
	db := setupTestDB(t)
	spec := DealerSpec(partnerService.NewPartnerService(&stubUsers{}))
	_, failed := driver.Run(context.Background(), db, spec,
		[]driver.Row{dealerRow("Chennai Wheels", "DLR001")}, 1)
	require.Empty(t, failed)

	r, err := ParseDateRange("2099-01-01", "")
	require.NoError(t, err)
	table, err := DealerExport(db, r)
	require.NoError(t, err)
	assert.Empty(t, table.Rows)

	_, err = ParseDateRange("01/01/2099", "")
	require.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	buf, err := WriteCSV(&ExportTable{
		Headers: []string{"Name", "City"},
		Rows:    [][]string{{"Chennai Garage", "Chennai"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Name,City\nChennai Garage,Chennai\n", buf.String())
}
