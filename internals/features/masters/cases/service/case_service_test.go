package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
	configModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/model"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

func setupTestDB(t *testing.T) (*gorm.DB, uint) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&configModel.Config{},
		&model.Disposition{}, &model.ActivityStatus{}, &model.CaseSubject{},
	))

	dispType := configModel.Config{TypeID: constants.ConfigTypeDispositionType, Name: "Service Related"}
	require.NoError(t, db.Create(&dispType).Error)
	return db, dispType.ID
}

func TestSaveDispositionNameUniquePerType(t *testing.T) {
	db, typeID := setupTestDB(t)

	_, created, err := SaveDisposition(db, dto.SaveDispositionRequest{Name: "Towing Needed", TypeID: &typeID}, 1)
	require.NoError(t, err)
	assert.True(t, created)

	_, _, err = SaveDisposition(db, dto.SaveDispositionRequest{Name: "Towing Needed", TypeID: &typeID}, 1)
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Disposition name already taken", be.Message)

	// same name under a different type is a different natural key
	other := configModel.Config{TypeID: constants.ConfigTypeDispositionType, Name: "Sales Related"}
	require.NoError(t, db.Create(&other).Error)
	_, created, err = SaveDisposition(db, dto.SaveDispositionRequest{Name: "Towing Needed", TypeID: &other.ID}, 1)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestSaveDispositionRejectsForeignCategoryType(t *testing.T) {
	db, _ := setupTestDB(t)
	fuel := configModel.Config{TypeID: constants.ConfigTypeFuelType, Name: "Diesel"}
	require.NoError(t, db.Create(&fuel).Error)

	_, _, err := SaveDisposition(db, dto.SaveDispositionRequest{Name: "Towing Needed", TypeID: &fuel.ID}, 1)
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Disposition type not found", be.Message)
}

func TestSaveActivityStatusDuplicateName(t *testing.T) {
	db, _ := setupTestDB(t)

	_, _, err := SaveActivityStatus(db, dto.SaveActivityStatusRequest{Name: "Closed", Code: "CLOSED"}, 1)
	require.NoError(t, err)

	_, _, err = SaveActivityStatus(db, dto.SaveActivityStatusRequest{Name: "Closed", Code: "CLS"}, 1)
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)

	var count int64
	require.NoError(t, db.Unscoped().Model(&model.ActivityStatus{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveCaseSubjectOptionalDisposition(t *testing.T) {
	db, typeID := setupTestDB(t)

	// no disposition at all is fine
	subject, _, err := SaveCaseSubject(db, dto.SaveCaseSubjectRequest{Name: "Engine Failure"}, 1)
	require.NoError(t, err)
	assert.Nil(t, subject.DispositionID)

	// a present disposition must exist
	missing := uint(9999)
	_, _, err = SaveCaseSubject(db, dto.SaveCaseSubjectRequest{Name: "Flat Battery", DispositionID: &missing}, 1)
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Disposition not found", be.Message)

	disp, _, err := SaveDisposition(db, dto.SaveDispositionRequest{Name: "Towing Needed", TypeID: &typeID}, 1)
	require.NoError(t, err)
	subject, _, err = SaveCaseSubject(db, dto.SaveCaseSubjectRequest{Name: "Flat Battery", DispositionID: &disp.ID}, 1)
	require.NoError(t, err)
	require.NotNil(t, subject.DispositionID)
	assert.Equal(t, disp.ID, *subject.DispositionID)
}
