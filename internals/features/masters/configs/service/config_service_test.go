package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/model"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Config{}))
	return db
}

func mustSave(t *testing.T, db *gorm.DB, typeID uint, name string) *model.Config {
	t.Helper()
	m, _, err := SaveConfig(db, dto.SaveConfigRequest{TypeID: &typeID, Name: name}, 1)
	require.NoError(t, err)
	return m
}

func TestCategoryOptionsScopedToType(t *testing.T) {
	db := setupTestDB(t)
	mustSave(t, db, constants.ConfigTypeVehicleType, "Two Wheeler")
	mustSave(t, db, constants.ConfigTypeVehicleType, "Four Wheeler")
	mustSave(t, db, constants.ConfigTypeFuelType, "Diesel")

	opts, err := CategoryOptions(db, constants.ConfigTypeVehicleType)
	require.NoError(t, err)
	require.Len(t, opts, 2)
	assert.Equal(t, "Four Wheeler", opts[0].Name) // ordered by name
}

func TestCategoryOptionsSkipInactive(t *testing.T) {
	db := setupTestDB(t)
	m := mustSave(t, db, constants.ConfigTypeVehicleType, "Two Wheeler")
	require.NoError(t, db.Delete(m).Error)

	opts, err := CategoryOptions(db, constants.ConfigTypeVehicleType)
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestCategoryAccessorsGuardCategory(t *testing.T) {
	db := setupTestDB(t)
	diesel := mustSave(t, db, constants.ConfigTypeFuelType, "Diesel")

	// a fuel-type id never resolves through the vehicle-type accessor
	assert.Zero(t, CategoryIDByName(db, constants.ConfigTypeVehicleType, "Diesel"))
	assert.Empty(t, CategoryNameByID(db, constants.ConfigTypeVehicleType, diesel.ID))

	assert.Equal(t, diesel.ID, CategoryIDByName(db, constants.ConfigTypeFuelType, "Diesel"))
	assert.Equal(t, "Diesel", CategoryNameByID(db, constants.ConfigTypeFuelType, diesel.ID))
}

func TestSaveConfigDuplicateWithinCategory(t *testing.T) {
	db := setupTestDB(t)
	mustSave(t, db, constants.ConfigTypeVehicleType, "Two Wheeler")

	typeID := constants.ConfigTypeVehicleType
	_, _, err := SaveConfig(db, dto.SaveConfigRequest{TypeID: &typeID, Name: "Two Wheeler"}, 1)
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Config name already taken", be.Message)

	// same name in a different category is fine
	other := constants.ConfigTypeFuelType
	_, created, err := SaveConfig(db, dto.SaveConfigRequest{TypeID: &other, Name: "Two Wheeler"}, 1)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestSaveConfigUnknownType(t *testing.T) {
	db := setupTestDB(t)
	bad := uint(99)
	_, _, err := SaveConfig(db, dto.SaveConfigRequest{TypeID: &bad, Name: "X"}, 1)
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Config type not found", be.Message)
}
