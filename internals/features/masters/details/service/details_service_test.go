package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	caseModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
	clientModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/model"
	configModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/details/dto"
	geoModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/model"
	partnerModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/model"
	serviceModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/model"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

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
		&partnerModel.Dealer{}, &partnerModel.Asp{}, &partnerModel.AspMechanic{},
		&caseModel.Disposition{}, &caseModel.ActivityStatus{}, &caseModel.CaseSubject{},
		&configModel.Config{},
	))
	return db
}

func TestMasterDetailsResolvesPresentIDs(t *testing.T) {
	db := setupTestDB(t)

	state := geoModel.State{Name: "Tamil Nadu"}
	require.NoError(t, db.Create(&state).Error)
	city := geoModel.City{Name: "Chennai", StateID: state.ID}
	require.NoError(t, db.Create(&city).Error)
	fuel := configModel.Config{TypeID: constants.ConfigTypeFuelType, Name: "Diesel"}
	require.NoError(t, db.Create(&fuel).Error)

	out, err := MasterDetails(context.Background(), db, dto.MasterDetailsRequest{
		StateID:    &state.ID,
		CityID:     &city.ID,
		FuelTypeID: &fuel.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, out.State)
	assert.Equal(t, "Tamil Nadu", out.State.Name)
	require.NotNil(t, out.City)
	assert.Equal(t, "Chennai", out.City.Name)
	require.NotNil(t, out.FuelType)
	assert.Equal(t, "Diesel", out.FuelType.Name)

	// absent ids stay nil
	assert.Nil(t, out.Dealer)
	assert.Nil(t, out.Client)
}

func TestMasterDetailsNotFoundShortCircuits(t *testing.T) {
	db := setupTestDB(t)
	state := geoModel.State{Name: "Tamil Nadu"}
	require.NoError(t, db.Create(&state).Error)
	missing := uint(9999)

	_, err := MasterDetails(context.Background(), db, dto.MasterDetailsRequest{
		StateID:  &state.ID,
		DealerID: &missing,
	})
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Dealer not found", be.Message)
}

func TestMasterDetailsConfigCategoryGuard(t *testing.T) {
	db := setupTestDB(t)
	diesel := configModel.Config{TypeID: constants.ConfigTypeFuelType, Name: "Diesel"}
	require.NoError(t, db.Create(&diesel).Error)

	// a fuel-type id passed as vehicleTypeId must not resolve
	_, err := MasterDetails(context.Background(), db, dto.MasterDetailsRequest{
		VehicleTypeID: &diesel.ID,
	})
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Vehicle type not found", be.Message)
}

func TestMasterDetailsSoftDeletedIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	state := geoModel.State{Name: "Tamil Nadu"}
	require.NoError(t, db.Create(&state).Error)
	require.NoError(t, db.Delete(&state).Error)

	_, err := MasterDetails(context.Background(), db, dto.MasterDetailsRequest{StateID: &state.ID})
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "State not found", be.Message)
}

func TestMasterDetailsEmptyRequest(t *testing.T) {
	db := setupTestDB(t)
	out, err := MasterDetails(context.Background(), db, dto.MasterDetailsRequest{})
	require.NoError(t, err)
	assert.Equal(t, &MasterDetailsResponse{}, out)
}
