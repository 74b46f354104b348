package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	clientModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/model"
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
		&clientModel.Client{},
		&model.Service{}, &model.SubService{}, &model.SubServiceEntitlement{},
	))
	return db
}

func TestSaveServiceDuplicate(t *testing.T) {
	db := setupTestDB(t)
	_, _, err := SaveService(db, dto.SaveServiceRequest{Name: "Towing"}, 1)
	require.NoError(t, err)

	_, _, err = SaveService(db, dto.SaveServiceRequest{Name: "Towing"}, 1)
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Service name already taken", be.Message)
}

func TestSaveSubServiceReplacesEntitlements(t *testing.T) {
	db := setupTestDB(t)
	parent, _, err := SaveService(db, dto.SaveServiceRequest{Name: "Towing"}, 1)
	require.NoError(t, err)

	c1 := clientModel.Client{Name: "Acme Motors", Code: "ACME"}
	c2 := clientModel.Client{Name: "Bolt Fleet", Code: "BOLT"}
	require.NoError(t, db.Create(&c1).Error)
	require.NoError(t, db.Create(&c2).Error)

	sub, created, err := SaveSubService(db, dto.SaveSubServiceRequest{
		Name: "Flatbed Towing", ServiceID: &parent.ID, ClientIDs: []uint{c1.ID, c2.ID},
	}, 1)
	require.NoError(t, err)
	assert.True(t, created)

	var links []model.SubServiceEntitlement
	require.NoError(t, db.Where("sub_service_id = ?", sub.ID).Find(&links).Error)
	assert.Len(t, links, 2)

	// saving again with a smaller set replaces, never diffs
	_, _, err = SaveSubService(db, dto.SaveSubServiceRequest{
		ID: &sub.ID, Name: "Flatbed Towing", ServiceID: &parent.ID, ClientIDs: []uint{c2.ID},
	}, 1)
	require.NoError(t, err)
	require.NoError(t, db.Where("sub_service_id = ?", sub.ID).Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, c2.ID, links[0].ClientID)
}

func TestSaveSubServiceUnknownClient(t *testing.T) {
	db := setupTestDB(t)
	parent, _, err := SaveService(db, dto.SaveServiceRequest{Name: "Towing"}, 1)
	require.NoError(t, err)

	_, _, err = SaveSubService(db, dto.SaveSubServiceRequest{
		Name: "Flatbed Towing", ServiceID: &parent.ID, ClientIDs: []uint{9999},
	}, 1)
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Client not found", be.Message)
}

func TestSaveSubServiceUnknownParent(t *testing.T) {
	db := setupTestDB(t)
	missing := uint(404)
	_, _, err := SaveSubService(db, dto.SaveSubServiceRequest{Name: "Flatbed Towing", ServiceID: &missing}, 1)
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Service not found", be.Message)
}
