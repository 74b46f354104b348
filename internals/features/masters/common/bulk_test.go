package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type widget struct {
	ID   uint   `gorm:"primaryKey"`
	Name string
	Audit
}

func (widget) TableName() string { return "widgets" }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&widget{}))
	return db
}

func seedWidgets(t *testing.T, db *gorm.DB, names ...string) []uint {
	t.Helper()
	ids := make([]uint, 0, len(names))
	for _, n := range names {
		w := widget{Name: n}
		require.NoError(t, db.Create(&w).Error)
		ids = append(ids, w.ID)
	}
	return ids
}

func TestBulkUpdateStatusDeactivates(t *testing.T) {
	db := setupTestDB(t)
	ids := seedWidgets(t, db, "a", "b")

	require.NoError(t, BulkUpdateStatus(db, "widgets", "Widget", ids, 0, 42))

	// invisible to scoped queries, still there unscoped
	var count int64
	require.NoError(t, db.Model(&widget{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	var rows []widget
	require.NoError(t, db.Unscoped().Find(&rows).Error)
	require.Len(t, rows, 2)
	for _, w := range rows {
		assert.True(t, w.DeletedAt.Valid)
		require.NotNil(t, w.DeletedByID)
		assert.EqualValues(t, 42, *w.DeletedByID)
		assert.Equal(t, "Inactive", w.StatusLabel())
	}
}

func TestBulkUpdateStatusReactivates(t *testing.T) {
	db := setupTestDB(t)
	ids := seedWidgets(t, db, "a")
	require.NoError(t, BulkUpdateStatus(db, "widgets", "Widget", ids, 0, 42))

	require.NoError(t, BulkUpdateStatus(db, "widgets", "Widget", ids, 1, 43))

	var w widget
	require.NoError(t, db.First(&w, ids[0]).Error)
	assert.False(t, w.DeletedAt.Valid)
	assert.Nil(t, w.DeletedByID)
	assert.Equal(t, "Active", w.StatusLabel())
}

func TestBulkUpdateStatusMissingIDAborts(t *testing.T) {
	db := setupTestDB(t)
	ids := seedWidgets(t, db, "a")

	err := db.Transaction(func(tx *gorm.DB) error {
		return BulkUpdateStatus(tx, "widgets", "Widget", append(ids, 9999), 0, 1)
	})
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Widget not found", be.Message)

	// nothing was touched
	var w widget
	require.NoError(t, db.First(&w, ids[0]).Error)
	assert.False(t, w.DeletedAt.Valid)
}

func TestBulkHardDeleteMissingIDAborts(t *testing.T) {
	db := setupTestDB(t)
	ids := seedWidgets(t, db, "a", "b")

	err := db.Transaction(func(tx *gorm.DB) error {
		return BulkHardDelete(tx, "widgets", "Widget", []uint{ids[0], 9999})
	})
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)

	var count int64
	require.NoError(t, db.Unscoped().Model(&widget{}).Count(&count).Error)
	assert.EqualValues(t, 2, count, "no partial deletes")
}

func TestBulkHardDeleteRemovesRows(t *testing.T) {
	db := setupTestDB(t)
	ids := seedWidgets(t, db, "a", "b")

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return BulkHardDelete(tx, "widgets", "Widget", ids)
	}))

	var count int64
	require.NoError(t, db.Unscoped().Model(&widget{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestBulkUpdateStatusDuplicateIDs(t *testing.T) {
	db := setupTestDB(t)
	ids := seedWidgets(t, db, "a", "b")

	// a repeated id is not a missing id
	require.NoError(t, BulkUpdateStatus(db, "widgets", "Widget", []uint{ids[0], ids[1], ids[0]}, 0, 1))

	var count int64
	require.NoError(t, db.Model(&widget{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestBulkHardDeleteDuplicateIDs(t *testing.T) {
	db := setupTestDB(t)
	ids := seedWidgets(t, db, "a")

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return BulkHardDelete(tx, "widgets", "Widget", []uint{ids[0], ids[0]})
	}))

	var count int64
	require.NoError(t, db.Unscoped().Model(&widget{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestBulkUpdateStatusEmptyIDs(t *testing.T) {
	db := setupTestDB(t)
	err := BulkUpdateStatus(db, "widgets", "Widget", nil, 0, 1)
	var be *helper.BusinessError
	require.ErrorAs(t, err, &be)
}
