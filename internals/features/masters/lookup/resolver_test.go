package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	caseModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
	geoModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/model"
	partnerModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/model"
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
		&partnerModel.Asp{},
		&caseModel.Disposition{},
	))
	return db
}

func TestIDByName(t *testing.T) {
	db := setupTestDB(t)
	tn := geoModel.State{Name: "Tamil Nadu"}
	require.NoError(t, db.Create(&tn).Error)

	assert.Equal(t, tn.ID, IDByName(db, "states", "Tamil Nadu"))
	assert.Equal(t, tn.ID, IDByName(db, "states", "  Tamil Nadu  "))
	assert.Zero(t, IDByName(db, "states", "tamil nadu"), "match is case-sensitive")
	assert.Zero(t, IDByName(db, "states", ""))

	// soft-deleted rows never resolve
	require.NoError(t, db.Delete(&tn).Error)
	assert.Zero(t, IDByName(db, "states", "Tamil Nadu"))
}

func TestIDByCode(t *testing.T) {
	db := setupTestDB(t)
	asp := partnerModel.Asp{Name: "Chennai Garage", Code: "ASP001", Email: "g@example.com", Phone: "9876543210", CityID: 1}
	require.NoError(t, db.Create(&asp).Error)

	assert.Equal(t, asp.ID, IDByCode(db, "asps", "ASP001"))
	assert.Zero(t, IDByCode(db, "asps", "ASP999"))
}

func TestCityIDByNameStateScope(t *testing.T) {
	db := setupTestDB(t)
	tn := geoModel.State{Name: "Tamil Nadu"}
	ka := geoModel.State{Name: "Karnataka"}
	require.NoError(t, db.Create(&tn).Error)
	require.NoError(t, db.Create(&ka).Error)

	// same city name in two states
	c1 := geoModel.City{Name: "Hosur", StateID: tn.ID}
	c2 := geoModel.City{Name: "Hosur", StateID: ka.ID}
	require.NoError(t, db.Create(&c1).Error)
	require.NoError(t, db.Create(&c2).Error)

	assert.Equal(t, c1.ID, CityIDByName(db, "Hosur", tn.ID))
	assert.Equal(t, c2.ID, CityIDByName(db, "Hosur", ka.ID))
	assert.Zero(t, CityIDByName(db, "Hosur", 9999))
}

func TestIDByNameNormalized(t *testing.T) {
	db := setupTestDB(t)
	d := caseModel.Disposition{Name: "Vehicle Breakdown - Towing", TypeID: 1}
	require.NoError(t, db.Create(&d).Error)

	// exact match first
	assert.Equal(t, d.ID, IDByNameNormalized(db, "dispositions", "Vehicle Breakdown - Towing"))
	// en dash and doubled spaces fold to the stored form
	assert.Equal(t, d.ID, IDByNameNormalized(db, "dispositions", "Vehicle  Breakdown – Towing"))
	// the fallback scan ignores case
	assert.Equal(t, d.ID, IDByNameNormalized(db, "dispositions", "vehicle breakdown – towing"))
	assert.Zero(t, IDByNameNormalized(db, "dispositions", "Something Else"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a - b", Normalize("a – b"))
	assert.Equal(t, "a - b", Normalize("a  —   b"))
	assert.Equal(t, "", Normalize("   "))
}
