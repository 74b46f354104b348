package lookup

import (
	"strings"

	"gorm.io/gorm"
)

// Name-to-id resolution against master tables. Every resolver returns 0
// when the name cannot be matched; callers decide whether that is a row
// error (imports) or a skipped lookup (seeders). 0 is never silently
// substituted with another id.

type idRow struct {
	ID uint
}

// IDByName matches an active row by exact trimmed name.
func IDByName(db *gorm.DB, table, name string) uint {
	n := strings.TrimSpace(name)
	if n == "" {
		return 0
	}
	var row idRow
	err := db.Table(table).Select("id").
		Where("name = ? AND deleted_at IS NULL", n).
		Take(&row).Error
	if err != nil {
		return 0
	}
	return row.ID
}

// IDByCode matches an active row by exact trimmed code.
func IDByCode(db *gorm.DB, table, code string) uint {
	n := strings.TrimSpace(code)
	if n == "" {
		return 0
	}
	var row idRow
	err := db.Table(table).Select("id").
		Where("code = ? AND deleted_at IS NULL", n).
		Take(&row).Error
	if err != nil {
		return 0
	}
	return row.ID
}

// CityIDByName matches a city, optionally scoped to a state.
func CityIDByName(db *gorm.DB, name string, stateID uint) uint {
	n := strings.TrimSpace(name)
	if n == "" {
		return 0
	}
	q := db.Table("cities").Select("id").Where("name = ? AND deleted_at IS NULL", n)
	if stateID != 0 {
		q = q.Where("state_id = ?", stateID)
	}
	var row idRow
	if err := q.Take(&row).Error; err != nil {
		return 0
	}
	return row.ID
}

// ConfigIDByName matches a config row inside one category.
func ConfigIDByName(db *gorm.DB, typeID uint, name string) uint {
	n := strings.TrimSpace(name)
	if n == "" {
		return 0
	}
	var row idRow
	err := db.Table("configs").Select("id").
		Where("config_type_id = ? AND name = ? AND deleted_at IS NULL", typeID, n).
		Take(&row).Error
	if err != nil {
		return 0
	}
	return row.ID
}

// DispositionIDByName matches a disposition inside one disposition type.
func DispositionIDByName(db *gorm.DB, typeID uint, name string) uint {
	n := strings.TrimSpace(name)
	if n == "" {
		return 0
	}
	q := db.Table("dispositions").Select("id").Where("name = ? AND deleted_at IS NULL", n)
	if typeID != 0 {
		q = q.Where("type_id = ?", typeID)
	}
	var row idRow
	if err := q.Take(&row).Error; err != nil {
		return 0
	}
	return row.ID
}

// IDByNameNormalized first tries the exact match, then normalizes dashes
// and whitespace and falls back to a case-insensitive scan. Spreadsheet
// case-subject names arrive with en/em dashes and doubled spaces.
func IDByNameNormalized(db *gorm.DB, table, name string) uint {
	if id := IDByName(db, table, name); id != 0 {
		return id
	}
	n := Normalize(name)
	if n == "" {
		return 0
	}
	var row idRow
	err := db.Table(table).Select("id").
		Where("LOWER(name) = LOWER(?) AND deleted_at IS NULL", n).
		Take(&row).Error
	if err != nil {
		return 0
	}
	return row.ID
}

// Normalize folds en-dash and em-dash to a hyphen and collapses runs of
// whitespace to single spaces.
func Normalize(s string) string {
	s = strings.NewReplacer("–", "-", "—", "-").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
