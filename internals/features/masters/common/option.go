package common

import (
	"gorm.io/gorm"
)

// Option is one dropdown entry (id + display name).
type Option struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DropdownOptions lists active rows of a master table as id/name pairs,
// optionally filtered by a case-sensitive substring on name.
func DropdownOptions(db *gorm.DB, table string, search string) ([]Option, error) {
	q := db.Table(table).Select("id, name").Where("deleted_at IS NULL").Order("name asc")
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	opts := []Option{}
	if err := q.Scan(&opts).Error; err != nil {
		return nil, err
	}
	return opts, nil
}
