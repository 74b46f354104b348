package common

import (
	"time"

	"gorm.io/gorm"
)

// Audit carries the columns every master table shares: actor ids for
// create/update/delete plus timestamps. A row with deleted_at set is
// "Inactive"; clearing it reactivates the row. Hard deletes happen only
// through the explicit bulk delete endpoints.
type Audit struct {
	CreatedByID *uint          `gorm:"column:created_by_id" json:"createdById,omitempty"`
	UpdatedByID *uint          `gorm:"column:updated_by_id" json:"updatedById,omitempty"`
	DeletedByID *uint          `gorm:"column:deleted_by_id" json:"deletedById,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// StatusLabel maps the soft-delete marker to the status exposed by the API.
func (a Audit) StatusLabel() string {
	if a.DeletedAt.Valid {
		return "Inactive"
	}
	return "Active"
}

// StatusInt is 1 for active rows, 0 for soft-deleted ones.
func (a Audit) StatusInt() int {
	if a.DeletedAt.Valid {
		return 0
	}
	return 1
}
