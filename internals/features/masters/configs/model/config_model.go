package model

import (
	"gorm.io/datatypes"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
)

// Config is the polymorphic enum store: one physical table holding many
// unrelated enumerations, disambiguated by config_type_id. Access goes
// through the typed accessors in the configs service so ids from different
// categories never mix.
type Config struct {
	ID     uint           `gorm:"primaryKey" json:"id"`
	TypeID uint           `gorm:"column:config_type_id;not null;index" json:"typeId"`
	Name   string         `gorm:"type:varchar(150);not null" json:"name"`
	Value  datatypes.JSON `gorm:"type:jsonb" json:"value,omitempty"`

	common.Audit
}

func (Config) TableName() string { return "configs" }
