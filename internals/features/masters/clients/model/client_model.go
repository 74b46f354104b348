package model

import (
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
)

// Client is the fleet owner / OEM the roadside contracts run under.
type Client struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(150);not null" json:"name"`
	Code string `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`

	common.Audit
}

func (Client) TableName() string { return "clients" }
