package model

import (
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
)

type State struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	common.Audit
}

func (State) TableName() string { return "states" }

type City struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	StateID uint   `gorm:"not null;index" json:"stateId"`

	State *State `gorm:"foreignKey:StateID" json:"state,omitempty"`

	common.Audit
}

func (City) TableName() string { return "cities" }
