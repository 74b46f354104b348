package model

import (
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
)

// Disposition is a call-closure outcome, scoped by a disposition-type
// config id. Name is unique within its type.
type Disposition struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(150);not null" json:"name"`
	TypeID uint   `gorm:"column:type_id;not null;index" json:"typeId"`

	common.Audit
}

func (Disposition) TableName() string { return "dispositions" }

type ActivityStatus struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(150);not null" json:"name"`
	Code string `gorm:"type:varchar(50);not null" json:"code"`

	common.Audit
}

func (ActivityStatus) TableName() string { return "activity_statuses" }

// CaseSubject is the reported breakdown subject shown to call-centre
// agents, optionally pre-linked to a disposition.
type CaseSubject struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	DispositionID *uint  `gorm:"index" json:"dispositionId,omitempty"`

	common.Audit
}

func (CaseSubject) TableName() string { return "case_subjects" }
