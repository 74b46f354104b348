package model

import (
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
)

type Service struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(150);not null" json:"name"`

	common.Audit
}

func (Service) TableName() string { return "services" }

type SubService struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(150);not null" json:"name"`
	ServiceID uint   `gorm:"not null;index" json:"serviceId"`

	Service      *Service                `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Entitlements []SubServiceEntitlement `gorm:"foreignKey:SubServiceID" json:"entitlements,omitempty"`

	common.Audit
}

func (SubService) TableName() string { return "sub_services" }

// SubServiceEntitlement links a sub-service to the clients entitled to it.
// The set is replaced wholesale on every save of the sub-service.
type SubServiceEntitlement struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	SubServiceID uint `gorm:"not null;index" json:"subServiceId"`
	ClientID     uint `gorm:"not null;index" json:"clientId"`
}

func (SubServiceEntitlement) TableName() string { return "sub_service_entitlements" }
