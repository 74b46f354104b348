package model

import (
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
)

// Dealer is a vehicle dealership tied to a client contract. The login
// identity behind user_id lives in the external user service.
type Dealer struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"type:varchar(150);not null" json:"name"`
	Code     string  `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	GSTIN    *string `gorm:"type:varchar(15)" json:"gstin,omitempty"`
	Email    string  `gorm:"type:varchar(255);not null" json:"email"`
	Phone    string  `gorm:"type:varchar(10);not null" json:"phone"`
	Address  *string `gorm:"type:varchar(500)" json:"address,omitempty"`
	ClientID uint    `gorm:"not null;index" json:"clientId"`
	StateID  uint    `gorm:"not null;index" json:"stateId"`
	CityID   uint    `gorm:"not null;index" json:"cityId"`
	UserID   *uint   `json:"userId,omitempty"`

	DropDealers []DropDealer `gorm:"foreignKey:DealerID" json:"dropDealers,omitempty"`

	common.Audit
}

func (Dealer) TableName() string { return "dealers" }

// DropDealer marks another dealer as an allowed vehicle drop location for
// the owning dealer. Replaced wholesale on every dealer save.
type DropDealer struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	DealerID     uint `gorm:"not null;index" json:"dealerId"`
	DropDealerID uint `gorm:"not null;index" json:"dropDealerId"`
}

func (DropDealer) TableName() string { return "drop_dealers" }

// Asp is an authorised service provider (garage / towing operator).
type Asp struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(150);not null" json:"name"`
	Code   string `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Email  string `gorm:"type:varchar(255);not null" json:"email"`
	Phone  string `gorm:"type:varchar(10);not null" json:"phone"`
	CityID uint   `gorm:"not null;index" json:"cityId"`
	UserID *uint  `json:"userId,omitempty"`

	common.Audit
}

func (Asp) TableName() string { return "asps" }

// AspMechanic is a field mechanic working for an ASP. Phone is the natural
// key because it doubles as the mechanic's app login.
type AspMechanic struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(150);not null" json:"name"`
	Phone  string `gorm:"type:varchar(10);not null;uniqueIndex" json:"phone"`
	AspID  uint   `gorm:"not null;index" json:"aspId"`
	CityID uint   `gorm:"not null;index" json:"cityId"`
	UserID *uint  `json:"userId,omitempty"`

	SubServices []AspMechanicSubService `gorm:"foreignKey:AspMechanicID" json:"subServices,omitempty"`

	common.Audit
}

func (AspMechanic) TableName() string { return "asp_mechanics" }

// AspMechanicSubService lists the sub-services a mechanic can handle.
// Replaced wholesale on every mechanic save.
type AspMechanicSubService struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AspMechanicID uint `gorm:"not null;index" json:"aspMechanicId"`
	SubServiceID  uint `gorm:"not null;index" json:"subServiceId"`
}

func (AspMechanicSubService) TableName() string { return "asp_mechanic_sub_services" }
