package dto

import (
	"gorm.io/datatypes"

	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type SaveConfigRequest struct {
	ID     *uint          `json:"id"`
	TypeID *uint          `json:"typeId"`
	Name   string         `json:"name"`
	Value  datatypes.JSON `json:"value"`
	Status *int           `json:"status"`
}

var SaveConfigRules = helper.Rules{
	"id":     "numeric",
	"typeId": "required|numeric",
	"name":   "required|string|minLength:2|maxLength:150",
	"status": "numeric|in:0,1",
}
